package dto

import "github.com/dealerdesk/backend/internal/core/domain"

// CreateLocationRequest defines the data needed to register a branch.
type CreateLocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

// UpdateLocationRequest defines the mutable fields of a branch.
type UpdateLocationRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

// LocationResponse defines the data returned for a branch.
type LocationResponse struct {
	LocationID string `json:"locationID"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"isActive"`
}

// ToLocationResponse converts a domain.Location to its DTO.
func ToLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		LocationID: l.LocationID,
		Name:       l.Name,
		Address:    l.Address,
		City:       l.City,
		Phone:      l.Phone,
		IsActive:   l.IsActive,
	}
}

// ToLocationResponses converts a slice of branches.
func ToLocationResponses(locations []domain.Location) []LocationResponse {
	responses := make([]LocationResponse, len(locations))
	for i := range locations {
		responses[i] = ToLocationResponse(&locations[i])
	}
	return responses
}
