package dto

import (
	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVehicleRequest defines the data needed to register an inventory asset.
type CreateVehicleRequest struct {
	VIN        string          `json:"vin" binding:"required"`
	Make       string          `json:"make" binding:"required"`
	Model      string          `json:"model" binding:"required"`
	ModelYear  int             `json:"modelYear" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	LocationID string          `json:"locationID" binding:"required"`
}

// MarkVehicleSoldRequest records the final sale of a vehicle.
type MarkVehicleSoldRequest struct {
	SalePrice decimal.Decimal `json:"salePrice" binding:"required"`
}

// VehicleResponse defines the data returned for an inventory asset.
type VehicleResponse struct {
	VehicleID  string               `json:"vehicleID"`
	VIN        string               `json:"vin"`
	Make       string               `json:"make"`
	Model      string               `json:"model"`
	ModelYear  int                  `json:"modelYear"`
	Price      decimal.Decimal      `json:"price"`
	Status     domain.VehicleStatus `json:"status"`
	LocationID string               `json:"locationID"`
}

// ToVehicleResponse converts a domain.Vehicle to its DTO.
func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		VehicleID:  v.VehicleID,
		VIN:        v.VIN,
		Make:       v.Make,
		Model:      v.Model,
		ModelYear:  v.ModelYear,
		Price:      v.Price,
		Status:     v.Status,
		LocationID: v.LocationID,
	}
}

// ToVehicleResponses converts a slice of vehicles.
func ToVehicleResponses(vehicles []domain.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = ToVehicleResponse(&vehicles[i])
	}
	return responses
}

// ListVehiclesParams defines query parameters for listing inventory.
type ListVehiclesParams struct {
	Branch string `form:"branch,default=all"`
	Limit  int    `form:"limit,default=50" binding:"omitempty,min=0"`
	Offset int    `form:"offset,default=0" binding:"omitempty,min=0"`
}
