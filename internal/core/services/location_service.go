package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
	"github.com/dealerdesk/backend/internal/dto"
)

// locationService manages the branch registry.
type locationService struct {
	BaseService
	locationRepo portsrepo.LocationRepositoryFacade
}

// NewLocationService creates a new location service.
func NewLocationService(locationRepo portsrepo.LocationRepositoryFacade) portssvc.LocationSvcFacade {
	return &locationService{locationRepo: locationRepo}
}

var _ portssvc.LocationSvcFacade = (*locationService)(nil)

func (s *locationService) CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error) {
	now := time.Now()
	location := domain.Location{
		LocationID: uuid.NewString(),
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		Phone:      req.Phone,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.locationRepo.SaveLocation(ctx, location); err != nil {
		s.LogError(ctx, err, "failed to save location")
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	s.LogInfo(ctx, "location created", slog.String("location_id", location.LocationID), slog.String("name", location.Name))
	return &location, nil
}

func (s *locationService) GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location %s: %w", locationID, err)
	}
	return location, nil
}

func (s *locationService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	if locations == nil {
		return []domain.Location{}, nil
	}
	return locations, nil
}

func (s *locationService) UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, userID string) (*domain.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find location %s for update: %w", locationID, err)
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Address != nil {
		location.Address = *req.Address
	}
	if req.City != nil {
		location.City = *req.City
	}
	if req.Phone != nil {
		location.Phone = *req.Phone
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}
	location.LastUpdatedAt = time.Now()
	location.LastUpdatedBy = userID

	if err := s.locationRepo.UpdateLocation(ctx, *location); err != nil {
		s.LogError(ctx, err, "failed to update location", "location_id", locationID)
		return nil, fmt.Errorf("failed to update location %s: %w", locationID, err)
	}

	return location, nil
}
