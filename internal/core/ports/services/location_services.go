package services

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/dealerdesk/backend/internal/dto"
)

// LocationSvcFacade manages the branch registry.
type LocationSvcFacade interface {
	GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error)
	UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, userID string) (*domain.Location, error)
}
