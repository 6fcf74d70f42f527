package repositories

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
)

// LocationReader defines read operations for the branch registry.
type LocationReader interface {
	FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

// LocationWriter defines write operations for the branch registry.
type LocationWriter interface {
	SaveLocation(ctx context.Context, location domain.Location) error
	UpdateLocation(ctx context.Context, location domain.Location) error
}

// LocationRepositoryFacade combines all location repository interfaces.
type LocationRepositoryFacade interface {
	LocationReader
	LocationWriter
}
