package repositories

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
)

// VehicleReader defines read operations for the inventory registry.
type VehicleReader interface {
	FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)

	// ListVehicles returns vehicles within the branch scope in creation order.
	ListVehicles(ctx context.Context, scope domain.BranchScope, limit, offset int) ([]domain.Vehicle, error)
}

// VehicleWriter defines write operations for the inventory registry.
type VehicleWriter interface {
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error
}

// VehicleRepositoryFacade combines all vehicle repository interfaces.
type VehicleRepositoryFacade interface {
	VehicleReader
	VehicleWriter
}
