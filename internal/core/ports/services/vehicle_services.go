package services

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/dealerdesk/backend/internal/dto"
)

// VehicleSvcFacade manages the inventory registry consumed by reporting.
type VehicleSvcFacade interface {
	GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, scope domain.BranchScope, limit, offset int) ([]domain.Vehicle, error)
	CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, creatorUserID string) (*domain.Vehicle, error)

	// MarkVehicleSold sets the vehicle status to Sold and records the final
	// sale price, enabling realized profit in cost analysis.
	MarkVehicleSold(ctx context.Context, vehicleID string, req dto.MarkVehicleSoldRequest, userID string) (*domain.Vehicle, error)
}
