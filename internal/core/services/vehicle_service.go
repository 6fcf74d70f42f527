package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
	"github.com/dealerdesk/backend/internal/dto"
)

// vehicleService manages the inventory registry consumed by reporting.
type vehicleService struct {
	BaseService
	vehicleRepo  portsrepo.VehicleRepositoryFacade
	locationRepo portsrepo.LocationRepositoryFacade
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(vehicleRepo portsrepo.VehicleRepositoryFacade, locationRepo portsrepo.LocationRepositoryFacade) portssvc.VehicleSvcFacade {
	return &vehicleService{
		vehicleRepo:  vehicleRepo,
		locationRepo: locationRepo,
	}
}

var _ portssvc.VehicleSvcFacade = (*vehicleService)(nil)

func (s *vehicleService) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, creatorUserID string) (*domain.Vehicle, error) {
	if _, err := s.locationRepo.FindLocationByID(ctx, req.LocationID); err != nil {
		return nil, fmt.Errorf("failed to resolve location %s: %w", req.LocationID, err)
	}

	now := time.Now()
	vehicle := domain.Vehicle{
		VehicleID:  uuid.NewString(),
		VIN:        req.VIN,
		Make:       req.Make,
		Model:      req.Model,
		ModelYear:  req.ModelYear,
		Price:      req.Price,
		Status:     domain.VehicleInStock,
		LocationID: req.LocationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
		s.LogError(ctx, err, "failed to save vehicle", "vin", req.VIN)
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.LogInfo(ctx, "vehicle created", slog.String("vehicle_id", vehicle.VehicleID), slog.String("vin", vehicle.VIN))
	return &vehicle, nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle %s: %w", vehicleID, err)
	}
	return vehicle, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, scope domain.BranchScope, limit, offset int) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx, scope, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	if vehicles == nil {
		return []domain.Vehicle{}, nil
	}
	return vehicles, nil
}

// MarkVehicleSold sets the vehicle status to Sold and records the final sale
// price. Selling an already-sold vehicle is rejected; the sale price on a
// sold vehicle is part of realized profit and must not silently change.
func (s *vehicleService) MarkVehicleSold(ctx context.Context, vehicleID string, req dto.MarkVehicleSoldRequest, userID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle %s: %w", vehicleID, err)
	}
	if vehicle.Status == domain.VehicleSold {
		return nil, fmt.Errorf("vehicle %s is already sold: %w", vehicleID, apperrors.ErrInvalidState)
	}

	vehicle.Status = domain.VehicleSold
	vehicle.Price = req.SalePrice
	vehicle.LastUpdatedAt = time.Now()
	vehicle.LastUpdatedBy = userID

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		s.LogError(ctx, err, "failed to mark vehicle sold", "vehicle_id", vehicleID)
		return nil, fmt.Errorf("failed to mark vehicle %s sold: %w", vehicleID, err)
	}

	s.LogInfo(ctx, "vehicle sold",
		slog.String("vehicle_id", vehicleID),
		slog.String("sale_price", req.SalePrice.String()))
	return vehicle, nil
}
