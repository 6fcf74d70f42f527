package memory

import (
	"context"
	"fmt"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

type vehicleRepository struct {
	store *Store
}

var _ portsrepo.VehicleRepositoryFacade = (*vehicleRepository)(nil)

func (r *vehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.vehicleIdx[vehicle.VehicleID]; exists {
		return fmt.Errorf("%w: vehicle with ID %s already exists", apperrors.ErrDuplicate, vehicle.VehicleID)
	}
	s.vehicleIdx[vehicle.VehicleID] = len(s.vehicles)
	s.vehicles = append(s.vehicles, vehicle)
	return nil
}

func (r *vehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.vehicleIdx[vehicle.VehicleID]
	if !exists {
		return fmt.Errorf("%w: vehicle %s", apperrors.ErrNotFound, vehicle.VehicleID)
	}
	s.vehicles[idx] = vehicle
	return nil
}

func (r *vehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.vehicleIdx[vehicleID]
	if !exists {
		return nil, fmt.Errorf("%w: vehicle %s", apperrors.ErrNotFound, vehicleID)
	}
	vehicle := s.vehicles[idx]
	return &vehicle, nil
}

func (r *vehicleRepository) ListVehicles(ctx context.Context, scope domain.BranchScope, limit, offset int) ([]domain.Vehicle, error) {
	s := r.store
	s.mu.RLock()

	matched := make([]domain.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if scope.Matches(v.LocationID) {
			matched = append(matched, v)
		}
	}
	s.mu.RUnlock()

	return paginate(matched, limit, offset), nil
}
