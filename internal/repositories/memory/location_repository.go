package memory

import (
	"context"
	"fmt"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

type locationRepository struct {
	store *Store
}

var _ portsrepo.LocationRepositoryFacade = (*locationRepository)(nil)

func (r *locationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.locationIdx[location.LocationID]; exists {
		return fmt.Errorf("%w: location with ID %s already exists", apperrors.ErrDuplicate, location.LocationID)
	}
	s.locationIdx[location.LocationID] = len(s.locations)
	s.locations = append(s.locations, location)
	return nil
}

func (r *locationRepository) UpdateLocation(ctx context.Context, location domain.Location) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.locationIdx[location.LocationID]
	if !exists {
		return fmt.Errorf("%w: location %s", apperrors.ErrNotFound, location.LocationID)
	}
	s.locations[idx] = location
	return nil
}

func (r *locationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.locationIdx[locationID]
	if !exists {
		return nil, fmt.Errorf("%w: location %s", apperrors.ErrNotFound, locationID)
	}
	location := s.locations[idx]
	return &location, nil
}

func (r *locationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Location, len(s.locations))
	copy(out, s.locations)
	return out, nil
}
