package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

type userRepository struct {
	store *Store
}

var _ portsrepo.UserRepositoryFacade = (*userRepository)(nil)

func (r *userRepository) SaveUser(ctx context.Context, user domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.userIdx[user.UserID]; exists {
		return fmt.Errorf("%w: user with ID %s already exists", apperrors.ErrDuplicate, user.UserID)
	}
	for _, existing := range s.users {
		if existing.Username == user.Username && existing.DeletedAt == nil {
			return fmt.Errorf("%w: username %s already taken", apperrors.ErrDuplicate, user.Username)
		}
	}
	s.userIdx[user.UserID] = len(s.users)
	s.users = append(s.users, user)
	return nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.userIdx[user.UserID]
	if !exists {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, user.UserID)
	}
	s.users[idx] = user
	return nil
}

func (r *userRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.userIdx[userID]
	if !exists {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	user := s.users[idx]
	user.DeletedAt = &now
	user.LastUpdatedAt = now
	user.LastUpdatedBy = deletedBy
	s.users[idx] = user
	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.userIdx[userID]
	if !exists {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	user := s.users[idx]
	return &user, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username && user.DeletedAt == nil {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, username)
}

func (r *userRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	s := r.store
	s.mu.RLock()

	active := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		if user.DeletedAt == nil {
			active = append(active, user)
		}
	}
	s.mu.RUnlock()

	return paginate(active, limit, offset), nil
}
