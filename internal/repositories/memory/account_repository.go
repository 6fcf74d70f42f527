package memory

import (
	"context"
	"fmt"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

type accountRepository struct {
	store *Store
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accountIdx[account.Code]; exists {
		return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, account.Code)
	}
	s.accountIdx[account.Code] = len(s.accounts)
	s.accounts = append(s.accounts, account)
	return nil
}

func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.accountIdx[account.Code]
	if !exists {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.Code)
	}
	s.accounts[idx] = account
	return nil
}

func (r *accountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.accountIdx[code]
	if !exists {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, code)
	}
	acc := s.accounts[idx]
	return &acc, nil
}

func (r *accountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]domain.Account, len(codes))
	for _, code := range codes {
		if idx, exists := s.accountIdx[code]; exists {
			found[code] = s.accounts[idx]
		}
	}
	return found, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.accounts, limit, offset), nil
}
