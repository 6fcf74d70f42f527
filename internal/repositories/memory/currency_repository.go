package memory

import (
	"context"
	"fmt"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

type currencyRepository struct {
	store *Store
}

var _ portsrepo.CurrencyRepositoryFacade = (*currencyRepository)(nil)

func (r *currencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.currencyIdx[currency.CurrencyCode]; exists {
		return fmt.Errorf("%w: currency %s already exists", apperrors.ErrDuplicate, currency.CurrencyCode)
	}
	s.currencyIdx[currency.CurrencyCode] = len(s.currencies)
	s.currencies = append(s.currencies, currency)
	return nil
}

func (r *currencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.currencyIdx[currencyCode]
	if !exists {
		return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currencyCode)
	}
	currency := s.currencies[idx]
	return &currency, nil
}

func (r *currencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Currency, len(s.currencies))
	copy(out, s.currencies)
	return out, nil
}
