package repositories

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
)

// CurrencyReader defines read operations for currencies.
type CurrencyReader interface {
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currencies.
type CurrencyWriter interface {
	// SaveCurrency persists a currency; primarily used by initial seeding.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
