package services

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
)

// CurrencySvcFacade exposes the (mostly static) currency registry.
type CurrencySvcFacade interface {
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
