package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
	"github.com/dealerdesk/backend/internal/dto"
	"github.com/dealerdesk/backend/internal/utils"
)

// accountService manages the chart of accounts.
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new chart-of-accounts entry after validating the
// currency reference.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	var currency *domain.Currency
	if s.currencyRepo != nil {
		var err error
		currency, err = s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
		if err != nil {
			s.LogError(ctx, err, "currency lookup failed during account creation", "currency_code", req.CurrencyCode)
			return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, req.CurrencyCode)
		}
	}

	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}
	openingBalance := balance.String()
	if currency != nil {
		openingBalance = utils.FormatWithCurrencyPrecision(balance, *currency)
	}

	now := time.Now()
	account := domain.Account{
		Code:         req.Code,
		Name:         req.Name,
		AccountType:  req.AccountType,
		CurrencyCode: req.CurrencyCode,
		Description:  req.Description,
		IsActive:     true,
		Balance:      balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to save account", "account_code", req.Code)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "account created",
		"account_code", account.Code,
		"account_type", string(account.AccountType),
		"opening_balance", openingBalance)
	return &account, nil
}

// GetAccountByCode retrieves a specific account by its business code.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", code, err)
	}
	return account, nil
}

// ListAccounts retrieves a paginated list of accounts.
func (s *accountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// UpdateAccount applies an admin edit to an account's mutable fields.
// The code and account type never change after creation.
func (s *accountService) UpdateAccount(ctx context.Context, code string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s for update: %w", code, err)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "failed to update account", "account_code", code)
		return nil, fmt.Errorf("failed to update account %s: %w", code, err)
	}

	return account, nil
}
