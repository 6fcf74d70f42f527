package dto

import (
	"time"

	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code         string             `json:"code" binding:"required"`
	Name         string             `json:"name" binding:"required"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	CurrencyCode string             `json:"currencyCode" binding:"required"`
	Description  string             `json:"description"`
	Balance      *decimal.Decimal   `json:"balance"` // Optional opening balance
}

// UpdateAccountRequest defines the data allowed for updating an account.
// The account code is immutable and deliberately absent here.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Balance     *decimal.Decimal `json:"balance"`
	IsActive    *bool            `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Code         string             `json:"code"`
	Name         string             `json:"name"`
	AccountType  domain.AccountType `json:"accountType"`
	CurrencyCode string             `json:"currencyCode"`
	Description  string             `json:"description"`
	IsActive     bool               `json:"isActive"`
	Balance      decimal.Decimal    `json:"balance"`
	CreatedAt    time.Time          `json:"createdAt"`
	CreatedBy    string             `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:         acc.Code,
		Name:         acc.Name,
		AccountType:  acc.AccountType,
		CurrencyCode: acc.CurrencyCode,
		Description:  acc.Description,
		IsActive:     acc.IsActive,
		Balance:      acc.Balance,
		CreatedAt:    acc.CreatedAt,
		CreatedBy:    acc.CreatedBy,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to response DTOs
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,min=0"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
