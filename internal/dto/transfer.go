package dto

import (
	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest defines the data needed to create a pending internal
// transfer. Source and destination may be the same account; the contract is
// deliberately permissive there.
type CreateTransferRequest struct {
	SourceAccountCode      string          `json:"sourceAccountCode" binding:"required"`
	DestinationAccountCode string          `json:"destinationAccountCode" binding:"required"`
	Amount                 decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode           string          `json:"currencyCode"`
	Reference              string          `json:"reference"`
}

// TransferResponse defines the data returned for an internal transfer.
type TransferResponse struct {
	TransferID             string                `json:"transferID"`
	Date                   string                `json:"date"`
	SourceAccountCode      string                `json:"sourceAccountCode"`
	DestinationAccountCode string                `json:"destinationAccountCode"`
	Amount                 decimal.Decimal       `json:"amount"`
	CurrencyCode           string                `json:"currencyCode"`
	Reference              string                `json:"reference"`
	Status                 domain.TransferStatus `json:"status"`
	CorrelationID          string                `json:"correlationID,omitempty"`
}

// ToTransferResponse converts a domain.InternalTransfer to its DTO.
func ToTransferResponse(t *domain.InternalTransfer) TransferResponse {
	return TransferResponse{
		TransferID:             t.TransferID,
		Date:                   t.Date.Format(civilDate),
		SourceAccountCode:      t.SourceAccountCode,
		DestinationAccountCode: t.DestinationAccountCode,
		Amount:                 t.Amount,
		CurrencyCode:           t.CurrencyCode,
		Reference:              t.Reference,
		Status:                 t.Status,
		CorrelationID:          t.CorrelationID,
	}
}

// ToTransferResponses converts a slice of transfers.
func ToTransferResponses(transfers []domain.InternalTransfer) []TransferResponse {
	responses := make([]TransferResponse, len(transfers))
	for i := range transfers {
		responses[i] = ToTransferResponse(&transfers[i])
	}
	return responses
}

// ListTransfersParams defines query parameters for listing transfers.
type ListTransfersParams struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,min=0"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}
