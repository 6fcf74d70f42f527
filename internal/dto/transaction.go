package dto

import (
	"time"

	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// civilDate is the wire format for accounting dates.
const civilDate = "2006-01-02"

// CreateTransactionRequest defines a manual journal entry.
// PeriodID is always derived server-side from the posting date; any
// caller-supplied value would be ignored, so the field does not exist here.
type CreateTransactionRequest struct {
	PostingDate string               `json:"postingDate" binding:"required,datetime=2006-01-02"`
	InvoiceDate string               `json:"invoiceDate" binding:"omitempty,datetime=2006-01-02"`
	Type        domain.EntryType     `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category    domain.EntryCategory `json:"category" binding:"required"`
	Amount      decimal.Decimal      `json:"amount" binding:"required"`
	TaxAmount   decimal.Decimal      `json:"taxAmount"`
	Description string               `json:"description" binding:"required"`
	AccountCode string               `json:"accountCode" binding:"required"`
	LocationID  string               `json:"locationID" binding:"required"`
	ReferenceID string               `json:"referenceID"`
}

// PostingDateTime parses the posting date into a UTC civil date.
func (r *CreateTransactionRequest) PostingDateTime() (time.Time, error) {
	return time.ParseInLocation(civilDate, r.PostingDate, time.UTC)
}

// InvoiceDateTime parses the optional invoice date; nil when absent.
func (r *CreateTransactionRequest) InvoiceDateTime() (*time.Time, error) {
	if r.InvoiceDate == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(civilDate, r.InvoiceDate, time.UTC)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListTransactionsParams defines query parameters for the filtered ledger view.
type ListTransactionsParams struct {
	Branch   string `form:"branch,default=all"`
	Search   string `form:"search"`
	Type     string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Category string `form:"category"`
	Period   string `form:"period" binding:"omitempty,period"`
	Limit    int    `form:"limit,default=0" binding:"omitempty,min=0"`
	Offset   int    `form:"offset,default=0" binding:"omitempty,min=0"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID   string               `json:"transactionID"`
	PostingDate     string               `json:"postingDate"`
	SystemEntryDate string               `json:"systemEntryDate"`
	InvoiceDate     *string              `json:"invoiceDate,omitempty"`
	Type            domain.EntryType     `json:"type"`
	Category        domain.EntryCategory `json:"category"`
	Amount          decimal.Decimal      `json:"amount"`
	TaxAmount       decimal.Decimal      `json:"taxAmount"`
	Description     string               `json:"description"`
	AccountCode     string               `json:"accountCode"`
	LocationID      string               `json:"locationID"`
	PeriodID        string               `json:"periodID"`
	ReferenceID     string               `json:"referenceID,omitempty"`
	CorrelationID   string               `json:"correlationID,omitempty"`
	IsLateEntry     bool                 `json:"isLateEntry"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	var invoiceDate *string
	if txn.InvoiceDate != nil {
		s := txn.InvoiceDate.Format(civilDate)
		invoiceDate = &s
	}
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		PostingDate:     txn.PostingDate.Format(civilDate),
		SystemEntryDate: txn.SystemEntryDate.Format(civilDate),
		InvoiceDate:     invoiceDate,
		Type:            txn.Type,
		Category:        txn.Category,
		Amount:          txn.Amount,
		TaxAmount:       txn.TaxAmount,
		Description:     txn.Description,
		AccountCode:     txn.AccountCode,
		LocationID:      txn.LocationID,
		PeriodID:        txn.PeriodID,
		ReferenceID:     txn.ReferenceID,
		CorrelationID:   txn.CorrelationID,
		IsLateEntry:     txn.IsLateEntry(),
	}
}

// ToTransactionResponses converts a slice of ledger entries.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ListTransactionsResponse wraps the filtered ledger view.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
