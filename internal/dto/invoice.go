package dto

import (
	"time"

	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to record a receivable.
// Status is taken as supplied (Pending or Overdue); it is not derived from
// the due date, matching the observed receivables behavior.
type CreateInvoiceRequest struct {
	CustomerName string               `json:"customerName" binding:"required"`
	Date         string               `json:"date" binding:"required,datetime=2006-01-02"`
	DueDate      string               `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Amount       decimal.Decimal      `json:"amount" binding:"required"`
	Status       domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=PENDING OVERDUE"`
	LocationID   string               `json:"locationID" binding:"required"`
}

// DateTime parses the invoice date.
func (r *CreateInvoiceRequest) DateTime() (time.Time, error) {
	return time.ParseInLocation(civilDate, r.Date, time.UTC)
}

// DueDateTime parses the invoice due date.
func (r *CreateInvoiceRequest) DueDateTime() (time.Time, error) {
	return time.ParseInLocation(civilDate, r.DueDate, time.UTC)
}

// InvoiceResponse defines the data returned for a receivable.
type InvoiceResponse struct {
	InvoiceID    string               `json:"invoiceID"`
	CustomerName string               `json:"customerName"`
	Date         string               `json:"date"`
	DueDate      string               `json:"dueDate"`
	Amount       decimal.Decimal      `json:"amount"`
	Status       domain.InvoiceStatus `json:"status"`
	LocationID   string               `json:"locationID"`
}

// ToInvoiceResponse converts a domain.Invoice to its DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:    inv.InvoiceID,
		CustomerName: inv.CustomerName,
		Date:         inv.Date.Format(civilDate),
		DueDate:      inv.DueDate.Format(civilDate),
		Amount:       inv.Amount,
		Status:       inv.Status,
		LocationID:   inv.LocationID,
	}
}

// ToInvoiceResponses converts a slice of invoices.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}

// ListInvoicesParams defines query parameters for listing receivables.
type ListInvoicesParams struct {
	Branch string `form:"branch,default=all"`
	Status string `form:"status" binding:"omitempty,oneof=PENDING PAID OVERDUE"`
	Limit  int    `form:"limit,default=50" binding:"omitempty,min=0"`
	Offset int    `form:"offset,default=0" binding:"omitempty,min=0"`
}
