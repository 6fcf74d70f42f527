package services

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/dealerdesk/backend/internal/dto"
)

// InvoiceReaderSvc defines read operations for receivables
type InvoiceReaderSvc interface {
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, scope domain.BranchScope, status *domain.InvoiceStatus, limit, offset int) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for receivables
type InvoiceWriterSvc interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	// MarkInvoicePaid transitions a Pending or Overdue invoice to Paid.
	// Marking an already-paid invoice is a no-op that returns the invoice
	// unchanged. Paid is terminal; nothing transitions away from it.
	MarkInvoicePaid(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
