package repositories

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
)

// InvoiceReader defines read operations for receivables.
type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices returns invoices within the branch scope, optionally
	// restricted to one status, in creation order.
	ListInvoices(ctx context.Context, scope domain.BranchScope, status *domain.InvoiceStatus, limit, offset int) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for receivables.
type InvoiceWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
