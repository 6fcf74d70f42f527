package memory

import (
	"context"
	"fmt"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

type invoiceRepository struct {
	store *Store
}

var _ portsrepo.InvoiceRepositoryFacade = (*invoiceRepository)(nil)

func (r *invoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.invoiceIdx[invoice.InvoiceID]; exists {
		return fmt.Errorf("%w: invoice with ID %s already exists", apperrors.ErrDuplicate, invoice.InvoiceID)
	}
	s.invoiceIdx[invoice.InvoiceID] = len(s.invoices)
	s.invoices = append(s.invoices, invoice)
	return nil
}

func (r *invoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.invoiceIdx[invoice.InvoiceID]
	if !exists {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoice.InvoiceID)
	}
	s.invoices[idx] = invoice
	return nil
}

func (r *invoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.invoiceIdx[invoiceID]
	if !exists {
		return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
	}
	invoice := s.invoices[idx]
	return &invoice, nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, scope domain.BranchScope, status *domain.InvoiceStatus, limit, offset int) ([]domain.Invoice, error) {
	s := r.store
	s.mu.RLock()

	matched := make([]domain.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		if !scope.Matches(inv.LocationID) {
			continue
		}
		if status != nil && inv.Status != *status {
			continue
		}
		matched = append(matched, inv)
	}
	s.mu.RUnlock()

	return paginate(matched, limit, offset), nil
}
