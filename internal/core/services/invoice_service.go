package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
	"github.com/dealerdesk/backend/internal/dto"
)

// invoiceService tracks customer receivables.
type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	locationRepo portsrepo.LocationRepositoryFacade
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, locationRepo portsrepo.LocationRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		locationRepo: locationRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice persists a new receivable. The status defaults to Pending;
// callers may create directly as Overdue but never as Paid.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: invoice amount must be greater than zero", apperrors.ErrValidation)
	}

	date, err := req.DateTime()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid invoice date: %s", apperrors.ErrValidation, err.Error())
	}
	dueDate, err := req.DueDateTime()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date: %s", apperrors.ErrValidation, err.Error())
	}
	if dueDate.Before(date) {
		return nil, fmt.Errorf("%w: due date precedes invoice date", apperrors.ErrValidation)
	}

	if _, err := s.locationRepo.FindLocationByID(ctx, req.LocationID); err != nil {
		return nil, fmt.Errorf("failed to resolve location %s: %w", req.LocationID, err)
	}

	status := req.Status
	if status == "" {
		status = domain.InvoicePending
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:    uuid.NewString(),
		CustomerName: req.CustomerName,
		Date:         date,
		DueDate:      dueDate,
		Amount:       req.Amount,
		Status:       status,
		LocationID:   req.LocationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "failed to save invoice")
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("location_id", invoice.LocationID))
	return &invoice, nil
}

// MarkInvoicePaid transitions an invoice to Paid. Paid is terminal: marking
// an already-paid invoice again is a no-op that returns it unchanged.
func (s *invoiceService) MarkInvoicePaid(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	if invoice.Status == domain.InvoicePaid {
		return invoice, nil
	}

	invoice.Status = domain.InvoicePaid
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "failed to mark invoice paid", "invoice_id", invoiceID)
		return nil, fmt.Errorf("failed to mark invoice %s paid: %w", invoiceID, err)
	}

	s.LogInfo(ctx, "invoice marked paid", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

// GetInvoiceByID retrieves a single invoice.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

// ListInvoices retrieves invoices within the branch scope, optionally
// restricted to one status.
func (s *invoiceService) ListInvoices(ctx context.Context, scope domain.BranchScope, status *domain.InvoiceStatus, limit, offset int) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, scope, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}
