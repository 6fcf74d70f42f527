package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
	"github.com/dealerdesk/backend/internal/core/services"
	"github.com/dealerdesk/backend/internal/dto"
	"github.com/dealerdesk/backend/internal/repositories/memory"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	repos      portsrepo.RepositoryProvider
	service    portssvc.InvoiceSvcFacade
	locationID string
	userID     string
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	ctx := context.Background()
	store := memory.NewStore()
	s.repos = memory.NewRepositoryProvider(store)
	s.service = services.NewInvoiceService(s.repos.InvoiceRepo, s.repos.LocationRepo)
	s.locationID = "loc-north"
	s.userID = "user-1"

	s.Require().NoError(s.repos.LocationRepo.SaveLocation(ctx, domain.Location{
		LocationID: s.locationID,
		Name:       "North Branch",
		IsActive:   true,
	}))
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}

func (s *InvoiceServiceTestSuite) createInvoice() *domain.Invoice {
	invoice, err := s.service.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerName: "Dana Whitfield",
		Date:         "2026-08-01",
		DueDate:      "2026-08-31",
		Amount:       decimal.NewFromInt(750),
		LocationID:   s.locationID,
	}, s.userID)
	s.Require().NoError(err)
	return invoice
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_DefaultsToPending() {
	invoice := s.createInvoice()
	s.Equal(domain.InvoicePending, invoice.Status)
	s.NotEmpty(invoice.InvoiceID)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_DueDateBeforeDate() {
	_, err := s.service.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		CustomerName: "Dana Whitfield",
		Date:         "2026-08-10",
		DueDate:      "2026-08-01",
		Amount:       decimal.NewFromInt(750),
		LocationID:   s.locationID,
	}, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *InvoiceServiceTestSuite) TestMarkInvoicePaid_IsTerminal() {
	ctx := context.Background()
	invoice := s.createInvoice()

	paid, err := s.service.MarkInvoicePaid(ctx, invoice.InvoiceID, s.userID)
	s.Require().NoError(err)
	s.Equal(domain.InvoicePaid, paid.Status)
	firstUpdate := paid.LastUpdatedAt

	// Marking again is a no-op; the invoice stays exactly as it was.
	again, err := s.service.MarkInvoicePaid(ctx, invoice.InvoiceID, "someone-else")
	s.Require().NoError(err)
	s.Equal(domain.InvoicePaid, again.Status)
	s.Equal(firstUpdate, again.LastUpdatedAt)
	s.Equal(s.userID, again.LastUpdatedBy)
}

func (s *InvoiceServiceTestSuite) TestMarkInvoicePaid_Missing() {
	_, err := s.service.MarkInvoicePaid(context.Background(), "no-such-invoice", s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *InvoiceServiceTestSuite) TestListInvoices_StatusFilter() {
	ctx := context.Background()
	first := s.createInvoice()
	s.createInvoice()
	_, err := s.service.MarkInvoicePaid(ctx, first.InvoiceID, s.userID)
	s.Require().NoError(err)

	pending := domain.InvoicePending
	invoices, err := s.service.ListInvoices(ctx, domain.ScopeAllBranches, &pending, 0, 0)
	s.Require().NoError(err)
	s.Require().Len(invoices, 1)
	s.NotEqual(first.InvoiceID, invoices[0].InvoiceID)
}
