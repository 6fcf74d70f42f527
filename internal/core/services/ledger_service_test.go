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

type LedgerServiceTestSuite struct {
	suite.Suite
	repos      portsrepo.RepositoryProvider
	service    portssvc.LedgerSvcFacade
	locationID string
	userID     string
}

func (s *LedgerServiceTestSuite) SetupTest() {
	ctx := context.Background()
	store := memory.NewStore()
	s.repos = memory.NewRepositoryProvider(store)
	s.service = services.NewLedgerService(s.repos.LedgerRepo, s.repos.AccountRepo, s.repos.LocationRepo)
	s.locationID = "loc-north"
	s.userID = "user-1"

	s.Require().NoError(s.repos.AccountRepo.SaveAccount(ctx, domain.Account{
		Code:         "A100",
		Name:         "Cash",
		AccountType:  domain.Asset,
		CurrencyCode: "USD",
		IsActive:     true,
	}))
	s.Require().NoError(s.repos.LocationRepo.SaveLocation(ctx, domain.Location{
		LocationID: s.locationID,
		Name:       "North Branch",
		IsActive:   true,
	}))
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) validRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		PostingDate: "2026-08-14",
		Type:        domain.EntryExpense,
		Category:    domain.CategoryPayroll,
		Amount:      decimal.NewFromInt(1200),
		Description: "August payroll",
		AccountCode: "A100",
		LocationID:  s.locationID,
	}
}

func (s *LedgerServiceTestSuite) TestAppendEntry_DerivesPeriodFromPostingDate() {
	ctx := context.Background()
	txn, err := s.service.AppendEntry(ctx, s.validRequest(), s.userID)

	s.Require().NoError(err)
	s.Equal("2026-08", txn.PeriodID)
	s.Equal("2026-08-14", txn.PostingDate.Format("2006-01-02"))
	s.NotEmpty(txn.TransactionID)
	s.Equal(s.userID, txn.CreatedBy)
}

func (s *LedgerServiceTestSuite) TestAppendEntry_RejectsNegativeAmount() {
	ctx := context.Background()
	req := s.validRequest()
	req.Amount = decimal.NewFromInt(-50)

	_, err := s.service.AppendEntry(ctx, req, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestAppendEntry_AllowsZeroAmount() {
	ctx := context.Background()
	req := s.validRequest()
	req.Amount = decimal.Zero
	req.Description = "Warranty write-off"

	txn, err := s.service.AppendEntry(ctx, req, s.userID)
	s.Require().NoError(err)
	s.True(txn.Amount.IsZero())
}

func (s *LedgerServiceTestSuite) TestAppendEntry_RejectsTransferCategory() {
	ctx := context.Background()
	req := s.validRequest()
	req.Category = domain.CategoryTransfer

	_, err := s.service.AppendEntry(ctx, req, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestAppendEntry_RejectsUnknownCategory() {
	ctx := context.Background()
	req := s.validRequest()
	req.Category = "SNACKS"

	_, err := s.service.AppendEntry(ctx, req, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestAppendEntry_RejectsInactiveAccount() {
	ctx := context.Background()
	s.Require().NoError(s.repos.AccountRepo.SaveAccount(ctx, domain.Account{
		Code:         "A900",
		Name:         "Closed",
		AccountType:  domain.Asset,
		CurrencyCode: "USD",
		IsActive:     false,
	}))

	req := s.validRequest()
	req.AccountCode = "A900"

	_, err := s.service.AppendEntry(ctx, req, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestVoidEntry_RemovesEntry() {
	ctx := context.Background()
	txn, err := s.service.AppendEntry(ctx, s.validRequest(), s.userID)
	s.Require().NoError(err)

	s.Require().NoError(s.service.VoidEntry(ctx, txn.TransactionID, s.userID))

	_, err = s.service.GetTransactionByID(ctx, txn.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	// A second void of the same entry fails; there is nothing left to void.
	err = s.service.VoidEntry(ctx, txn.TransactionID, s.userID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestExportTransactionsCSV_Deterministic() {
	ctx := context.Background()
	for _, day := range []string{"2026-08-14", "2026-08-12", "2026-08-14"} {
		req := s.validRequest()
		req.PostingDate = day
		_, err := s.service.AppendEntry(ctx, req, s.userID)
		s.Require().NoError(err)
	}

	first, err := s.service.ExportTransactionsCSV(ctx, portsrepo.TransactionFilter{})
	s.Require().NoError(err)
	second, err := s.service.ExportTransactionsCSV(ctx, portsrepo.TransactionFilter{})
	s.Require().NoError(err)

	// Same store state renders the same bytes every time.
	s.Equal(first, second)
	s.Contains(string(first), "ID,PostingDate,SystemEntryDate,Description,Category,Type,Amount,Branch,AccountCode")
	s.Contains(string(first), "August payroll")
}
