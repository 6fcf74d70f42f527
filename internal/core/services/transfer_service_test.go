package services_test

import (
	"context"
	"testing"
	"time"

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

type TransferServiceTestSuite struct {
	suite.Suite
	repos   portsrepo.RepositoryProvider
	service portssvc.TransferSvcFacade
	userID  string
}

func (s *TransferServiceTestSuite) SetupTest() {
	ctx := context.Background()
	store := memory.NewStore()
	s.repos = memory.NewRepositoryProvider(store)
	s.service = services.NewTransferService(s.repos.TransferRepo, s.repos.AccountRepo)
	s.userID = "user-1"

	s.Require().NoError(s.repos.AccountRepo.SaveAccount(ctx, domain.Account{
		Code:         "A100",
		Name:         "Cash",
		AccountType:  domain.Asset,
		CurrencyCode: "USD",
		IsActive:     true,
	}))
	s.Require().NoError(s.repos.AccountRepo.SaveAccount(ctx, domain.Account{
		Code:         "A200",
		Name:         "Payroll Clearing",
		AccountType:  domain.Asset,
		CurrencyCode: "USD",
		IsActive:     true,
	}))
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}

func (s *TransferServiceTestSuite) TestCreateTransfer_StartsPending() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		SourceAccountCode:      "A100",
		DestinationAccountCode: "A200",
		Amount:                 decimal.NewFromInt(2500),
		Reference:              "Payroll Funding",
	}

	transfer, err := s.service.CreateTransfer(ctx, req, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.TransferPending, transfer.Status)
	s.Equal("USD", transfer.CurrencyCode) // Defaults from the source account
	s.Empty(transfer.CorrelationID)

	// No ledger entries exist until the transfer is posted.
	txns, err := s.repos.LedgerRepo.ListTransactions(ctx, portsrepo.TransactionFilter{})
	s.Require().NoError(err)
	s.Empty(txns)
}

func (s *TransferServiceTestSuite) TestPostTransfer_AppendsMatchedLegs() {
	ctx := context.Background()
	transfer, err := s.service.CreateTransfer(ctx, dto.CreateTransferRequest{
		SourceAccountCode:      "A100",
		DestinationAccountCode: "A200",
		Amount:                 decimal.NewFromInt(2500),
		Reference:              "Payroll Funding",
	}, s.userID)
	s.Require().NoError(err)

	posted, err := s.service.PostTransfer(ctx, transfer.TransferID, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.TransferPosted, posted.Status)
	s.NotEmpty(posted.CorrelationID)

	txns, err := s.repos.LedgerRepo.ListTransactions(ctx, portsrepo.TransactionFilter{})
	s.Require().NoError(err)
	s.Require().Len(txns, 2)

	var expenseLeg, incomeLeg *domain.Transaction
	for i := range txns {
		switch txns[i].Type {
		case domain.EntryExpense:
			expenseLeg = &txns[i]
		case domain.EntryIncome:
			incomeLeg = &txns[i]
		}
	}
	s.Require().NotNil(expenseLeg)
	s.Require().NotNil(incomeLeg)

	// Expense leg leaves the source, income leg arrives at the destination.
	s.Equal("A100", expenseLeg.AccountCode)
	s.Equal("A200", incomeLeg.AccountCode)

	// The pair conserves money: equal amounts, both in the reserved
	// transfer category, sharing one correlation ID with the transfer.
	s.True(expenseLeg.Amount.Equal(incomeLeg.Amount))
	s.True(expenseLeg.Amount.Equal(decimal.NewFromInt(2500)))
	s.Equal(domain.CategoryTransfer, expenseLeg.Category)
	s.Equal(domain.CategoryTransfer, incomeLeg.Category)
	s.Equal(posted.CorrelationID, expenseLeg.CorrelationID)
	s.Equal(posted.CorrelationID, incomeLeg.CorrelationID)
}

func (s *TransferServiceTestSuite) TestPostTransfer_Twice_IsRejected() {
	ctx := context.Background()
	transfer, err := s.service.CreateTransfer(ctx, dto.CreateTransferRequest{
		SourceAccountCode:      "A100",
		DestinationAccountCode: "A200",
		Amount:                 decimal.NewFromInt(100),
	}, s.userID)
	s.Require().NoError(err)

	_, err = s.service.PostTransfer(ctx, transfer.TransferID, s.userID)
	s.Require().NoError(err)

	_, err = s.service.PostTransfer(ctx, transfer.TransferID, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidState)

	// The second attempt must not have appended more legs.
	txns, err := s.repos.LedgerRepo.ListTransactions(ctx, portsrepo.TransactionFilter{})
	s.Require().NoError(err)
	s.Len(txns, 2)
}

func (s *TransferServiceTestSuite) TestPostTransfer_LegsDatedAtPostingTime() {
	ctx := context.Background()

	// A transfer created months ago but still pending books into the
	// period it actually posts in, not the period it was created in.
	s.Require().NoError(s.repos.TransferRepo.SaveTransfer(ctx, domain.InternalTransfer{
		TransferID:             "tr-stale",
		Date:                   time.Now().AddDate(0, -2, 0),
		SourceAccountCode:      "A100",
		DestinationAccountCode: "A200",
		Amount:                 decimal.NewFromInt(300),
		CurrencyCode:           "USD",
		Status:                 domain.TransferPending,
	}))

	_, err := s.service.PostTransfer(ctx, "tr-stale", s.userID)
	s.Require().NoError(err)

	txns, err := s.repos.LedgerRepo.ListTransactions(ctx, portsrepo.TransactionFilter{})
	s.Require().NoError(err)
	s.Require().Len(txns, 2)

	today := time.Now()
	for _, leg := range txns {
		s.Equal(today.Format("2006-01-02"), leg.PostingDate.Format("2006-01-02"))
		s.Equal(leg.SystemEntryDate.Format("2006-01-02"), leg.PostingDate.Format("2006-01-02"))
		s.Equal(domain.PeriodIDFor(today), leg.PeriodID)
	}
}

func (s *TransferServiceTestSuite) TestCreateTransfer_NonPositiveAmount() {
	ctx := context.Background()
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		_, err := s.service.CreateTransfer(ctx, dto.CreateTransferRequest{
			SourceAccountCode:      "A100",
			DestinationAccountCode: "A200",
			Amount:                 amount,
		}, s.userID)
		s.Require().Error(err)
		s.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (s *TransferServiceTestSuite) TestCreateTransfer_SameAccountAllowed() {
	ctx := context.Background()
	transfer, err := s.service.CreateTransfer(ctx, dto.CreateTransferRequest{
		SourceAccountCode:      "A100",
		DestinationAccountCode: "A100",
		Amount:                 decimal.NewFromInt(10),
	}, s.userID)

	s.Require().NoError(err)
	s.Equal("A100", transfer.SourceAccountCode)
	s.Equal("A100", transfer.DestinationAccountCode)
}

func (s *TransferServiceTestSuite) TestCreateTransfer_UnknownAccount() {
	ctx := context.Background()
	_, err := s.service.CreateTransfer(ctx, dto.CreateTransferRequest{
		SourceAccountCode:      "A100",
		DestinationAccountCode: "A999",
		Amount:                 decimal.NewFromInt(10),
	}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}
