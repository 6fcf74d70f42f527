package services

import (
	"context"
	"errors"
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

var ErrTransferAmountNotPositive = errors.New("transfer amount must be greater than zero")

// transferService runs the internal transfer workflow.
type transferService struct {
	BaseService
	transferRepo portsrepo.TransferRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
}

// NewTransferService creates a new transfer service.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.TransferSvcFacade {
	return &transferService{
		transferRepo: transferRepo,
		accountRepo:  accountRepo,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// validateTransferAmount is the single place transfer amounts are checked.
// Note that source and destination are allowed to be the same account; the
// contract only constrains the amount.
func validateTransferAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: got %s", ErrTransferAmountNotPositive, amount.String())
	}
	return nil
}

// CreateTransfer constructs a new transfer in Pending status. No ledger
// entries exist until the transfer is posted.
func (s *transferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, creatorUserID string) (*domain.InternalTransfer, error) {
	if err := validateTransferAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, []string{req.SourceAccountCode, req.DestinationAccountCode})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve transfer accounts: %w", err)
	}
	for _, code := range []string{req.SourceAccountCode, req.DestinationAccountCode} {
		if _, ok := accounts[code]; !ok {
			return nil, fmt.Errorf("account %s: %w", code, apperrors.ErrNotFound)
		}
	}

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = accounts[req.SourceAccountCode].CurrencyCode
	}

	now := time.Now()
	transfer := domain.InternalTransfer{
		TransferID:             uuid.NewString(),
		Date:                   now,
		SourceAccountCode:      req.SourceAccountCode,
		DestinationAccountCode: req.DestinationAccountCode,
		Amount:                 req.Amount,
		CurrencyCode:           currencyCode,
		Reference:              req.Reference,
		Status:                 domain.TransferPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer); err != nil {
		s.LogError(ctx, err, "failed to save transfer")
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	s.LogInfo(ctx, "transfer created",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("source", transfer.SourceAccountCode),
		slog.String("destination", transfer.DestinationAccountCode))
	return &transfer, nil
}

// PostTransfer flips a Pending transfer to Posted and appends its matched
// pair of ledger legs in one atomic step. A transfer that is already Posted
// is rejected with apperrors.ErrInvalidState; it can never post twice.
func (s *transferService) PostTransfer(ctx context.Context, transferID string, userID string) (*domain.InternalTransfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transfer %s: %w", transferID, err)
	}
	if transfer.Status != domain.TransferPending {
		return nil, fmt.Errorf("transfer %s is already %s: %w", transferID, transfer.Status, apperrors.ErrInvalidState)
	}

	// Legs are dated when the transfer posts, not when it was created: a
	// transfer left Pending across a month boundary lands in the period it
	// actually moved money in.
	now := time.Now()
	correlationID := uuid.NewString()
	postingDate := now
	periodID := domain.PeriodIDFor(postingDate)
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	// Expense leg on the source, income leg on the destination. Equal
	// amounts and a shared correlation ID make the pair traceable as one
	// movement of money.
	legs := []domain.Transaction{
		{
			TransactionID:   uuid.NewString(),
			PostingDate:     postingDate,
			SystemEntryDate: now,
			Type:            domain.EntryExpense,
			Category:        domain.CategoryTransfer,
			Amount:          transfer.Amount,
			TaxAmount:       decimal.Zero,
			Description:     transferLegDescription(transfer, transfer.DestinationAccountCode, "to"),
			AccountCode:     transfer.SourceAccountCode,
			PeriodID:        periodID,
			CorrelationID:   correlationID,
			AuditFields:     audit,
		},
		{
			TransactionID:   uuid.NewString(),
			PostingDate:     postingDate,
			SystemEntryDate: now,
			Type:            domain.EntryIncome,
			Category:        domain.CategoryTransfer,
			Amount:          transfer.Amount,
			TaxAmount:       decimal.Zero,
			Description:     transferLegDescription(transfer, transfer.SourceAccountCode, "from"),
			AccountCode:     transfer.DestinationAccountCode,
			PeriodID:        periodID,
			CorrelationID:   correlationID,
			AuditFields:     audit,
		},
	}

	posted := *transfer
	posted.Status = domain.TransferPosted
	posted.CorrelationID = correlationID
	posted.LastUpdatedAt = now
	posted.LastUpdatedBy = userID

	if err := s.transferRepo.PostTransfer(ctx, posted, legs); err != nil {
		s.LogError(ctx, err, "failed to post transfer", "transfer_id", transferID)
		return nil, fmt.Errorf("failed to post transfer %s: %w", transferID, err)
	}

	s.LogInfo(ctx, "transfer posted",
		slog.String("transfer_id", transferID),
		slog.String("correlation_id", correlationID))
	return &posted, nil
}

func transferLegDescription(t *domain.InternalTransfer, otherAccount string, direction string) string {
	if t.Reference != "" {
		return fmt.Sprintf("Transfer %s %s: %s", direction, otherAccount, t.Reference)
	}
	return fmt.Sprintf("Transfer %s %s", direction, otherAccount)
}

// GetTransferByID retrieves a single transfer.
func (s *transferService) GetTransferByID(ctx context.Context, transferID string) (*domain.InternalTransfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer %s: %w", transferID, err)
	}
	return transfer, nil
}

// ListTransfers retrieves transfers in creation order.
func (s *transferService) ListTransfers(ctx context.Context, limit, offset int) ([]domain.InternalTransfer, error) {
	transfers, err := s.transferRepo.ListTransfers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	if transfers == nil {
		return []domain.InternalTransfer{}, nil
	}
	return transfers, nil
}
