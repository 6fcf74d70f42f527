package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
	"github.com/dealerdesk/backend/internal/dto"
	"github.com/dealerdesk/backend/internal/utils"
)

var (
	ErrAmountNegative   = errors.New("entry amount must not be negative")
	ErrTaxNegative      = errors.New("tax amount must not be negative")
	ErrUnknownCategory  = errors.New("unknown entry category")
	ErrReservedCategory = errors.New("transfer category is reserved for posted transfers")
	ErrAccountInactive  = errors.New("account is inactive")
)

// ledgerService provides the append-only transaction ledger.
type ledgerService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	locationRepo portsrepo.LocationRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, locationRepo portsrepo.LocationRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:   ledgerRepo,
		accountRepo:  accountRepo,
		locationRepo: locationRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateEntry checks the business rules for a manual journal entry.
func (s *ledgerService) validateEntry(req dto.CreateTransactionRequest) error {
	// Zero is allowed; corrections and write-offs legitimately book 0.00.
	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrAmountNegative, req.Amount.String())
	}
	if req.TaxAmount.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrTaxNegative, req.TaxAmount.String())
	}
	if !req.Category.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, req.Category)
	}
	// Transfer legs only enter the ledger through the transfer workflow.
	if req.Category == domain.CategoryTransfer {
		return ErrReservedCategory
	}
	return nil
}

// AppendEntry records a new manual journal entry. The reporting period is
// always derived from the posting date, never taken from the caller.
func (s *ledgerService) AppendEntry(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	if err := s.validateEntry(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	postingDate, err := req.PostingDateTime()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid posting date: %s", apperrors.ErrValidation, err.Error())
	}
	invoiceDate, err := req.InvoiceDateTime()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid invoice date: %s", apperrors.ErrValidation, err.Error())
	}

	account, err := s.accountRepo.FindAccountByCode(ctx, req.AccountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account %s: %w", req.AccountCode, err)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAccountInactive.Error())
	}
	if _, err := s.locationRepo.FindLocationByID(ctx, req.LocationID); err != nil {
		return nil, fmt.Errorf("failed to resolve location %s: %w", req.LocationID, err)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		PostingDate:     postingDate,
		SystemEntryDate: now,
		InvoiceDate:     invoiceDate,
		Type:            req.Type,
		Category:        req.Category,
		Amount:          req.Amount,
		TaxAmount:       req.TaxAmount,
		Description:     req.Description,
		AccountCode:     req.AccountCode,
		LocationID:      req.LocationID,
		PeriodID:        domain.PeriodIDFor(postingDate),
		ReferenceID:     req.ReferenceID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.ledgerRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to append ledger entry", "account_code", req.AccountCode)
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	s.LogInfo(ctx, "ledger entry appended",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("period_id", txn.PeriodID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// VoidEntry removes an entry from the ledger. Voiding a missing or
// already-voided entry fails with apperrors.ErrNotFound.
func (s *ledgerService) VoidEntry(ctx context.Context, transactionID string, userID string) error {
	if err := s.ledgerRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to void entry %s: %w", transactionID, err)
	}
	s.LogInfo(ctx, "ledger entry voided",
		slog.String("transaction_id", transactionID),
		slog.String("voided_by", userID))
	return nil
}

// GetTransactionByID retrieves a single ledger entry.
func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions returns the filtered ledger view.
func (s *ledgerService) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// csvHeader is the fixed column order of the ledger export.
var csvHeader = []string{"ID", "PostingDate", "SystemEntryDate", "Description", "Category", "Type", "Amount", "Branch", "AccountCode"}

// csvAmountPrecision is the number of decimal places amounts carry in the
// export. The ledger is currency-agnostic, so a fixed monetary precision is
// used rather than a per-currency one.
const csvAmountPrecision = 2

// ExportTransactionsCSV renders the filtered ledger view as CSV. Rows follow
// the same deterministic ordering as ListTransactions, so the same store
// state always produces the same bytes.
func (s *ledgerService) ExportTransactionsCSV(ctx context.Context, filter portsrepo.TransactionFilter) ([]byte, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to export transactions: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range txns {
		txn := &txns[i]
		record := []string{
			txn.TransactionID,
			txn.PostingDate.Format("2006-01-02"),
			txn.SystemEntryDate.Format("2006-01-02"),
			txn.Description,
			string(txn.Category),
			string(txn.Type),
			utils.FormatWithPrecision(txn.Amount, csvAmountPrecision),
			txn.LocationID,
			txn.AccountCode,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	s.LogDebug(ctx, "ledger export rendered", slog.Int("rows", len(txns)))
	return buf.Bytes(), nil
}
