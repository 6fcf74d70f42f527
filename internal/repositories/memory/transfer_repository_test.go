package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

func transferLegs(correlationID, idPrefix string, day time.Time) []domain.Transaction {
	out := entry(idPrefix+"-out", "", day)
	out.Type = domain.EntryExpense
	out.Category = domain.CategoryTransfer
	out.CorrelationID = correlationID

	in := entry(idPrefix+"-in", "", day)
	in.Category = domain.CategoryTransfer
	in.AccountCode = "A200"
	in.CorrelationID = correlationID

	return []domain.Transaction{out, in}
}

func TestPostTransfer_OnlyPendingTransfersPost(t *testing.T) {
	store := NewStore()
	transfers := &transferRepository{store: store}
	ledger := &ledgerRepository{store: store}
	ctx := context.Background()
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	pending := domain.InternalTransfer{
		TransferID:             "tr-1",
		Date:                   day,
		SourceAccountCode:      "A100",
		DestinationAccountCode: "A200",
		Amount:                 decimal.NewFromInt(500),
		CurrencyCode:           "USD",
		Status:                 domain.TransferPending,
	}
	require.NoError(t, transfers.SaveTransfer(ctx, pending))

	posted := pending
	posted.Status = domain.TransferPosted
	posted.CorrelationID = "corr-1"
	require.NoError(t, transfers.PostTransfer(ctx, posted, transferLegs("corr-1", "leg1", day)))

	// A second post against the same transfer must fail inside the repo,
	// even though the caller's snapshot still said Pending.
	again := posted
	again.CorrelationID = "corr-2"
	err := transfers.PostTransfer(ctx, again, transferLegs("corr-2", "leg2", day))
	require.ErrorIs(t, err, apperrors.ErrInvalidState)

	stored, err := transfers.FindTransferByID(ctx, "tr-1")
	require.NoError(t, err)
	assert.Equal(t, "corr-1", stored.CorrelationID)

	// Exactly one leg pair made it into the ledger.
	all, err := ledger.ListTransactions(ctx, portsrepo.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPostTransfer_UnknownTransfer(t *testing.T) {
	transfers := &transferRepository{store: NewStore()}
	ctx := context.Background()
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	ghost := domain.InternalTransfer{TransferID: "tr-missing", Status: domain.TransferPosted}
	err := transfers.PostTransfer(ctx, ghost, transferLegs("corr-x", "leg", day))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
