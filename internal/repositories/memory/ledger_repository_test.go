package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedgerRepo() *ledgerRepository {
	return &ledgerRepository{store: NewStore()}
}

func entry(id, locationID string, postingDate time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID:   id,
		PostingDate:     postingDate,
		SystemEntryDate: postingDate,
		Type:            domain.EntryIncome,
		Category:        domain.CategoryVehicleSale,
		Amount:          decimal.NewFromInt(100),
		Description:     "entry " + id,
		AccountCode:     "A100",
		LocationID:      locationID,
		PeriodID:        domain.PeriodIDFor(postingDate),
	}
}

func TestSaveTransaction_DuplicateID(t *testing.T) {
	repo := newLedgerRepo()
	ctx := context.Background()
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveTransaction(ctx, entry("t1", "loc-1", day)))
	err := repo.SaveTransaction(ctx, entry("t1", "loc-1", day))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestDeleteTransaction_RemovesExactlyOne(t *testing.T) {
	repo := newLedgerRepo()
	ctx := context.Background()
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.SaveTransaction(ctx, entry(fmt.Sprintf("t%d", i), "loc-1", day)))
	}

	require.NoError(t, repo.DeleteTransaction(ctx, "t3"))

	remaining, err := repo.ListTransactions(ctx, portsrepo.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 4)

	// Same posting date throughout: relative insertion order must survive.
	ids := make([]string, len(remaining))
	for i, txn := range remaining {
		ids[i] = txn.TransactionID
	}
	assert.Equal(t, []string{"t1", "t2", "t4", "t5"}, ids)

	_, err = repo.FindTransactionByID(ctx, "t3")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Voiding the same entry again reports not found.
	assert.ErrorIs(t, repo.DeleteTransaction(ctx, "t3"), apperrors.ErrNotFound)
}

func TestListTransactions_BranchFilter(t *testing.T) {
	repo := newLedgerRepo()
	ctx := context.Background()
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveTransaction(ctx, entry("a", "loc-1", day)))
	require.NoError(t, repo.SaveTransaction(ctx, entry("b", "loc-2", day)))
	require.NoError(t, repo.SaveTransaction(ctx, entry("c", "loc-1", day)))

	scoped, err := repo.ListTransactions(ctx, portsrepo.TransactionFilter{Scope: "loc-1"})
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	for _, txn := range scoped {
		assert.Equal(t, "loc-1", txn.LocationID)
	}

	all, err := repo.ListTransactions(ctx, portsrepo.TransactionFilter{Scope: domain.ScopeAllBranches})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListTransactions_OrderingNewestFirstStable(t *testing.T) {
	repo := newLedgerRepo()
	ctx := context.Background()

	d1 := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveTransaction(ctx, entry("old-1", "loc-1", d1)))
	require.NoError(t, repo.SaveTransaction(ctx, entry("new-1", "loc-1", d2)))
	require.NoError(t, repo.SaveTransaction(ctx, entry("new-2", "loc-1", d2)))
	require.NoError(t, repo.SaveTransaction(ctx, entry("old-2", "loc-1", d1)))

	listed, err := repo.ListTransactions(ctx, portsrepo.TransactionFilter{})
	require.NoError(t, err)

	ids := make([]string, len(listed))
	for i, txn := range listed {
		ids[i] = txn.TransactionID
	}
	assert.Equal(t, []string{"new-1", "new-2", "old-1", "old-2"}, ids)

	// Identical query, identical result.
	again, err := repo.ListTransactions(ctx, portsrepo.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, listed, again)
}

func TestListTransactions_SearchAndTypeFilters(t *testing.T) {
	repo := newLedgerRepo()
	ctx := context.Background()
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	payroll := entry("pay-1", "loc-1", day)
	payroll.Type = domain.EntryExpense
	payroll.Category = domain.CategoryPayroll
	payroll.Description = "August payroll run"
	require.NoError(t, repo.SaveTransaction(ctx, payroll))

	sale := entry("sale-1", "loc-1", day)
	sale.Description = "Sold 2024 Outback"
	require.NoError(t, repo.SaveTransaction(ctx, sale))

	// Case-insensitive free text against description.
	found, err := repo.ListTransactions(ctx, portsrepo.TransactionFilter{Search: "PAYROLL"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "pay-1", found[0].TransactionID)

	// Substring match against entry ID.
	found, err = repo.ListTransactions(ctx, portsrepo.TransactionFilter{Search: "sale-"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	expense := domain.EntryExpense
	found, err = repo.ListTransactions(ctx, portsrepo.TransactionFilter{Type: &expense})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "pay-1", found[0].TransactionID)
}

func TestListTransactions_NegativeOffsetTreatedAsZero(t *testing.T) {
	repo := newLedgerRepo()
	ctx := context.Background()
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveTransaction(ctx, entry("t1", "loc-1", day)))
	require.NoError(t, repo.SaveTransaction(ctx, entry("t2", "loc-1", day)))

	listed, err := repo.ListTransactions(ctx, portsrepo.TransactionFilter{Offset: -1})
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	// Offset past the end yields an empty page, not an error.
	listed, err = repo.ListTransactions(ctx, portsrepo.TransactionFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, listed)
}
