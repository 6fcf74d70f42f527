package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/dealerdesk/backend/internal/core/services"
	"github.com/dealerdesk/backend/internal/dto"
	"github.com/dealerdesk/backend/internal/repositories/memory"
)

// TestBackofficeScenario_PayrollMonth runs a month of back-office activity
// through the real services over one shared memory store: trading entries in
// two branches, a payroll funding transfer between A100 and A200, and a
// receivable collected along the way. The closing reports must reconcile.
func TestBackofficeScenario_PayrollMonth(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)

	ledgerSvc := services.NewLedgerService(repos.LedgerRepo, repos.AccountRepo, repos.LocationRepo)
	transferSvc := services.NewTransferService(repos.TransferRepo, repos.AccountRepo)
	invoiceSvc := services.NewInvoiceService(repos.InvoiceRepo, repos.LocationRepo)
	reportingSvc := services.NewReportingService(repos.LedgerRepo, repos.AccountRepo, repos.InvoiceRepo, repos.VehicleRepo)

	userID := "usr-scenario"

	for _, code := range []string{"A100", "A200"} {
		require.NoError(t, repos.AccountRepo.SaveAccount(ctx, domain.Account{
			Code:         code,
			Name:         code,
			AccountType:  domain.Asset,
			CurrencyCode: "USD",
			IsActive:     true,
			Balance:      decimal.NewFromInt(10000),
		}))
	}
	require.NoError(t, repos.AccountRepo.SaveAccount(ctx, domain.Account{
		Code: "E200", Name: "Payroll", AccountType: domain.Expense, CurrencyCode: "USD", IsActive: true,
	}))
	require.NoError(t, repos.AccountRepo.SaveAccount(ctx, domain.Account{
		Code: "I100", Name: "Vehicle Sales", AccountType: domain.Revenue, CurrencyCode: "USD", IsActive: true,
	}))

	for _, loc := range []string{"loc-downtown", "loc-eastside"} {
		require.NoError(t, repos.LocationRepo.SaveLocation(ctx, domain.Location{
			LocationID: loc, Name: loc, IsActive: true,
		}))
	}

	// Trading activity: a sale downtown, payroll at both branches.
	_, err := ledgerSvc.AppendEntry(ctx, dto.CreateTransactionRequest{
		PostingDate: "2026-08-03",
		Type:        domain.EntryIncome,
		Category:    domain.CategoryVehicleSale,
		Amount:      decimal.NewFromInt(18000),
		Description: "Sale of 2021 Corolla",
		AccountCode: "I100",
		LocationID:  "loc-downtown",
	}, userID)
	require.NoError(t, err)

	_, err = ledgerSvc.AppendEntry(ctx, dto.CreateTransactionRequest{
		PostingDate: "2026-08-28",
		Type:        domain.EntryExpense,
		Category:    domain.CategoryPayroll,
		Amount:      decimal.NewFromInt(6000),
		Description: "August payroll, downtown",
		AccountCode: "E200",
		LocationID:  "loc-downtown",
	}, userID)
	require.NoError(t, err)

	_, err = ledgerSvc.AppendEntry(ctx, dto.CreateTransactionRequest{
		PostingDate: "2026-08-28",
		Type:        domain.EntryExpense,
		Category:    domain.CategoryPayroll,
		Amount:      decimal.NewFromInt(4000),
		Description: "August payroll, eastside",
		AccountCode: "E200",
		LocationID:  "loc-eastside",
	}, userID)
	require.NoError(t, err)

	// Fund the payroll clearing account from cash.
	transfer, err := transferSvc.CreateTransfer(ctx, dto.CreateTransferRequest{
		SourceAccountCode:      "A100",
		DestinationAccountCode: "A200",
		Amount:                 decimal.NewFromInt(10000),
		Reference:              "August payroll funding",
	}, userID)
	require.NoError(t, err)

	posted, err := transferSvc.PostTransfer(ctx, transfer.TransferID, userID)
	require.NoError(t, err)
	require.Equal(t, domain.TransferPosted, posted.Status)

	// Collect a service receivable at the eastside branch.
	invoice, err := invoiceSvc.CreateInvoice(ctx, dto.CreateInvoiceRequest{
		CustomerName: "Acme Fleet Services",
		Date:         "2026-08-10",
		DueDate:      "2026-09-10",
		Amount:       decimal.NewFromInt(2400),
		LocationID:   "loc-eastside",
	}, userID)
	require.NoError(t, err)

	paid, err := invoiceSvc.MarkInvoicePaid(ctx, invoice.InvoiceID, userID)
	require.NoError(t, err)
	require.Equal(t, domain.InvoicePaid, paid.Status)

	// Company-wide summary: the transfer legs move 10000 in and out of the
	// ledger but must not show up as trading income or expense.
	summary, err := reportingSvc.FinancialSummary(ctx, domain.ScopeAllBranches)
	require.NoError(t, err)
	require.True(t, summary.Income.Equal(decimal.NewFromInt(18000)), "income %s", summary.Income)
	require.True(t, summary.Expense.Equal(decimal.NewFromInt(10000)), "expense %s", summary.Expense)
	require.True(t, summary.Profit.Equal(decimal.NewFromInt(8000)), "profit %s", summary.Profit)

	// Branch view sees only its own activity.
	eastside, err := reportingSvc.FinancialSummary(ctx, domain.BranchScope("loc-eastside"))
	require.NoError(t, err)
	require.True(t, eastside.Income.IsZero())
	require.True(t, eastside.Expense.Equal(decimal.NewFromInt(4000)))

	// The invoice book is fully collected.
	recv, err := reportingSvc.ReceivablesStats(ctx, domain.ScopeAllBranches)
	require.NoError(t, err)
	require.True(t, recv.Total.Equal(decimal.NewFromInt(2400)))
	require.True(t, recv.Outstanding.IsZero())
	require.True(t, recv.CollectionEfficiency.Equal(decimal.NewFromInt(100)))

	// Asset balances are admin-maintained display values and unaffected by
	// the month's postings.
	assets, err := reportingSvc.AssetValuation(ctx)
	require.NoError(t, err)
	require.True(t, assets.Equal(decimal.NewFromInt(20000)), "assets %s", assets)
}
