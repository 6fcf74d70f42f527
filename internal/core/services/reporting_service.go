package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
)

var oneHundred = decimal.NewFromInt(100)

// reportingService derives summary statistics from current store state.
// Nothing is cached; every call recomputes from the underlying records.
type reportingService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerReader
	accountRepo portsrepo.AccountReader
	invoiceRepo portsrepo.InvoiceReader
	vehicleRepo portsrepo.VehicleReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(ledgerRepo portsrepo.LedgerReader, accountRepo portsrepo.AccountReader, invoiceRepo portsrepo.InvoiceReader, vehicleRepo portsrepo.VehicleReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		invoiceRepo: invoiceRepo,
		vehicleRepo: vehicleRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// FinancialSummary sums income and expense over the branch scope. Legs in
// the transfer category move money between accounts without creating or
// consuming any, so they are excluded from both totals.
func (s *reportingService) FinancialSummary(ctx context.Context, scope domain.BranchScope) (*domain.FinancialSummary, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx, portsrepo.TransactionFilter{Scope: scope})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for summary: %w", err)
	}

	income := decimal.Zero
	expense := decimal.Zero
	for i := range txns {
		txn := &txns[i]
		if txn.Category == domain.CategoryTransfer {
			continue
		}
		switch txn.Type {
		case domain.EntryIncome:
			income = income.Add(txn.Amount)
		case domain.EntryExpense:
			expense = expense.Add(txn.Amount)
		}
	}

	return &domain.FinancialSummary{
		Income:  income,
		Expense: expense,
		Profit:  income.Sub(expense),
	}, nil
}

// AssetValuation sums the balances of Asset accounts. The chart of accounts
// is not branch-partitioned, so there is no branch scope to apply here.
func (s *reportingService) AssetValuation(ctx context.Context) (decimal.Decimal, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, 0, 0)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load accounts for valuation: %w", err)
	}

	total := decimal.Zero
	for i := range accounts {
		if accounts[i].AccountType == domain.Asset {
			total = total.Add(accounts[i].Balance)
		}
	}
	return total, nil
}

// ReceivablesStats summarizes the invoice book within the branch scope.
// An empty book reports 100 percent collection efficiency, not zero; with
// nothing owed there is nothing uncollected.
func (s *reportingService) ReceivablesStats(ctx context.Context, scope domain.BranchScope) (*domain.ReceivablesStats, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, scope, nil, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices for stats: %w", err)
	}

	total := decimal.Zero
	outstanding := decimal.Zero
	overdue := decimal.Zero
	for i := range invoices {
		inv := &invoices[i]
		total = total.Add(inv.Amount)
		if inv.Status != domain.InvoicePaid {
			outstanding = outstanding.Add(inv.Amount)
		}
		if inv.Status == domain.InvoiceOverdue {
			overdue = overdue.Add(inv.Amount)
		}
	}

	efficiency := oneHundred
	if total.IsPositive() {
		efficiency = total.Sub(outstanding).Div(total).Mul(oneHundred)
	}

	return &domain.ReceivablesStats{
		Total:                total,
		Outstanding:          outstanding,
		Overdue:              overdue,
		CollectionEfficiency: efficiency,
	}, nil
}

// VehicleCostAnalysis accumulates attributed ledger expense per vehicle.
// Profit is realized only for sold vehicles: sale price minus total cost.
// Unsold vehicles report a nil profit rather than a speculative margin.
func (s *reportingService) VehicleCostAnalysis(ctx context.Context, scope domain.BranchScope) ([]domain.VehicleCostRow, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx, scope, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles for cost analysis: %w", err)
	}

	rows := make([]domain.VehicleCostRow, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		txns, err := s.ledgerRepo.ListTransactionsByReferenceID(ctx, scope, v.VehicleID)
		if err != nil {
			return nil, fmt.Errorf("failed to load entries for vehicle %s: %w", v.VehicleID, err)
		}

		totalCost := decimal.Zero
		for j := range txns {
			if txns[j].Type == domain.EntryExpense {
				totalCost = totalCost.Add(txns[j].Amount)
			}
		}

		row := domain.VehicleCostRow{
			VehicleID: v.VehicleID,
			VIN:       v.VIN,
			Status:    v.Status,
			Price:     v.Price,
			TotalCost: totalCost,
		}
		if v.Status == domain.VehicleSold {
			profit := v.Price.Sub(totalCost)
			row.Profit = &profit
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// MonthlyBreakdown reports income and expense per posting period, oldest
// period first. Transfer legs are excluded, matching FinancialSummary.
func (s *reportingService) MonthlyBreakdown(ctx context.Context, scope domain.BranchScope) ([]domain.PeriodSummary, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx, portsrepo.TransactionFilter{Scope: scope})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for breakdown: %w", err)
	}

	byPeriod := make(map[string]*domain.PeriodSummary)
	for i := range txns {
		txn := &txns[i]
		if txn.Category == domain.CategoryTransfer {
			continue
		}
		summary, ok := byPeriod[txn.PeriodID]
		if !ok {
			summary = &domain.PeriodSummary{
				PeriodID: txn.PeriodID,
				Income:   decimal.Zero,
				Expense:  decimal.Zero,
			}
			byPeriod[txn.PeriodID] = summary
		}
		switch txn.Type {
		case domain.EntryIncome:
			summary.Income = summary.Income.Add(txn.Amount)
		case domain.EntryExpense:
			summary.Expense = summary.Expense.Add(txn.Amount)
		}
	}

	periods := make([]domain.PeriodSummary, 0, len(byPeriod))
	for _, summary := range byPeriod {
		periods = append(periods, *summary)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].PeriodID < periods[j].PeriodID
	})
	return periods, nil
}
