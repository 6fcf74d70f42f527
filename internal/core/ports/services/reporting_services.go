package services

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade derives summary statistics from current store state.
// Every method recomputes from scratch on each call; nothing is cached.
type ReportingSvcFacade interface {
	// FinancialSummary sums income and expense over the branch scope,
	// excluding Transfer-category legs from both totals.
	FinancialSummary(ctx context.Context, scope domain.BranchScope) (*domain.FinancialSummary, error)

	// AssetValuation sums the balances of Asset accounts. The chart of
	// accounts is not branch-partitioned, so this ignores branch scope.
	AssetValuation(ctx context.Context) (decimal.Decimal, error)

	// ReceivablesStats summarizes the invoice book within the branch scope.
	ReceivablesStats(ctx context.Context, scope domain.BranchScope) (*domain.ReceivablesStats, error)

	// VehicleCostAnalysis accumulates ledger cost per vehicle and realizes
	// profit only for sold vehicles.
	VehicleCostAnalysis(ctx context.Context, scope domain.BranchScope) ([]domain.VehicleCostRow, error)

	// MonthlyBreakdown reports income and expense per posting period.
	MonthlyBreakdown(ctx context.Context, scope domain.BranchScope) ([]domain.PeriodSummary, error)
}
