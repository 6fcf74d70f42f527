package dto

import (
	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportScopeParams selects the branch scope for a report.
type ReportScopeParams struct {
	Branch string `form:"branch,default=all"`
}

// FinancialSummaryResponse is the income/expense/profit report.
type FinancialSummaryResponse struct {
	Branch  string          `json:"branch"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// AssetValuationResponse is the asset account balance total.
type AssetValuationResponse struct {
	TotalAssetValue decimal.Decimal `json:"totalAssetValue"`
}

// ReceivablesStatsResponse is the invoice book summary.
type ReceivablesStatsResponse struct {
	Branch               string          `json:"branch"`
	Total                decimal.Decimal `json:"total"`
	Outstanding          decimal.Decimal `json:"outstanding"`
	Overdue              decimal.Decimal `json:"overdue"`
	CollectionEfficiency decimal.Decimal `json:"collectionEfficiency"`
}

// VehicleCostAnalysisResponse lists per-vehicle accumulated cost and margin.
type VehicleCostAnalysisResponse struct {
	Branch   string                  `json:"branch"`
	Vehicles []domain.VehicleCostRow `json:"vehicles"`
}

// MonthlyBreakdownResponse lists income/expense per posting period.
type MonthlyBreakdownResponse struct {
	Branch  string                 `json:"branch"`
	Periods []domain.PeriodSummary `json:"periods"`
}
