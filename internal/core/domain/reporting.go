package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialSummary aggregates income and expense over a branch scope.
// Transfer-category legs are excluded from both totals.
type FinancialSummary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// ReceivablesStats summarizes the invoice book.
// CollectionEfficiency is (total - outstanding) / total * 100 and reports
// 100 when there are no invoices at all.
type ReceivablesStats struct {
	Total                decimal.Decimal `json:"total"`
	Outstanding          decimal.Decimal `json:"outstanding"`
	Overdue              decimal.Decimal `json:"overdue"`
	CollectionEfficiency decimal.Decimal `json:"collectionEfficiency"`
}

// VehicleCostRow reports accumulated ledger cost for one inventory asset.
// Profit is nil until the vehicle is sold; an unrealized margin is not a
// dollar figure.
type VehicleCostRow struct {
	VehicleID string           `json:"vehicleID"`
	VIN       string           `json:"vin"`
	Status    VehicleStatus    `json:"status"`
	Price     decimal.Decimal  `json:"price"`
	TotalCost decimal.Decimal  `json:"totalCost"`
	Profit    *decimal.Decimal `json:"profit,omitempty"`
}

// PeriodSummary is one row of the month-by-month income/expense breakdown.
type PeriodSummary struct {
	PeriodID string          `json:"periodID"` // Year-month, e.g. "2026-08"
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
}
