package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a ledger entry is money in or money out.
type EntryType string

const (
	EntryIncome  EntryType = "INCOME"
	EntryExpense EntryType = "EXPENSE"
)

// EntryCategory is the business category of a ledger entry.
type EntryCategory string

const (
	CategoryVehicleSale     EntryCategory = "VEHICLE_SALE"
	CategoryVehiclePurchase EntryCategory = "VEHICLE_PURCHASE"
	CategoryService         EntryCategory = "SERVICE"
	CategoryParts           EntryCategory = "PARTS"
	CategoryPayroll         EntryCategory = "PAYROLL"
	CategoryRent            EntryCategory = "RENT"
	CategoryUtilities       EntryCategory = "UTILITIES"
	CategoryMarketing       EntryCategory = "MARKETING"
	CategoryOther           EntryCategory = "OTHER"

	// CategoryTransfer is reserved for the legs created by posting an
	// internal transfer. Entries in this category are excluded from
	// income/expense totals so transfers never double-count.
	CategoryTransfer EntryCategory = "TRANSFER"
)

// ValidEntryCategories lists every accepted entry category.
var ValidEntryCategories = []EntryCategory{
	CategoryVehicleSale, CategoryVehiclePurchase, CategoryService,
	CategoryParts, CategoryPayroll, CategoryRent, CategoryUtilities,
	CategoryMarketing, CategoryOther, CategoryTransfer,
}

// IsValid reports whether c is a known category.
func (c EntryCategory) IsValid() bool {
	for _, v := range ValidEntryCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Transaction is a single immutable ledger entry. Entries are never updated
// in place; voiding removes them from the ledger entirely.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	PostingDate     time.Time       `json:"postingDate"`     // Accounting-effective date
	SystemEntryDate time.Time       `json:"systemEntryDate"` // Date the record was created
	InvoiceDate     *time.Time      `json:"invoiceDate,omitempty"`
	Type            EntryType       `json:"type"`
	Category        EntryCategory   `json:"category"`
	Amount          decimal.Decimal `json:"amount"` // Non-negative
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	Description     string          `json:"description"`
	AccountCode     string          `json:"accountCode"` // FK -> Account.Code
	LocationID      string          `json:"locationID"`  // FK -> Location.LocationID
	PeriodID        string          `json:"periodID"`    // Derived year-month of PostingDate
	ReferenceID     string          `json:"referenceID"` // Optional FK -> Vehicle.VehicleID
	CorrelationID   string          `json:"correlationID,omitempty"`
	AuditFields
}

// PeriodIDFor derives the reporting period for a posting date.
// Periods are year-month, so "2026-08-14" belongs to period "2026-08".
func PeriodIDFor(postingDate time.Time) string {
	return postingDate.Format("2006-01")
}

// IsLateEntry reports whether the entry was recorded after its accounting
// date, which audit reviews treat as a late entry.
func (t *Transaction) IsLateEntry() bool {
	system := t.SystemEntryDate.Truncate(24 * time.Hour)
	posting := t.PostingDate.Truncate(24 * time.Hour)
	return system.After(posting)
}
