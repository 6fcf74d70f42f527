package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus indicates the state of an internal transfer.
type TransferStatus string

const (
	TransferPending TransferStatus = "PENDING"
	TransferPosted  TransferStatus = "POSTED"
)

// InternalTransfer moves money between two chart-of-accounts entries.
// Posting a transfer appends exactly one matched pair of ledger entries
// (an Expense leg on the source account and an Income leg on the
// destination account) carrying equal amounts and a shared CorrelationID.
// The state machine is one-way: Pending -> Posted, no reversal.
type InternalTransfer struct {
	TransferID             string          `json:"transferID"`
	Date                   time.Time       `json:"date"`
	SourceAccountCode      string          `json:"sourceAccountCode"`
	DestinationAccountCode string          `json:"destinationAccountCode"`
	Amount                 decimal.Decimal `json:"amount"`
	CurrencyCode           string          `json:"currencyCode"`
	Reference              string          `json:"reference"` // Free text, optional
	Status                 TransferStatus  `json:"status"`
	CorrelationID          string          `json:"correlationID,omitempty"` // Set when posted
	AuditFields
}
