package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the collection state of a receivable.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "PENDING"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

// Invoice is a receivable owed to the dealership by a customer.
// Status moves one way: Pending/Overdue -> Paid. Overdue is set at creation
// and is not recomputed from DueDate afterwards, so a Pending invoice past
// its due date stays Pending until someone marks it.
type Invoice struct {
	InvoiceID    string          `json:"invoiceID"`
	CustomerName string          `json:"customerName"`
	Date         time.Time       `json:"date"`
	DueDate      time.Time       `json:"dueDate"`
	Amount       decimal.Decimal `json:"amount"`
	Status       InvoiceStatus   `json:"status"`
	LocationID   string          `json:"locationID"` // FK -> Location.LocationID
	AuditFields
}
