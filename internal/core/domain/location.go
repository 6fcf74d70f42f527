package domain

// Location is a dealership branch. It acts purely as a partition key for
// financial data; branch aggregates are computed by filtering transactions
// and invoices by LocationID.
type Location struct {
	LocationID string `json:"locationID"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
