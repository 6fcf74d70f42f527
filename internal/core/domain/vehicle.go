package domain

import "github.com/shopspring/decimal"

// VehicleStatus indicates where a vehicle is in the sales pipeline.
type VehicleStatus string

const (
	VehicleInStock  VehicleStatus = "IN_STOCK"
	VehicleReserved VehicleStatus = "RESERVED"
	VehicleSold     VehicleStatus = "SOLD"
)

// Vehicle is an inventory asset. Ledger entries reference a vehicle through
// Transaction.ReferenceID to attribute reconditioning and acquisition costs.
type Vehicle struct {
	VehicleID  string          `json:"vehicleID"`
	VIN        string          `json:"vin"`
	Make       string          `json:"make"`
	Model      string          `json:"model"`
	ModelYear  int             `json:"modelYear"`
	Price      decimal.Decimal `json:"price"` // Asking price, or sale price once sold
	Status     VehicleStatus   `json:"status"`
	LocationID string          `json:"locationID"` // FK -> Location.LocationID
	AuditFields
}
