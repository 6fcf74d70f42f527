// Package seed loads a small demo dataset into an empty store so a fresh
// instance is explorable without manual setup.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	"github.com/dealerdesk/backend/internal/utils"
)

const (
	systemUserID = "system"

	// DemoAdminUsername and DemoAdminPassword are the credentials seeded for
	// the demo admin account.
	DemoAdminUsername = "admin"
	DemoAdminPassword = "admin123"
)

// LoadDemoData populates the repositories with two branches, a starter chart
// of accounts, a demo admin user, and a few inventory and ledger records.
// It assumes an empty store; duplicate errors mean it ran twice.
func LoadDemoData(ctx context.Context, repos portsrepo.RepositoryProvider) error {
	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     systemUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: systemUserID,
	}

	if err := repos.CurrencyRepo.SaveCurrency(ctx, domain.Currency{
		CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2, AuditFields: audit,
	}); err != nil {
		return fmt.Errorf("seed currency: %w", err)
	}

	locations := []domain.Location{
		{LocationID: "loc-downtown", Name: "Downtown Showroom", Address: "100 Main St", City: "Springfield", Phone: "555-0100", IsActive: true, AuditFields: audit},
		{LocationID: "loc-eastside", Name: "Eastside Lot", Address: "42 Commerce Ave", City: "Springfield", Phone: "555-0142", IsActive: true, AuditFields: audit},
	}
	for _, l := range locations {
		if err := repos.LocationRepo.SaveLocation(ctx, l); err != nil {
			return fmt.Errorf("seed location %s: %w", l.LocationID, err)
		}
	}

	accounts := []domain.Account{
		{Code: "A100", Name: "Cash", AccountType: domain.Asset, Balance: decimal.NewFromInt(25000)},
		{Code: "A110", Name: "Operating Bank", AccountType: domain.Asset, Balance: decimal.NewFromInt(120000)},
		{Code: "A200", Name: "Payroll Clearing", AccountType: domain.Asset},
		{Code: "L100", Name: "Accounts Payable", AccountType: domain.Liability},
		{Code: "I100", Name: "Vehicle Sales", AccountType: domain.Revenue},
		{Code: "I200", Name: "Service Revenue", AccountType: domain.Revenue},
		{Code: "E100", Name: "Operating Expenses", AccountType: domain.Expense},
		{Code: "E200", Name: "Payroll", AccountType: domain.Expense},
	}
	for _, a := range accounts {
		a.CurrencyCode = "USD"
		a.IsActive = true
		a.AuditFields = audit
		if err := repos.AccountRepo.SaveAccount(ctx, a); err != nil {
			return fmt.Errorf("seed account %s: %w", a.Code, err)
		}
	}

	hash, err := utils.HashPassword(DemoAdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin password: %w", err)
	}
	if err := repos.UserRepo.SaveUser(ctx, domain.User{
		UserID: "usr-admin", Username: DemoAdminUsername, PasswordHash: hash,
		Name: "Demo Admin", Role: domain.RoleAdmin, AuditFields: audit,
	}); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	vehicles := []domain.Vehicle{
		{VehicleID: "veh-001", VIN: "1HGCM82633A004352", Make: "Honda", Model: "Accord", ModelYear: 2022, Price: decimal.NewFromInt(21500), Status: domain.VehicleInStock, LocationID: "loc-downtown", AuditFields: audit},
		{VehicleID: "veh-002", VIN: "2T1BURHE5JC970118", Make: "Toyota", Model: "Corolla", ModelYear: 2021, Price: decimal.NewFromInt(17900), Status: domain.VehicleInStock, LocationID: "loc-eastside", AuditFields: audit},
	}
	for _, v := range vehicles {
		if err := repos.VehicleRepo.SaveVehicle(ctx, v); err != nil {
			return fmt.Errorf("seed vehicle %s: %w", v.VehicleID, err)
		}
	}

	if err := repos.InvoiceRepo.SaveInvoice(ctx, domain.Invoice{
		InvoiceID: "inv-001", CustomerName: "Acme Fleet Services",
		Date: now.AddDate(0, 0, -14), DueDate: now.AddDate(0, 0, 16),
		Amount: decimal.NewFromInt(4800), Status: domain.InvoicePending,
		LocationID: "loc-downtown", AuditFields: audit,
	}); err != nil {
		return fmt.Errorf("seed invoice: %w", err)
	}

	entries := []domain.Transaction{
		{
			TransactionID: "txn-seed-001", Type: domain.EntryIncome, Category: domain.CategoryVehicleSale,
			Amount: decimal.NewFromInt(19250), Description: "Sale of 2020 Civic",
			AccountCode: "I100", LocationID: "loc-downtown", ReferenceID: "",
		},
		{
			TransactionID: "txn-seed-002", Type: domain.EntryExpense, Category: domain.CategoryVehiclePurchase,
			Amount: decimal.NewFromInt(20100), Description: "Auction purchase, 2022 Accord",
			AccountCode: "E100", LocationID: "loc-downtown", ReferenceID: "veh-001",
		},
		{
			TransactionID: "txn-seed-003", Type: domain.EntryExpense, Category: domain.CategoryRent,
			Amount: decimal.NewFromInt(3200), Description: "Eastside lot rent",
			AccountCode: "E100", LocationID: "loc-eastside",
		},
	}
	for i, e := range entries {
		e.PostingDate = now.AddDate(0, 0, -10+i)
		e.SystemEntryDate = now
		e.PeriodID = domain.PeriodIDFor(e.PostingDate)
		e.TaxAmount = decimal.Zero
		e.AuditFields = audit
		if err := repos.LedgerRepo.SaveTransaction(ctx, e); err != nil {
			return fmt.Errorf("seed transaction %s: %w", e.TransactionID, err)
		}
	}

	return nil
}
