package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
	"github.com/dealerdesk/backend/internal/core/services"
	"github.com/dealerdesk/backend/internal/repositories/memory"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	repos   portsrepo.RepositoryProvider
	service portssvc.ReportingSvcFacade
}

func (s *ReportingServiceTestSuite) SetupTest() {
	store := memory.NewStore()
	s.repos = memory.NewRepositoryProvider(store)
	s.service = services.NewReportingService(s.repos.LedgerRepo, s.repos.AccountRepo, s.repos.InvoiceRepo, s.repos.VehicleRepo)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) saveTxn(id string, entryType domain.EntryType, category domain.EntryCategory, amount int64, locationID, referenceID, periodID string) {
	posting, _ := time.ParseInLocation("2006-01", periodID, time.UTC)
	s.Require().NoError(s.repos.LedgerRepo.SaveTransaction(context.Background(), domain.Transaction{
		TransactionID: id,
		PostingDate:   posting,
		Type:          entryType,
		Category:      category,
		Amount:        decimal.NewFromInt(amount),
		LocationID:    locationID,
		ReferenceID:   referenceID,
		PeriodID:      periodID,
	}))
}

func (s *ReportingServiceTestSuite) TestFinancialSummary_ExcludesTransferLegs() {
	ctx := context.Background()
	s.saveTxn("t1", domain.EntryIncome, domain.CategoryVehicleSale, 1000, "loc-1", "", "2026-08")
	s.saveTxn("t2", domain.EntryExpense, domain.CategoryRent, 400, "loc-1", "", "2026-08")
	// A posted transfer contributes one leg of each type; neither may count.
	s.saveTxn("t3", domain.EntryExpense, domain.CategoryTransfer, 500, "", "", "2026-08")
	s.saveTxn("t4", domain.EntryIncome, domain.CategoryTransfer, 500, "", "", "2026-08")

	summary, err := s.service.FinancialSummary(ctx, domain.ScopeAllBranches)

	s.Require().NoError(err)
	s.True(summary.Income.Equal(decimal.NewFromInt(1000)), "income: %s", summary.Income)
	s.True(summary.Expense.Equal(decimal.NewFromInt(400)), "expense: %s", summary.Expense)
	s.True(summary.Profit.Equal(decimal.NewFromInt(600)), "profit: %s", summary.Profit)
}

func (s *ReportingServiceTestSuite) TestFinancialSummary_BranchScope() {
	ctx := context.Background()
	s.saveTxn("t1", domain.EntryIncome, domain.CategoryService, 300, "loc-1", "", "2026-08")
	s.saveTxn("t2", domain.EntryIncome, domain.CategoryService, 700, "loc-2", "", "2026-08")

	summary, err := s.service.FinancialSummary(ctx, domain.BranchScope("loc-2"))

	s.Require().NoError(err)
	s.True(summary.Income.Equal(decimal.NewFromInt(700)))
}

func (s *ReportingServiceTestSuite) TestAssetValuation_SumsAssetBalancesOnly() {
	ctx := context.Background()
	save := func(code string, accountType domain.AccountType, balance int64) {
		s.Require().NoError(s.repos.AccountRepo.SaveAccount(ctx, domain.Account{
			Code:        code,
			AccountType: accountType,
			Balance:     decimal.NewFromInt(balance),
			IsActive:    true,
		}))
	}
	save("A100", domain.Asset, 5000)
	save("A200", domain.Asset, 1500)
	save("L100", domain.Liability, 9999)
	save("I100", domain.Revenue, 1234)

	total, err := s.service.AssetValuation(ctx)

	s.Require().NoError(err)
	s.True(total.Equal(decimal.NewFromInt(6500)), "valuation: %s", total)
}

func (s *ReportingServiceTestSuite) TestReceivablesStats() {
	ctx := context.Background()
	save := func(id string, amount int64, status domain.InvoiceStatus) {
		s.Require().NoError(s.repos.InvoiceRepo.SaveInvoice(ctx, domain.Invoice{
			InvoiceID:  id,
			Amount:     decimal.NewFromInt(amount),
			Status:     status,
			LocationID: "loc-1",
		}))
	}
	save("i1", 600, domain.InvoicePaid)
	save("i2", 300, domain.InvoicePending)
	save("i3", 100, domain.InvoiceOverdue)

	stats, err := s.service.ReceivablesStats(ctx, domain.ScopeAllBranches)

	s.Require().NoError(err)
	s.True(stats.Total.Equal(decimal.NewFromInt(1000)))
	s.True(stats.Outstanding.Equal(decimal.NewFromInt(400)))
	s.True(stats.Overdue.Equal(decimal.NewFromInt(100)))
	s.True(stats.CollectionEfficiency.Equal(decimal.NewFromInt(60)), "efficiency: %s", stats.CollectionEfficiency)
}

func (s *ReportingServiceTestSuite) TestReceivablesStats_EmptyBookIsFullyCollected() {
	stats, err := s.service.ReceivablesStats(context.Background(), domain.ScopeAllBranches)

	s.Require().NoError(err)
	s.True(stats.Total.IsZero())
	s.True(stats.CollectionEfficiency.Equal(decimal.NewFromInt(100)))
}

func (s *ReportingServiceTestSuite) TestVehicleCostAnalysis_ProfitOnlyWhenSold() {
	ctx := context.Background()
	s.Require().NoError(s.repos.VehicleRepo.SaveVehicle(ctx, domain.Vehicle{
		VehicleID:  "v1",
		VIN:        "VIN001",
		Status:     domain.VehicleSold,
		Price:      decimal.NewFromInt(12000),
		LocationID: "loc-1",
	}))
	s.Require().NoError(s.repos.VehicleRepo.SaveVehicle(ctx, domain.Vehicle{
		VehicleID:  "v2",
		VIN:        "VIN002",
		Status:     domain.VehicleInStock,
		Price:      decimal.NewFromInt(8000),
		LocationID: "loc-1",
	}))
	s.saveTxn("t1", domain.EntryExpense, domain.CategoryVehiclePurchase, 9000, "loc-1", "v1", "2026-07")
	s.saveTxn("t2", domain.EntryExpense, domain.CategoryService, 500, "loc-1", "v1", "2026-08")
	s.saveTxn("t3", domain.EntryExpense, domain.CategoryService, 200, "loc-1", "v2", "2026-08")

	rows, err := s.service.VehicleCostAnalysis(ctx, domain.ScopeAllBranches)

	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	byID := map[string]domain.VehicleCostRow{}
	for _, row := range rows {
		byID[row.VehicleID] = row
	}

	sold := byID["v1"]
	s.True(sold.TotalCost.Equal(decimal.NewFromInt(9500)))
	s.Require().NotNil(sold.Profit)
	s.True(sold.Profit.Equal(decimal.NewFromInt(2500)), "profit: %s", sold.Profit)

	inStock := byID["v2"]
	s.True(inStock.TotalCost.Equal(decimal.NewFromInt(200)))
	s.Nil(inStock.Profit)
}

func (s *ReportingServiceTestSuite) TestMonthlyBreakdown_GroupsByPeriod() {
	ctx := context.Background()
	s.saveTxn("t1", domain.EntryIncome, domain.CategoryService, 100, "loc-1", "", "2026-07")
	s.saveTxn("t2", domain.EntryIncome, domain.CategoryService, 250, "loc-1", "", "2026-08")
	s.saveTxn("t3", domain.EntryExpense, domain.CategoryRent, 80, "loc-1", "", "2026-08")
	s.saveTxn("t4", domain.EntryIncome, domain.CategoryTransfer, 999, "", "", "2026-08")

	periods, err := s.service.MonthlyBreakdown(ctx, domain.ScopeAllBranches)

	s.Require().NoError(err)
	s.Require().Len(periods, 2)
	s.Equal("2026-07", periods[0].PeriodID)
	s.Equal("2026-08", periods[1].PeriodID)
	s.True(periods[1].Income.Equal(decimal.NewFromInt(250)))
	s.True(periods[1].Expense.Equal(decimal.NewFromInt(80)))
}
