package services

import (
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	portssvc "github.com/dealerdesk/backend/internal/core/ports/services"
	"github.com/dealerdesk/backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.CurrencyRepo)
	container.Location = NewLocationService(repos.LocationRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.AccountRepo, repos.LocationRepo)
	container.Transfer = NewTransferService(repos.TransferRepo, repos.AccountRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.LocationRepo)
	container.Vehicle = NewVehicleService(repos.VehicleRepo, repos.LocationRepo)
	container.Reporting = NewReportingService(repos.LedgerRepo, repos.AccountRepo, repos.InvoiceRepo, repos.VehicleRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
