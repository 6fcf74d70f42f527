package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository facade over one pgx pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		TransferRepo: newPgxTransferRepository(dbPool),
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		LocationRepo: newPgxLocationRepository(dbPool),
		VehicleRepo:  newPgxVehicleRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
