package services

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
	"github.com/dealerdesk/backend/internal/dto"
)

// LedgerReaderSvc defines read operations for the transaction ledger
type LedgerReaderSvc interface {
	// GetTransactionByID retrieves a single ledger entry.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns entries matching the filter, newest posting
	// date first, stable across identical calls.
	ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error)
}

// LedgerWriterSvc defines write operations for the transaction ledger
type LedgerWriterSvc interface {
	// AppendEntry records a new manual journal entry.
	AppendEntry(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// VoidEntry removes an entry from the ledger.
	VoidEntry(ctx context.Context, transactionID string, userID string) error
}

// LedgerExporterSvc produces the tabular export snapshot of a filtered view
type LedgerExporterSvc interface {
	// ExportTransactionsCSV renders the filtered ledger view as CSV bytes,
	// reproducible byte-for-byte from the same store state.
	ExportTransactionsCSV(ctx context.Context, filter portsrepo.TransactionFilter) ([]byte, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	LedgerExporterSvc
}
