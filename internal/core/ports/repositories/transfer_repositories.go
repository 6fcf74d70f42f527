package repositories

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
)

// TransferReader defines read operations for internal transfers.
type TransferReader interface {
	FindTransferByID(ctx context.Context, transferID string) (*domain.InternalTransfer, error)
	ListTransfers(ctx context.Context, limit, offset int) ([]domain.InternalTransfer, error)
}

// TransferWriter defines write operations for internal transfers.
type TransferWriter interface {
	// SaveTransfer persists a new pending transfer.
	SaveTransfer(ctx context.Context, transfer domain.InternalTransfer) error

	// PostTransfer atomically appends both ledger legs and flips the
	// transfer to Posted. Either everything is visible afterwards or
	// nothing is; no partially-posted state can ever be observed.
	PostTransfer(ctx context.Context, transfer domain.InternalTransfer, legs []domain.Transaction) error
}

// TransferRepositoryFacade combines all transfer repository interfaces.
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
