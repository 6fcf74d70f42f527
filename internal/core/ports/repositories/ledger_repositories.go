package repositories

import (
	"context"

	"github.com/dealerdesk/backend/internal/core/domain"
)

// TransactionFilter is the conjunction of optional predicates a ledger query
// can apply. Zero values mean "no restriction" for their predicate.
type TransactionFilter struct {
	Scope    domain.BranchScope
	Search   string // Case-insensitive match against description, account code, or entry ID
	Type     *domain.EntryType
	Category *domain.EntryCategory
	PeriodID string
	Limit    int // 0 = no limit
	Offset   int
}

// LedgerReader defines read operations for ledger entries.
type LedgerReader interface {
	// FindTransactionByID retrieves a single ledger entry.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns entries matching the filter, ordered by
	// posting date descending. Entries sharing a posting date keep their
	// insertion order, so repeated queries over unchanged state return
	// byte-identical results.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// ListTransactionsByReferenceID returns every entry attributed to a
	// vehicle or other referenced asset, within the branch scope.
	ListTransactionsByReferenceID(ctx context.Context, scope domain.BranchScope, referenceID string) ([]domain.Transaction, error)
}

// LedgerWriter defines write operations for ledger entries.
type LedgerWriter interface {
	// SaveTransaction appends a new immutable entry. Returns
	// apperrors.ErrDuplicate when the transaction ID collides.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes the entry with the given ID (a void).
	// Returns apperrors.ErrNotFound when no such entry exists.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
