package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

type ledgerRepository struct {
	store *Store
}

var _ portsrepo.LedgerRepositoryFacade = (*ledgerRepository)(nil)

func (r *ledgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendTransactionLocked(txn)
}

// appendTransactionLocked inserts an entry; the caller must hold the write lock.
func (s *Store) appendTransactionLocked(txn domain.Transaction) error {
	if _, exists := s.txnIdx[txn.TransactionID]; exists {
		return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
	}
	s.txnIdx[txn.TransactionID] = len(s.transactions)
	s.transactions = append(s.transactions, txn)
	return nil
}

// DeleteTransaction implements the void operation. Voiding is a hard delete:
// the entry disappears from the ledger rather than being offset by a
// reversal, which sits uneasily with the audit-trail framing of this module
// but is the contract as specified.
func (r *ledgerRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.txnIdx[transactionID]
	if !exists {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	s.transactions = append(s.transactions[:idx], s.transactions[idx+1:]...)
	delete(s.txnIdx, transactionID)
	for i := idx; i < len(s.transactions); i++ {
		s.txnIdx[s.transactions[i].TransactionID] = i
	}
	return nil
}

func (r *ledgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.txnIdx[transactionID]
	if !exists {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	txn := s.transactions[idx]
	return &txn, nil
}

func (r *ledgerRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	s := r.store
	s.mu.RLock()

	matched := make([]domain.Transaction, 0, len(s.transactions))
	for _, txn := range s.transactions {
		if matchesFilter(&txn, filter) {
			matched = append(matched, txn)
		}
	}
	s.mu.RUnlock()

	// Newest posting date first. SliceStable keeps insertion order for
	// entries sharing a posting date, so identical queries over identical
	// state always return identical output.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PostingDate.After(matched[j].PostingDate)
	})

	return paginate(matched, filter.Limit, filter.Offset), nil
}

func (r *ledgerRepository) ListTransactionsByReferenceID(ctx context.Context, scope domain.BranchScope, referenceID string) ([]domain.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Transaction, 0)
	for _, txn := range s.transactions {
		if txn.ReferenceID == referenceID && scope.Matches(txn.LocationID) {
			matched = append(matched, txn)
		}
	}
	return matched, nil
}

func matchesFilter(txn *domain.Transaction, filter portsrepo.TransactionFilter) bool {
	if !filter.Scope.Matches(txn.LocationID) {
		return false
	}
	if filter.Type != nil && txn.Type != *filter.Type {
		return false
	}
	if filter.Category != nil && txn.Category != *filter.Category {
		return false
	}
	if filter.PeriodID != "" && txn.PeriodID != filter.PeriodID {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(txn.Description), needle) &&
			!strings.Contains(strings.ToLower(txn.AccountCode), needle) &&
			!strings.Contains(strings.ToLower(txn.TransactionID), needle) {
			return false
		}
	}
	return true
}
