package memory

import (
	"context"
	"fmt"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

type transferRepository struct {
	store *Store
}

var _ portsrepo.TransferRepositoryFacade = (*transferRepository)(nil)

func (r *transferRepository) SaveTransfer(ctx context.Context, transfer domain.InternalTransfer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.transferIdx[transfer.TransferID]; exists {
		return fmt.Errorf("%w: transfer with ID %s already exists", apperrors.ErrDuplicate, transfer.TransferID)
	}
	s.transferIdx[transfer.TransferID] = len(s.transfers)
	s.transfers = append(s.transfers, transfer)
	return nil
}

// PostTransfer appends both ledger legs and flips the transfer status under
// one write lock. If either leg collides with an existing entry nothing is
// written at all, preserving the all-or-nothing posting guarantee.
func (r *transferRepository) PostTransfer(ctx context.Context, transfer domain.InternalTransfer, legs []domain.Transaction) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.transferIdx[transfer.TransferID]
	if !exists {
		return fmt.Errorf("%w: transfer %s", apperrors.ErrNotFound, transfer.TransferID)
	}
	// Re-check under the write lock: two concurrent posts may both have seen
	// Pending before either acquired it. Only the first one wins.
	if s.transfers[idx].Status != domain.TransferPending {
		return fmt.Errorf("%w: transfer %s is already %s", apperrors.ErrInvalidState, transfer.TransferID, s.transfers[idx].Status)
	}
	for _, leg := range legs {
		if _, exists := s.txnIdx[leg.TransactionID]; exists {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, leg.TransactionID)
		}
	}
	for _, leg := range legs {
		// Collisions were ruled out above; this cannot fail now.
		_ = s.appendTransactionLocked(leg)
	}
	s.transfers[idx] = transfer
	return nil
}

func (r *transferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.InternalTransfer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.transferIdx[transferID]
	if !exists {
		return nil, fmt.Errorf("%w: transfer %s", apperrors.ErrNotFound, transferID)
	}
	transfer := s.transfers[idx]
	return &transfer, nil
}

func (r *transferRepository) ListTransfers(ctx context.Context, limit, offset int) ([]domain.InternalTransfer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.transfers, limit, offset), nil
}
