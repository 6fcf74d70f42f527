package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

type PgxTransferRepository struct {
	BaseRepository
}

func newPgxTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

const transferColumns = `transfer_id, date, source_account_code, destination_account_code, amount, currency_code, reference, status, correlation_id, created_at, created_by, last_updated_at, last_updated_by`

func scanTransfer(row pgx.Row) (domain.InternalTransfer, error) {
	var t domain.InternalTransfer
	err := row.Scan(
		&t.TransferID, &t.Date, &t.SourceAccountCode, &t.DestinationAccountCode,
		&t.Amount, &t.CurrencyCode, &t.Reference, &t.Status, &t.CorrelationID,
		&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
	)
	return t, err
}

func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.InternalTransfer) error {
	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		transfer.TransferID, transfer.Date, transfer.SourceAccountCode, transfer.DestinationAccountCode,
		transfer.Amount, transfer.CurrencyCode, transfer.Reference, transfer.Status, transfer.CorrelationID,
		transfer.CreatedAt, transfer.CreatedBy, transfer.LastUpdatedAt, transfer.LastUpdatedBy,
	)
	if err := translateError(err); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("transfer %s: %w", transfer.TransferID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save transfer %s: %w", transfer.TransferID, err)
	}
	return nil
}

func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.InternalTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE transfer_id = $1;`
	transfer, err := scanTransfer(r.Pool.QueryRow(ctx, query, transferID))
	if err := translateError(err); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transfer %s: %w", transferID, err)
	}
	return &transfer, nil
}

func (r *PgxTransferRepository) ListTransfers(ctx context.Context, limit, offset int) ([]domain.InternalTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers ORDER BY created_at, transfer_id OFFSET $1`
	args := []any{offset}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	var transfers []domain.InternalTransfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}

// PostTransfer inserts both ledger legs and flips the transfer to Posted
// inside one database transaction, so a failure anywhere leaves neither leg
// nor the status change behind.
func (r *PgxTransferRepository) PostTransfer(ctx context.Context, transfer domain.InternalTransfer, legs []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := r.postTransferInTx(ctx, tx, transfer, legs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transfer posting: %w", err)
	}
	return nil
}

func (r *PgxTransferRepository) postTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.InternalTransfer, legs []domain.Transaction) error {
	// Flip the status first, guarded on Pending. Concurrent posts serialize
	// on the row lock; whichever loses matches zero rows and posts nothing.
	query := `
		UPDATE transfers
		SET status = $2, correlation_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transfer_id = $1 AND status = $6;
	`
	tag, err := tx.Exec(ctx, query,
		transfer.TransferID, transfer.Status, transfer.CorrelationID,
		transfer.LastUpdatedAt, transfer.LastUpdatedBy, domain.TransferPending,
	)
	if err != nil {
		return fmt.Errorf("failed to update transfer %s: %w", transfer.TransferID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transfer %s is not pending: %w", transfer.TransferID, apperrors.ErrInvalidState)
	}

	for _, leg := range legs {
		if _, err := tx.Exec(ctx, insertTransactionSQL(), transactionArgs(leg)...); err != nil {
			return fmt.Errorf("failed to insert transfer leg %s: %w", leg.TransactionID, translateError(err))
		}
	}
	return nil
}
