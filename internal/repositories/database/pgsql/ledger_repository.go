package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const transactionColumns = `transaction_id, posting_date, system_entry_date, invoice_date, type, category, amount, tax_amount, description, account_code, location_id, period_id, reference_id, correlation_id, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.TransactionID, &t.PostingDate, &t.SystemEntryDate, &t.InvoiceDate,
		&t.Type, &t.Category, &t.Amount, &t.TaxAmount, &t.Description,
		&t.AccountCode, &t.LocationID, &t.PeriodID, &t.ReferenceID, &t.CorrelationID,
		&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
	)
	return t, err
}

func insertTransactionSQL() string {
	return `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
}

func transactionArgs(txn domain.Transaction) []any {
	return []any{
		txn.TransactionID, txn.PostingDate, txn.SystemEntryDate, txn.InvoiceDate,
		txn.Type, txn.Category, txn.Amount, txn.TaxAmount, txn.Description,
		txn.AccountCode, txn.LocationID, txn.PeriodID, txn.ReferenceID, txn.CorrelationID,
		txn.CreatedAt, txn.CreatedBy, txn.LastUpdatedAt, txn.LastUpdatedBy,
	}
}

func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	_, err := r.Pool.Exec(ctx, insertTransactionSQL(), transactionArgs(txn)...)
	if err := translateError(err); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

func (r *PgxLedgerRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err := translateError(err); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

// ListTransactions returns entries matching the filter, ordered by posting
// date descending with the insertion sequence breaking ties, so repeated
// queries over unchanged data return identical results.
func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var conditions []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if !filter.Scope.IsAll() {
		conditions = append(conditions, "location_id = "+arg(string(filter.Scope)))
	}
	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		conditions = append(conditions, "(description ILIKE "+p+" OR account_code ILIKE "+p+" OR transaction_id ILIKE "+p+")")
	}
	if filter.Type != nil {
		conditions = append(conditions, "type = "+arg(string(*filter.Type)))
	}
	if filter.Category != nil {
		conditions = append(conditions, "category = "+arg(string(*filter.Category)))
	}
	if filter.PeriodID != "" {
		conditions = append(conditions, "period_id = "+arg(filter.PeriodID))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY posting_date DESC, seq ASC"
	query += " OFFSET " + arg(filter.Offset)
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r *PgxLedgerRepository) ListTransactionsByReferenceID(ctx context.Context, scope domain.BranchScope, referenceID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference_id = $1`
	args := []any{referenceID}
	if !scope.IsAll() {
		query += ` AND location_id = $2`
		args = append(args, string(scope))
	}
	query += ` ORDER BY posting_date DESC, seq ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by reference %s: %w", referenceID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
