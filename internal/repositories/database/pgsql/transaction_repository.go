package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	"github.com/moedinha/moedinha_backend/internal/models"
	"github.com/moedinha/moedinha_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository over the transaction ledger.
func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionReader = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	transaction_id, org_id, account_id, category_id, bucket_id, type, status, amount,
	description, txn_date, metadata, deleted_at, created_at, created_by`

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

func transactionArgs(m models.Transaction) []any {
	return []any{
		m.TransactionID, m.OrgID, m.AccountID, m.CategoryID, m.BucketID, m.Type, m.Status, m.Amount,
		m.Description, m.TxnDate, m.Metadata, m.DeletedAt, m.CreatedAt, m.CreatedBy,
	}
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString("SELECT" + transactionColumns + "\nFROM transactions\nWHERE deleted_at IS NULL AND org_id = $1 AND txn_date >= $2 AND txn_date <= $3")
	args := []any{filter.OrgID, filter.From, filter.To}

	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		sb.WriteString(" AND account_id = $" + strconv.Itoa(len(args)))
	}
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		args = append(args, types)
		sb.WriteString(" AND type = ANY($" + strconv.Itoa(len(args)) + ")")
	}
	sb.WriteString("\nORDER BY txn_date ASC, created_at ASC, transaction_id ASC;")

	rows, err := queryAll[models.Transaction](ctx, r.Pool, "transactions", sb.String(), args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(rows), nil
}

func (r *PgxTransactionRepository) ListTransactionMonths(ctx context.Context, orgID, accountID string) ([]domain.InvoiceRef, error) {
	query := `
		SELECT DISTINCT
			EXTRACT(YEAR FROM txn_date)::int AS year,
			EXTRACT(MONTH FROM txn_date)::int AS month
		FROM transactions
		WHERE deleted_at IS NULL AND org_id = $1 AND account_id = $2
		ORDER BY year DESC, month DESC;
	`
	rows, err := r.Pool.Query(ctx, query, orgID, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction months", err)
	}
	refs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InvoiceRef, error) {
		var ref domain.InvoiceRef
		err := row.Scan(&ref.Year, &ref.Month)
		return ref, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect transaction months", err)
	}
	return refs, nil
}
