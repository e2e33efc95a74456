package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back a finished transaction is a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// querier is satisfied by both the pool and an open transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// queryAll collects every row of the query into T by column name.
func queryAll[T any](ctx context.Context, q querier, what, query string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+what, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect "+what+" rows", err)
	}
	return items, nil
}

// queryOne returns the first row of the query, or apperrors.ErrNotFound.
func queryOne[T any](ctx context.Context, q querier, what, query string, args ...any) (*T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+what, err)
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(what + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to scan "+what, err)
	}
	return &item, nil
}

// translatePgError turns the store errors a caller can act on into readable AppErrors.
func translatePgError(err error, action string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperrors.NewAppError(500, "failed to "+action, err)
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		return apperrors.NewAppError(http.StatusConflict, "failed to "+action+": record already exists", apperrors.ErrDuplicate)
	case "23503": // foreign_key_violation
		return apperrors.NewAppError(http.StatusBadRequest, "failed to "+action+": referenced record does not exist", apperrors.ErrValidation)
	case "42501": // insufficient_privilege
		return apperrors.NewAppError(http.StatusForbidden, "failed to "+action+": permission denied by database policy", apperrors.ErrForbidden)
	case "42883": // undefined_function
		return apperrors.NewAppError(500, "failed to "+action+": database function missing, run the migrations", err)
	case "42P01": // undefined_table
		return apperrors.NewAppError(500, "failed to "+action+": database table missing, run the migrations", err)
	}
	return apperrors.NewAppError(500, "failed to "+action, err)
}
