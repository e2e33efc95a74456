package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	"github.com/moedinha/moedinha_backend/internal/models"
	"github.com/moedinha/moedinha_backend/internal/utils/mapping"
)

type PgxRecurringRepository struct {
	BaseRepository
}

// newPgxRecurringRepository creates a new repository for recurring rules and their run log.
func newPgxRecurringRepository(pool *pgxpool.Pool) *PgxRecurringRepository {
	return &PgxRecurringRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RecurringRepositoryFacade = (*PgxRecurringRepository)(nil)

const ruleSelect = `
SELECT
	rule_id, org_id, description, amount, account_id, category_id, bucket_id, frequency,
	day_of_month, day_of_week, start_date, end_date, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM recurring_rules
`

const runColumns = `run_id, rule_id, transaction_id, run_at, success, created_at`

func (r *PgxRecurringRepository) ListRules(ctx context.Context, orgID string, activeOnly bool) ([]domain.RecurringRule, error) {
	filter := `WHERE org_id = $1`
	if activeOnly {
		filter += ` AND is_active`
	}
	rows, err := queryAll[models.RecurringRule](ctx, r.Pool, "recurring rules",
		ruleSelect+filter+` ORDER BY start_date ASC, rule_id ASC;`, orgID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainRecurringRuleSlice(rows), nil
}

func (r *PgxRecurringRepository) FindRuleByID(ctx context.Context, orgID, ruleID string) (*domain.RecurringRule, error) {
	m, err := queryOne[models.RecurringRule](ctx, r.Pool, "recurring rule",
		ruleSelect+`WHERE org_id = $1 AND rule_id = $2;`, orgID, ruleID)
	if err != nil {
		return nil, err
	}
	rule := mapping.ToDomainRecurringRule(*m)
	return &rule, nil
}

func (r *PgxRecurringRepository) FindLastSuccessfulRun(ctx context.Context, ruleID string) (*domain.RecurringRun, error) {
	m, err := queryOne[models.RecurringRun](ctx, r.Pool, "recurring run", `
		SELECT `+runColumns+`
		FROM recurring_runs
		WHERE rule_id = $1 AND success
		ORDER BY run_at DESC, created_at DESC
		LIMIT 1;`, ruleID)
	if err != nil {
		return nil, err
	}
	run := mapping.ToDomainRecurringRun(*m)
	return &run, nil
}

func (r *PgxRecurringRepository) ListLastSuccessfulRuns(ctx context.Context, orgID string) (map[string]domain.RecurringRun, error) {
	rows, err := queryAll[models.RecurringRun](ctx, r.Pool, "recurring runs", `
		SELECT DISTINCT ON (rr.rule_id)
			rr.run_id, rr.rule_id, rr.transaction_id, rr.run_at, rr.success, rr.created_at
		FROM recurring_runs rr
		JOIN recurring_rules r ON r.rule_id = rr.rule_id
		WHERE r.org_id = $1 AND rr.success
		ORDER BY rr.rule_id, rr.run_at DESC, rr.created_at DESC;`, orgID)
	if err != nil {
		return nil, err
	}
	runs := make(map[string]domain.RecurringRun, len(rows))
	for _, m := range rows {
		runs[m.RuleID] = mapping.ToDomainRecurringRun(m)
	}
	return runs, nil
}

func (r *PgxRecurringRepository) SaveRule(ctx context.Context, rule domain.RecurringRule) error {
	m := mapping.ToModelRecurringRule(rule)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO recurring_rules (
			rule_id, org_id, description, amount, account_id, category_id, bucket_id, frequency,
			day_of_month, day_of_week, start_date, end_date, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`,
		m.RuleID, m.OrgID, m.Description, m.Amount, m.AccountID, m.CategoryID, m.BucketID, m.Frequency,
		m.DayOfMonth, m.DayOfWeek, m.StartDate, m.EndDate, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "create recurring rule")
	}
	return nil
}

func (r *PgxRecurringRepository) UpdateRule(ctx context.Context, rule domain.RecurringRule) error {
	m := mapping.ToModelRecurringRule(rule)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE recurring_rules
		SET description = $3, amount = $4, account_id = $5, category_id = $6, bucket_id = $7,
			frequency = $8, day_of_month = $9, day_of_week = $10, start_date = $11, end_date = $12,
			is_active = $13, last_updated_at = $14, last_updated_by = $15
		WHERE org_id = $1 AND rule_id = $2;`,
		m.OrgID, m.RuleID, m.Description, m.Amount, m.AccountID, m.CategoryID, m.BucketID,
		m.Frequency, m.DayOfMonth, m.DayOfWeek, m.StartDate, m.EndDate,
		m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "update recurring rule")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("recurring rule " + rule.RuleID + " not found")
	}
	return nil
}

func (r *PgxRecurringRepository) DeactivateRule(ctx context.Context, orgID, ruleID, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE recurring_rules
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE org_id = $1 AND rule_id = $2;`,
		orgID, ruleID, now, userID,
	)
	if err != nil {
		return translatePgError(err, "deactivate recurring rule")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("recurring rule " + ruleID + " not found")
	}
	return nil
}

// SaveOccurrence inserts the materialized transaction and appends its run in one transaction.
func (r *PgxRecurringRepository) SaveOccurrence(ctx context.Context, txn domain.Transaction, run domain.RecurringRun) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, insertTransactionQuery, transactionArgs(mapping.ToModelTransaction(txn))...); err != nil {
		return translatePgError(err, "insert recurring transaction")
	}

	m := mapping.ToModelRecurringRun(run)
	_, err = tx.Exec(ctx, `
		INSERT INTO recurring_runs (`+runColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		m.RunID, m.RuleID, m.TransactionID, m.RunAt, m.Success, m.CreatedAt,
	)
	if err != nil {
		return translatePgError(err, "append recurring run")
	}
	return r.Commit(ctx, tx)
}
