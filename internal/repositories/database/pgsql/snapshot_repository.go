package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	"github.com/moedinha/moedinha_backend/internal/models"
	"github.com/moedinha/moedinha_backend/internal/utils/mapping"
)

type PgxSnapshotRepository struct {
	BaseRepository
}

// newPgxSnapshotRepository creates a new repository for monthly snapshots.
func newPgxSnapshotRepository(pool *pgxpool.Pool) *PgxSnapshotRepository {
	return &PgxSnapshotRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SnapshotRepositoryFacade = (*PgxSnapshotRepository)(nil)

func (r *PgxSnapshotRepository) FindSnapshot(ctx context.Context, orgID string, month time.Time) (*domain.MonthlySnapshot, error) {
	query := `
		SELECT snapshot_id, org_id, month, base_income, base_income_mode, bucket_metrics,
			day_ratio, total_spend, total_budget, computed_at
		FROM monthly_snapshots
		WHERE org_id = $1 AND month = $2;
	`
	m, err := queryOne[models.MonthlySnapshot](ctx, r.Pool, "snapshot", query, orgID, month)
	if err != nil {
		return nil, err
	}
	snapshot := mapping.ToDomainSnapshot(*m)
	return &snapshot, nil
}

// UpsertSnapshot keeps the original snapshot_id when the (org_id, month) row already exists.
func (r *PgxSnapshotRepository) UpsertSnapshot(ctx context.Context, snapshot domain.MonthlySnapshot) error {
	m := mapping.ToModelSnapshot(snapshot)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO monthly_snapshots (
			snapshot_id, org_id, month, base_income, base_income_mode, bucket_metrics,
			day_ratio, total_spend, total_budget, computed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (org_id, month) DO UPDATE SET
			base_income = EXCLUDED.base_income,
			base_income_mode = EXCLUDED.base_income_mode,
			bucket_metrics = EXCLUDED.bucket_metrics,
			day_ratio = EXCLUDED.day_ratio,
			total_spend = EXCLUDED.total_spend,
			total_budget = EXCLUDED.total_budget,
			computed_at = EXCLUDED.computed_at;`,
		m.SnapshotID, m.OrgID, m.Month, m.BaseIncome, m.BaseIncomeMode, m.BucketMetrics,
		m.DayRatio, m.TotalSpend, m.TotalBudget, m.ComputedAt,
	)
	if err != nil {
		return translatePgError(err, "upsert monthly snapshot")
	}
	return nil
}
