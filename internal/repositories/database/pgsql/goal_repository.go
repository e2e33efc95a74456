package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	"github.com/moedinha/moedinha_backend/internal/models"
	"github.com/moedinha/moedinha_backend/internal/utils/mapping"
)

type PgxGoalRepository struct {
	BaseRepository
}

// newPgxGoalRepository creates a new repository for goals.
func newPgxGoalRepository(pool *pgxpool.Pool) *PgxGoalRepository {
	return &PgxGoalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

const goalSelect = `
SELECT
	goal_id, org_id, name, goal_type, target_amount, current_amount, target_date, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM goals
`

func (r *PgxGoalRepository) ListGoals(ctx context.Context, orgID string) ([]domain.Goal, error) {
	rows, err := queryAll[models.Goal](ctx, r.Pool, "goals",
		goalSelect+`WHERE org_id = $1 ORDER BY last_updated_at DESC, goal_id ASC;`, orgID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainGoalSlice(rows), nil
}

func (r *PgxGoalRepository) ListActiveGoalsByType(ctx context.Context, orgID string, goalType domain.GoalType) ([]domain.Goal, error) {
	rows, err := queryAll[models.Goal](ctx, r.Pool, "goals",
		goalSelect+`WHERE org_id = $1 AND goal_type = $2 AND is_active ORDER BY last_updated_at DESC, goal_id ASC;`,
		orgID, string(goalType))
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainGoalSlice(rows), nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO goals (
			goal_id, org_id, name, goal_type, target_amount, current_amount, target_date, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		m.GoalID, m.OrgID, m.Name, m.GoalType, m.TargetAmount, m.CurrentAmount, m.TargetDate, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "create goal")
	}
	return nil
}

// SaveEmergencyFund deactivates every other active emergency fund of the
// organization, then upserts the goal, in one transaction.
func (r *PgxGoalRepository) SaveEmergencyFund(ctx context.Context, goal domain.Goal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelGoal(goal)
	_, err = tx.Exec(ctx, `
		UPDATE goals SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE org_id = $1 AND goal_type = 'emergency_fund' AND is_active AND goal_id <> $2;`,
		m.OrgID, m.GoalID, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "deactivate duplicate emergency funds")
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO goals (
			goal_id, org_id, name, goal_type, target_amount, current_amount, target_date, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (goal_id) DO UPDATE SET
			name = EXCLUDED.name,
			target_amount = EXCLUDED.target_amount,
			current_amount = EXCLUDED.current_amount,
			target_date = EXCLUDED.target_date,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;`,
		m.GoalID, m.OrgID, m.Name, m.GoalType, m.TargetAmount, m.CurrentAmount, m.TargetDate, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "save emergency fund")
	}
	return r.Commit(ctx, tx)
}
