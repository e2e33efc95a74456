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

type PgxAlertRepository struct {
	BaseRepository
}

// newPgxAlertRepository creates a new repository for alert definitions and emitted alerts.
func newPgxAlertRepository(pool *pgxpool.Pool) *PgxAlertRepository {
	return &PgxAlertRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AlertRepositoryFacade = (*PgxAlertRepository)(nil)

const alertSelect = `
SELECT alert_id, org_id, user_id, month, code, severity, message, context, created_at
FROM alerts
`

func (r *PgxAlertRepository) ListDefinitions(ctx context.Context, codes []domain.AlertCode) ([]domain.AlertDefinition, error) {
	raw := make([]string, len(codes))
	for i, c := range codes {
		raw[i] = string(c)
	}
	query := `
		SELECT code, severity, cooldown_hours, hysteresis_pct, message_template, cta_primary, cta_secondary
		FROM alert_definitions
		WHERE code = ANY($1);
	`
	rows, err := queryAll[models.AlertDefinition](ctx, r.Pool, "alert definitions", query, raw)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAlertDefinitionSlice(rows), nil
}

func (r *PgxAlertRepository) FindLatestAlert(ctx context.Context, orgID string, code domain.AlertCode, month time.Time) (*domain.Alert, error) {
	m, err := queryOne[models.Alert](ctx, r.Pool, "alert",
		alertSelect+`WHERE org_id = $1 AND code = $2 AND month = $3 ORDER BY created_at DESC LIMIT 1;`,
		orgID, string(code), month)
	if err != nil {
		return nil, err
	}
	alert := mapping.ToDomainAlert(*m)
	return &alert, nil
}

func (r *PgxAlertRepository) ListAlerts(ctx context.Context, orgID string, month time.Time, limit int, after *portsrepo.AlertCursor) ([]domain.Alert, error) {
	var (
		rows []models.Alert
		err  error
	)
	if after == nil {
		rows, err = queryAll[models.Alert](ctx, r.Pool, "alerts",
			alertSelect+`WHERE org_id = $1 AND month = $2 ORDER BY created_at DESC, alert_id DESC LIMIT $3;`,
			orgID, month, limit)
	} else {
		rows, err = queryAll[models.Alert](ctx, r.Pool, "alerts",
			alertSelect+`WHERE org_id = $1 AND month = $2 AND (created_at, alert_id) < ($4, $5)
			ORDER BY created_at DESC, alert_id DESC LIMIT $3;`,
			orgID, month, limit, after.CreatedAt, after.AlertID)
	}
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAlertSlice(rows), nil
}

func (r *PgxAlertRepository) SaveAlert(ctx context.Context, alert domain.Alert) error {
	m := mapping.ToModelAlert(alert)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, org_id, user_id, month, code, severity, message, context, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.AlertID, m.OrgID, m.UserID, m.Month, m.Code, m.Severity, m.Message, m.Context, m.CreatedAt,
	)
	if err != nil {
		return translatePgError(err, "save alert")
	}
	return nil
}
