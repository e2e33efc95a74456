package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	"github.com/moedinha/moedinha_backend/internal/models"
	"github.com/moedinha/moedinha_backend/internal/utils/mapping"
)

type PgxOrgRepository struct {
	BaseRepository
}

// newPgxOrgRepository creates a new repository for organizations and memberships.
func newPgxOrgRepository(pool *pgxpool.Pool) *PgxOrgRepository {
	return &PgxOrgRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrgRepositoryFacade = (*PgxOrgRepository)(nil)

func (r *PgxOrgRepository) ListMembershipsByUser(ctx context.Context, userID string) ([]domain.OrgMembership, error) {
	query := `
		SELECT org_id, user_id, role, joined_at
		FROM org_members
		WHERE user_id = $1
		ORDER BY joined_at ASC, org_id ASC;
	`
	rows, err := queryAll[models.OrgMembership](ctx, r.Pool, "memberships", query, userID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainMembershipSlice(rows), nil
}

func (r *PgxOrgRepository) ListOrgIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT org_id FROM orgs ORDER BY created_at ASC, org_id ASC;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query organizations", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect organization ids", err)
	}
	return ids, nil
}

// SaveOrg inserts the organization and its owner membership atomically.
func (r *PgxOrgRepository) SaveOrg(ctx context.Context, org domain.Org, owner domain.OrgMembership) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelOrg(org)
	_, err = tx.Exec(ctx, `
		INSERT INTO orgs (org_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		m.OrgID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "create organization")
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO org_members (org_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4);`,
		owner.OrgID, owner.UserID, string(owner.Role), owner.JoinedAt,
	)
	if err != nil {
		return translatePgError(err, "add organization owner")
	}

	return r.Commit(ctx, tx)
}
