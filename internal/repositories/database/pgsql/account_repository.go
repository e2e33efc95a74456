package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	"github.com/moedinha/moedinha_backend/internal/models"
	"github.com/moedinha/moedinha_backend/internal/utils/mapping"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountReader
var _ portsrepo.AccountReader = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, orgID, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, org_id, name, account_type, initial_balance, closing_day, due_day, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE org_id = $1 AND account_id = $2;
	`
	m, err := queryOne[models.Account](ctx, r.Pool, "account", query, orgID, accountID)
	if err != nil {
		return nil, err
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}
