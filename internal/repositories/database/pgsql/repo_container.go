package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrgRepo:          newPgxOrgRepository(dbPool),
		AccountRepo:      newPgxAccountRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		DistributionRepo: newPgxDistributionRepository(dbPool),
		SnapshotRepo:     newPgxSnapshotRepository(dbPool),
		AlertRepo:        newPgxAlertRepository(dbPool),
		RecurringRepo:    newPgxRecurringRepository(dbPool),
		GoalRepo:         newPgxGoalRepository(dbPool),
	}
}
