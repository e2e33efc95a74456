package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	OrgRepo          OrgRepositoryFacade
	AccountRepo      AccountReader
	TransactionRepo  TransactionReader
	DistributionRepo DistributionRepositoryFacade
	SnapshotRepo     SnapshotRepositoryFacade
	AlertRepo        AlertRepositoryFacade
	RecurringRepo    RecurringRepositoryFacade
	GoalRepo         GoalRepositoryFacade
}
