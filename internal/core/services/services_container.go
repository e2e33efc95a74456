package services

import (
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// notifier and tracker are optional.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	notifier portssvc.AlertNotifier,
	tracker portssvc.EventTracker,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Org = NewOrgService(repos.OrgRepo)
	container.Distribution = NewDistributionService(repos.DistributionRepo)
	container.Metrics = NewMetricsService(repos.DistributionRepo, repos.TransactionRepo, repos.SnapshotRepo)

	alertOptions := []AlertServiceOption{}
	if notifier != nil {
		alertOptions = append(alertOptions, WithAlertNotifier(notifier))
	}
	if tracker != nil {
		alertOptions = append(alertOptions, WithAlertEventTracker(tracker))
	}
	container.Alert = NewAlertService(repos.AlertRepo, alertOptions...)

	container.Recurring = NewRecurringService(repos.RecurringRepo, repos.AccountRepo)
	container.Calendar = NewCalendarService(repos.TransactionRepo, repos.RecurringRepo)
	container.Invoice = NewInvoiceService(repos.AccountRepo, repos.TransactionRepo)
	container.Goal = NewGoalService(repos.GoalRepo)

	// Jobs compose the services above.
	container.Job = NewJobService(repos.OrgRepo, container.Metrics, container.Alert, container.Recurring, cfg.Location)

	return container
}
