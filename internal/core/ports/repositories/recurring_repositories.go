package repositories

import (
	"context"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// RecurringRuleReader defines read operations for recurring rules and their runs
type RecurringRuleReader interface {
	// ListRules lists the organization's rules. activeOnly filters out deactivated ones.
	ListRules(ctx context.Context, orgID string, activeOnly bool) ([]domain.RecurringRule, error)

	// FindRuleByID retrieves one rule of the organization.
	FindRuleByID(ctx context.Context, orgID, ruleID string) (*domain.RecurringRule, error)

	// FindLastSuccessfulRun returns the latest successful run by run_at, or apperrors.ErrNotFound.
	FindLastSuccessfulRun(ctx context.Context, ruleID string) (*domain.RecurringRun, error)

	// ListLastSuccessfulRuns returns the latest successful run per rule of the organization, keyed by rule id.
	ListLastSuccessfulRuns(ctx context.Context, orgID string) (map[string]domain.RecurringRun, error)
}

// RecurringRuleWriter defines write operations for recurring rules
type RecurringRuleWriter interface {
	SaveRule(ctx context.Context, rule domain.RecurringRule) error
	UpdateRule(ctx context.Context, rule domain.RecurringRule) error
	DeactivateRule(ctx context.Context, orgID, ruleID, userID string, now time.Time) error
}

// OccurrenceWriter materializes a rule occurrence.
type OccurrenceWriter interface {
	// SaveOccurrence inserts the transaction and appends the run in one database transaction.
	SaveOccurrence(ctx context.Context, txn domain.Transaction, run domain.RecurringRun) error
}

// RecurringRepositoryFacade combines all recurring-related repository interfaces
type RecurringRepositoryFacade interface {
	RecurringRuleReader
	RecurringRuleWriter
	OccurrenceWriter
}
