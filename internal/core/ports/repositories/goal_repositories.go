package repositories

import (
	"context"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// GoalReader defines read operations for goals
type GoalReader interface {
	// ListGoals lists the organization's goals, most recently updated first.
	ListGoals(ctx context.Context, orgID string) ([]domain.Goal, error)

	// ListActiveGoalsByType lists active goals of one type, most recently updated first.
	ListActiveGoalsByType(ctx context.Context, orgID string, goalType domain.GoalType) ([]domain.Goal, error)
}

// GoalWriter defines write operations for goals
type GoalWriter interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// SaveEmergencyFund upserts the goal and deactivates any other active
	// emergency fund of the organization in one database transaction.
	SaveEmergencyFund(ctx context.Context, goal domain.Goal) error
}

// GoalRepositoryFacade combines goal read and write operations
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
