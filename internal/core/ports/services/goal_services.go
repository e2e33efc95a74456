package services

import (
	"context"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/dto"
)

// GoalReaderSvc defines read operations for goals
type GoalReaderSvc interface {
	ListGoals(ctx context.Context, scope domain.Scope) ([]domain.Goal, error)

	// GetEmergencyFund returns the active emergency fund; duplicates resolve to the most recently updated.
	GetEmergencyFund(ctx context.Context, scope domain.Scope) (*domain.Goal, error)
}

// GoalWriterSvc defines write operations for goals
type GoalWriterSvc interface {
	CreateGoal(ctx context.Context, scope domain.Scope, req dto.CreateGoalRequest) (*domain.Goal, error)
	SaveEmergencyFund(ctx context.Context, scope domain.Scope, req dto.SaveEmergencyFundRequest) (*domain.Goal, error)
}

// GoalSvcFacade combines goal read and write operations
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
