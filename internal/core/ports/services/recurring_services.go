package services

import (
	"context"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/dto"
)

// RecurringEngineSvc materializes due recurring rules.
type RecurringEngineSvc interface {
	// ProcessRecurringRules advances every active rule of the organization by at most one occurrence.
	ProcessRecurringRules(ctx context.Context, scope domain.Scope) (domain.RecurringProcessResult, error)
}

// RecurringRuleSvc manages recurring rules.
type RecurringRuleSvc interface {
	CreateRule(ctx context.Context, scope domain.Scope, req dto.CreateRecurringRuleRequest) (*domain.RecurringRule, error)
	UpdateRule(ctx context.Context, scope domain.Scope, ruleID string, req dto.UpdateRecurringRuleRequest) (*domain.RecurringRule, error)
	ListRules(ctx context.Context, scope domain.Scope) ([]domain.RecurringRule, error)
	DeactivateRule(ctx context.Context, scope domain.Scope, ruleID string) error
}

// RecurringSvcFacade combines the engine with rule management
type RecurringSvcFacade interface {
	RecurringEngineSvc
	RecurringRuleSvc
}
