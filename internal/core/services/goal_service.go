package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/moedinha/moedinha_backend/internal/utils/dates"
	"github.com/shopspring/decimal"
)

const defaultEmergencyFundName = "Reserva de emergência"

// goalService implements the GoalSvcFacade interface
type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
}

// NewGoalService creates a new goal service with the provided dependencies
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) ListGoals(ctx context.Context, scope domain.Scope) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, scope.OrgID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals", orgAttr(scope))
		return nil, err
	}
	if goals == nil {
		return []domain.Goal{}, nil
	}
	return goals, nil
}

func (s *goalService) GetEmergencyFund(ctx context.Context, scope domain.Scope) (*domain.Goal, error) {
	fund, err := s.currentEmergencyFund(ctx, scope)
	if err != nil {
		return nil, err
	}
	if fund == nil {
		return nil, apperrors.NewNotFoundError("emergency fund not configured")
	}
	return fund, nil
}

// currentEmergencyFund returns the most recently updated active emergency
// fund, or nil when there is none.
func (s *goalService) currentEmergencyFund(ctx context.Context, scope domain.Scope) (*domain.Goal, error) {
	funds, err := s.goalRepo.ListActiveGoalsByType(ctx, scope.OrgID, domain.GoalEmergencyFund)
	if err != nil {
		s.LogError(ctx, err, "Failed to load emergency fund", orgAttr(scope))
		return nil, err
	}
	if len(funds) == 0 {
		return nil, nil
	}
	sort.SliceStable(funds, func(i, j int) bool {
		return funds[i].LastUpdatedAt.After(funds[j].LastUpdatedAt)
	})
	if len(funds) > 1 {
		s.LogWarn(ctx, "Multiple active emergency funds, using the most recently updated", orgAttr(scope),
			slog.Int("count", len(funds)), slog.String("goal_id", funds[0].GoalID))
	}
	return &funds[0], nil
}

func (s *goalService) CreateGoal(ctx context.Context, scope domain.Scope, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if req.GoalType == domain.GoalEmergencyFund {
		existing, err := s.currentEmergencyFund(ctx, scope)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.NewConflictError("an active emergency fund already exists")
		}
	}

	goal, err := s.buildGoal(scope, req.Name, req.GoalType, req.TargetAmount, req.CurrentAmount, req.TargetDate)
	if err != nil {
		return nil, err
	}
	goal.GoalID = uuid.NewString()
	goal.CreatedAt = scope.Now
	goal.CreatedBy = scope.UserID

	if goal.GoalType == domain.GoalEmergencyFund {
		err = s.goalRepo.SaveEmergencyFund(ctx, *goal)
	} else {
		err = s.goalRepo.SaveGoal(ctx, *goal)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to save goal", orgAttr(scope))
		return nil, err
	}
	s.LogInfo(ctx, "Goal created", orgAttr(scope), slog.String("goal_id", goal.GoalID), slog.String("goal_type", string(goal.GoalType)))
	return goal, nil
}

func (s *goalService) SaveEmergencyFund(ctx context.Context, scope domain.Scope, req dto.SaveEmergencyFundRequest) (*domain.Goal, error) {
	existing, err := s.currentEmergencyFund(ctx, scope)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = defaultEmergencyFundName
		if existing != nil {
			name = existing.Name
		}
	}
	current := req.CurrentAmount
	if current == nil && existing != nil {
		current = &existing.CurrentAmount
	}

	goal, err := s.buildGoal(scope, name, domain.GoalEmergencyFund, req.TargetAmount, current, req.TargetDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		goal.GoalID = existing.GoalID
		goal.CreatedAt = existing.CreatedAt
		goal.CreatedBy = existing.CreatedBy
		if req.TargetDate == nil {
			goal.TargetDate = existing.TargetDate
		}
	} else {
		goal.GoalID = uuid.NewString()
		goal.CreatedAt = scope.Now
		goal.CreatedBy = scope.UserID
	}

	if err := s.goalRepo.SaveEmergencyFund(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to save emergency fund", orgAttr(scope))
		return nil, err
	}
	return goal, nil
}

func (s *goalService) buildGoal(scope domain.Scope, name string, goalType domain.GoalType, target decimal.Decimal, current *decimal.Decimal, targetDate *string) (*domain.Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("goal name is required")
	}
	if !goalType.Valid() {
		return nil, apperrors.NewValidationFailedError("unsupported goal type")
	}
	if !target.IsPositive() {
		return nil, apperrors.NewValidationFailedError("target amount must be greater than zero")
	}
	goal := &domain.Goal{
		OrgID:         scope.OrgID,
		Name:          name,
		GoalType:      goalType,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			LastUpdatedAt: scope.Now,
			LastUpdatedBy: scope.UserID,
		},
	}
	if current != nil {
		if current.IsNegative() {
			return nil, apperrors.NewValidationFailedError("current amount must not be negative")
		}
		goal.CurrentAmount = *current
	}
	if targetDate != nil {
		d, err := dates.ParseDate(*targetDate, scope.Location())
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		goal.TargetDate = &d
	}
	return goal, nil
}
