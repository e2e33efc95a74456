package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/moedinha/moedinha_backend/internal/utils/dates"
)

// ruleState is a step of the per-rule transition Idle -> DueCheck -> Materialize -> Idle.
// ProcessRecurringRules runs the transition exactly once per rule, so a rule
// that missed several periods catches up one occurrence per invocation.
type ruleState int

const (
	stateIdle ruleState = iota
	stateDueCheck
	stateMaterialize
)

// ruleOutcome is how one transition ended.
type ruleOutcome int

const (
	outcomeNotDue ruleOutcome = iota
	outcomeEnded
	outcomeMaterialized
)

// recurringService implements the RecurringSvcFacade interface
type recurringService struct {
	BaseService
	recurringRepo portsrepo.RecurringRepositoryFacade
	accountRepo   portsrepo.AccountReader
}

// NewRecurringService creates a new recurring rule service with the provided dependencies
func NewRecurringService(recurringRepo portsrepo.RecurringRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.RecurringSvcFacade {
	return &recurringService{
		recurringRepo: recurringRepo,
		accountRepo:   accountRepo,
	}
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) ProcessRecurringRules(ctx context.Context, scope domain.Scope) (domain.RecurringProcessResult, error) {
	var result domain.RecurringProcessResult

	rules, err := s.recurringRepo.ListRules(ctx, scope.OrgID, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active recurring rules", orgAttr(scope))
		return result, fmt.Errorf("listing recurring rules: %w", err)
	}

	for _, rule := range rules {
		outcome, err := s.advance(ctx, scope, rule)
		if err != nil {
			result.Failed++
			s.LogError(ctx, err, "Failed to process recurring rule", orgAttr(scope), slog.String("rule_id", rule.RuleID))
			continue
		}
		if outcome == outcomeMaterialized {
			result.Processed++
		} else {
			result.Skipped++
		}
	}

	s.LogInfo(ctx, "Recurring rules processed", orgAttr(scope),
		slog.Int("rules", len(rules)),
		slog.Int("processed", result.Processed),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed))
	return result, nil
}

// advance runs one Idle -> DueCheck -> Materialize -> Idle transition for the rule.
func (s *recurringService) advance(ctx context.Context, scope domain.Scope, rule domain.RecurringRule) (ruleOutcome, error) {
	var (
		anchor  time.Time
		outcome = outcomeNotDue
	)
	for state := stateDueCheck; state != stateIdle; {
		switch state {
		case stateDueCheck:
			next, err := s.nextAnchor(ctx, scope, rule)
			if err != nil {
				return outcome, err
			}
			switch {
			case rule.EndedBefore(next):
				outcome, state = outcomeEnded, stateIdle
			case next.After(scope.Today()):
				state = stateIdle
			default:
				anchor, state = next, stateMaterialize
			}
		case stateMaterialize:
			if err := s.materialize(ctx, scope, rule, anchor); err != nil {
				return outcome, err
			}
			outcome, state = outcomeMaterialized, stateIdle
		}
	}
	return outcome, nil
}

// nextAnchor is the rule's start date when it never ran, otherwise the last
// successful run advanced by one interval.
func (s *recurringService) nextAnchor(ctx context.Context, scope domain.Scope, rule domain.RecurringRule) (time.Time, error) {
	loc := scope.Location()
	last, err := s.recurringRepo.FindLastSuccessfulRun(ctx, rule.RuleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return dates.In(rule.StartDate, loc), nil
		}
		return time.Time{}, fmt.Errorf("loading last run: %w", err)
	}
	return dates.Advance(dates.In(last.RunAt, loc), rule.Frequency), nil
}

// materialize inserts a pending expense dated at the anchor and logs the run.
func (s *recurringService) materialize(ctx context.Context, scope domain.Scope, rule domain.RecurringRule, anchor time.Time) error {
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		OrgID:         scope.OrgID,
		AccountID:     rule.AccountID,
		CategoryID:    rule.CategoryID,
		BucketID:      rule.BucketID,
		Type:          domain.TransactionExpense,
		Status:        domain.TransactionPending,
		Amount:        rule.Amount.Abs(),
		Description:   rule.Description,
		Date:          anchor,
		Metadata: map[string]any{
			"recurring_rule_id": rule.RuleID,
			"source":            domain.RecurringWorkerSource,
		},
		CreatedAt: scope.Now,
	}
	if scope.UserID != "" {
		userID := scope.UserID
		txn.CreatedBy = &userID
	}
	run := domain.RecurringRun{
		RunID:         uuid.NewString(),
		RuleID:        rule.RuleID,
		TransactionID: &txn.TransactionID,
		RunAt:         anchor,
		Success:       true,
		CreatedAt:     scope.Now,
	}
	if err := s.recurringRepo.SaveOccurrence(ctx, txn, run); err != nil {
		return fmt.Errorf("saving occurrence: %w", err)
	}
	s.LogDebug(ctx, "Recurring occurrence materialized",
		slog.String("rule_id", rule.RuleID),
		slog.String("date", anchor.Format(dates.DateLayout)),
		slog.String("transaction_id", txn.TransactionID))
	return nil
}

func (s *recurringService) CreateRule(ctx context.Context, scope domain.Scope, req dto.CreateRecurringRuleRequest) (*domain.RecurringRule, error) {
	loc := scope.Location()
	start, err := dates.ParseDate(req.StartDate, loc)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	rule := domain.RecurringRule{
		RuleID:      uuid.NewString(),
		OrgID:       scope.OrgID,
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		BucketID:    req.BucketID,
		Frequency:   req.Frequency,
		StartDate:   start,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     scope.Now,
			CreatedBy:     scope.UserID,
			LastUpdatedAt: scope.Now,
			LastUpdatedBy: scope.UserID,
		},
	}
	if req.EndDate != nil {
		end, err := dates.ParseDate(*req.EndDate, loc)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		rule.EndDate = &end
	}
	if err := s.validateRule(ctx, scope, rule); err != nil {
		return nil, err
	}
	rule.DeriveSchedule()

	if err := s.recurringRepo.SaveRule(ctx, rule); err != nil {
		s.LogError(ctx, err, "Failed to save recurring rule", orgAttr(scope))
		return nil, err
	}
	s.LogInfo(ctx, "Recurring rule created", orgAttr(scope), slog.String("rule_id", rule.RuleID))
	return &rule, nil
}

func (s *recurringService) UpdateRule(ctx context.Context, scope domain.Scope, ruleID string, req dto.UpdateRecurringRuleRequest) (*domain.RecurringRule, error) {
	rule, err := s.recurringRepo.FindRuleByID(ctx, scope.OrgID, ruleID)
	if err != nil {
		return nil, err
	}
	loc := scope.Location()

	if req.Description != nil {
		rule.Description = strings.TrimSpace(*req.Description)
	}
	if req.Amount != nil {
		rule.Amount = *req.Amount
	}
	if req.AccountID != nil {
		rule.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		rule.CategoryID = req.CategoryID
	}
	if req.BucketID != nil {
		rule.BucketID = req.BucketID
	}
	if req.Frequency != nil {
		rule.Frequency = *req.Frequency
	}
	if req.StartDate != nil {
		start, err := dates.ParseDate(*req.StartDate, loc)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		rule.StartDate = start
	}
	if req.EndDate != nil {
		end, err := dates.ParseDate(*req.EndDate, loc)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		rule.EndDate = &end
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if err := s.validateRule(ctx, scope, *rule); err != nil {
		return nil, err
	}
	// The derived schedule always follows start date and frequency.
	rule.DeriveSchedule()
	rule.LastUpdatedAt = scope.Now
	rule.LastUpdatedBy = scope.UserID

	if err := s.recurringRepo.UpdateRule(ctx, *rule); err != nil {
		s.LogError(ctx, err, "Failed to update recurring rule", orgAttr(scope), slog.String("rule_id", ruleID))
		return nil, err
	}
	return rule, nil
}

func (s *recurringService) validateRule(ctx context.Context, scope domain.Scope, rule domain.RecurringRule) error {
	if rule.Description == "" {
		return apperrors.NewValidationFailedError("description is required")
	}
	if !rule.Amount.IsPositive() {
		return apperrors.NewValidationFailedError("amount must be greater than zero")
	}
	if !rule.Frequency.Valid() {
		return apperrors.NewValidationFailedError(fmt.Sprintf("unsupported frequency %q", rule.Frequency))
	}
	if rule.EndDate != nil && rule.EndDate.Before(rule.StartDate) {
		return apperrors.NewValidationFailedError("end date must not be before start date")
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, scope.OrgID, rule.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationFailedError("account does not exist")
		}
		return err
	}
	return nil
}

func (s *recurringService) ListRules(ctx context.Context, scope domain.Scope) ([]domain.RecurringRule, error) {
	rules, err := s.recurringRepo.ListRules(ctx, scope.OrgID, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring rules", orgAttr(scope))
		return nil, err
	}
	if rules == nil {
		return []domain.RecurringRule{}, nil
	}
	return rules, nil
}

func (s *recurringService) DeactivateRule(ctx context.Context, scope domain.Scope, ruleID string) error {
	if err := s.recurringRepo.DeactivateRule(ctx, scope.OrgID, ruleID, scope.UserID, scope.Now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate recurring rule", orgAttr(scope), slog.String("rule_id", ruleID))
		}
		return err
	}
	s.LogInfo(ctx, "Recurring rule deactivated", orgAttr(scope), slog.String("rule_id", ruleID))
	return nil
}
