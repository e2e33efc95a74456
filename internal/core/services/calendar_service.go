package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/utils/dates"
)

// calendarService implements the CalendarSvc interface
type calendarService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	recurringRepo   portsrepo.RecurringRuleReader
}

// NewCalendarService creates a new calendar service with the provided dependencies
func NewCalendarService(transactionRepo portsrepo.TransactionReader, recurringRepo portsrepo.RecurringRuleReader) portssvc.CalendarSvc {
	return &calendarService{
		transactionRepo: transactionRepo,
		recurringRepo:   recurringRepo,
	}
}

var _ portssvc.CalendarSvc = (*calendarService)(nil)

// GetMonthFinancialEvents builds the day-indexed view of a month: realized
// transactions on their dates plus projections of active recurring rules from
// today onwards. Zero year/month mean the current month.
func (s *calendarService) GetMonthFinancialEvents(ctx context.Context, scope domain.Scope, year, month int) (*domain.MonthCalendar, error) {
	loc := scope.Location()
	today := scope.Today()
	if year == 0 || month == 0 {
		year, month = today.Year(), int(today.Month())
	}
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid month %d", month))
	}

	start := dates.Date(year, time.Month(month), 1, loc)
	end := dates.MonthEnd(start)
	cal := &domain.MonthCalendar{
		Year:  year,
		Month: month,
		Days:  make(map[int]*domain.CalendarDay, end.Day()),
	}
	for d := 1; d <= end.Day(); d++ {
		cal.Days[d] = &domain.CalendarDay{
			Date:   dates.Date(year, time.Month(month), d, loc),
			Events: []domain.CalendarEvent{},
		}
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		OrgID: scope.OrgID,
		From:  start,
		To:    end,
		Types: []domain.TransactionType{domain.TransactionIncome, domain.TransactionExpense},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list month transactions", orgAttr(scope))
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	for _, txn := range txns {
		day, ok := cal.Days[txn.Date.Day()]
		if !ok {
			continue
		}
		addEvent(day, domain.CalendarEvent{
			ID:          txn.TransactionID,
			Description: txn.Description,
			Amount:      txn.Amount.Abs(),
			Type:        txn.Type,
			Status:      eventStatus(txn.Status),
			IsRecurring: isRecurringTxn(txn),
			RuleID:      recurringRuleID(txn),
		})
	}

	projected, err := s.projectRules(ctx, scope, cal, start, end, today)
	if err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Calendar built", orgAttr(scope),
		slog.String("month", start.Format(dates.YearMonthLayout)),
		slog.Int("transactions", len(txns)),
		slog.Int("projections", projected))
	return cal, nil
}

// projectRules adds a projected expense for every future occurrence of each
// active rule that falls inside [start, end]. Occurrences before today are
// left out since the engine has either materialized them or will on its next tick.
func (s *calendarService) projectRules(ctx context.Context, scope domain.Scope, cal *domain.MonthCalendar, start, end, today time.Time) (int, error) {
	rules, err := s.recurringRepo.ListRules(ctx, scope.OrgID, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring rules for calendar", orgAttr(scope))
		return 0, fmt.Errorf("listing recurring rules: %w", err)
	}
	if len(rules) == 0 {
		return 0, nil
	}
	lastRuns, err := s.recurringRepo.ListLastSuccessfulRuns(ctx, scope.OrgID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring runs for calendar", orgAttr(scope))
		return 0, fmt.Errorf("listing recurring runs: %w", err)
	}

	loc := scope.Location()
	projected := 0
	for _, rule := range rules {
		if !rule.Frequency.Valid() {
			continue
		}
		occ := dates.In(rule.StartDate, loc)
		if run, ok := lastRuns[rule.RuleID]; ok {
			occ = dates.Advance(dates.In(run.RunAt, loc), rule.Frequency)
		}
		for occ.Before(start) {
			occ = dates.Advance(occ, rule.Frequency)
		}
		for ; !occ.After(end); occ = dates.Advance(occ, rule.Frequency) {
			if rule.EndedBefore(occ) {
				break
			}
			if occ.Before(today) {
				continue
			}
			ruleID := rule.RuleID
			cal.Days[occ.Day()].AddExpense(domain.CalendarEvent{
				ID:          fmt.Sprintf("projected-%s-%s", rule.RuleID, occ.Format(dates.DateLayout)),
				Description: rule.Description,
				Amount:      rule.Amount.Abs(),
				Type:        domain.TransactionExpense,
				Status:      domain.EventProjected,
				IsRecurring: true,
				RuleID:      &ruleID,
			})
			projected++
		}
	}
	return projected, nil
}

func addEvent(day *domain.CalendarDay, ev domain.CalendarEvent) {
	if ev.Type == domain.TransactionIncome {
		day.AddIncome(ev)
		return
	}
	day.AddExpense(ev)
}

func eventStatus(status domain.TransactionStatus) domain.CalendarEventStatus {
	if status == domain.TransactionPaid {
		return domain.EventPaid
	}
	return domain.EventPending
}

func isRecurringTxn(txn domain.Transaction) bool {
	source, _ := txn.Metadata["source"].(string)
	return source == domain.RecurringWorkerSource
}

func recurringRuleID(txn domain.Transaction) *string {
	id, ok := txn.Metadata["recurring_rule_id"].(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}
