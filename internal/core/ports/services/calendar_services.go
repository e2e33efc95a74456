package services

import (
	"context"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// CalendarSvc projects a month's financial events.
type CalendarSvc interface {
	GetMonthFinancialEvents(ctx context.Context, scope domain.Scope, year, month int) (*domain.MonthCalendar, error)
}
