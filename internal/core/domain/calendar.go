package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalendarEventStatus distinguishes realized from projected entries.
type CalendarEventStatus string

const (
	EventPaid      CalendarEventStatus = "paid"
	EventPending   CalendarEventStatus = "pending"
	EventProjected CalendarEventStatus = "projected"
)

// CalendarEvent is one entry on a calendar day.
type CalendarEvent struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	Amount      decimal.Decimal     `json:"amount"`
	Type        TransactionType     `json:"type"`
	Status      CalendarEventStatus `json:"status"`
	IsRecurring bool                `json:"isRecurring"`
	RuleID      *string             `json:"ruleID,omitempty"`
}

// CalendarDay aggregates a single day of the month.
type CalendarDay struct {
	Date          time.Time       `json:"date"`
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	BalanceChange decimal.Decimal `json:"balanceChange"`
	Events        []CalendarEvent `json:"events"`
}

// MonthCalendar is a day-indexed view of a month, keyed by day of month (1-based).
type MonthCalendar struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Days  map[int]*CalendarDay `json:"days"`
}

// AddIncome records an income event on the day.
func (d *CalendarDay) AddIncome(ev CalendarEvent) {
	d.Income = d.Income.Add(ev.Amount)
	d.BalanceChange = d.BalanceChange.Add(ev.Amount)
	d.Events = append(d.Events, ev)
}

// AddExpense records an expense event on the day.
func (d *CalendarDay) AddExpense(ev CalendarEvent) {
	d.Expense = d.Expense.Add(ev.Amount)
	d.BalanceChange = d.BalanceChange.Sub(ev.Amount)
	d.Events = append(d.Events, ev)
}
