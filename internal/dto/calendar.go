package dto

import (
	"sort"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalendarQuery selects a calendar month. Zero values mean the current one.
type CalendarQuery struct {
	Year  int `form:"year" binding:"omitempty,min=1970,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// CalendarDayResponse is one day of the calendar.
type CalendarDayResponse struct {
	Day           int                    `json:"day"`
	Date          string                 `json:"date"`
	Income        decimal.Decimal        `json:"income"`
	Expense       decimal.Decimal        `json:"expense"`
	BalanceChange decimal.Decimal        `json:"balanceChange"`
	Events        []domain.CalendarEvent `json:"events"`
}

// CalendarResponse is the day-indexed month view, ordered by day.
type CalendarResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}

// ToCalendarResponse flattens the day map into an ordered list.
func ToCalendarResponse(c *domain.MonthCalendar) CalendarResponse {
	keys := make([]int, 0, len(c.Days))
	for k := range c.Days {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	days := make([]CalendarDayResponse, 0, len(keys))
	for _, k := range keys {
		d := c.Days[k]
		events := d.Events
		if events == nil {
			events = []domain.CalendarEvent{}
		}
		days = append(days, CalendarDayResponse{
			Day:           k,
			Date:          d.Date.Format("2006-01-02"),
			Income:        d.Income,
			Expense:       d.Expense,
			BalanceChange: d.BalanceChange,
			Events:        events,
		})
	}
	return CalendarResponse{Year: c.Year, Month: c.Month, Days: days}
}
