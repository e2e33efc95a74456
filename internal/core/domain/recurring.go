package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the recurrence interval of a rule.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether f is a supported frequency.
func (f Frequency) Valid() bool {
	return f == FrequencyWeekly || f == FrequencyMonthly || f == FrequencyYearly
}

// RecurringRule is a template that generates future transactions.
type RecurringRule struct {
	RuleID      string          `json:"ruleID"`
	OrgID       string          `json:"orgID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	AccountID   string          `json:"accountID"`
	CategoryID  *string         `json:"categoryID,omitempty"`
	BucketID    *string         `json:"bucketID,omitempty"`
	Frequency   Frequency       `json:"frequency"`
	DayOfMonth  *int            `json:"dayOfMonth,omitempty"`
	DayOfWeek   *int            `json:"dayOfWeek,omitempty"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// DeriveSchedule recomputes DayOfMonth/DayOfWeek from StartDate and Frequency.
func (r *RecurringRule) DeriveSchedule() {
	r.DayOfMonth = nil
	r.DayOfWeek = nil
	switch r.Frequency {
	case FrequencyWeekly:
		dow := int(r.StartDate.Weekday())
		r.DayOfWeek = &dow
	case FrequencyMonthly, FrequencyYearly:
		dom := r.StartDate.Day()
		r.DayOfMonth = &dom
	}
}

// EndedBefore reports whether date falls after the rule's end date.
func (r RecurringRule) EndedBefore(date time.Time) bool {
	return r.EndDate != nil && date.After(*r.EndDate)
}

// RecurringRun is one materialization of a rule. Runs are append-only.
type RecurringRun struct {
	RunID         string    `json:"runID"`
	RuleID        string    `json:"ruleID"`
	TransactionID *string   `json:"transactionID,omitempty"`
	RunAt         time.Time `json:"runAt"` // Due date this run represents
	Success       bool      `json:"success"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RecurringProcessResult summarises one engine invocation for an organization.
type RecurringProcessResult struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}
