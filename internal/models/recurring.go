package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringRule is a row of the recurring_rules table.
type RecurringRule struct {
	RuleID      string          `db:"rule_id"`
	OrgID       string          `db:"org_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	AccountID   string          `db:"account_id"`
	CategoryID  *string         `db:"category_id"`
	BucketID    *string         `db:"bucket_id"`
	Frequency   string          `db:"frequency"`
	DayOfMonth  *int            `db:"day_of_month"`
	DayOfWeek   *int            `db:"day_of_week"`
	StartDate   time.Time       `db:"start_date"`
	EndDate     *time.Time      `db:"end_date"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}

// RecurringRun is a row of the append-only recurring_runs log.
type RecurringRun struct {
	RunID         string    `db:"run_id"`
	RuleID        string    `db:"rule_id"`
	TransactionID *string   `db:"transaction_id"`
	RunAt         time.Time `db:"run_at"`
	Success       bool      `db:"success"`
	CreatedAt     time.Time `db:"created_at"`
}
