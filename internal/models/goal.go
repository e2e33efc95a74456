package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a row of the goals table.
type Goal struct {
	GoalID        string          `db:"goal_id"`
	OrgID         string          `db:"org_id"`
	Name          string          `db:"name"`
	GoalType      string          `db:"goal_type"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	TargetDate    *time.Time      `db:"target_date"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}
