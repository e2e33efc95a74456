package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BucketMetric is one element of the bucket_metrics JSONB array.
type BucketMetric struct {
	BucketID   string          `json:"bucket_id"`
	Budget     decimal.Decimal `json:"budget"`
	Spend      decimal.Decimal `json:"spend"`
	SpendPct   float64         `json:"spend_pct"`
	PaceIdeal  decimal.Decimal `json:"pace_ideal"`
	Projection decimal.Decimal `json:"projection"`
}

// MonthlySnapshot is a row of the monthly_snapshots table, unique on (org_id, month).
type MonthlySnapshot struct {
	SnapshotID     string          `db:"snapshot_id"`
	OrgID          string          `db:"org_id"`
	Month          time.Time       `db:"month"`
	BaseIncome     decimal.Decimal `db:"base_income"`
	BaseIncomeMode string          `db:"base_income_mode"`
	BucketMetrics  []BucketMetric  `db:"bucket_metrics"`
	DayRatio       float64         `db:"day_ratio"`
	TotalSpend     decimal.Decimal `db:"total_spend"`
	TotalBudget    decimal.Decimal `db:"total_budget"`
	ComputedAt     time.Time       `db:"computed_at"`
}
