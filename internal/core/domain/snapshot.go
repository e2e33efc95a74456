package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BucketMetric is the computed state of a single bucket for one month.
type BucketMetric struct {
	BucketID   string          `json:"bucket_id"`
	Budget     decimal.Decimal `json:"budget"`
	Spend      decimal.Decimal `json:"spend"`
	SpendPct   float64         `json:"spend_pct"`
	PaceIdeal  decimal.Decimal `json:"pace_ideal"`
	Projection decimal.Decimal `json:"projection"`
}

// MonthlyMetrics is the result of a metrics computation for (org, month).
type MonthlyMetrics struct {
	OrgID          string          `json:"orgID"`
	Month          time.Time       `json:"month"` // First day of the month
	DistributionID string          `json:"distributionID"`
	BaseIncome     decimal.Decimal `json:"baseIncome"`
	BaseIncomeMode BaseIncomeMode  `json:"baseIncomeMode"`
	DayRatio       float64         `json:"dayRatio"`
	TotalSpend     decimal.Decimal `json:"totalSpend"`
	TotalBudget    decimal.Decimal `json:"totalBudget"`
	Buckets        []BucketMetric  `json:"buckets"` // Distribution sort order
	ComputedAt     time.Time       `json:"computedAt"`
}

// MonthlySnapshot is the persisted cache of MonthlyMetrics, one per (org, month).
type MonthlySnapshot struct {
	SnapshotID     string          `json:"snapshotID"`
	OrgID          string          `json:"orgID"`
	Month          time.Time       `json:"month"`
	BaseIncome     decimal.Decimal `json:"baseIncome"`
	BaseIncomeMode BaseIncomeMode  `json:"baseIncomeMode"`
	BucketMetrics  []BucketMetric  `json:"bucketMetrics"`
	DayRatio       float64         `json:"dayRatio"`
	TotalSpend     decimal.Decimal `json:"totalSpend"`
	TotalBudget    decimal.Decimal `json:"totalBudget"`
	ComputedAt     time.Time       `json:"computedAt"`
}

// ToSnapshot converts computed metrics into their persisted form.
func (m MonthlyMetrics) ToSnapshot() MonthlySnapshot {
	return MonthlySnapshot{
		OrgID:          m.OrgID,
		Month:          m.Month,
		BaseIncome:     m.BaseIncome,
		BaseIncomeMode: m.BaseIncomeMode,
		BucketMetrics:  m.Buckets,
		DayRatio:       m.DayRatio,
		TotalSpend:     m.TotalSpend,
		TotalBudget:    m.TotalBudget,
		ComputedAt:     m.ComputedAt,
	}
}
