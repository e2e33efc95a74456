package dto

import (
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthQuery selects a month as YYYY-MM. Empty means the current month.
type MonthQuery struct {
	Month string `form:"month" binding:"omitempty,yearmonth"`
}

// BucketMetricResponse is a bucket metric enriched with the bucket name.
type BucketMetricResponse struct {
	BucketID   string          `json:"bucketID"`
	Name       string          `json:"name,omitempty"`
	Budget     decimal.Decimal `json:"budget"`
	Spend      decimal.Decimal `json:"spend"`
	SpendPct   float64         `json:"spendPct"`
	PaceIdeal  decimal.Decimal `json:"paceIdeal"`
	Projection decimal.Decimal `json:"projection"`
}

// MetricsResponse defines data returned for a month's metrics.
type MetricsResponse struct {
	Month          string                 `json:"month"`
	BaseIncome     decimal.Decimal        `json:"baseIncome"`
	BaseIncomeMode domain.BaseIncomeMode  `json:"baseIncomeMode"`
	DayRatio       float64                `json:"dayRatio"`
	TotalSpend     decimal.Decimal        `json:"totalSpend"`
	TotalBudget    decimal.Decimal        `json:"totalBudget"`
	Buckets        []BucketMetricResponse `json:"buckets"`
	ComputedAt     time.Time              `json:"computedAt"`
}

// ComputeMetricsResponse is returned by the manual compute trigger.
type ComputeMetricsResponse struct {
	Metrics       *MetricsResponse `json:"metrics"`
	AlertsEmitted int              `json:"alertsEmitted"`
}

func toBucketMetricResponses(metrics []domain.BucketMetric, names map[string]string) []BucketMetricResponse {
	res := make([]BucketMetricResponse, len(metrics))
	for i, m := range metrics {
		res[i] = BucketMetricResponse{
			BucketID:   m.BucketID,
			Name:       names[m.BucketID],
			Budget:     m.Budget,
			Spend:      m.Spend,
			SpendPct:   m.SpendPct,
			PaceIdeal:  m.PaceIdeal,
			Projection: m.Projection,
		}
	}
	return res
}

// ToMetricsResponse converts computed metrics to DTO.
func ToMetricsResponse(m *domain.MonthlyMetrics, names map[string]string) *MetricsResponse {
	if m == nil {
		return nil
	}
	return &MetricsResponse{
		Month:          m.Month.Format("2006-01"),
		BaseIncome:     m.BaseIncome,
		BaseIncomeMode: m.BaseIncomeMode,
		DayRatio:       m.DayRatio,
		TotalSpend:     m.TotalSpend,
		TotalBudget:    m.TotalBudget,
		Buckets:        toBucketMetricResponses(m.Buckets, names),
		ComputedAt:     m.ComputedAt,
	}
}

// ToSnapshotResponse converts a stored snapshot to DTO.
func ToSnapshotResponse(s *domain.MonthlySnapshot, names map[string]string) *MetricsResponse {
	return &MetricsResponse{
		Month:          s.Month.Format("2006-01"),
		BaseIncome:     s.BaseIncome,
		BaseIncomeMode: s.BaseIncomeMode,
		DayRatio:       s.DayRatio,
		TotalSpend:     s.TotalSpend,
		TotalBudget:    s.TotalBudget,
		Buckets:        toBucketMetricResponses(s.BucketMetrics, names),
		ComputedAt:     s.ComputedAt,
	}
}
