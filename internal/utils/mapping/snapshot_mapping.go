package mapping

import (
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/models"
)

// ToModelSnapshot converts a domain MonthlySnapshot to its row shape
func ToModelSnapshot(d domain.MonthlySnapshot) models.MonthlySnapshot {
	metrics := make([]models.BucketMetric, len(d.BucketMetrics))
	for i, b := range d.BucketMetrics {
		metrics[i] = models.BucketMetric(b)
	}
	return models.MonthlySnapshot{
		SnapshotID:     d.SnapshotID,
		OrgID:          d.OrgID,
		Month:          d.Month,
		BaseIncome:     d.BaseIncome,
		BaseIncomeMode: string(d.BaseIncomeMode),
		BucketMetrics:  metrics,
		DayRatio:       d.DayRatio,
		TotalSpend:     d.TotalSpend,
		TotalBudget:    d.TotalBudget,
		ComputedAt:     d.ComputedAt,
	}
}

// ToDomainSnapshot converts a snapshot row to a domain MonthlySnapshot
func ToDomainSnapshot(m models.MonthlySnapshot) domain.MonthlySnapshot {
	metrics := make([]domain.BucketMetric, len(m.BucketMetrics))
	for i, b := range m.BucketMetrics {
		metrics[i] = domain.BucketMetric(b)
	}
	return domain.MonthlySnapshot{
		SnapshotID:     m.SnapshotID,
		OrgID:          m.OrgID,
		Month:          m.Month,
		BaseIncome:     m.BaseIncome,
		BaseIncomeMode: domain.BaseIncomeMode(m.BaseIncomeMode),
		BucketMetrics:  metrics,
		DayRatio:       m.DayRatio,
		TotalSpend:     m.TotalSpend,
		TotalBudget:    m.TotalBudget,
		ComputedAt:     m.ComputedAt,
	}
}
