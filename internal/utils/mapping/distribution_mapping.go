package mapping

import (
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelDistribution converts a domain Distribution to a model Distribution. Buckets are mapped separately.
func ToModelDistribution(d domain.Distribution) models.Distribution {
	m := models.Distribution{
		DistributionID: d.DistributionID,
		OrgID:          d.OrgID,
		Name:           d.Name,
		IsDefault:      d.IsDefault,
		EditMode:       string(d.EditMode),
		BaseIncomeMode: string(d.BaseIncomeMode),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.PlannedIncome != nil {
		m.PlannedIncome = decimal.NewNullDecimal(*d.PlannedIncome)
	}
	return m
}

// ToDomainDistribution converts a model Distribution and its bucket rows to a domain Distribution
func ToDomainDistribution(m models.Distribution, buckets []models.Bucket) domain.Distribution {
	d := domain.Distribution{
		DistributionID: m.DistributionID,
		OrgID:          m.OrgID,
		Name:           m.Name,
		IsDefault:      m.IsDefault,
		EditMode:       domain.EditMode(m.EditMode),
		BaseIncomeMode: domain.BaseIncomeMode(m.BaseIncomeMode),
		Buckets:        ToDomainBucketSlice(buckets),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.PlannedIncome.Valid {
		planned := m.PlannedIncome.Decimal
		d.PlannedIncome = &planned
	}
	return d
}

func ToModelBucket(d domain.Bucket) models.Bucket {
	return models.Bucket{
		BucketID:       d.BucketID,
		DistributionID: d.DistributionID,
		Name:           d.Name,
		PercentBps:     d.PercentBps,
		Color:          d.Color,
		Icon:           d.Icon,
		SortOrder:      d.SortOrder,
		IsFlexible:     d.IsFlexible,
	}
}

func ToDomainBucket(m models.Bucket) domain.Bucket {
	return domain.Bucket{
		BucketID:       m.BucketID,
		DistributionID: m.DistributionID,
		Name:           m.Name,
		PercentBps:     m.PercentBps,
		Color:          m.Color,
		Icon:           m.Icon,
		SortOrder:      m.SortOrder,
		IsFlexible:     m.IsFlexible,
	}
}

func ToDomainBucketSlice(ms []models.Bucket) []domain.Bucket {
	ds := make([]domain.Bucket, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBucket(m)
	}
	return ds
}
