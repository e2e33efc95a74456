package mapping

import (
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/models"
)

// ToModelRecurringRule converts a domain RecurringRule to a model RecurringRule
func ToModelRecurringRule(d domain.RecurringRule) models.RecurringRule {
	return models.RecurringRule{
		RuleID:      d.RuleID,
		OrgID:       d.OrgID,
		Description: d.Description,
		Amount:      d.Amount,
		AccountID:   d.AccountID,
		CategoryID:  d.CategoryID,
		BucketID:    d.BucketID,
		Frequency:   string(d.Frequency),
		DayOfMonth:  d.DayOfMonth,
		DayOfWeek:   d.DayOfWeek,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecurringRule converts a model RecurringRule to a domain RecurringRule
func ToDomainRecurringRule(m models.RecurringRule) domain.RecurringRule {
	return domain.RecurringRule{
		RuleID:      m.RuleID,
		OrgID:       m.OrgID,
		Description: m.Description,
		Amount:      m.Amount,
		AccountID:   m.AccountID,
		CategoryID:  m.CategoryID,
		BucketID:    m.BucketID,
		Frequency:   domain.Frequency(m.Frequency),
		DayOfMonth:  m.DayOfMonth,
		DayOfWeek:   m.DayOfWeek,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRecurringRuleSlice converts a slice of model rules to domain rules
func ToDomainRecurringRuleSlice(ms []models.RecurringRule) []domain.RecurringRule {
	ds := make([]domain.RecurringRule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecurringRule(m)
	}
	return ds
}

func ToModelRecurringRun(d domain.RecurringRun) models.RecurringRun {
	return models.RecurringRun(d)
}

func ToDomainRecurringRun(m models.RecurringRun) domain.RecurringRun {
	return domain.RecurringRun(m)
}
