package mapping

import (
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/models"
)

// ToModelGoal converts a domain Goal to a model Goal
func ToModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:        d.GoalID,
		OrgID:         d.OrgID,
		Name:          d.Name,
		GoalType:      string(d.GoalType),
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		TargetDate:    d.TargetDate,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGoal converts a model Goal to a domain Goal
func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:        m.GoalID,
		OrgID:         m.OrgID,
		Name:          m.Name,
		GoalType:      domain.GoalType(m.GoalType),
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		TargetDate:    m.TargetDate,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGoalSlice converts a slice of model Goals to domain Goals
func ToDomainGoalSlice(ms []models.Goal) []domain.Goal {
	ds := make([]domain.Goal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGoal(m)
	}
	return ds
}
