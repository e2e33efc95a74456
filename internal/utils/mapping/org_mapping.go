package mapping

import (
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/models"
)

func ToModelOrg(d domain.Org) models.Org {
	return models.Org{
		OrgID:       d.OrgID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainMembership(m models.OrgMembership) domain.OrgMembership {
	return domain.OrgMembership{
		OrgID:    m.OrgID,
		UserID:   m.UserID,
		Role:     domain.OrgRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

func ToDomainMembershipSlice(ms []models.OrgMembership) []domain.OrgMembership {
	ds := make([]domain.OrgMembership, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMembership(m)
	}
	return ds
}
