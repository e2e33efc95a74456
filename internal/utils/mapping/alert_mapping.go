package mapping

import (
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/models"
)

func ToDomainAlertDefinition(m models.AlertDefinition) domain.AlertDefinition {
	return domain.AlertDefinition{
		Code:            domain.AlertCode(m.Code),
		Severity:        domain.AlertSeverity(m.Severity),
		CooldownHours:   m.CooldownHours,
		HysteresisPct:   m.HysteresisPct,
		MessageTemplate: m.MessageTemplate,
		CTAPrimary:      m.CTAPrimary,
		CTASecondary:    m.CTASecondary,
	}
}

func ToDomainAlertDefinitionSlice(ms []models.AlertDefinition) []domain.AlertDefinition {
	ds := make([]domain.AlertDefinition, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAlertDefinition(m)
	}
	return ds
}

func ToModelAlert(d domain.Alert) models.Alert {
	return models.Alert{
		AlertID:   d.AlertID,
		OrgID:     d.OrgID,
		UserID:    d.UserID,
		Month:     d.Month,
		Code:      string(d.Code),
		Severity:  string(d.Severity),
		Message:   d.Message,
		Context:   d.Context,
		CreatedAt: d.CreatedAt,
	}
}

func ToDomainAlert(m models.Alert) domain.Alert {
	return domain.Alert{
		AlertID:   m.AlertID,
		OrgID:     m.OrgID,
		UserID:    m.UserID,
		Month:     m.Month,
		Code:      domain.AlertCode(m.Code),
		Severity:  domain.AlertSeverity(m.Severity),
		Message:   m.Message,
		Context:   m.Context,
		CreatedAt: m.CreatedAt,
	}
}

func ToDomainAlertSlice(ms []models.Alert) []domain.Alert {
	ds := make([]domain.Alert, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAlert(m)
	}
	return ds
}
