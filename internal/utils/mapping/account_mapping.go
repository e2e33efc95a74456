package mapping

import (
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		OrgID:          d.OrgID,
		Name:           d.Name,
		AccountType:    string(d.AccountType),
		InitialBalance: d.InitialBalance,
		ClosingDay:     d.ClosingDay,
		DueDay:         d.DueDay,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		OrgID:          m.OrgID,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		InitialBalance: m.InitialBalance,
		ClosingDay:     m.ClosingDay,
		DueDay:         m.DueDay,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
