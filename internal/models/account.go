package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a money account of an organization.
// ClosingDay and DueDay are only filled for credit cards.
type Account struct {
	AccountID      string          `db:"account_id"`
	OrgID          string          `db:"org_id"`
	Name           string          `db:"name"`
	AccountType    string          `db:"account_type"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	ClosingDay     *int            `db:"closing_day"`
	DueDay         *int            `db:"due_day"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
