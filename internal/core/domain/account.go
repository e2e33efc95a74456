package domain

import "github.com/shopspring/decimal"

// AccountType classifies where the money lives.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCash       AccountType = "cash"
	AccountCreditCard AccountType = "credit_card"
	AccountInvestment AccountType = "investment"
)

// Account represents a financial account owned by an organization.
type Account struct {
	AccountID      string          `json:"accountID"`
	OrgID          string          `json:"orgID"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	ClosingDay     *int            `json:"closingDay,omitempty"` // Credit cards only
	DueDay         *int            `json:"dueDay,omitempty"`     // Credit cards only
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// HasInvoiceCycle reports whether the account has a statement cycle configured.
func (a Account) HasInvoiceCycle() bool {
	return a.ClosingDay != nil && a.DueDay != nil
}
