package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType classifies a savings goal.
type GoalType string

const (
	GoalEmergencyFund GoalType = "emergency_fund"
	GoalSavings       GoalType = "savings"
	GoalPurchase      GoalType = "purchase"
	GoalDebt          GoalType = "debt"
)

// Valid reports whether t is a known goal type.
func (t GoalType) Valid() bool {
	switch t {
	case GoalEmergencyFund, GoalSavings, GoalPurchase, GoalDebt:
		return true
	}
	return false
}

// Goal is a savings target owned by an organization.
type Goal struct {
	GoalID        string          `json:"goalID"`
	OrgID         string          `json:"orgID"`
	Name          string          `json:"name"`
	GoalType      GoalType        `json:"goalType"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    *time.Time      `json:"targetDate,omitempty"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// Progress returns CurrentAmount/TargetAmount as a percentage.
func (g Goal) Progress() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
