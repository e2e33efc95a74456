package dto

import (
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringRuleRequest defines data for creating a recurring rule.
// Dates use YYYY-MM-DD.
type CreateRecurringRuleRequest struct {
	Description string           `json:"description" binding:"required,max=200"`
	Amount      decimal.Decimal  `json:"amount"`
	AccountID   string           `json:"accountID" binding:"required"`
	CategoryID  *string          `json:"categoryID"`
	BucketID    *string          `json:"bucketID"`
	Frequency   domain.Frequency `json:"frequency" binding:"required,oneof=weekly monthly yearly"`
	StartDate   string           `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     *string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateRecurringRuleRequest updates a recurring rule.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateRecurringRuleRequest struct {
	Description *string           `json:"description" binding:"omitempty,max=200"`
	Amount      *decimal.Decimal  `json:"amount"`
	AccountID   *string           `json:"accountID"`
	CategoryID  *string           `json:"categoryID"`
	BucketID    *string           `json:"bucketID"`
	Frequency   *domain.Frequency `json:"frequency" binding:"omitempty,oneof=weekly monthly yearly"`
	StartDate   *string           `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string           `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	IsActive    *bool             `json:"isActive"`
}

// RecurringRuleResponse defines data returned for a recurring rule.
type RecurringRuleResponse struct {
	RuleID      string           `json:"ruleID"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	AccountID   string           `json:"accountID"`
	CategoryID  *string          `json:"categoryID,omitempty"`
	BucketID    *string          `json:"bucketID,omitempty"`
	Frequency   domain.Frequency `json:"frequency"`
	DayOfMonth  *int             `json:"dayOfMonth,omitempty"`
	DayOfWeek   *int             `json:"dayOfWeek,omitempty"`
	StartDate   string           `json:"startDate"`
	EndDate     *string          `json:"endDate,omitempty"`
	IsActive    bool             `json:"isActive"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ToRecurringRuleResponse converts domain.RecurringRule to DTO.
func ToRecurringRuleResponse(r *domain.RecurringRule) RecurringRuleResponse {
	res := RecurringRuleResponse{
		RuleID:      r.RuleID,
		Description: r.Description,
		Amount:      r.Amount,
		AccountID:   r.AccountID,
		CategoryID:  r.CategoryID,
		BucketID:    r.BucketID,
		Frequency:   r.Frequency,
		DayOfMonth:  r.DayOfMonth,
		DayOfWeek:   r.DayOfWeek,
		StartDate:   r.StartDate.Format("2006-01-02"),
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
	}
	if r.EndDate != nil {
		end := r.EndDate.Format("2006-01-02")
		res.EndDate = &end
	}
	return res
}

// ToListRecurringRuleResponse converts a slice of rules.
func ToListRecurringRuleResponse(rules []domain.RecurringRule) []RecurringRuleResponse {
	res := make([]RecurringRuleResponse, len(rules))
	for i := range rules {
		res[i] = ToRecurringRuleResponse(&rules[i])
	}
	return res
}
