package dto

import (
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines data for creating a goal.
type CreateGoalRequest struct {
	Name          string           `json:"name" binding:"required,max=80"`
	GoalType      domain.GoalType  `json:"goalType" binding:"required,oneof=emergency_fund savings purchase debt"`
	TargetAmount  decimal.Decimal  `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	TargetDate    *string          `json:"targetDate" binding:"omitempty,datetime=2006-01-02"`
}

// SaveEmergencyFundRequest creates or updates the organization's emergency reserve.
type SaveEmergencyFundRequest struct {
	Name          string           `json:"name" binding:"max=80"`
	TargetAmount  decimal.Decimal  `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	TargetDate    *string          `json:"targetDate" binding:"omitempty,datetime=2006-01-02"`
}

// GoalResponse defines data returned for a goal.
type GoalResponse struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	GoalType      domain.GoalType `json:"goalType"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Progress      float64         `json:"progress"`
	TargetDate    *string         `json:"targetDate,omitempty"`
	IsActive      bool            `json:"isActive"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToGoalResponse converts domain.Goal to DTO.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	res := GoalResponse{
		GoalID:        g.GoalID,
		Name:          g.Name,
		GoalType:      g.GoalType,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Progress:      g.Progress(),
		IsActive:      g.IsActive,
		LastUpdatedAt: g.LastUpdatedAt,
	}
	if g.TargetDate != nil {
		d := g.TargetDate.Format("2006-01-02")
		res.TargetDate = &d
	}
	return res
}

// ToListGoalResponse converts a slice of goals.
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}
