package dto

import (
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// ListAlertsParams defines query parameters for listing alerts.
type ListAlertsParams struct {
	Month     string `form:"month" binding:"omitempty,yearmonth"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// AlertResponse defines data returned for an alert.
type AlertResponse struct {
	AlertID   string               `json:"alertID"`
	Code      domain.AlertCode     `json:"code"`
	Severity  domain.AlertSeverity `json:"severity"`
	Message   string               `json:"message"`
	Context   map[string]any       `json:"context"`
	Month     string               `json:"month"`
	CreatedAt time.Time            `json:"createdAt"`
}

// ListAlertsResponse wraps a page of alerts.
type ListAlertsResponse struct {
	Alerts    []AlertResponse `json:"alerts"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToAlertResponse converts domain.Alert to DTO.
func ToAlertResponse(a domain.Alert) AlertResponse {
	return AlertResponse{
		AlertID:   a.AlertID,
		Code:      a.Code,
		Severity:  a.Severity,
		Message:   a.Message,
		Context:   a.Context,
		Month:     a.Month.Format("2006-01"),
		CreatedAt: a.CreatedAt,
	}
}
