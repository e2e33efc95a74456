package services

import (
	"context"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/dto"
)

// AlertEvaluatorSvc decides which alerts fire for a month.
type AlertEvaluatorSvc interface {
	// GenerateAlerts evaluates every known rule against the metrics and returns the number of alerts emitted.
	GenerateAlerts(ctx context.Context, scope domain.Scope, month time.Time, metrics *domain.MonthlyMetrics, bucketNames map[string]string, pending domain.PendingStats) (int, error)
}

// AlertReaderSvc lists emitted alerts.
type AlertReaderSvc interface {
	ListAlerts(ctx context.Context, scope domain.Scope, month time.Time, params dto.ListAlertsParams) (*dto.ListAlertsResponse, error)
}

// AlertSvcFacade combines alert evaluation and listing
type AlertSvcFacade interface {
	AlertEvaluatorSvc
	AlertReaderSvc
}

// AlertNotifier delivers an emitted alert to an out-of-band channel.
type AlertNotifier interface {
	NotifyAlert(ctx context.Context, alert domain.Alert) error
}

// EventTracker records product analytics events.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}
