package repositories

import (
	"context"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// AlertCursor resumes an alert listing strictly after (CreatedAt, AlertID).
type AlertCursor struct {
	CreatedAt time.Time
	AlertID   string
}

// AlertReader defines read operations for alert definitions and emitted alerts
type AlertReader interface {
	// ListDefinitions loads the definitions whose code is in codes.
	ListDefinitions(ctx context.Context, codes []domain.AlertCode) ([]domain.AlertDefinition, error)

	// FindLatestAlert returns the most recent alert for (org, code, month), or apperrors.ErrNotFound.
	FindLatestAlert(ctx context.Context, orgID string, code domain.AlertCode, month time.Time) (*domain.Alert, error)

	// ListAlerts lists the month's alerts newest first.
	ListAlerts(ctx context.Context, orgID string, month time.Time, limit int, after *AlertCursor) ([]domain.Alert, error)
}

// AlertWriter defines write operations for emitted alerts
type AlertWriter interface {
	// SaveAlert appends an alert row.
	SaveAlert(ctx context.Context, alert domain.Alert) error
}

// AlertRepositoryFacade combines alert read and write operations
type AlertRepositoryFacade interface {
	AlertReader
	AlertWriter
}
