package services

import (
	"context"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// JobSvc runs the scheduled batches over every organization.
type JobSvc interface {
	RunMonthlyMetricsBatch(ctx context.Context, now time.Time) (domain.BatchResult, error)
	RunRecurringBatch(ctx context.Context, now time.Time) (domain.BatchResult, error)
}
