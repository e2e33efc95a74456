package services

import (
	"context"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// MetricsSvc computes and reads monthly bucket metrics.
type MetricsSvc interface {
	// ComputeMonthlyMetrics computes and persists the month's snapshot. It returns
	// nil metrics (and no error) when the organization has no distribution or no buckets.
	ComputeMonthlyMetrics(ctx context.Context, scope domain.Scope, month time.Time) (*domain.MonthlyMetrics, error)

	// GetSnapshot reads the stored snapshot for the month.
	GetSnapshot(ctx context.Context, scope domain.Scope, month time.Time) (*domain.MonthlySnapshot, error)

	// PendingStats counts the month's expenses without a bucket.
	PendingStats(ctx context.Context, scope domain.Scope, month time.Time) (domain.PendingStats, error)

	// BucketNames maps bucket ids of the active distribution to their names.
	BucketNames(ctx context.Context, scope domain.Scope) (map[string]string, error)
}
