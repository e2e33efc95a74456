package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/middleware"
	"github.com/moedinha/moedinha_backend/internal/utils/dates"
)

// jobService implements the JobSvc interface. Organizations are processed
// one at a time; a failure is recorded and the loop moves on.
type jobService struct {
	BaseService
	orgRepo   portsrepo.OrgReader
	metrics   portssvc.MetricsSvc
	alerts    portssvc.AlertEvaluatorSvc
	recurring portssvc.RecurringEngineSvc
	loc       *time.Location
}

// NewJobService creates a new job service with the provided dependencies
func NewJobService(
	orgRepo portsrepo.OrgReader,
	metrics portssvc.MetricsSvc,
	alerts portssvc.AlertEvaluatorSvc,
	recurring portssvc.RecurringEngineSvc,
	loc *time.Location,
) portssvc.JobSvc {
	if loc == nil {
		loc = time.UTC
	}
	return &jobService{
		orgRepo:   orgRepo,
		metrics:   metrics,
		alerts:    alerts,
		recurring: recurring,
		loc:       loc,
	}
}

var _ portssvc.JobSvc = (*jobService)(nil)

// orgStep processes one organization and reports how many items it emitted.
// skipped is true when there was nothing to do.
type orgStep func(ctx context.Context, scope domain.Scope) (emitted int, skipped bool, err error)

func (s *jobService) RunMonthlyMetricsBatch(ctx context.Context, now time.Time) (domain.BatchResult, error) {
	now = now.In(s.loc)
	month := dates.MonthStart(now)
	return s.runBatch(ctx, "monthly_metrics", now, func(ctx context.Context, scope domain.Scope) (int, bool, error) {
		metrics, err := s.metrics.ComputeMonthlyMetrics(ctx, scope, month)
		if err != nil {
			return 0, false, fmt.Errorf("computing metrics: %w", err)
		}
		if metrics == nil {
			return 0, true, nil
		}
		names, err := s.metrics.BucketNames(ctx, scope)
		if err != nil {
			return 0, false, fmt.Errorf("loading bucket names: %w", err)
		}
		pending, err := s.metrics.PendingStats(ctx, scope, month)
		if err != nil {
			return 0, false, fmt.Errorf("loading pending stats: %w", err)
		}
		emitted, err := s.alerts.GenerateAlerts(ctx, scope, month, metrics, names, pending)
		if err != nil {
			return 0, false, fmt.Errorf("generating alerts: %w", err)
		}
		return emitted, false, nil
	})
}

func (s *jobService) RunRecurringBatch(ctx context.Context, now time.Time) (domain.BatchResult, error) {
	now = now.In(s.loc)
	return s.runBatch(ctx, "recurring", now, func(ctx context.Context, scope domain.Scope) (int, bool, error) {
		res, err := s.recurring.ProcessRecurringRules(ctx, scope)
		if err != nil {
			return 0, false, err
		}
		if res.Failed > 0 {
			return res.Processed, false, fmt.Errorf("%d recurring rules failed", res.Failed)
		}
		return res.Processed, res.Processed == 0, nil
	})
}

func (s *jobService) runBatch(ctx context.Context, job string, now time.Time, step orgStep) (domain.BatchResult, error) {
	var result domain.BatchResult
	logger := s.GetLogger(ctx).With(slog.String("job", job))

	orgIDs, err := s.orgRepo.ListOrgIDs(ctx)
	if err != nil {
		logger.Error("Failed to list organizations", slog.String("error", err.Error()))
		return result, fmt.Errorf("listing organizations: %w", err)
	}
	result.Orgs = len(orgIDs)

	for _, orgID := range orgIDs {
		if err := ctx.Err(); err != nil {
			logger.Warn("Batch interrupted", slog.Int("remaining", result.Orgs-result.Succeeded-result.Failed-result.Skipped))
			return result, err
		}
		scope := domain.Scope{OrgID: orgID, Now: now}
		orgCtx := middleware.ContextWithLogger(ctx, logger.With(slog.String("org_id", orgID)))

		emitted, skipped, err := step(orgCtx, scope)
		result.Emitted += emitted
		switch {
		case err != nil:
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", orgID, err))
			s.LogError(orgCtx, err, "Batch step failed for organization")
		case skipped:
			result.Skipped++
		default:
			result.Succeeded++
		}
	}

	logger.Info("Batch finished",
		slog.Int("orgs", result.Orgs),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
		slog.Int("emitted", result.Emitted))
	return result, nil
}
