package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/utils/accounting"
	"github.com/moedinha/moedinha_backend/internal/utils/dates"
	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	totalBps = decimal.NewFromInt(domain.TotalBps)
)

// metricsService implements the MetricsSvc interface
type metricsService struct {
	BaseService
	distributionRepo portsrepo.DistributionReader
	transactionRepo  portsrepo.TransactionReader
	snapshotRepo     portsrepo.SnapshotRepositoryFacade
}

// NewMetricsService creates a new metrics service with the provided dependencies
func NewMetricsService(
	distributionRepo portsrepo.DistributionReader,
	transactionRepo portsrepo.TransactionReader,
	snapshotRepo portsrepo.SnapshotRepositoryFacade,
) portssvc.MetricsSvc {
	return &metricsService{
		distributionRepo: distributionRepo,
		transactionRepo:  transactionRepo,
		snapshotRepo:     snapshotRepo,
	}
}

var _ portssvc.MetricsSvc = (*metricsService)(nil)

func (s *metricsService) ComputeMonthlyMetrics(ctx context.Context, scope domain.Scope, month time.Time) (*domain.MonthlyMetrics, error) {
	month = dates.MonthStart(dates.In(month, scope.Location()))
	monthAttr := slog.String("month", month.Format(dates.YearMonthLayout))

	dist, err := s.distributionRepo.FindActiveDistribution(ctx, scope.OrgID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No distribution configured, skipping metrics", orgAttr(scope), monthAttr)
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to load active distribution", orgAttr(scope))
		return nil, err
	}
	if len(dist.Buckets) == 0 {
		s.LogDebug(ctx, "Distribution has no buckets, skipping metrics",
			orgAttr(scope), slog.String("distribution_id", dist.DistributionID))
		return nil, nil
	}

	baseIncome, mode, err := s.resolveBaseIncome(ctx, scope, dist, month)
	if err != nil {
		return nil, err
	}

	monthEnd := dates.MonthEnd(month)
	daysInMonth := dates.DaysInMonth(month)
	elapsed := elapsedDays(month, monthEnd, scope.Today())
	dayRatio := clamp01(float64(elapsed) / float64(daysInMonth))

	expenses, err := s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		OrgID: scope.OrgID,
		From:  month,
		To:    monthEnd,
		Types: []domain.TransactionType{domain.TransactionExpense},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load month expenses", orgAttr(scope), monthAttr)
		return nil, fmt.Errorf("loading expenses: %w", err)
	}
	spendByBucket := accounting.SpendByBucket(expenses)

	metrics := &domain.MonthlyMetrics{
		OrgID:          scope.OrgID,
		Month:          month,
		DistributionID: dist.DistributionID,
		BaseIncome:     baseIncome,
		BaseIncomeMode: mode,
		DayRatio:       dayRatio,
		TotalSpend:     decimal.Zero,
		TotalBudget:    decimal.Zero,
		Buckets:        make([]domain.BucketMetric, 0, len(dist.Buckets)),
		ComputedAt:     scope.Now,
	}
	for _, bucket := range dist.Buckets {
		m := bucketMetric(bucket, baseIncome, spendByBucket[bucket.BucketID], dayRatio, elapsed, daysInMonth)
		metrics.Buckets = append(metrics.Buckets, m)
		metrics.TotalSpend = metrics.TotalSpend.Add(m.Spend)
		metrics.TotalBudget = metrics.TotalBudget.Add(m.Budget)
	}

	snapshot := metrics.ToSnapshot()
	snapshot.SnapshotID = uuid.NewString()
	if err := s.snapshotRepo.UpsertSnapshot(ctx, snapshot); err != nil {
		s.LogError(ctx, err, "Failed to persist monthly snapshot", orgAttr(scope), monthAttr)
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	s.LogInfo(ctx, "Monthly metrics computed",
		orgAttr(scope), monthAttr,
		slog.String("base_income", baseIncome.String()),
		slog.String("mode", string(mode)),
		slog.Float64("day_ratio", dayRatio))
	return metrics, nil
}

// bucketMetric derives budget, spend, pace and projection of one bucket.
func bucketMetric(bucket domain.Bucket, baseIncome, spend decimal.Decimal, dayRatio float64, elapsed, daysInMonth int) domain.BucketMetric {
	budget := baseIncome.Mul(decimal.NewFromInt(int64(bucket.PercentBps))).Div(totalBps).Round(2)

	spendPct := 0.0
	if !budget.IsZero() {
		spendPct = spend.Div(budget).Mul(hundred).Round(4).InexactFloat64()
	}

	projection := decimal.Zero
	if elapsed > 0 {
		projection = spend.Mul(decimal.NewFromInt(int64(daysInMonth))).Div(decimal.NewFromInt(int64(elapsed))).Round(2)
	}

	return domain.BucketMetric{
		BucketID:   bucket.BucketID,
		Budget:     budget,
		Spend:      spend,
		SpendPct:   spendPct,
		PaceIdeal:  budget.Mul(decimal.NewFromFloat(dayRatio)).Round(2),
		Projection: projection,
	}
}

// resolveBaseIncome returns the base income and the mode actually used to derive it.
func (s *metricsService) resolveBaseIncome(ctx context.Context, scope domain.Scope, dist *domain.Distribution, month time.Time) (decimal.Decimal, domain.BaseIncomeMode, error) {
	mode := dist.BaseIncomeMode
	if mode == domain.IncomePlannedManual {
		if dist.PlannedIncome != nil {
			return *dist.PlannedIncome, mode, nil
		}
		s.LogWarn(ctx, "Planned income missing, falling back to current month income",
			orgAttr(scope), slog.String("distribution_id", dist.DistributionID))
		mode = domain.IncomeCurrentMonth
	}

	window := mode.TrailingMonths()
	if window == 0 {
		mode = domain.IncomeCurrentMonth
		window = 1
	}

	income, err := s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		OrgID: scope.OrgID,
		From:  dates.AddMonths(month, -(window - 1)),
		To:    dates.MonthEnd(month),
		Types: []domain.TransactionType{domain.TransactionIncome},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load income", orgAttr(scope), slog.String("mode", string(mode)))
		return decimal.Zero, mode, fmt.Errorf("loading income: %w", err)
	}

	byMonth := accounting.IncomeByMonth(income)
	if mode == domain.IncomeCurrentMonth {
		total := decimal.Zero
		for _, v := range byMonth {
			total = total.Add(v)
		}
		return total, mode, nil
	}
	return accounting.AverageIncome(byMonth), mode, nil
}

func (s *metricsService) GetSnapshot(ctx context.Context, scope domain.Scope, month time.Time) (*domain.MonthlySnapshot, error) {
	month = dates.MonthStart(dates.In(month, scope.Location()))
	snapshot, err := s.snapshotRepo.FindSnapshot(ctx, scope.OrgID, month)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load snapshot", orgAttr(scope))
		}
		return nil, err
	}
	return snapshot, nil
}

func (s *metricsService) PendingStats(ctx context.Context, scope domain.Scope, month time.Time) (domain.PendingStats, error) {
	month = dates.MonthStart(dates.In(month, scope.Location()))
	expenses, err := s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		OrgID: scope.OrgID,
		From:  month,
		To:    dates.MonthEnd(month),
		Types: []domain.TransactionType{domain.TransactionExpense},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for pending stats", orgAttr(scope))
		return domain.PendingStats{}, err
	}
	return accounting.PendingStats(expenses), nil
}

func (s *metricsService) BucketNames(ctx context.Context, scope domain.Scope) (map[string]string, error) {
	names := map[string]string{}
	dist, err := s.distributionRepo.FindActiveDistribution(ctx, scope.OrgID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return names, nil
		}
		return nil, err
	}
	for _, b := range dist.Buckets {
		names[b.BucketID] = b.Name
	}
	return names, nil
}

// elapsedDays counts the days from monthStart through min(today, monthEnd), inclusive.
// It is zero or negative for future months.
func elapsedDays(monthStart, monthEnd, today time.Time) int {
	through := today
	if through.After(monthEnd) {
		through = monthEnd
	}
	return dates.DaysBetween(monthStart, through) + 1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
