package handlers_test

import (
	"context"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock OrgService ---
type MockOrgService struct {
	mock.Mock
}

func (m *MockOrgService) ResolveActiveOrg(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockOrgService) CreateOrg(ctx context.Context, userID, name string) (*domain.Org, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Org), args.Error(1)
}

var _ portssvc.OrgSvcFacade = (*MockOrgService)(nil)

// --- Mock DistributionService ---
type MockDistributionService struct {
	mock.Mock
}

func (m *MockDistributionService) GetActiveDistribution(ctx context.Context, scope domain.Scope) (*domain.Distribution, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distribution), args.Error(1)
}

func (m *MockDistributionService) ListDistributions(ctx context.Context, scope domain.Scope) ([]domain.Distribution, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Distribution), args.Error(1)
}

func (m *MockDistributionService) CreateDistribution(ctx context.Context, scope domain.Scope, req dto.CreateDistributionRequest) (*domain.Distribution, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distribution), args.Error(1)
}

func (m *MockDistributionService) SaveBuckets(ctx context.Context, scope domain.Scope, distributionID string, req dto.SaveBucketsRequest) (*domain.Distribution, error) {
	args := m.Called(ctx, scope, distributionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distribution), args.Error(1)
}

func (m *MockDistributionService) SetDefault(ctx context.Context, scope domain.Scope, distributionID string) error {
	args := m.Called(ctx, scope, distributionID)
	return args.Error(0)
}

func (m *MockDistributionService) UpdateSettings(ctx context.Context, scope domain.Scope, distributionID string, req dto.UpdateDistributionSettingsRequest) (*domain.Distribution, error) {
	args := m.Called(ctx, scope, distributionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distribution), args.Error(1)
}

func (m *MockDistributionService) PreviewAutoBalance(ctx context.Context, req dto.AutoBalanceRequest) ([]domain.Bucket, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bucket), args.Error(1)
}

var _ portssvc.DistributionSvcFacade = (*MockDistributionService)(nil)

// --- Mock MetricsService ---
type MockMetricsService struct {
	mock.Mock
}

func (m *MockMetricsService) ComputeMonthlyMetrics(ctx context.Context, scope domain.Scope, month time.Time) (*domain.MonthlyMetrics, error) {
	args := m.Called(ctx, scope, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyMetrics), args.Error(1)
}

func (m *MockMetricsService) GetSnapshot(ctx context.Context, scope domain.Scope, month time.Time) (*domain.MonthlySnapshot, error) {
	args := m.Called(ctx, scope, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySnapshot), args.Error(1)
}

func (m *MockMetricsService) PendingStats(ctx context.Context, scope domain.Scope, month time.Time) (domain.PendingStats, error) {
	args := m.Called(ctx, scope, month)
	return args.Get(0).(domain.PendingStats), args.Error(1)
}

func (m *MockMetricsService) BucketNames(ctx context.Context, scope domain.Scope) (map[string]string, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

var _ portssvc.MetricsSvc = (*MockMetricsService)(nil)

// --- Mock AlertService ---
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) GenerateAlerts(ctx context.Context, scope domain.Scope, month time.Time, metrics *domain.MonthlyMetrics, bucketNames map[string]string, pending domain.PendingStats) (int, error) {
	args := m.Called(ctx, scope, month, metrics, bucketNames, pending)
	return args.Int(0), args.Error(1)
}

func (m *MockAlertService) ListAlerts(ctx context.Context, scope domain.Scope, month time.Time, params dto.ListAlertsParams) (*dto.ListAlertsResponse, error) {
	args := m.Called(ctx, scope, month, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListAlertsResponse), args.Error(1)
}

var _ portssvc.AlertSvcFacade = (*MockAlertService)(nil)

// --- Mock RecurringService ---
type MockRecurringService struct {
	mock.Mock
}

func (m *MockRecurringService) ProcessRecurringRules(ctx context.Context, scope domain.Scope) (domain.RecurringProcessResult, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(domain.RecurringProcessResult), args.Error(1)
}

func (m *MockRecurringService) CreateRule(ctx context.Context, scope domain.Scope, req dto.CreateRecurringRuleRequest) (*domain.RecurringRule, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringService) UpdateRule(ctx context.Context, scope domain.Scope, ruleID string, req dto.UpdateRecurringRuleRequest) (*domain.RecurringRule, error) {
	args := m.Called(ctx, scope, ruleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringService) ListRules(ctx context.Context, scope domain.Scope) ([]domain.RecurringRule, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringService) DeactivateRule(ctx context.Context, scope domain.Scope, ruleID string) error {
	args := m.Called(ctx, scope, ruleID)
	return args.Error(0)
}

var _ portssvc.RecurringSvcFacade = (*MockRecurringService)(nil)

// --- Mock CalendarService ---
type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) GetMonthFinancialEvents(ctx context.Context, scope domain.Scope, year, month int) (*domain.MonthCalendar, error) {
	args := m.Called(ctx, scope, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthCalendar), args.Error(1)
}

var _ portssvc.CalendarSvc = (*MockCalendarService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoiceData(ctx context.Context, scope domain.Scope, accountID string, year, month int) (*domain.InvoiceData, error) {
	args := m.Called(ctx, scope, accountID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceData), args.Error(1)
}

func (m *MockInvoiceService) GetAvailableInvoices(ctx context.Context, scope domain.Scope, accountID string) ([]domain.InvoiceRef, error) {
	args := m.Called(ctx, scope, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceRef), args.Error(1)
}

var _ portssvc.InvoiceSvc = (*MockInvoiceService)(nil)

// --- Mock GoalService ---
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) ListGoals(ctx context.Context, scope domain.Scope) ([]domain.Goal, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalService) GetEmergencyFund(ctx context.Context, scope domain.Scope) (*domain.Goal, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) CreateGoal(ctx context.Context, scope domain.Scope, req dto.CreateGoalRequest) (*domain.Goal, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) SaveEmergencyFund(ctx context.Context, scope domain.Scope, req dto.SaveEmergencyFundRequest) (*domain.Goal, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

var _ portssvc.GoalSvcFacade = (*MockGoalService)(nil)

// --- Mock JobService ---
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) RunMonthlyMetricsBatch(ctx context.Context, now time.Time) (domain.BatchResult, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(domain.BatchResult), args.Error(1)
}

func (m *MockJobService) RunRecurringBatch(ctx context.Context, now time.Time) (domain.BatchResult, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(domain.BatchResult), args.Error(1)
}

var _ portssvc.JobSvc = (*MockJobService)(nil)
