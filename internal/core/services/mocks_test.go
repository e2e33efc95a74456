package services_test

import (
	"context"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var assertErr = assert.AnError

// --- Repository mocks ---

type MockOrgRepository struct {
	mock.Mock
}

func (m *MockOrgRepository) ListMembershipsByUser(ctx context.Context, userID string) ([]domain.OrgMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrgMembership), args.Error(1)
}

func (m *MockOrgRepository) ListOrgIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockOrgRepository) SaveOrg(ctx context.Context, org domain.Org, owner domain.OrgMembership) error {
	args := m.Called(ctx, org, owner)
	return args.Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, orgID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, orgID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionMonths(ctx context.Context, orgID, accountID string) ([]domain.InvoiceRef, error) {
	args := m.Called(ctx, orgID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceRef), args.Error(1)
}

type MockDistributionRepository struct {
	mock.Mock
}

func (m *MockDistributionRepository) FindActiveDistribution(ctx context.Context, orgID string) (*domain.Distribution, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distribution), args.Error(1)
}

func (m *MockDistributionRepository) FindDistributionByID(ctx context.Context, orgID, distributionID string) (*domain.Distribution, error) {
	args := m.Called(ctx, orgID, distributionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distribution), args.Error(1)
}

func (m *MockDistributionRepository) ListDistributions(ctx context.Context, orgID string) ([]domain.Distribution, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Distribution), args.Error(1)
}

func (m *MockDistributionRepository) SaveDistribution(ctx context.Context, distribution domain.Distribution) error {
	args := m.Called(ctx, distribution)
	return args.Error(0)
}

func (m *MockDistributionRepository) ReplaceBuckets(ctx context.Context, distributionID string, buckets []domain.Bucket) error {
	args := m.Called(ctx, distributionID, buckets)
	return args.Error(0)
}

func (m *MockDistributionRepository) SetDefault(ctx context.Context, orgID, distributionID, userID string) error {
	args := m.Called(ctx, orgID, distributionID, userID)
	return args.Error(0)
}

func (m *MockDistributionRepository) UpdateSettings(ctx context.Context, distribution domain.Distribution) error {
	args := m.Called(ctx, distribution)
	return args.Error(0)
}

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) FindSnapshot(ctx context.Context, orgID string, month time.Time) (*domain.MonthlySnapshot, error) {
	args := m.Called(ctx, orgID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) UpsertSnapshot(ctx context.Context, snapshot domain.MonthlySnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) ListDefinitions(ctx context.Context, codes []domain.AlertCode) ([]domain.AlertDefinition, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AlertDefinition), args.Error(1)
}

func (m *MockAlertRepository) FindLatestAlert(ctx context.Context, orgID string, code domain.AlertCode, month time.Time) (*domain.Alert, error) {
	args := m.Called(ctx, orgID, code, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Alert), args.Error(1)
}

func (m *MockAlertRepository) ListAlerts(ctx context.Context, orgID string, month time.Time, limit int, after *portsrepo.AlertCursor) ([]domain.Alert, error) {
	args := m.Called(ctx, orgID, month, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}

func (m *MockAlertRepository) SaveAlert(ctx context.Context, alert domain.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

type MockRecurringRepository struct {
	mock.Mock
}

func (m *MockRecurringRepository) ListRules(ctx context.Context, orgID string, activeOnly bool) ([]domain.RecurringRule, error) {
	args := m.Called(ctx, orgID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringRepository) FindRuleByID(ctx context.Context, orgID, ruleID string) (*domain.RecurringRule, error) {
	args := m.Called(ctx, orgID, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringRepository) FindLastSuccessfulRun(ctx context.Context, ruleID string) (*domain.RecurringRun, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringRun), args.Error(1)
}

func (m *MockRecurringRepository) ListLastSuccessfulRuns(ctx context.Context, orgID string) (map[string]domain.RecurringRun, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.RecurringRun), args.Error(1)
}

func (m *MockRecurringRepository) SaveRule(ctx context.Context, rule domain.RecurringRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRecurringRepository) UpdateRule(ctx context.Context, rule domain.RecurringRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRecurringRepository) DeactivateRule(ctx context.Context, orgID, ruleID, userID string, now time.Time) error {
	args := m.Called(ctx, orgID, ruleID, userID, now)
	return args.Error(0)
}

func (m *MockRecurringRepository) SaveOccurrence(ctx context.Context, txn domain.Transaction, run domain.RecurringRun) error {
	args := m.Called(ctx, txn, run)
	return args.Error(0)
}

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, orgID string) ([]domain.Goal, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListActiveGoalsByType(ctx context.Context, orgID string, goalType domain.GoalType) ([]domain.Goal, error) {
	args := m.Called(ctx, orgID, goalType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) SaveEmergencyFund(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

// --- Collaborator mocks ---

type MockAlertNotifier struct {
	mock.Mock
}

func (m *MockAlertNotifier) NotifyAlert(ctx context.Context, alert domain.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

type MockEventTracker struct {
	mock.Mock
}

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

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

type MockAlertEvaluator struct {
	mock.Mock
}

func (m *MockAlertEvaluator) GenerateAlerts(ctx context.Context, scope domain.Scope, month time.Time, metrics *domain.MonthlyMetrics, bucketNames map[string]string, pending domain.PendingStats) (int, error) {
	args := m.Called(ctx, scope, month, metrics, bucketNames, pending)
	return args.Int(0), args.Error(1)
}

type MockRecurringEngine struct {
	mock.Mock
}

func (m *MockRecurringEngine) ProcessRecurringRules(ctx context.Context, scope domain.Scope) (domain.RecurringProcessResult, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(domain.RecurringProcessResult), args.Error(1)
}
