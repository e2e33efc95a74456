package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/core/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/moedinha/moedinha_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func definition(code domain.AlertCode, cooldownHours int, template string) domain.AlertDefinition {
	return domain.AlertDefinition{
		Code:            code,
		Severity:        domain.SeverityWarning,
		CooldownHours:   cooldownHours,
		MessageTemplate: template,
	}
}

// singleBucketMetrics builds metrics for one 2000.00 budget bucket spent at spendPct.
func singleBucketMetrics(spendPct float64) *domain.MonthlyMetrics {
	budget := decimal.NewFromInt(2000)
	spend := budget.Mul(decimal.NewFromFloat(spendPct)).Div(decimal.NewFromInt(100))
	return &domain.MonthlyMetrics{
		OrgID:       testOrgID,
		Month:       day(2024, time.March, 1),
		BaseIncome:  decimal.NewFromInt(4000),
		DayRatio:    0.5,
		TotalSpend:  spend,
		TotalBudget: budget,
		Buckets: []domain.BucketMetric{{
			BucketID:  "b-need",
			Budget:    budget,
			Spend:     spend,
			SpendPct:  spendPct,
			PaceIdeal: decimal.NewFromInt(1000),
		}},
	}
}

func savedAlerts(m *MockAlertRepository) []domain.Alert {
	var alerts []domain.Alert
	for _, call := range m.Calls {
		if call.Method == "SaveAlert" {
			alerts = append(alerts, call.Arguments.Get(1).(domain.Alert))
		}
	}
	return alerts
}

func savedCodes(m *MockAlertRepository) []domain.AlertCode {
	var codes []domain.AlertCode
	for _, a := range savedAlerts(m) {
		codes = append(codes, a.Code)
	}
	return codes
}

type AlertServiceTestSuite struct {
	suite.Suite
	alertRepo *MockAlertRepository
	service   portssvc.AlertSvcFacade
	ctx       context.Context
	scope     domain.Scope
	month     time.Time
	names     map[string]string
}

func (suite *AlertServiceTestSuite) SetupTest() {
	suite.alertRepo = new(MockAlertRepository)
	suite.service = services.NewAlertService(suite.alertRepo)
	suite.ctx = context.Background()
	suite.scope = domain.Scope{UserID: "user-1", OrgID: testOrgID, Now: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)}
	suite.month = day(2024, time.March, 1)
	suite.names = map[string]string{"b-need": "Necessidades"}
}

func (suite *AlertServiceTestSuite) bucketDefinitions() []domain.AlertDefinition {
	return []domain.AlertDefinition{
		definition(domain.AlertBucket70, 24, "{bucket_name} atingiu {spend_pct}% do orçamento"),
		definition(domain.AlertBucket90, 24, "{bucket_name} atingiu {spend_pct}%"),
		definition(domain.AlertBucketOver, 24, "{bucket_name} estourou"),
	}
}

func (suite *AlertServiceTestSuite) TestGenerate_ExactlySeventyPercent() {
	suite.alertRepo.On("ListDefinitions", suite.ctx, domain.KnownAlertCodes).Return(suite.bucketDefinitions(), nil).Once()
	suite.alertRepo.On("FindLatestAlert", suite.ctx, testOrgID, mock.Anything, suite.month).Return(nil, apperrors.ErrNotFound)
	suite.alertRepo.On("SaveAlert", suite.ctx, mock.AnythingOfType("domain.Alert")).Return(nil)

	emitted, err := suite.service.GenerateAlerts(suite.ctx, suite.scope, suite.month, singleBucketMetrics(70), suite.names, domain.PendingStats{})

	suite.Require().NoError(err)
	suite.Equal(1, emitted)
	suite.Equal([]domain.AlertCode{domain.AlertBucket70}, savedCodes(suite.alertRepo))

	saved := savedAlerts(suite.alertRepo)[0]
	suite.Equal("Necessidades atingiu 70% do orçamento", saved.Message)
	suite.Equal(testOrgID, saved.OrgID)
	suite.Equal(suite.scope.Now, saved.CreatedAt)
	suite.Require().NotNil(saved.UserID)
	suite.Equal("user-1", *saved.UserID)
	suite.Equal("b-need", saved.Context["bucket_id"])
	suite.Equal("1400.00", saved.Context["spend"])
	suite.Equal("600.00", saved.Context["remaining"])
}

func (suite *AlertServiceTestSuite) TestGenerate_SeventyFivePercentScenario() {
	suite.alertRepo.On("ListDefinitions", suite.ctx, domain.KnownAlertCodes).Return(suite.bucketDefinitions(), nil).Once()
	suite.alertRepo.On("FindLatestAlert", suite.ctx, testOrgID, mock.Anything, suite.month).Return(nil, apperrors.ErrNotFound)
	suite.alertRepo.On("SaveAlert", suite.ctx, mock.AnythingOfType("domain.Alert")).Return(nil)

	emitted, err := suite.service.GenerateAlerts(suite.ctx, suite.scope, suite.month, singleBucketMetrics(75), suite.names, domain.PendingStats{})

	suite.Require().NoError(err)
	suite.Equal(1, emitted)
	suite.Equal([]domain.AlertCode{domain.AlertBucket70}, savedCodes(suite.alertRepo))
}

func (suite *AlertServiceTestSuite) TestGenerate_ExactlyHundredPercent() {
	suite.alertRepo.On("ListDefinitions", suite.ctx, domain.KnownAlertCodes).Return(suite.bucketDefinitions(), nil).Once()
	suite.alertRepo.On("FindLatestAlert", suite.ctx, testOrgID, mock.Anything, suite.month).Return(nil, apperrors.ErrNotFound)
	suite.alertRepo.On("SaveAlert", suite.ctx, mock.AnythingOfType("domain.Alert")).Return(nil)

	emitted, err := suite.service.GenerateAlerts(suite.ctx, suite.scope, suite.month, singleBucketMetrics(100), suite.names, domain.PendingStats{})

	suite.Require().NoError(err)
	suite.Equal(3, emitted)
	suite.Contains(savedCodes(suite.alertRepo), domain.AlertBucketOver)
}

func (suite *AlertServiceTestSuite) TestGenerate_CooldownIsPerCode() {
	defs := suite.bucketDefinitions()[:2]
	suite.alertRepo.On("ListDefinitions", suite.ctx, domain.KnownAlertCodes).Return(defs, nil).Once()
	suite.alertRepo.On("FindLatestAlert", suite.ctx, testOrgID, domain.AlertBucket70, suite.month).Return(&domain.Alert{
		AlertID:   "a-prev",
		Code:      domain.AlertBucket70,
		Context:   map[string]any{"spend_pct": 72.0},
		CreatedAt: suite.scope.Now.Add(-2 * time.Hour),
	}, nil).Once()
	suite.alertRepo.On("FindLatestAlert", suite.ctx, testOrgID, domain.AlertBucket90, suite.month).Return(nil, apperrors.ErrNotFound).Once()
	suite.alertRepo.On("SaveAlert", suite.ctx, mock.AnythingOfType("domain.Alert")).Return(nil).Once()

	emitted, err := suite.service.GenerateAlerts(suite.ctx, suite.scope, suite.month, singleBucketMetrics(95), suite.names, domain.PendingStats{})

	suite.Require().NoError(err)
	suite.Equal(1, emitted)
	suite.Equal([]domain.AlertCode{domain.AlertBucket90}, savedCodes(suite.alertRepo))
	suite.alertRepo.AssertExpectations(suite.T())
}

func (suite *AlertServiceTestSuite) TestGenerate_Hysteresis() {
	hysteresis := 5.0
	def := definition(domain.AlertBucket70, 24, "{spend_pct}")
	def.HysteresisPct = &hysteresis
	previous := &domain.Alert{
		AlertID:   "a-prev",
		Code:      domain.AlertBucket70,
		Context:   map[string]any{"spend_pct": 72.0},
		CreatedAt: suite.scope.Now.Add(-48 * time.Hour),
	}

	cases := []struct {
		spendPct float64
		emitted  int
	}{
		{spendPct: 74, emitted: 0},
		{spendPct: 80, emitted: 1},
	}
	for _, tc := range cases {
		repo := new(MockAlertRepository)
		svc := services.NewAlertService(repo)
		repo.On("ListDefinitions", suite.ctx, domain.KnownAlertCodes).Return([]domain.AlertDefinition{def}, nil).Once()
		repo.On("FindLatestAlert", suite.ctx, testOrgID, domain.AlertBucket70, suite.month).Return(previous, nil).Once()
		repo.On("SaveAlert", suite.ctx, mock.AnythingOfType("domain.Alert")).Return(nil).Maybe()

		emitted, err := svc.GenerateAlerts(suite.ctx, suite.scope, suite.month, singleBucketMetrics(tc.spendPct), suite.names, domain.PendingStats{})

		suite.Require().NoError(err)
		suite.Equal(tc.emitted, emitted, "spend_pct=%v", tc.spendPct)
		suite.Len(savedCodes(repo), tc.emitted)
	}
}

func (suite *AlertServiceTestSuite) TestGenerate_FirstMatchingBucketWins() {
	metrics := singleBucketMetrics(95)
	metrics.Buckets = append(metrics.Buckets, domain.BucketMetric{
		BucketID: "b-want",
		Budget:   decimal.NewFromInt(1000),
		Spend:    decimal.NewFromInt(800),
		SpendPct: 80,
	})
	suite.alertRepo.On("ListDefinitions", suite.ctx, domain.KnownAlertCodes).Return(suite.bucketDefinitions()[:1], nil).Once()
	suite.alertRepo.On("FindLatestAlert", suite.ctx, testOrgID, domain.AlertBucket70, suite.month).Return(nil, apperrors.ErrNotFound).Once()
	suite.alertRepo.On("SaveAlert", suite.ctx, mock.MatchedBy(func(a domain.Alert) bool {
		return a.Context["bucket_id"] == "b-need"
	})).Return(nil).Once()

	emitted, err := suite.service.GenerateAlerts(suite.ctx, suite.scope, suite.month, metrics, suite.names, domain.PendingStats{})

	suite.Require().NoError(err)
	suite.Equal(1, emitted)
	suite.alertRepo.AssertExpectations(suite.T())
}

func (suite *AlertServiceTestSuite) TestGenerate_PendingAndUnsupportedRules() {
	suite.alertRepo.On("ListDefinitions", suite.ctx, domain.KnownAlertCodes).Return([]domain.AlertDefinition{
		definition(domain.AlertConcentrationTop5, 24, "top5"),
		definition(domain.AlertPendingPct, 24, "{pending_pct}% sem balde"),
		definition(domain.AlertPendingCount, 24, "{pending_count} pendentes"),
	}, nil).Once()
	suite.alertRepo.On("FindLatestAlert", suite.ctx, testOrgID, domain.AlertPendingPct, suite.month).Return(nil, apperrors.ErrNotFound).Once()
	suite.alertRepo.On("FindLatestAlert", suite.ctx, testOrgID, domain.AlertPendingCount, suite.month).Return(nil, apperrors.ErrNotFound).Once()
	suite.alertRepo.On("SaveAlert", suite.ctx, mock.AnythingOfType("domain.Alert")).Return(nil).Twice()

	emitted, err := suite.service.GenerateAlerts(suite.ctx, suite.scope, suite.month, singleBucketMetrics(10), suite.names,
		domain.PendingStats{Count: 20, Pct: 12.5})

	suite.Require().NoError(err)
	suite.Equal(2, emitted)
	suite.Equal([]domain.AlertCode{domain.AlertPendingPct, domain.AlertPendingCount}, savedCodes(suite.alertRepo))
	suite.alertRepo.AssertNotCalled(suite.T(), "FindLatestAlert", suite.ctx, testOrgID, domain.AlertConcentrationTop5, suite.month)
	suite.alertRepo.AssertExpectations(suite.T())
}

func (suite *AlertServiceTestSuite) TestGenerate_PendingBelowThresholds() {
	suite.alertRepo.On("ListDefinitions", suite.ctx, domain.KnownAlertCodes).Return([]domain.AlertDefinition{
		definition(domain.AlertPendingPct, 24, ""),
		definition(domain.AlertPendingCount, 24, ""),
	}, nil).Once()
	suite.alertRepo.On("FindLatestAlert", suite.ctx, testOrgID, mock.Anything, suite.month).Return(nil, apperrors.ErrNotFound)

	emitted, err := suite.service.GenerateAlerts(suite.ctx, suite.scope, suite.month, singleBucketMetrics(10), suite.names,
		domain.PendingStats{Count: 19, Pct: 10})

	suite.Require().NoError(err)
	suite.Zero(emitted)
	suite.alertRepo.AssertNotCalled(suite.T(), "SaveAlert", mock.Anything, mock.Anything)
}

func (suite *AlertServiceTestSuite) TestGenerate_NotifierFailureDoesNotFailEvaluation() {
	notifier := new(MockAlertNotifier)
	tracker := new(MockEventTracker)
	svc := services.NewAlertService(suite.alertRepo, services.WithAlertNotifier(notifier), services.WithAlertEventTracker(tracker))

	suite.alertRepo.On("ListDefinitions", suite.ctx, domain.KnownAlertCodes).Return(suite.bucketDefinitions()[:1], nil).Once()
	suite.alertRepo.On("FindLatestAlert", suite.ctx, testOrgID, domain.AlertBucket70, suite.month).Return(nil, apperrors.ErrNotFound).Once()
	suite.alertRepo.On("SaveAlert", suite.ctx, mock.AnythingOfType("domain.Alert")).Return(nil).Once()
	notifier.On("NotifyAlert", suite.ctx, mock.AnythingOfType("domain.Alert")).Return(errors.New("telegram down")).Once()
	tracker.On("Enqueue", "user-1", "alert_emitted", mock.MatchedBy(func(p map[string]any) bool {
		return p["org_id"] == testOrgID && p["code"] == string(domain.AlertBucket70)
	})).Once()

	emitted, err := svc.GenerateAlerts(suite.ctx, suite.scope, suite.month, singleBucketMetrics(71), suite.names, domain.PendingStats{})

	suite.Require().NoError(err)
	suite.Equal(1, emitted)
	notifier.AssertExpectations(suite.T())
	tracker.AssertExpectations(suite.T())
}

func (suite *AlertServiceTestSuite) TestGenerate_SaveErrorStopsEvaluation() {
	suite.alertRepo.On("ListDefinitions", suite.ctx, domain.KnownAlertCodes).Return(suite.bucketDefinitions(), nil).Once()
	suite.alertRepo.On("FindLatestAlert", suite.ctx, testOrgID, domain.AlertBucket70, suite.month).Return(nil, apperrors.ErrNotFound).Once()
	suite.alertRepo.On("SaveAlert", suite.ctx, mock.AnythingOfType("domain.Alert")).Return(assertErr).Once()

	emitted, err := suite.service.GenerateAlerts(suite.ctx, suite.scope, suite.month, singleBucketMetrics(100), suite.names, domain.PendingStats{})

	suite.Require().Error(err)
	suite.ErrorIs(err, assertErr)
	suite.Zero(emitted)
}

func (suite *AlertServiceTestSuite) TestGenerate_NilMetrics() {
	emitted, err := suite.service.GenerateAlerts(suite.ctx, suite.scope, suite.month, nil, nil, domain.PendingStats{})

	suite.NoError(err)
	suite.Zero(emitted)
	suite.alertRepo.AssertNotCalled(suite.T(), "ListDefinitions", mock.Anything, mock.Anything)
}

func (suite *AlertServiceTestSuite) TestListAlerts_Paginates() {
	base := suite.scope.Now
	alerts := []domain.Alert{
		{AlertID: "a3", Code: domain.AlertBucket90, Month: suite.month, CreatedAt: base},
		{AlertID: "a2", Code: domain.AlertBucket70, Month: suite.month, CreatedAt: base.Add(-time.Hour)},
		{AlertID: "a1", Code: domain.AlertPendingPct, Month: suite.month, CreatedAt: base.Add(-2 * time.Hour)},
	}
	suite.alertRepo.On("ListAlerts", suite.ctx, testOrgID, suite.month, 3, (*portsrepo.AlertCursor)(nil)).Return(alerts, nil).Once()

	res, err := suite.service.ListAlerts(suite.ctx, suite.scope, suite.month, dto.ListAlertsParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(res.Alerts, 2)
	suite.Require().NotNil(res.NextToken)

	createdAt, id, err := pagination.DecodeToken(*res.NextToken)
	suite.Require().NoError(err)
	suite.Equal("a2", id)
	suite.True(createdAt.Equal(base.Add(-time.Hour)))
}

func (suite *AlertServiceTestSuite) TestListAlerts_InvalidToken() {
	res, err := suite.service.ListAlerts(suite.ctx, suite.scope, suite.month, dto.ListAlertsParams{Limit: 20, NextToken: "%%%"})

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAlertServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AlertServiceTestSuite))
}

func TestRenderTemplate(t *testing.T) {
	values := map[string]any{
		"bucket_name": "Desejos",
		"spend_pct":   91.5,
		"count":       3,
		"amount":      decimal.RequireFromString("12.5"),
	}

	assert.Equal(t, "Desejos em 91.5%", services.RenderTemplate("{bucket_name} em {spend_pct}%", values))
	assert.Equal(t, "3 itens, R$ 12.50", services.RenderTemplate("{count} itens, R$ {amount}", values))
	assert.Equal(t, "faltando: ", services.RenderTemplate("faltando: {missing}", values))
	assert.Equal(t, "case: ", services.RenderTemplate("case: {Bucket_Name}", values))
	assert.Equal(t, "sem tokens", services.RenderTemplate("sem tokens", values))
}
