package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/moedinha/moedinha_backend/internal/utils"
	"github.com/moedinha/moedinha_backend/internal/utils/dates"
	"github.com/moedinha/moedinha_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// alertService implements the AlertSvcFacade interface
type alertService struct {
	BaseService
	alertRepo portsrepo.AlertRepositoryFacade
	notifier  portssvc.AlertNotifier
	tracker   portssvc.EventTracker
}

// AlertServiceOption is a functional option for configuring the alert service
type AlertServiceOption func(*alertService)

// WithAlertNotifier delivers every emitted alert through n.
func WithAlertNotifier(n portssvc.AlertNotifier) AlertServiceOption {
	return func(s *alertService) {
		s.notifier = n
	}
}

// WithAlertEventTracker records an analytics event per emitted alert.
func WithAlertEventTracker(t portssvc.EventTracker) AlertServiceOption {
	return func(s *alertService) {
		s.tracker = t
	}
}

// NewAlertService creates a new alert service with the provided options
func NewAlertService(alertRepo portsrepo.AlertRepositoryFacade, options ...AlertServiceOption) portssvc.AlertSvcFacade {
	svc := &alertService{alertRepo: alertRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AlertSvcFacade = (*alertService)(nil)

func (s *alertService) GenerateAlerts(ctx context.Context, scope domain.Scope, month time.Time, metrics *domain.MonthlyMetrics, bucketNames map[string]string, pending domain.PendingStats) (int, error) {
	if metrics == nil {
		return 0, nil
	}
	month = dates.MonthStart(dates.In(month, scope.Location()))

	definitions, err := s.alertRepo.ListDefinitions(ctx, domain.KnownAlertCodes)
	if err != nil {
		s.LogError(ctx, err, "Failed to load alert definitions", orgAttr(scope))
		return 0, fmt.Errorf("loading alert definitions: %w", err)
	}
	byCode := make(map[domain.AlertCode]domain.AlertDefinition, len(definitions))
	for _, def := range definitions {
		byCode[def.Code] = def
	}

	input := alertInput{
		month:       month.Format(dates.YearMonthLayout),
		metrics:     metrics,
		bucketNames: bucketNames,
		pending:     pending,
	}

	emitted := 0
	for _, code := range domain.KnownAlertCodes {
		def, ok := byCode[code]
		if !ok {
			continue
		}
		fired, err := s.evaluateDefinition(ctx, scope, month, def, input)
		if err != nil {
			return emitted, err
		}
		if fired {
			emitted++
		}
	}

	s.LogInfo(ctx, "Alerts evaluated", orgAttr(scope),
		slog.String("month", input.month),
		slog.Int("definitions", len(definitions)),
		slog.Int("emitted", emitted))
	return emitted, nil
}

// evaluateDefinition applies cooldown, the rule itself and hysteresis, in that
// order, and inserts the alert when all of them allow it.
func (s *alertService) evaluateDefinition(ctx context.Context, scope domain.Scope, month time.Time, def domain.AlertDefinition, input alertInput) (bool, error) {
	codeAttr := slog.String("code", string(def.Code))

	rule, ok := alertRules[def.Code]
	if !ok || rule.shape == shapeUnsupported {
		s.LogDebug(ctx, "Alert rule not supported, skipping", codeAttr)
		return false, nil
	}

	last, err := s.alertRepo.FindLatestAlert(ctx, scope.OrgID, def.Code, month)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load previous alert", orgAttr(scope), codeAttr)
			return false, fmt.Errorf("loading previous %s alert: %w", def.Code, err)
		}
		last = nil
	}

	if last != nil && scope.Now.Sub(last.CreatedAt) < def.Cooldown() {
		s.LogDebug(ctx, "Alert in cooldown", codeAttr, slog.Time("last_emitted_at", last.CreatedAt))
		return false, nil
	}

	alertCtx, fired := rule.evaluate(input)
	if !fired {
		return false, nil
	}

	if last != nil && withinHysteresis(last.Context, alertCtx, def.Hysteresis()) {
		s.LogDebug(ctx, "Alert suppressed by hysteresis", codeAttr)
		return false, nil
	}

	alert := domain.Alert{
		AlertID:   uuid.NewString(),
		OrgID:     scope.OrgID,
		Month:     month,
		Code:      def.Code,
		Severity:  def.Severity,
		Message:   RenderTemplate(def.MessageTemplate, alertCtx),
		Context:   alertCtx,
		CreatedAt: scope.Now,
	}
	if scope.UserID != "" {
		userID := scope.UserID
		alert.UserID = &userID
	}

	if err := s.alertRepo.SaveAlert(ctx, alert); err != nil {
		s.LogError(ctx, err, "Failed to save alert", orgAttr(scope), codeAttr)
		return false, fmt.Errorf("saving %s alert: %w", def.Code, err)
	}
	s.deliver(ctx, scope, alert)
	return true, nil
}

// deliver pushes the alert to the notifier and analytics. Failures never
// affect the evaluation result.
func (s *alertService) deliver(ctx context.Context, scope domain.Scope, alert domain.Alert) {
	if s.notifier != nil {
		if err := s.notifier.NotifyAlert(ctx, alert); err != nil {
			s.LogError(ctx, err, "Failed to deliver alert notification",
				orgAttr(scope), slog.String("alert_id", alert.AlertID))
		}
	}
	if s.tracker != nil {
		distinctID := scope.UserID
		if distinctID == "" {
			distinctID = scope.OrgID
		}
		s.tracker.Enqueue(distinctID, "alert_emitted", map[string]any{
			"org_id":   scope.OrgID,
			"code":     string(alert.Code),
			"severity": string(alert.Severity),
		})
	}
}

// withinHysteresis reports whether both contexts carry spend_pct and they
// differ by less than threshold.
func withinHysteresis(previous, candidate map[string]any, threshold float64) bool {
	prev, okPrev := domain.ContextFloat(previous, "spend_pct")
	cur, okCur := domain.ContextFloat(candidate, "spend_pct")
	if !okPrev || !okCur {
		return false
	}
	return math.Abs(cur-prev) < threshold
}

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// RenderTemplate substitutes {key} tokens with the matching context value.
// Keys are case-sensitive; unknown keys render as the empty string.
func RenderTemplate(template string, values map[string]any) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		key := token[1 : len(token)-1]
		return stringify(values[key])
	})
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case decimal.Decimal:
		return utils.FormatMoney(val)
	default:
		return fmt.Sprint(val)
	}
}

func (s *alertService) ListAlerts(ctx context.Context, scope domain.Scope, month time.Time, params dto.ListAlertsParams) (*dto.ListAlertsResponse, error) {
	month = dates.MonthStart(dates.In(month, scope.Location()))
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	var cursor *portsrepo.AlertCursor
	if params.NextToken != "" {
		createdAt, alertID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		cursor = &portsrepo.AlertCursor{CreatedAt: createdAt, AlertID: alertID}
	}

	alerts, err := s.alertRepo.ListAlerts(ctx, scope.OrgID, month, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list alerts", orgAttr(scope))
		return nil, err
	}

	res := &dto.ListAlertsResponse{Alerts: []dto.AlertResponse{}}
	if len(alerts) > limit {
		alerts = alerts[:limit]
		last := alerts[len(alerts)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.AlertID)
		res.NextToken = &token
	}
	for _, a := range alerts {
		res.Alerts = append(res.Alerts, dto.ToAlertResponse(a))
	}
	return res, nil
}
