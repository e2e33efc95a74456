package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/moedinha/moedinha_backend/internal/middleware"
	"github.com/moedinha/moedinha_backend/internal/utils"
	"github.com/moedinha/moedinha_backend/internal/utils/dates"
)

// metricsHandler serves the monthly metrics and the alerts they produce.
type metricsHandler struct {
	metricsService portssvc.MetricsSvc
	alertService   portssvc.AlertSvcFacade
	tracker        *utils.PosthogClientWrapper
}

func newMetricsHandler(ms portssvc.MetricsSvc, as portssvc.AlertSvcFacade, tracker *utils.PosthogClientWrapper) *metricsHandler {
	return &metricsHandler{metricsService: ms, alertService: as, tracker: tracker}
}

func registerMetricsRoutes(rg *gin.RouterGroup, ms portssvc.MetricsSvc, as portssvc.AlertSvcFacade, tracker *utils.PosthogClientWrapper) {
	h := newMetricsHandler(ms, as, tracker)

	metrics := rg.Group("/metrics")
	{
		metrics.POST("/compute", h.computeMetrics)
		metrics.GET("/snapshot", h.getSnapshot)
	}
	rg.GET("/alerts", h.listAlerts)
}

// computeMetrics godoc
// @Summary Compute monthly metrics
// @Description Recomputes the month's metrics, stores the snapshot and evaluates alerts
// @Tags metrics
// @Produce  json
// @Param   month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} dto.ComputeMetricsResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to compute metrics"
// @Security BearerAuth
// @Router /metrics/compute [post]
func (h *metricsHandler) computeMetrics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, logger, err)
		return
	}
	month, err := monthFromQuery(q.Month, scope)
	if err != nil {
		bindError(c, logger, err)
		return
	}
	ctx := c.Request.Context()

	metrics, err := h.metricsService.ComputeMonthlyMetrics(ctx, scope, month)
	if err != nil {
		respondError(c, logger, err, "Failed to compute metrics")
		return
	}
	if metrics == nil {
		c.JSON(http.StatusOK, dto.ComputeMetricsResponse{})
		return
	}

	names, err := h.metricsService.BucketNames(ctx, scope)
	if err != nil {
		respondError(c, logger, err, "Failed to compute metrics")
		return
	}
	pending, err := h.metricsService.PendingStats(ctx, scope, month)
	if err != nil {
		respondError(c, logger, err, "Failed to compute metrics")
		return
	}
	emitted, err := h.alertService.GenerateAlerts(ctx, scope, month, metrics, names, pending)
	if err != nil {
		respondError(c, logger, err, "Failed to evaluate alerts")
		return
	}

	logger.Info("Metrics computed", slog.String("month", month.Format(dates.YearMonthLayout)), slog.Int("alerts_emitted", emitted))
	middleware.PosthogEvent(c, h.tracker, "metrics_computed", map[string]any{
		"org_id":         scope.OrgID,
		"alerts_emitted": emitted,
	})
	c.JSON(http.StatusOK, dto.ComputeMetricsResponse{
		Metrics:       dto.ToMetricsResponse(metrics, names),
		AlertsEmitted: emitted,
	})
}

// getSnapshot godoc
// @Summary Get the stored monthly snapshot
// @Tags metrics
// @Produce  json
// @Param   month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} dto.MetricsResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 404 {object} map[string]string "No snapshot for the month"
// @Failure 500 {object} map[string]string "Failed to retrieve snapshot"
// @Security BearerAuth
// @Router /metrics/snapshot [get]
func (h *metricsHandler) getSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, logger, err)
		return
	}
	month, err := monthFromQuery(q.Month, scope)
	if err != nil {
		bindError(c, logger, err)
		return
	}

	snapshot, err := h.metricsService.GetSnapshot(c.Request.Context(), scope, month)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve snapshot")
		return
	}
	names, err := h.metricsService.BucketNames(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve snapshot")
		return
	}
	c.JSON(http.StatusOK, dto.ToSnapshotResponse(snapshot, names))
}

// listAlerts godoc
// @Summary List the month's alerts
// @Tags alerts
// @Produce  json
// @Param   month query string false "Month as YYYY-MM, defaults to the current month"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token returned by the previous page"
// @Success 200 {object} dto.ListAlertsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list alerts"
// @Security BearerAuth
// @Router /alerts [get]
func (h *metricsHandler) listAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var params dto.ListAlertsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}
	month, err := monthFromQuery(params.Month, scope)
	if err != nil {
		bindError(c, logger, err)
		return
	}

	res, err := h.alertService.ListAlerts(c.Request.Context(), scope, month, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list alerts")
		return
	}
	c.JSON(http.StatusOK, res)
}
