package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/moedinha/moedinha_backend/internal/middleware"
)

// jobsHandler exposes the scheduled batches to an external cron.
type jobsHandler struct {
	jobService portssvc.JobSvc
	clock      func() time.Time
}

func registerJobRoutes(r *gin.Engine, jobService portssvc.JobSvc, clock func() time.Time, cronSecret, cronSecretHash string) {
	h := &jobsHandler{jobService: jobService, clock: clock}

	jobs := r.Group("/jobs", middleware.CronAuthMiddleware(cronSecret, cronSecretHash))
	{
		jobs.POST("/monthly-metrics", h.runMonthlyMetrics)
		jobs.POST("/recurring", h.runRecurring)
	}
}

// runMonthlyMetrics godoc
// @Summary Run the monthly metrics and alerts batch
// @Description Computes the current month's metrics and alerts for every organization
// @Tags jobs
// @Produce  json
// @Success 200 {object} dto.JobResponse
// @Failure 401 {object} map[string]string "Invalid cron secret"
// @Failure 500 {object} dto.JobResponse "Batch aborted"
// @Security BearerAuth
// @Router /jobs/monthly-metrics [post]
func (h *jobsHandler) runMonthlyMetrics(c *gin.Context) {
	h.run(c, "monthly_metrics", h.jobService.RunMonthlyMetricsBatch)
}

// runRecurring godoc
// @Summary Run the recurring rules batch
// @Description Materializes at most one due occurrence per active rule for every organization
// @Tags jobs
// @Produce  json
// @Success 200 {object} dto.JobResponse
// @Failure 401 {object} map[string]string "Invalid cron secret"
// @Failure 500 {object} dto.JobResponse "Batch aborted"
// @Security BearerAuth
// @Router /jobs/recurring [post]
func (h *jobsHandler) runRecurring(c *gin.Context) {
	h.run(c, "recurring", h.jobService.RunRecurringBatch)
}

func (h *jobsHandler) run(c *gin.Context, job string, batch func(context.Context, time.Time) (domain.BatchResult, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("job", job))
	started := h.clock()

	result, err := batch(c.Request.Context(), started)
	res := dto.JobResponse{Job: job, StartedAt: started, FinishedAt: h.clock(), Result: result}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("Job interrupted", slog.String("error", err.Error()), slog.Int("succeeded", result.Succeeded))
		} else {
			logger.Error("Job failed", slog.String("error", err.Error()))
		}
		c.JSON(http.StatusInternalServerError, res)
		return
	}

	logger.Info("Job finished",
		slog.Int("orgs", result.Orgs),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped),
		slog.Int("emitted", result.Emitted))
	c.JSON(http.StatusOK, res)
}
