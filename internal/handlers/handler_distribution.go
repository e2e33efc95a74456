package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/moedinha/moedinha_backend/internal/middleware"
)

// distributionHandler handles HTTP requests related to budget distributions.
type distributionHandler struct {
	distributionService portssvc.DistributionSvcFacade
}

// newDistributionHandler creates a new distributionHandler.
func newDistributionHandler(ds portssvc.DistributionSvcFacade) *distributionHandler {
	return &distributionHandler{distributionService: ds}
}

// registerDistributionRoutes registers routes related to distributions and their buckets.
func registerDistributionRoutes(rg *gin.RouterGroup, distributionService portssvc.DistributionSvcFacade) {
	h := newDistributionHandler(distributionService)

	distributions := rg.Group("/distributions")
	{
		distributions.GET("", h.listDistributions)
		distributions.POST("", h.createDistribution)
		distributions.GET("/active", h.getActiveDistribution)
		distributions.POST("/auto-balance", h.previewAutoBalance)
		distributions.PUT("/:id/buckets", h.saveBuckets)
		distributions.PUT("/:id/settings", h.updateSettings)
		distributions.POST("/:id/default", h.setDefault)
	}
}

// listDistributions godoc
// @Summary List distributions
// @Description Lists the organization's distributions with their buckets, newest first
// @Tags distributions
// @Produce  json
// @Success 200 {array} dto.DistributionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list distributions"
// @Security BearerAuth
// @Router /distributions [get]
func (h *distributionHandler) listDistributions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	dists, err := h.distributionService.ListDistributions(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to list distributions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDistributionResponse(dists))
}

// getActiveDistribution godoc
// @Summary Get the active distribution
// @Description Returns the default distribution, or the most recently created one
// @Tags distributions
// @Produce  json
// @Success 200 {object} dto.DistributionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No distribution"
// @Failure 500 {object} map[string]string "Failed to retrieve distribution"
// @Security BearerAuth
// @Router /distributions/active [get]
func (h *distributionHandler) getActiveDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	dist, err := h.distributionService.GetActiveDistribution(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve distribution")
		return
	}
	c.JSON(http.StatusOK, dto.ToDistributionResponse(dist))
}

// createDistribution godoc
// @Summary Create a distribution
// @Description Creates a distribution with 2 to 8 buckets summing to 10000 basis points
// @Tags distributions
// @Accept  json
// @Produce  json
// @Param   distribution body dto.CreateDistributionRequest true "Distribution details"
// @Success 201 {object} dto.DistributionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create distribution"
// @Security BearerAuth
// @Router /distributions [post]
func (h *distributionHandler) createDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.CreateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	dist, err := h.distributionService.CreateDistribution(c.Request.Context(), scope, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create distribution")
		return
	}
	logger.Info("Distribution created", slog.String("distribution_id", dist.DistributionID))
	c.JSON(http.StatusCreated, dto.ToDistributionResponse(dist))
}

// saveBuckets godoc
// @Summary Save buckets
// @Description Replaces the bucket set of a distribution. Buckets missing from the request are deleted.
// @Tags distributions
// @Accept  json
// @Produce  json
// @Param   id path string true "Distribution ID"
// @Param   buckets body dto.SaveBucketsRequest true "Bucket set"
// @Success 200 {object} dto.DistributionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Distribution not found"
// @Failure 500 {object} map[string]string "Failed to save buckets"
// @Security BearerAuth
// @Router /distributions/{id}/buckets [put]
func (h *distributionHandler) saveBuckets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	distributionID := c.Param("id")
	var req dto.SaveBucketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	dist, err := h.distributionService.SaveBuckets(c.Request.Context(), scope, distributionID, req)
	if err != nil {
		respondError(c, logger.With(slog.String("distribution_id", distributionID)), err, "Failed to save buckets")
		return
	}
	c.JSON(http.StatusOK, dto.ToDistributionResponse(dist))
}

// updateSettings godoc
// @Summary Update distribution settings
// @Description Updates name, edit mode and base income settings
// @Tags distributions
// @Accept  json
// @Produce  json
// @Param   id path string true "Distribution ID"
// @Param   settings body dto.UpdateDistributionSettingsRequest true "Settings"
// @Success 200 {object} dto.DistributionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Distribution not found"
// @Failure 500 {object} map[string]string "Failed to update distribution"
// @Security BearerAuth
// @Router /distributions/{id}/settings [put]
func (h *distributionHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.UpdateDistributionSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	dist, err := h.distributionService.UpdateSettings(c.Request.Context(), scope, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update distribution")
		return
	}
	c.JSON(http.StatusOK, dto.ToDistributionResponse(dist))
}

// setDefault godoc
// @Summary Set the default distribution
// @Tags distributions
// @Param   id path string true "Distribution ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Distribution not found"
// @Failure 500 {object} map[string]string "Failed to set default distribution"
// @Security BearerAuth
// @Router /distributions/{id}/default [post]
func (h *distributionHandler) setDefault(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	if err := h.distributionService.SetDefault(c.Request.Context(), scope, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to set default distribution")
		return
	}
	c.Status(http.StatusNoContent)
}

// previewAutoBalance godoc
// @Summary Preview an auto-balance
// @Description Applies a new percentage to one bucket and rebalances the others. Nothing is persisted.
// @Tags distributions
// @Accept  json
// @Produce  json
// @Param   request body dto.AutoBalanceRequest true "Buckets and edit"
// @Success 200 {object} dto.AutoBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /distributions/auto-balance [post]
func (h *distributionHandler) previewAutoBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AutoBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	buckets, err := h.distributionService.PreviewAutoBalance(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to balance buckets")
		return
	}
	c.JSON(http.StatusOK, dto.ToAutoBalanceResponse(buckets))
}
