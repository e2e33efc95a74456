package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/moedinha/moedinha_backend/internal/middleware"
)

// goalHandler handles HTTP requests related to goals and the emergency reserve.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// registerGoalRoutes registers routes related to goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := &goalHandler{goalService: goalService}

	goals := rg.Group("/goals")
	{
		goals.GET("", h.listGoals)
		goals.POST("", h.createGoal)
		goals.GET("/emergency-fund", h.getEmergencyFund)
		goals.PUT("/emergency-fund", h.saveEmergencyFund)
	}
}

// listGoals godoc
// @Summary List goals
// @Tags goals
// @Produce  json
// @Success 200 {array} dto.GoalResponse
// @Failure 500 {object} map[string]string "Failed to list goals"
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to list goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGoalResponse(goals))
}

// createGoal godoc
// @Summary Create a goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "An emergency fund already exists"
// @Failure 500 {object} map[string]string "Failed to create goal"
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), scope, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create goal")
		return
	}
	logger.Info("Goal created", slog.String("goal_id", goal.GoalID), slog.String("goal_type", string(goal.GoalType)))
	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// getEmergencyFund godoc
// @Summary Get the emergency reserve
// @Tags goals
// @Produce  json
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} map[string]string "No emergency fund"
// @Failure 500 {object} map[string]string "Failed to retrieve emergency fund"
// @Security BearerAuth
// @Router /goals/emergency-fund [get]
func (h *goalHandler) getEmergencyFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	goal, err := h.goalService.GetEmergencyFund(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve emergency fund")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// saveEmergencyFund godoc
// @Summary Create or update the emergency reserve
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.SaveEmergencyFundRequest true "Emergency fund"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to save emergency fund"
// @Security BearerAuth
// @Router /goals/emergency-fund [put]
func (h *goalHandler) saveEmergencyFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.SaveEmergencyFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	goal, err := h.goalService.SaveEmergencyFund(c.Request.Context(), scope, req)
	if err != nil {
		respondError(c, logger, err, "Failed to save emergency fund")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}
