package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/moedinha/moedinha_backend/internal/middleware"
)

// recurringHandler handles HTTP requests related to recurring rules.
type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
}

// newRecurringHandler creates a new recurringHandler.
func newRecurringHandler(rs portssvc.RecurringSvcFacade) *recurringHandler {
	return &recurringHandler{recurringService: rs}
}

// registerRecurringRoutes registers routes related to recurring rules.
func registerRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := newRecurringHandler(recurringService)

	rules := rg.Group("/recurring-rules")
	{
		rules.GET("", h.listRules)
		rules.POST("", h.createRule)
		rules.POST("/process", h.processRules)
		rules.PUT("/:id", h.updateRule)
		rules.DELETE("/:id", h.deactivateRule)
	}
}

// listRules godoc
// @Summary List recurring rules
// @Description Lists every recurring rule of the organization, including deactivated ones
// @Tags recurring
// @Produce  json
// @Success 200 {array} dto.RecurringRuleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list recurring rules"
// @Security BearerAuth
// @Router /recurring-rules [get]
func (h *recurringHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	rules, err := h.recurringService.ListRules(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to list recurring rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecurringRuleResponse(rules))
}

// createRule godoc
// @Summary Create a recurring rule
// @Description Creates a rule. Day of month or week is derived from the start date.
// @Tags recurring
// @Accept  json
// @Produce  json
// @Param   rule body dto.CreateRecurringRuleRequest true "Rule details"
// @Success 201 {object} dto.RecurringRuleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create recurring rule"
// @Security BearerAuth
// @Router /recurring-rules [post]
func (h *recurringHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.CreateRecurringRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	rule, err := h.recurringService.CreateRule(c.Request.Context(), scope, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create recurring rule")
		return
	}
	logger.Info("Recurring rule created", slog.String("rule_id", rule.RuleID))
	c.JSON(http.StatusCreated, dto.ToRecurringRuleResponse(rule))
}

// updateRule godoc
// @Summary Update a recurring rule
// @Tags recurring
// @Accept  json
// @Produce  json
// @Param   id path string true "Rule ID"
// @Param   rule body dto.UpdateRecurringRuleRequest true "Fields to change"
// @Success 200 {object} dto.RecurringRuleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 500 {object} map[string]string "Failed to update recurring rule"
// @Security BearerAuth
// @Router /recurring-rules/{id} [put]
func (h *recurringHandler) updateRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.UpdateRecurringRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	rule, err := h.recurringService.UpdateRule(c.Request.Context(), scope, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update recurring rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringRuleResponse(rule))
}

// deactivateRule godoc
// @Summary Deactivate a recurring rule
// @Tags recurring
// @Param   id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 500 {object} map[string]string "Failed to deactivate recurring rule"
// @Security BearerAuth
// @Router /recurring-rules/{id} [delete]
func (h *recurringHandler) deactivateRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	if err := h.recurringService.DeactivateRule(c.Request.Context(), scope, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to deactivate recurring rule")
		return
	}
	c.Status(http.StatusNoContent)
}

// processRules godoc
// @Summary Materialize due recurring rules now
// @Description Runs one engine tick for the organization: at most one occurrence per rule
// @Tags recurring
// @Produce  json
// @Success 200 {object} dto.ProcessRecurringResponse
// @Failure 500 {object} map[string]string "Failed to process recurring rules"
// @Security BearerAuth
// @Router /recurring-rules/process [post]
func (h *recurringHandler) processRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	res, err := h.recurringService.ProcessRecurringRules(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to process recurring rules")
		return
	}
	c.JSON(http.StatusOK, dto.ProcessRecurringResponse(res))
}
