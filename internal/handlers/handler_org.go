package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/moedinha/moedinha_backend/internal/middleware"
	"github.com/moedinha/moedinha_backend/internal/utils"
)

// orgHandler handles organization creation. It runs without an org scope.
type orgHandler struct {
	orgService portssvc.OrgWriterSvc
	tracker    *utils.PosthogClientWrapper
}

func registerOrgRoutes(rg *gin.RouterGroup, orgService portssvc.OrgWriterSvc, tracker *utils.PosthogClientWrapper) {
	h := &orgHandler{orgService: orgService, tracker: tracker}
	rg.POST("/orgs", h.createOrg)
}

// createOrg godoc
// @Summary Create an organization
// @Description Creates an organization with the caller as owner
// @Tags orgs
// @Accept  json
// @Produce  json
// @Param   org body dto.CreateOrgRequest true "Organization details"
// @Success 201 {object} dto.OrgResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Denied by database policy"
// @Failure 500 {object} map[string]string "Failed to create organization"
// @Security BearerAuth
// @Router /orgs [post]
func (h *orgHandler) createOrg(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req dto.CreateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	org, err := h.orgService.CreateOrg(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondError(c, logger, err, "Failed to create organization")
		return
	}
	logger.Info("Organization created", slog.String("org_id", org.OrgID))
	middleware.PosthogEvent(c, h.tracker, "org_created", map[string]any{"org_id": org.OrgID})
	c.JSON(http.StatusCreated, dto.ToOrgResponse(org))
}
