package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/middleware"
	"github.com/moedinha/moedinha_backend/internal/utils/dates"
)

// requireScope reads the scope set by OrgScopeMiddleware, aborting with 401 when absent.
func requireScope(c *gin.Context) (domain.Scope, bool) {
	scope, ok := middleware.GetScopeFromContext(c)
	if !ok || scope.OrgID == "" {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Request scope not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.Scope{}, false
	}
	return scope, true
}

// monthFromQuery parses a YYYY-MM value in the scope's location. Empty means the current month.
func monthFromQuery(value string, scope domain.Scope) (time.Time, error) {
	if value == "" {
		return dates.MonthStart(scope.Today()), nil
	}
	return dates.ParseYearMonth(value, scope.Location())
}

// respondError maps service errors to HTTP responses.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	msg := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": msg})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": msg})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// bindError responds 400 for a request that failed binding or validation.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
