package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
)

// OrgScopeMiddleware resolves the caller's active organization and stores a
// domain.Scope in the request context. It must run after AuthMiddleware.
// The clock is read once here so every computation in the request agrees on "now".
func OrgScopeMiddleware(resolver portssvc.OrgResolverSvc, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("User ID not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orgID, err := resolver.ResolveActiveOrg(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("User has no organization", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
				return
			}
			logger.Error("Failed to resolve active organization", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve organization"})
			return
		}

		scope := domain.Scope{UserID: userID, OrgID: orgID, Now: time.Now().In(loc)}
		enrichedLogger := logger.With(slog.String("org_id", orgID))

		ctx := ContextWithScope(c.Request.Context(), scope)
		c.Request = c.Request.WithContext(ContextWithLogger(ctx, enrichedLogger))
		c.Set(string(loggerKey), enrichedLogger)

		c.Next()
	}
}
