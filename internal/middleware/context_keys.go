package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the request context.
const (
	userIDKey = contextKey("userID")
	scopeKey  = contextKey("scope")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	return GetUserIDFromCtx(c.Request.Context())
}

// GetUserIDFromCtx retrieves the authenticated user ID from a standard context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetScopeFromContext retrieves the request scope built by OrgScopeMiddleware.
func GetScopeFromContext(c *gin.Context) (domain.Scope, bool) {
	scope, ok := c.Request.Context().Value(scopeKey).(domain.Scope)
	return scope, ok
}

// ContextWithScope returns a copy of ctx carrying the scope.
func ContextWithScope(ctx context.Context, scope domain.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, scope)
}
