package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moedinha/moedinha_backend/internal/utils"
)

const apiPrefix = "/api/v1"

// PosthogMiddleware tracks every successful API call as a product event.
// Events are named after the route template, e.g.
// "PUT /api/v1/distributions/:id/buckets" becomes "distributions_buckets_put".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		eventName := routeEventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
			"latency_ms":  time.Since(start).Milliseconds(),
		}
		if scope, ok := GetScopeFromContext(c); ok {
			props["org_id"] = scope.OrgID
		}
		if month := c.Query("month"); month != "" {
			props["month"] = month
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// routeEventName turns a route template into an event name. Path parameters
// are dropped so ids never end up in event names.
func routeEventName(method, fullPath string) string {
	path := strings.TrimPrefix(fullPath, apiPrefix)
	var parts []string
	for _, seg := range strings.Split(path, "/") {
		if seg == "" || strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			continue
		}
		parts = append(parts, strings.ReplaceAll(seg, "-", "_"))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "_") + "_" + strings.ToLower(method)
}

// PosthogEvent sends a custom event on behalf of the authenticated user.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["route"] = c.FullPath()
	posthogClient.Enqueue(userID, eventName, properties)
}
