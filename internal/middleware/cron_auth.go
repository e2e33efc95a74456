package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moedinha/moedinha_backend/internal/utils"
)

// CronAuthMiddleware protects scheduled-job endpoints with a shared bearer secret.
// When secretHash is set the token is checked against the bcrypt hash,
// otherwise it is compared with secret in constant time. With neither
// configured every request is rejected.
func CronAuthMiddleware(secret, secretHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if secret == "" && secretHash == "" {
			logger.Error("Cron endpoint called but no cron secret is configured")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Cron jobs are not configured"})
			return
		}

		token, err := bearerToken(c)
		if err != nil {
			logger.Warn("Cron request without bearer token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		var valid bool
		if secretHash != "" {
			valid = utils.CheckSecretHash(token, secretHash)
		} else {
			valid = subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
		}
		if !valid {
			logger.Warn("Cron request with invalid secret")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid cron secret"})
			return
		}

		c.Next()
	}
}
