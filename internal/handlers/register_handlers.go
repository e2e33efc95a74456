package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/moedinha/moedinha_backend/cmd/docs"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/middleware"
	"github.com/moedinha/moedinha_backend/internal/platform/config"
	"github.com/moedinha/moedinha_backend/internal/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tracker *utils.PosthogClientWrapper,
) error {
	if err := registerValidators(); err != nil {
		return fmt.Errorf("registering validators: %w", err)
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerJobRoutes(r, services.Job, cfg.Now, cfg.CronSecret, cfg.CronSecretHash)

	setupAPIV1Routes(r, cfg, services, tracker)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	tracker *utils.PosthogClientWrapper,
) {
	var parserOpts []jwt.ParserOption
	if cfg.JWTIssuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(cfg.JWTIssuer))
	}
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, parserOpts...), middleware.PosthogMiddleware(tracker))

	// Creating an organization is the one call that needs no active organization.
	registerOrgRoutes(v1, service.Org, tracker)

	scoped := v1.Group("", middleware.OrgScopeMiddleware(service.Org, cfg.Location))
	registerDistributionRoutes(scoped, service.Distribution)
	registerMetricsRoutes(scoped, service.Metrics, service.Alert, tracker)
	registerRecurringRoutes(scoped, service.Recurring)
	registerCalendarRoutes(scoped, service.Calendar, service.Invoice)
	registerGoalRoutes(scoped, service.Goal)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
