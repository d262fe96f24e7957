package handlers

import (
	"net/http"

	"github.com/SscSPs/contractor_marketplace/cmd/docs"
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/contractor_marketplace/internal/core/ports/services"
	"github.com/SscSPs/contractor_marketplace/internal/middleware"
	"github.com/SscSPs/contractor_marketplace/internal/platform/config"
	"github.com/SscSPs/contractor_marketplace/internal/platform/metrics"
	"github.com/SscSPs/contractor_marketplace/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	RegisterValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	setupAPIV1Routes(r, services, posthogClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	// Every v1 route acts on behalf of the profile named in the profile_id header
	v1 := r.Group("/api/v1",
		middleware.ProfileAuth(services.Profile),
		middleware.PosthogMiddleware(posthogClient),
	)

	registerContractRoutes(v1, services.Contract)
	registerJobRoutes(v1, services.Job, posthogClient)
	registerBalanceRoutes(v1, services.Profile, posthogClient)
	registerReportingRoutes(v1, services.Reporting)
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

// callerProfile returns the profile resolved by ProfileAuth, answering 401 when it is absent.
func callerProfile(c *gin.Context) (*domain.Profile, bool) {
	profile, ok := middleware.GetProfileFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Profile not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return profile, true
}
