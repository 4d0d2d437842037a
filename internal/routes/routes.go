package routes

import (
	"github.com/gin-gonic/gin"

	"internhub_backend/internal/auth"
	"internhub_backend/internal/handlers"
	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
)

// RegisterRoutes mounts the whole HTTP API.
//
// Three tiers: public (auth, health), authenticated (everything else) and
// admin. Role checks inside a tier are applied per handler group.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, issuer *auth.TokenIssuer) {
	api := router.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(issuer))
	{
		appHandlers.AuthHandler.RegisterProtectedRoutes(protected)
		appHandlers.ProfileHandler.RegisterRoutes(protected)
		appHandlers.OpportunityHandler.RegisterRoutes(protected)
		appHandlers.ApplicationHandler.RegisterRoutes(protected)
		appHandlers.ChatHandler.RegisterRoutes(protected)
		appHandlers.SubscriptionHandler.RegisterRoutes(protected)
		appHandlers.NotificationHandler.RegisterRoutes(protected)
	}

	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(issuer))
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		appHandlers.AdminHandler.RegisterRoutes(admin)
		appHandlers.AnalyticsHandler.RegisterRoutes(admin)
	}
}
