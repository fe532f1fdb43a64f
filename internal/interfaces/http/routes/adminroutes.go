package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brt06a/Testv5/internal/interfaces/http/handlers"
	"github.com/brt06a/Testv5/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin routes.
type AdminRouteConfig struct {
	AdminHandler     *handlers.AdminHandler
	AuthMiddleware   *middleware.AdminAuthMiddleware
	LoginRateLimiter *middleware.LoginRateLimiter
}

// SetupAdminRoutes configures admin login, logout and the gated payment list.
// Logout is not gated; unknown tokens succeed.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := api.Group("/admin")
	{
		login := []gin.HandlerFunc{}
		if cfg.LoginRateLimiter != nil {
			login = append(login, cfg.LoginRateLimiter.Limit())
		}
		login = append(login, cfg.AdminHandler.Login)
		admin.POST("/login", login...)

		admin.POST("/logout", cfg.AdminHandler.Logout)

		adminProtected := admin.Group("")
		adminProtected.Use(cfg.AuthMiddleware.RequireAdmin())
		{
			adminProtected.GET("/payments", cfg.AdminHandler.ListPayments)
		}
	}
}
