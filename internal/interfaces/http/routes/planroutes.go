package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brt06a/Testv5/internal/interfaces/http/handlers"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler *handlers.PlanHandler
}

// SetupPlanRoutes configures plan routes.
func SetupPlanRoutes(api *gin.RouterGroup, cfg *PlanRouteConfig) {
	api.GET("/plans", cfg.PlanHandler.ListPlans)
}
