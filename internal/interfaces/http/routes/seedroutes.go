package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brt06a/Testv5/internal/interfaces/http/handlers"
)

// SeedRouteConfig holds dependencies for the seed route.
type SeedRouteConfig struct {
	SeedHandler *handlers.SeedHandler
}

func SetupSeedRoutes(api *gin.RouterGroup, cfg *SeedRouteConfig) {
	api.POST("/seed", cfg.SeedHandler.Seed)
}
