package http

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/brt06a/Testv5/docs"
	"github.com/brt06a/Testv5/internal/interfaces/http/middleware"
	"github.com/brt06a/Testv5/internal/interfaces/http/routes"
)

// Router represents the HTTP router configuration
type Router struct {
	engine    *gin.Engine
	container *Container
}

func NewRouter(container *Container) *Router {
	return &Router{
		engine:    container.engine,
		container: container,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.container

	r.engine.Use(middleware.RequestLogger(c.log.Named("http")))
	r.engine.Use(middleware.Recovery(c.log))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	if c.cfg.Server.Mode == gin.DebugMode {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.engine.Group("/api")

	routes.SetupPlanRoutes(api, &routes.PlanRouteConfig{
		PlanHandler: c.hdlrs.planHandler,
	})
	routes.SetupPaymentRoutes(api, &routes.PaymentRouteConfig{
		PaymentHandler: c.hdlrs.paymentHandler,
	})
	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler:     c.hdlrs.adminHandler,
		AuthMiddleware:   c.adminAuthMiddleware,
		LoginRateLimiter: c.loginRateLimiter,
	})
	routes.SetupSeedRoutes(api, &routes.SeedRouteConfig{
		SeedHandler: c.hdlrs.seedHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// StartPaymentScheduler starts the pending payment reconciliation loop
func (r *Router) StartPaymentScheduler(ctx context.Context) {
	if r.container.paymentScheduler != nil {
		r.container.paymentScheduler.Start(ctx)
	}
}

// Shutdown gracefully stops background work and releases infrastructure
func (r *Router) Shutdown(ctx context.Context) {
	r.container.Shutdown(ctx)
}
