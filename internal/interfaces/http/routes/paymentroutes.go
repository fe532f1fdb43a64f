package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brt06a/Testv5/internal/interfaces/http/handlers"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
}

// SetupPaymentRoutes configures the public checkout, webhook and lookup routes.
// The webhook lives under the singular /payment prefix.
func SetupPaymentRoutes(api *gin.RouterGroup, cfg *PaymentRouteConfig) {
	payments := api.Group("/payments")
	{
		payments.POST("/create", cfg.PaymentHandler.CreatePayment)
		payments.GET("/verify/:orderId", cfg.PaymentHandler.VerifyPayment)
	}

	api.POST("/payment/webhook", cfg.PaymentHandler.HandleWebhook)
}
