package http

import (
	"github.com/brt06a/Testv5/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	planHandler    *handlers.PlanHandler
	paymentHandler *handlers.PaymentHandler
	adminHandler   *handlers.AdminHandler
	seedHandler    *handlers.SeedHandler
	healthHandler  *handlers.HealthHandler
}
