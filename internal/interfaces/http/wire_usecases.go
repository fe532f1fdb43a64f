package http

import (
	adminUsecases "github.com/brt06a/Testv5/internal/application/admin/usecases"
	paymentUsecases "github.com/brt06a/Testv5/internal/application/payment/usecases"
	planUsecases "github.com/brt06a/Testv5/internal/application/plan/usecases"
	seedUsecases "github.com/brt06a/Testv5/internal/application/seed/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Plan
	listPlansUC *planUsecases.ListPlansUseCase

	// Payment
	statusUpdater   *paymentUsecases.PaymentStatusUpdater
	createOrderUC   *paymentUsecases.CreatePaymentOrderUseCase
	webhookUC       *paymentUsecases.HandlePaymentWebhookUseCase
	verifyPaymentUC *paymentUsecases.VerifyPaymentUseCase
	listPaymentsUC  *paymentUsecases.ListPaymentsUseCase
	reconcileUC     *paymentUsecases.ReconcilePendingPaymentsUseCase

	// Admin
	loginUC        *adminUsecases.LoginUseCase
	logoutUC       *adminUsecases.LogoutUseCase
	authenticateUC *adminUsecases.AuthenticateSessionUseCase

	// Seed
	seedUC *seedUsecases.SeedDataUseCase
}
