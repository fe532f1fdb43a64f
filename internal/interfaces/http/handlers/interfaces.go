package handlers

import (
	"context"

	adminUsecases "github.com/brt06a/Testv5/internal/application/admin/usecases"
	paymentdto "github.com/brt06a/Testv5/internal/application/payment/dto"
	paymentUsecases "github.com/brt06a/Testv5/internal/application/payment/usecases"
	plandto "github.com/brt06a/Testv5/internal/application/plan/dto"
	seedUsecases "github.com/brt06a/Testv5/internal/application/seed/usecases"
)

// Use case interfaces consumed by the handlers

type listPlansUseCase interface {
	Execute(ctx context.Context) ([]*plandto.PlanDTO, error)
}

type createPaymentOrderUseCase interface {
	Execute(ctx context.Context, cmd paymentUsecases.CreatePaymentOrderCommand) (*paymentdto.CreatePaymentOrderResponse, error)
}

type handlePaymentWebhookUseCase interface {
	Execute(ctx context.Context, cmd paymentUsecases.HandlePaymentWebhookCommand) error
}

type verifyPaymentUseCase interface {
	Execute(ctx context.Context, orderID string) (*paymentdto.PaymentDTO, error)
}

type listPaymentsUseCase interface {
	Execute(ctx context.Context) ([]*paymentdto.PaymentDTO, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd adminUsecases.LoginCommand) (*adminUsecases.LoginResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, sessionID string) error
}

type seedDataUseCase interface {
	Execute(ctx context.Context) (*seedUsecases.SeedResult, error)
}

// DatabasePinger reports whether the database answers.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}
