package handlers

import (
	"context"

	adminUsecases "github.com/brt06a/Testv5/internal/application/admin/usecases"
	paymentdto "github.com/brt06a/Testv5/internal/application/payment/dto"
	paymentUsecases "github.com/brt06a/Testv5/internal/application/payment/usecases"
	plandto "github.com/brt06a/Testv5/internal/application/plan/dto"
	seedUsecases "github.com/brt06a/Testv5/internal/application/seed/usecases"
)

type mockListPlansUC struct {
	result []*plandto.PlanDTO
	err    error
}

func (m *mockListPlansUC) Execute(ctx context.Context) ([]*plandto.PlanDTO, error) {
	return m.result, m.err
}

type mockCreatePaymentOrderUC struct {
	gotCmd paymentUsecases.CreatePaymentOrderCommand
	called bool
	result *paymentdto.CreatePaymentOrderResponse
	err    error
}

func (m *mockCreatePaymentOrderUC) Execute(ctx context.Context, cmd paymentUsecases.CreatePaymentOrderCommand) (*paymentdto.CreatePaymentOrderResponse, error) {
	m.called = true
	m.gotCmd = cmd
	return m.result, m.err
}

type mockWebhookUC struct {
	gotCmd paymentUsecases.HandlePaymentWebhookCommand
	err    error
}

func (m *mockWebhookUC) Execute(ctx context.Context, cmd paymentUsecases.HandlePaymentWebhookCommand) error {
	m.gotCmd = cmd
	return m.err
}

type mockVerifyPaymentUC struct {
	gotOrderID string
	result     *paymentdto.PaymentDTO
	err        error
}

func (m *mockVerifyPaymentUC) Execute(ctx context.Context, orderID string) (*paymentdto.PaymentDTO, error) {
	m.gotOrderID = orderID
	return m.result, m.err
}

type mockListPaymentsUC struct {
	result []*paymentdto.PaymentDTO
	err    error
}

func (m *mockListPaymentsUC) Execute(ctx context.Context) ([]*paymentdto.PaymentDTO, error) {
	return m.result, m.err
}

type mockLoginUC struct {
	called bool
	result *adminUsecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd adminUsecases.LoginCommand) (*adminUsecases.LoginResult, error) {
	m.called = true
	return m.result, m.err
}

type mockLogoutUC struct {
	gotSessionID string
	err          error
}

func (m *mockLogoutUC) Execute(ctx context.Context, sessionID string) error {
	m.gotSessionID = sessionID
	return m.err
}

type mockSeedUC struct {
	result *seedUsecases.SeedResult
	err    error
}

func (m *mockSeedUC) Execute(ctx context.Context) (*seedUsecases.SeedResult, error) {
	return m.result, m.err
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}
