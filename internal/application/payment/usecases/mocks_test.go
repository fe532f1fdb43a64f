package usecases

import (
	"context"
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/brt06a/Testv5/internal/application/payment/paymentgateway"
	"github.com/brt06a/Testv5/internal/domain/payment"
	"github.com/brt06a/Testv5/internal/domain/plan"
)

type mockPaymentRepository struct {
	mock.Mock
}

func (m *mockPaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *mockPaymentRepository) ExistsByOrderID(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPaymentRepository) List(ctx context.Context) ([]*payment.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *mockPaymentRepository) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*payment.Payment, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

type mockPlanRepository struct {
	mock.Mock
}

func (m *mockPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

func (m *mockPlanRepository) List(ctx context.Context) ([]*plan.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*plan.Plan), args.Error(1)
}

func (m *mockPlanRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Name() string {
	return "mock"
}

func (m *mockGateway) CreateOrder(ctx context.Context, req paymentgateway.CreateOrderRequest) (*paymentgateway.CreateOrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentgateway.CreateOrderResponse), args.Error(1)
}

func (m *mockGateway) ParseNotification(ctx context.Context, header http.Header, body []byte) (*paymentgateway.Notification, error) {
	args := m.Called(ctx, header, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentgateway.Notification), args.Error(1)
}

func (m *mockGateway) QueryOrder(ctx context.Context, orderID string) (*paymentgateway.Notification, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentgateway.Notification), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyPaymentSucceeded(ctx context.Context, event payment.PaymentSucceededEvent) error {
	return m.Called(ctx, event).Error(0)
}

// inlineRunner runs background work synchronously so tests can assert on it.
type inlineRunner struct{}

func (inlineRunner) Go(_ string, fn func()) {
	fn()
}

type fixedOrderIDs struct {
	ids []string
	n   int
}

func (f *fixedOrderIDs) Generate() (string, error) {
	id := f.ids[f.n]
	f.n++
	return id, nil
}
