package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brt06a/Testv5/internal/application/payment/paymentgateway"
	"github.com/brt06a/Testv5/internal/domain/payment"
	vo "github.com/brt06a/Testv5/internal/domain/payment/valueobjects"
	"github.com/brt06a/Testv5/internal/domain/plan"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

func weekPlan() *plan.Plan {
	return plan.ReconstructPlan("plan-week", "1 Week Pro", "7 days", decimal.NewFromInt(499),
		[]string{"Auto message scheduler"}, true, 2)
}

func newCreateUseCase(planRepo *mockPlanRepository, paymentRepo *mockPaymentRepository, gw *mockGateway, ids ...string) *CreatePaymentOrderUseCase {
	return NewCreatePaymentOrderUseCase(planRepo, paymentRepo, gw, &fixedOrderIDs{ids: ids},
		logger.NewDiscard(), PaymentConfig{PublicBaseURL: "https://promotionx.example"})
}

func TestCreatePaymentOrder_Success(t *testing.T) {
	planRepo := new(mockPlanRepository)
	paymentRepo := new(mockPaymentRepository)
	gw := new(mockGateway)

	planRepo.On("GetByID", mock.Anything, "plan-week").Return(weekPlan(), nil)
	paymentRepo.On("ExistsByOrderID", mock.Anything, "order_1_aaaaaaaa").Return(false, nil)

	var stored *payment.Payment
	paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*payment.Payment")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*payment.Payment) }).
		Return(nil)

	gw.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req paymentgateway.CreateOrderRequest) bool {
		return req.OrderID == "order_1_aaaaaaaa" &&
			req.Amount.Equal(decimal.NewFromInt(499)) &&
			req.Currency == "INR" &&
			req.Customer.Name == "Asha" &&
			req.Customer.Email == "customer@example.com" &&
			req.Customer.Phone == "9999999999" &&
			len(req.Customer.ID) > len("cust_") &&
			req.ReturnURL == "https://promotionx.example/payment-status?order_id=order_1_aaaaaaaa" &&
			req.NotifyURL == "https://promotionx.example/api/payment/webhook"
	})).Return(&paymentgateway.CreateOrderResponse{
		PaymentSessionID: "session_abc",
		PaymentURL:       "https://sandbox.cashfree.com/pg/orders/session_abc/payments",
	}, nil)

	uc := newCreateUseCase(planRepo, paymentRepo, gw, "order_1_aaaaaaaa")
	result, err := uc.Execute(context.Background(), CreatePaymentOrderCommand{PlanID: "plan-week", CustomerName: "Asha"})

	require.NoError(t, err)
	assert.Equal(t, "order_1_aaaaaaaa", result.OrderID)
	assert.Equal(t, "https://sandbox.cashfree.com/pg/orders/session_abc/payments", result.PaymentURL)

	require.NotNil(t, stored)
	assert.Equal(t, vo.PaymentStatusPending, stored.Status())
	assert.Equal(t, "1 Week Pro", stored.PlanName())
	assert.True(t, stored.Amount().Equal(decimal.NewFromInt(499)))
	assert.Nil(t, stored.Customer().Email, "placeholders are never persisted")

	planRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	gw.AssertExpectations(t)
}

func TestCreatePaymentOrder_MissingPlanID(t *testing.T) {
	uc := newCreateUseCase(new(mockPlanRepository), new(mockPaymentRepository), new(mockGateway))

	_, err := uc.Execute(context.Background(), CreatePaymentOrderCommand{PlanID: "  "})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, "Invalid request data", apperrors.GetAppError(err).Message)
}

func TestCreatePaymentOrder_PlanNotFound(t *testing.T) {
	planRepo := new(mockPlanRepository)
	paymentRepo := new(mockPaymentRepository)
	planRepo.On("GetByID", mock.Anything, "nope").Return(nil, plan.ErrPlanNotFound)

	uc := newCreateUseCase(planRepo, paymentRepo, new(mockGateway))
	_, err := uc.Execute(context.Background(), CreatePaymentOrderCommand{PlanID: "nope"})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Equal(t, "Plan not found", apperrors.GetAppError(err).Message)
	paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePaymentOrder_GatewayFailureLeavesPendingRow(t *testing.T) {
	planRepo := new(mockPlanRepository)
	paymentRepo := new(mockPaymentRepository)
	gw := new(mockGateway)

	planRepo.On("GetByID", mock.Anything, "plan-week").Return(weekPlan(), nil)
	paymentRepo.On("ExistsByOrderID", mock.Anything, "order_1_aaaaaaaa").Return(false, nil)
	paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil)
	gw.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, errors.New("cashfree: 401 authentication failed"))

	uc := newCreateUseCase(planRepo, paymentRepo, gw, "order_1_aaaaaaaa")
	_, err := uc.Execute(context.Background(), CreatePaymentOrderCommand{PlanID: "plan-week"})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.Equal(t, "Failed to create payment", appErr.Message)
	paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCreatePaymentOrder_RegeneratesOnCollision(t *testing.T) {
	planRepo := new(mockPlanRepository)
	paymentRepo := new(mockPaymentRepository)
	gw := new(mockGateway)

	planRepo.On("GetByID", mock.Anything, "plan-week").Return(weekPlan(), nil)
	paymentRepo.On("ExistsByOrderID", mock.Anything, "order_dup").Return(true, nil)
	paymentRepo.On("ExistsByOrderID", mock.Anything, "order_race").Return(false, nil)
	paymentRepo.On("ExistsByOrderID", mock.Anything, "order_fresh").Return(false, nil)
	paymentRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *payment.Payment) bool {
		return p.OrderID() == "order_race"
	})).Return(payment.ErrDuplicateOrderID)
	paymentRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *payment.Payment) bool {
		return p.OrderID() == "order_fresh"
	})).Return(nil)
	gw.On("CreateOrder", mock.Anything, mock.Anything).Return(&paymentgateway.CreateOrderResponse{PaymentURL: "https://pay"}, nil)

	uc := newCreateUseCase(planRepo, paymentRepo, gw, "order_dup", "order_race", "order_fresh")
	result, err := uc.Execute(context.Background(), CreatePaymentOrderCommand{PlanID: "plan-week"})

	require.NoError(t, err)
	assert.Equal(t, "order_fresh", result.OrderID)
}

func TestCreatePaymentOrder_GivesUpAfterRepeatedCollisions(t *testing.T) {
	planRepo := new(mockPlanRepository)
	paymentRepo := new(mockPaymentRepository)

	planRepo.On("GetByID", mock.Anything, "plan-week").Return(weekPlan(), nil)
	paymentRepo.On("ExistsByOrderID", mock.Anything, mock.Anything).Return(true, nil)

	uc := newCreateUseCase(planRepo, paymentRepo, new(mockGateway), "a", "b", "c")
	_, err := uc.Execute(context.Background(), CreatePaymentOrderCommand{PlanID: "plan-week"})

	require.Error(t, err)
	assert.Equal(t, 500, apperrors.GetAppError(err).Code)
	paymentRepo.AssertNumberOfCalls(t, "ExistsByOrderID", maxOrderIDAttempts)
}
