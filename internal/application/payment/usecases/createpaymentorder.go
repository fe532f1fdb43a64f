package usecases

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/brt06a/Testv5/internal/application/payment/dto"
	"github.com/brt06a/Testv5/internal/application/payment/paymentgateway"
	"github.com/brt06a/Testv5/internal/domain/payment"
	"github.com/brt06a/Testv5/internal/domain/plan"
	"github.com/brt06a/Testv5/internal/domain/shared/services"
	"github.com/brt06a/Testv5/internal/shared/biztime"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
	"github.com/brt06a/Testv5/internal/shared/logger"
	"github.com/brt06a/Testv5/internal/shared/utils"
)

// Placeholders sent to the gateway when the customer left a field empty.
const (
	placeholderCustomerName  = "Customer"
	placeholderCustomerEmail = "customer@example.com"
	placeholderCustomerPhone = "9999999999"
)

const maxOrderIDAttempts = 3

type CreatePaymentOrderCommand struct {
	PlanID        string `json:"planId" validate:"required"`
	CustomerName  string `json:"customerName" validate:"max=255"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email,max=255"`
	CustomerPhone string `json:"customerPhone" validate:"max=32"`
}

type PaymentConfig struct {
	// PublicBaseURL is where customers and the gateway reach this service.
	PublicBaseURL string
}

func (c PaymentConfig) returnURL(orderID string) string {
	return fmt.Sprintf("%s/payment-status?order_id=%s", c.PublicBaseURL, url.QueryEscape(orderID))
}

func (c PaymentConfig) notifyURL() string {
	return c.PublicBaseURL + "/api/payment/webhook"
}

type CreatePaymentOrderUseCase struct {
	planRepo    plan.PlanRepository
	paymentRepo payment.PaymentRepository
	gateway     paymentgateway.PaymentGateway
	orderIDs    services.OrderIDGenerator
	logger      logger.Interface
	config      PaymentConfig
	now         func() time.Time
}

func NewCreatePaymentOrderUseCase(
	planRepo plan.PlanRepository,
	paymentRepo payment.PaymentRepository,
	gateway paymentgateway.PaymentGateway,
	orderIDs services.OrderIDGenerator,
	logger logger.Interface,
	config PaymentConfig,
) *CreatePaymentOrderUseCase {
	return &CreatePaymentOrderUseCase{
		planRepo:    planRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		orderIDs:    orderIDs,
		logger:      logger,
		config:      config,
		now:         biztime.NowUTC,
	}
}

// Execute stores a PENDING payment for the plan and opens a checkout with the
// gateway. A gateway failure leaves the payment PENDING.
func (uc *CreatePaymentOrderUseCase) Execute(ctx context.Context, cmd CreatePaymentOrderCommand) (*dto.CreatePaymentOrderResponse, error) {
	cmd.PlanID = strings.TrimSpace(cmd.PlanID)
	if err := utils.ValidateStruct(cmd, "Invalid request data"); err != nil {
		return nil, err
	}
	planID := cmd.PlanID

	selected, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			return nil, apperrors.NewNotFoundError("Plan not found")
		}
		uc.logger.Errorw("failed to load plan", "plan_id", planID, "error", err)
		return nil, apperrors.NewInternalError("Failed to create payment").WithCause(err)
	}

	p, err := uc.createPendingPayment(ctx, selected, cmd)
	if err != nil {
		return nil, err
	}

	order, err := uc.gateway.CreateOrder(ctx, paymentgateway.CreateOrderRequest{
		OrderID:  p.OrderID(),
		Amount:   p.Amount(),
		Currency: p.Currency(),
		Customer: paymentgateway.Customer{
			ID:    fmt.Sprintf("cust_%d", uc.now().UnixMilli()),
			Name:  orDefault(cmd.CustomerName, placeholderCustomerName),
			Email: orDefault(cmd.CustomerEmail, placeholderCustomerEmail),
			Phone: orDefault(cmd.CustomerPhone, placeholderCustomerPhone),
		},
		ReturnURL: uc.config.returnURL(p.OrderID()),
		NotifyURL: uc.config.notifyURL(),
	})
	if err != nil {
		uc.logger.Errorw("gateway order creation failed",
			"gateway", uc.gateway.Name(),
			"order_id", p.OrderID(),
			"error", err,
		)
		return nil, apperrors.NewUpstreamError("Failed to create payment").WithCause(err)
	}

	uc.logger.Infow("payment order created",
		"gateway", uc.gateway.Name(),
		"order_id", p.OrderID(),
		"plan", selected.Name(),
		"amount", p.Amount().StringFixed(2),
		"customer_email", utils.MaskEmail(cmd.CustomerEmail),
	)

	return &dto.CreatePaymentOrderResponse{
		PaymentURL: order.PaymentURL,
		OrderID:    p.OrderID(),
	}, nil
}

func (uc *CreatePaymentOrderUseCase) createPendingPayment(ctx context.Context, selected *plan.Plan, cmd CreatePaymentOrderCommand) (*payment.Payment, error) {
	customer := payment.Customer{
		Name:  &cmd.CustomerName,
		Email: &cmd.CustomerEmail,
		Phone: &cmd.CustomerPhone,
	}

	for attempt := 1; attempt <= maxOrderIDAttempts; attempt++ {
		orderID, err := uc.orderIDs.Generate()
		if err != nil {
			uc.logger.Errorw("failed to generate order id", "error", err)
			return nil, apperrors.NewInternalError("Failed to create payment").WithCause(err)
		}

		exists, err := uc.paymentRepo.ExistsByOrderID(ctx, orderID)
		if err != nil {
			uc.logger.Errorw("failed to check order id", "order_id", orderID, "error", err)
			return nil, apperrors.NewInternalError("Failed to create payment").WithCause(err)
		}
		if exists {
			uc.logger.Warnw("order id collision, regenerating", "order_id", orderID, "attempt", attempt)
			continue
		}

		p, err := payment.NewPayment(orderID, selected.ID(), selected.Name(), selected.Price(), customer)
		if err != nil {
			uc.logger.Errorw("invalid payment", "plan_id", selected.ID(), "error", err)
			return nil, apperrors.NewInternalError("Failed to create payment").WithCause(err)
		}

		err = uc.paymentRepo.Create(ctx, p)
		if errors.Is(err, payment.ErrDuplicateOrderID) {
			uc.logger.Warnw("order id taken during insert, regenerating", "order_id", orderID, "attempt", attempt)
			continue
		}
		if err != nil {
			uc.logger.Errorw("failed to store payment", "order_id", orderID, "error", err)
			return nil, apperrors.NewInternalError("Failed to create payment").WithCause(err)
		}
		return p, nil
	}

	return nil, apperrors.NewInternalError("Failed to create payment", "could not allocate a unique order id")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
