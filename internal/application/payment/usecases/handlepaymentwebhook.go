package usecases

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/brt06a/Testv5/internal/application/payment/paymentgateway"
	"github.com/brt06a/Testv5/internal/domain/payment"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

type HandlePaymentWebhookCommand struct {
	Header http.Header
	Body   []byte
}

type HandlePaymentWebhookUseCase struct {
	paymentRepo payment.PaymentRepository
	gateway     paymentgateway.PaymentGateway
	updater     *PaymentStatusUpdater
	logger      logger.Interface
}

func NewHandlePaymentWebhookUseCase(
	paymentRepo payment.PaymentRepository,
	gateway paymentgateway.PaymentGateway,
	updater *PaymentStatusUpdater,
	logger logger.Interface,
) *HandlePaymentWebhookUseCase {
	return &HandlePaymentWebhookUseCase{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		updater:     updater,
		logger:      logger,
	}
}

// Execute applies one gateway notification. Deliveries are not deduplicated;
// replays are harmless because the payment transition is idempotent.
func (uc *HandlePaymentWebhookUseCase) Execute(ctx context.Context, cmd HandlePaymentWebhookCommand) error {
	notification, err := uc.gateway.ParseNotification(ctx, cmd.Header, cmd.Body)
	if err != nil {
		uc.logger.Warnw("rejected payment webhook", "gateway", uc.gateway.Name(), "error", err)
		if errors.Is(err, paymentgateway.ErrInvalidNotification) {
			return apperrors.NewValidationError("Invalid webhook payload").WithCause(err)
		}
		return apperrors.NewInternalError("Webhook processing failed").WithCause(err)
	}

	orderID := strings.TrimSpace(notification.OrderID)
	if orderID == "" {
		return apperrors.NewValidationError("Missing order_id")
	}

	uc.logger.Infow("payment webhook received",
		"gateway", uc.gateway.Name(),
		"order_id", orderID,
		"order_status", notification.OrderStatus,
	)

	p, err := uc.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			uc.logger.Warnw("webhook for unknown order", "order_id", orderID)
			return apperrors.NewNotFoundError("Payment not found")
		}
		uc.logger.Errorw("failed to load payment for webhook", "order_id", orderID, "error", err)
		return apperrors.NewInternalError("Webhook processing failed").WithCause(err)
	}

	if err := uc.updater.Apply(ctx, p, notification.OrderStatus, notification.Payment); err != nil {
		uc.logger.Errorw("failed to apply payment webhook", "order_id", orderID, "error", err)
		return apperrors.NewInternalError("Webhook processing failed").WithCause(err)
	}

	return nil
}
