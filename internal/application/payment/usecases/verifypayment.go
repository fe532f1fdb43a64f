package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/brt06a/Testv5/internal/application/payment/dto"
	"github.com/brt06a/Testv5/internal/domain/payment"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

type VerifyPaymentUseCase struct {
	paymentRepo payment.PaymentRepository
	logger      logger.Interface
}

func NewVerifyPaymentUseCase(paymentRepo payment.PaymentRepository, logger logger.Interface) *VerifyPaymentUseCase {
	return &VerifyPaymentUseCase{paymentRepo: paymentRepo, logger: logger}
}

// Execute returns the stored payment for orderID without contacting the gateway.
func (uc *VerifyPaymentUseCase) Execute(ctx context.Context, orderID string) (*dto.PaymentDTO, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, apperrors.NewNotFoundError("Payment not found")
	}

	p, err := uc.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			return nil, apperrors.NewNotFoundError("Payment not found")
		}
		uc.logger.Errorw("failed to load payment", "order_id", orderID, "error", err)
		return nil, apperrors.NewInternalError("Failed to verify payment").WithCause(err)
	}

	return dto.ToPaymentDTO(p), nil
}
