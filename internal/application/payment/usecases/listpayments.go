package usecases

import (
	"context"

	"github.com/brt06a/Testv5/internal/application/payment/dto"
	"github.com/brt06a/Testv5/internal/domain/payment"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

type ListPaymentsUseCase struct {
	paymentRepo payment.PaymentRepository
	logger      logger.Interface
}

func NewListPaymentsUseCase(paymentRepo payment.PaymentRepository, logger logger.Interface) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{paymentRepo: paymentRepo, logger: logger}
}

// Execute returns every payment, newest first.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context) ([]*dto.PaymentDTO, error) {
	payments, err := uc.paymentRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list payments", "error", err)
		return nil, apperrors.NewInternalError("Failed to fetch payments").WithCause(err)
	}
	return dto.ToPaymentDTOList(payments), nil
}
