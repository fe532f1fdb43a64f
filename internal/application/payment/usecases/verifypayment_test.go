package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brt06a/Testv5/internal/domain/payment"
	vo "github.com/brt06a/Testv5/internal/domain/payment/valueobjects"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

func TestVerifyPayment_ReturnsStoredRecord(t *testing.T) {
	repo := new(mockPaymentRepository)
	repo.On("GetByOrderID", mock.Anything, "order_1").Return(pendingPayment("order_1"), nil)

	result, err := NewVerifyPaymentUseCase(repo, logger.NewDiscard()).Execute(context.Background(), "order_1")

	require.NoError(t, err)
	assert.Equal(t, "order_1", result.OrderID)
	assert.Equal(t, "499.00", result.Amount)
	assert.Equal(t, "PENDING", result.Status)
	assert.Nil(t, result.CompletedAt)
}

func TestVerifyPayment_NotFound(t *testing.T) {
	repo := new(mockPaymentRepository)
	repo.On("GetByOrderID", mock.Anything, "order_x").Return(nil, payment.ErrPaymentNotFound)

	_, err := NewVerifyPaymentUseCase(repo, logger.NewDiscard()).Execute(context.Background(), "order_x")

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestVerifyPayment_StoreError(t *testing.T) {
	repo := new(mockPaymentRepository)
	repo.On("GetByOrderID", mock.Anything, "order_1").Return(nil, errors.New("timeout"))

	_, err := NewVerifyPaymentUseCase(repo, logger.NewDiscard()).Execute(context.Background(), "order_1")

	assert.Equal(t, "Failed to verify payment", apperrors.GetAppError(err).Message)
}

func TestListPayments(t *testing.T) {
	repo := new(mockPaymentRepository)
	newer := payment.ReconstructPayment("p2", "order_2", decimal.NewFromInt(99), "INR", vo.PaymentStatusSuccess,
		nil, "1 Day Pass", payment.Customer{}, nil, nil, nil, time.Now(), nil)
	repo.On("List", mock.Anything).Return([]*payment.Payment{newer, pendingPayment("order_1")}, nil)

	result, err := NewListPaymentsUseCase(repo, logger.NewDiscard()).Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "order_2", result[0].OrderID)
	assert.Equal(t, "order_1", result[1].OrderID)
}

func TestListPayments_Empty(t *testing.T) {
	repo := new(mockPaymentRepository)
	repo.On("List", mock.Anything).Return([]*payment.Payment{}, nil)

	result, err := NewListPaymentsUseCase(repo, logger.NewDiscard()).Execute(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
