package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/brt06a/Testv5/internal/domain/payment"
	vo "github.com/brt06a/Testv5/internal/domain/payment/valueobjects"
	"github.com/brt06a/Testv5/internal/infrastructure/persistence/mappers"
	"github.com/brt06a/Testv5/internal/infrastructure/persistence/models"
	"github.com/brt06a/Testv5/internal/shared/db"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model := mappers.PaymentToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return payment.ErrDuplicateOrderID
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// Update writes the mutable columns. order_id, amount and the plan snapshot
// are fixed at creation. A stored SUCCESS row is never overwritten with
// another status or a new completed_at, even when p was loaded before a
// concurrent update completed it.
func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	model := mappers.PaymentToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)
	success := vo.PaymentStatusSuccess.String()

	result := tx.
		Model(&models.PaymentModel{}).
		Where("id = ? AND status <> ?", model.ID, success).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"payment_method": model.PaymentMethod,
			"utr":            model.UTR,
			"transaction_id": model.TransactionID,
			"completed_at":   model.CompletedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Zero rows: either the row is missing, the values were identical, or
	// the stored payment already succeeded.
	var stored models.PaymentModel
	if err := tx.Select("id", "status").Where("id = ?", model.ID).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payment.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to load payment status: %w", err)
	}
	if stored.Status != success {
		return nil
	}
	if model.Status != success {
		return fmt.Errorf("%w: order %s reported %s", payment.ErrStatusRegression, model.OrderID, model.Status)
	}

	if err := tx.
		Model(&models.PaymentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"payment_method": model.PaymentMethod,
			"utr":            model.UTR,
			"transaction_id": model.TransactionID,
		}).Error; err != nil {
		return fmt.Errorf("failed to update payment details: %w", err)
	}
	return payment.ErrAlreadyCompleted
}

func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("order_id = ?", orderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment by order_id: %w", err)
	}

	return mappers.PaymentToDomain(&model), nil
}

func (r *PaymentRepository) ExistsByOrderID(ctx context.Context, orderID string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check order_id: %w", err)
	}

	return count > 0, nil
}

// List returns every payment, newest first.
func (r *PaymentRepository) List(ctx context.Context) ([]*payment.Payment, error) {
	var paymentModels []models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC").
		Order("id DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return mappers.PaymentsToDomain(paymentModels), nil
}

// ListPendingCreatedBefore returns up to limit PENDING payments created before
// cutoff, oldest first.
func (r *PaymentRepository) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*payment.Payment, error) {
	var paymentModels []models.PaymentModel

	query := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND created_at < ?", vo.PaymentStatusPending.String(), cutoff).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get pending payments: %w", err)
	}

	return mappers.PaymentsToDomain(paymentModels), nil
}
