package payment

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrDuplicateOrderID = errors.New("order ID already exists")
	ErrAlreadyCompleted = errors.New("payment already completed")
)

type PaymentRepository interface {
	// Create inserts p and returns ErrDuplicateOrderID when the order ID is taken.
	Create(ctx context.Context, p *Payment) error
	// Update persists p's status and settlement details. When the stored
	// payment already succeeded it returns ErrStatusRegression for a
	// non-success p, or saves only the details and returns
	// ErrAlreadyCompleted for a successful one.
	Update(ctx context.Context, p *Payment) error
	// GetByOrderID returns ErrPaymentNotFound when no payment has orderID.
	GetByOrderID(ctx context.Context, orderID string) (*Payment, error)
	ExistsByOrderID(ctx context.Context, orderID string) (bool, error)
	// List returns every payment, newest first.
	List(ctx context.Context) ([]*Payment, error)
	// ListPendingCreatedBefore returns up to limit pending payments created
	// before cutoff, oldest first.
	ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*Payment, error)
}
