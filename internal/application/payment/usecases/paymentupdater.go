package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/brt06a/Testv5/internal/application/payment/paymentgateway"
	"github.com/brt06a/Testv5/internal/domain/payment"
	"github.com/brt06a/Testv5/internal/shared/biztime"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

const notifyTimeout = 30 * time.Second

// PaymentSuccessNotifier is told about payments that just reached SUCCESS.
type PaymentSuccessNotifier interface {
	NotifyPaymentSucceeded(ctx context.Context, event payment.PaymentSucceededEvent) error
}

// BackgroundRunner runs fire-and-forget work. goroutine.Group satisfies it.
type BackgroundRunner interface {
	Go(name string, fn func())
}

// PaymentStatusUpdater applies gateway reported statuses to stored payments.
// The webhook and the reconciliation sweep share it so both follow the same
// transition rules.
type PaymentStatusUpdater struct {
	paymentRepo payment.PaymentRepository
	notifiers   []PaymentSuccessNotifier
	runner      BackgroundRunner
	logger      logger.Interface
	now         func() time.Time
}

func NewPaymentStatusUpdater(
	paymentRepo payment.PaymentRepository,
	runner BackgroundRunner,
	logger logger.Interface,
	notifiers ...PaymentSuccessNotifier,
) *PaymentStatusUpdater {
	return &PaymentStatusUpdater{
		paymentRepo: paymentRepo,
		notifiers:   notifiers,
		runner:      runner,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

// Apply records status and details on p and persists it. A report that would
// move a successful payment elsewhere is logged and dropped.
func (u *PaymentStatusUpdater) Apply(ctx context.Context, p *payment.Payment, status string, details *paymentgateway.PaymentDetails) error {
	var settlement *payment.Settlement
	if details != nil {
		settlement = &payment.Settlement{
			PaymentMethod: details.Method,
			UTR:           details.UTR,
			TransactionID: details.TransactionID,
		}
	}

	completed, err := p.ApplyGatewayUpdate(status, settlement, u.now())
	if errors.Is(err, payment.ErrStatusRegression) {
		u.logger.Warnw("ignoring status update for completed payment",
			"order_id", p.OrderID(),
			"reported_status", status,
		)
		return nil
	}
	if err != nil {
		return err
	}

	err = u.paymentRepo.Update(ctx, p)
	switch {
	case errors.Is(err, payment.ErrStatusRegression):
		u.logger.Warnw("ignoring status update for payment completed concurrently",
			"order_id", p.OrderID(),
			"reported_status", status,
		)
		return nil
	case errors.Is(err, payment.ErrAlreadyCompleted):
		completed = false
	case err != nil:
		return err
	}

	u.logger.Infow("payment status updated",
		"order_id", p.OrderID(),
		"status", p.Status(),
	)

	if completed {
		u.dispatch(payment.NewPaymentSucceededEvent(p))
	}
	return nil
}

func (u *PaymentStatusUpdater) dispatch(event payment.PaymentSucceededEvent) {
	if u.runner == nil {
		return
	}
	for _, n := range u.notifiers {
		notifier := n
		u.runner.Go("payment-success-notify", func() {
			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()

			if err := notifier.NotifyPaymentSucceeded(ctx, event); err != nil {
				u.logger.Warnw("payment success notification failed",
					"order_id", event.OrderID,
					"error", err,
				)
			}
		})
	}
}
