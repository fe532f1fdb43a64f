package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/brt06a/Testv5/internal/application/payment/paymentgateway"
	"github.com/brt06a/Testv5/internal/domain/payment"
	vo "github.com/brt06a/Testv5/internal/domain/payment/valueobjects"
	"github.com/brt06a/Testv5/internal/shared/biztime"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

const reconcileBatchSize = 100

type ReconcileResult struct {
	Checked int
	Updated int
	Failed  int
}

// ReconcilePendingPaymentsUseCase asks the gateway about payments that stayed
// PENDING too long, covering lost webhooks and orders the gateway never
// created.
type ReconcilePendingPaymentsUseCase struct {
	paymentRepo payment.PaymentRepository
	gateway     paymentgateway.PaymentGateway
	updater     *PaymentStatusUpdater
	logger      logger.Interface
	staleAfter  time.Duration
	now         func() time.Time
}

func NewReconcilePendingPaymentsUseCase(
	paymentRepo payment.PaymentRepository,
	gateway paymentgateway.PaymentGateway,
	updater *PaymentStatusUpdater,
	logger logger.Interface,
	staleAfter time.Duration,
) *ReconcilePendingPaymentsUseCase {
	return &ReconcilePendingPaymentsUseCase{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		updater:     updater,
		logger:      logger,
		staleAfter:  staleAfter,
		now:         biztime.NowUTC,
	}
}

func (uc *ReconcilePendingPaymentsUseCase) Execute(ctx context.Context) (*ReconcileResult, error) {
	cutoff := uc.now().Add(-uc.staleAfter)
	pending, err := uc.paymentRepo.ListPendingCreatedBefore(ctx, cutoff, reconcileBatchSize)
	if err != nil {
		uc.logger.Errorw("failed to list stale pending payments", "error", err)
		return nil, err
	}

	result := &ReconcileResult{}
	for _, p := range pending {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		result.Checked++

		changed, err := uc.reconcile(ctx, p)
		if err != nil {
			result.Failed++
			uc.logger.Warnw("failed to reconcile payment", "order_id", p.OrderID(), "error", err)
			continue
		}
		if changed {
			result.Updated++
		}
	}

	if result.Checked > 0 {
		uc.logger.Infow("pending payments reconciled",
			"checked", result.Checked,
			"updated", result.Updated,
			"failed", result.Failed,
		)
	}
	return result, nil
}

func (uc *ReconcilePendingPaymentsUseCase) reconcile(ctx context.Context, p *payment.Payment) (bool, error) {
	status, err := uc.gateway.QueryOrder(ctx, p.OrderID())
	if errors.Is(err, paymentgateway.ErrOrderNotFound) {
		if err := p.MarkAsFailed(); err != nil {
			return false, err
		}
		err := uc.paymentRepo.Update(ctx, p)
		if errors.Is(err, payment.ErrStatusRegression) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		uc.logger.Infow("orphaned payment marked failed", "order_id", p.OrderID())
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if status.OrderStatus == "" || vo.FromGatewayStatus(status.OrderStatus) == p.Status() {
		return false, nil
	}
	if err := uc.updater.Apply(ctx, p, status.OrderStatus, status.Payment); err != nil {
		return false, err
	}
	return true, nil
}
