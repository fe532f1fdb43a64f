package scheduler

import (
	"context"
	"sync"
	"time"

	paymentUsecases "github.com/brt06a/Testv5/internal/application/payment/usecases"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

// PendingPaymentReconciler reconciles stale pending payments against the gateway.
type PendingPaymentReconciler interface {
	Execute(ctx context.Context) (*paymentUsecases.ReconcileResult, error)
}

// PaymentScheduler periodically asks the gateway about payments that never
// received a webhook. It runs once on startup and then every interval.
type PaymentScheduler struct {
	reconciler PendingPaymentReconciler
	logger     logger.Interface
	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	interval   time.Duration
}

func NewPaymentScheduler(
	reconciler PendingPaymentReconciler,
	interval time.Duration,
	logger logger.Interface,
) *PaymentScheduler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &PaymentScheduler{
		reconciler: reconciler,
		logger:     logger,
		stopChan:   make(chan struct{}),
		interval:   interval,
	}
}

// Start launches the reconcile loop in the background and returns immediately.
func (s *PaymentScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting payment scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runReconcileLoop(ctx)
	}()
}

// Stop stops the scheduler and waits for an in-flight run to finish.
// Safe to call multiple times.
func (s *PaymentScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping payment scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("payment scheduler stopped")
	})
}

func (s *PaymentScheduler) runReconcileLoop(ctx context.Context) {
	s.reconcilePendingPayments(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("payment scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.reconcilePendingPayments(ctx)
		}
	}
}

func (s *PaymentScheduler) reconcilePendingPayments(ctx context.Context) {
	s.logger.Debugw("reconcile pending payments task started")

	startTime := time.Now()

	result, err := s.reconciler.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Errorw("failed to reconcile pending payments",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	s.logger.Debugw("reconcile pending payments task finished",
		"checked", result.Checked,
		"duration", time.Since(startTime),
	)
}
