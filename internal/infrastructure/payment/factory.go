// Package payment wires the configured payment gateway provider.
package payment

import (
	"fmt"

	"github.com/brt06a/Testv5/internal/application/payment/paymentgateway"
	"github.com/brt06a/Testv5/internal/infrastructure/payment/cashfree"
	"github.com/brt06a/Testv5/internal/infrastructure/payment/midtrans"
	"github.com/brt06a/Testv5/internal/infrastructure/payment/mock"
	sharedConfig "github.com/brt06a/Testv5/internal/shared/config"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

// NewGateway returns the provider selected by payment.gateway.
func NewGateway(cfg sharedConfig.PaymentConfig, log logger.Interface) (paymentgateway.PaymentGateway, error) {
	switch cfg.Gateway {
	case sharedConfig.GatewayCashfree:
		if cfg.Cashfree.ClientID == "" || cfg.Cashfree.ClientSecret == "" {
			log.Warnw("cashfree credentials are empty, order creation will fail")
		}
		return cashfree.NewGateway(cfg.Cashfree, cfg.GetHTTPTimeout(), log), nil
	case sharedConfig.GatewayMidtrans:
		if cfg.Midtrans.ServerKey == "" {
			return nil, fmt.Errorf("payment.midtrans.server_key is required")
		}
		return midtrans.NewGateway(cfg.Midtrans, log), nil
	case sharedConfig.GatewayMock:
		log.Warnw("using mock payment gateway, orders are never charged")
		return mock.NewGateway(true), nil
	default:
		return nil, fmt.Errorf("unsupported payment gateway %q", cfg.Gateway)
	}
}
