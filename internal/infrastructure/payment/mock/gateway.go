// Package mock provides an in-process payment gateway for local runs and tests.
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/brt06a/Testv5/internal/application/payment/paymentgateway"
	sharedConfig "github.com/brt06a/Testv5/internal/shared/config"
)

// Gateway accepts every order. Queried orders report PAID when shouldSucceed
// is set and stay open otherwise.
type Gateway struct {
	shouldSucceed bool

	mu     sync.Mutex
	orders map[string]struct{}
}

func NewGateway(shouldSucceed bool) *Gateway {
	return &Gateway{
		shouldSucceed: shouldSucceed,
		orders:        make(map[string]struct{}),
	}
}

func (m *Gateway) Name() string {
	return sharedConfig.GatewayMock
}

func (m *Gateway) CreateOrder(_ context.Context, req paymentgateway.CreateOrderRequest) (*paymentgateway.CreateOrderResponse, error) {
	m.mu.Lock()
	m.orders[req.OrderID] = struct{}{}
	m.mu.Unlock()

	// there is no hosted checkout; send the customer straight to the return page
	sessionID := fmt.Sprintf("MOCK_%s", req.OrderID)
	paymentURL := req.ReturnURL
	if paymentURL == "" {
		paymentURL = fmt.Sprintf("https://mock-payment.example.com/pay?session=%s", url.QueryEscape(sessionID))
	}
	return &paymentgateway.CreateOrderResponse{
		GatewayOrderID:   sessionID,
		PaymentSessionID: sessionID,
		PaymentURL:       paymentURL,
		OrderStatus:      "ACTIVE",
	}, nil
}

type notificationBody struct {
	OrderID     string `json:"order_id"`
	OrderStatus string `json:"order_status"`
	Payment     *struct {
		PaymentMethod string `json:"payment_method"`
		UTR           string `json:"utr"`
		TransactionID string `json:"cf_payment_id"`
	} `json:"payment"`
}

func (m *Gateway) ParseNotification(_ context.Context, _ http.Header, body []byte) (*paymentgateway.Notification, error) {
	var nb notificationBody
	if err := json.Unmarshal(body, &nb); err != nil {
		return nil, fmt.Errorf("%w: %v", paymentgateway.ErrInvalidNotification, err)
	}

	n := &paymentgateway.Notification{
		OrderID:     nb.OrderID,
		OrderStatus: nb.OrderStatus,
	}
	if nb.Payment != nil {
		n.Payment = &paymentgateway.PaymentDetails{
			Method:        nb.Payment.PaymentMethod,
			UTR:           nb.Payment.UTR,
			TransactionID: nb.Payment.TransactionID,
		}
	}
	return n, nil
}

func (m *Gateway) QueryOrder(_ context.Context, orderID string) (*paymentgateway.Notification, error) {
	m.mu.Lock()
	_, known := m.orders[orderID]
	m.mu.Unlock()
	if !known {
		return nil, paymentgateway.ErrOrderNotFound
	}

	if !m.shouldSucceed {
		return &paymentgateway.Notification{OrderID: orderID}, nil
	}

	return &paymentgateway.Notification{
		OrderID:     orderID,
		OrderStatus: paymentgateway.StatusPaid,
		Payment: &paymentgateway.PaymentDetails{
			Method:        "upi",
			TransactionID: fmt.Sprintf("TXN_%d", time.Now().Unix()),
		},
	}, nil
}
