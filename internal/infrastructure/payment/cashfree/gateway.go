// Package cashfree implements the Cashfree Payment Gateway orders API.
package cashfree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/brt06a/Testv5/internal/application/payment/paymentgateway"
	sharedConfig "github.com/brt06a/Testv5/internal/shared/config"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

const (
	defaultAPIVersion = "2023-08-01"

	statusActive = "ACTIVE"
	statusPaid   = "PAID"
)

// Gateway talks to the Cashfree PG REST API.
type Gateway struct {
	baseURL      string
	clientID     string
	clientSecret string
	apiVersion   string
	httpClient   *http.Client
	logger       logger.Interface
}

// NewGateway creates a Cashfree client for the configured environment.
func NewGateway(cfg sharedConfig.CashfreeConfig, timeout time.Duration, log logger.Interface) *Gateway {
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	return &Gateway{
		baseURL:      cfg.GetBaseURL(),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		apiVersion:   apiVersion,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       log.Named("cashfree"),
	}
}

func (g *Gateway) Name() string {
	return sharedConfig.GatewayCashfree
}

type customerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url,omitempty"`
	NotifyURL string `json:"notify_url,omitempty"`
}

type createOrderBody struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     json.Number     `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderMeta       orderMeta       `json:"order_meta"`
}

type orderEntity struct {
	CFOrderID        json.RawMessage `json:"cf_order_id"`
	OrderID          string          `json:"order_id"`
	OrderStatus      string          `json:"order_status"`
	PaymentSessionID string          `json:"payment_session_id"`
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
}

// CreateOrder registers the order and returns the hosted checkout URL built
// from the payment session id.
func (g *Gateway) CreateOrder(ctx context.Context, req paymentgateway.CreateOrderRequest) (*paymentgateway.CreateOrderResponse, error) {
	body := createOrderBody{
		OrderID:       req.OrderID,
		OrderAmount:   json.Number(req.Amount.StringFixed(2)),
		OrderCurrency: req.Currency,
		CustomerDetails: customerDetails{
			CustomerID:    req.Customer.ID,
			CustomerName:  req.Customer.Name,
			CustomerEmail: req.Customer.Email,
			CustomerPhone: req.Customer.Phone,
		},
		OrderMeta: orderMeta{
			ReturnURL: req.ReturnURL,
			NotifyURL: req.NotifyURL,
		},
	}

	var order orderEntity
	status, err := g.do(ctx, http.MethodPost, "/orders", body, &order)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("cashfree create order %s: endpoint not found", req.OrderID)
	}
	if order.PaymentSessionID == "" {
		return nil, fmt.Errorf("cashfree create order %s: response has no payment_session_id", req.OrderID)
	}

	return &paymentgateway.CreateOrderResponse{
		GatewayOrderID:   rawString(order.CFOrderID),
		PaymentSessionID: order.PaymentSessionID,
		PaymentURL:       fmt.Sprintf("%s/orders/%s/payments", g.baseURL, url.PathEscape(order.PaymentSessionID)),
		OrderStatus:      order.OrderStatus,
	}, nil
}

type paymentEntity struct {
	CFPaymentID   json.RawMessage `json:"cf_payment_id"`
	PaymentStatus string          `json:"payment_status"`
	PaymentGroup  string          `json:"payment_group"`
	PaymentMethod json.RawMessage `json:"payment_method"`
	BankReference string          `json:"bank_reference"`
	UTR           string          `json:"utr"`
}

// QueryOrder reads the order status. Orders that are still open report an
// empty status; settled orders carry the successful payment attempt.
func (g *Gateway) QueryOrder(ctx context.Context, orderID string) (*paymentgateway.Notification, error) {
	var order orderEntity
	status, err := g.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &order)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, paymentgateway.ErrOrderNotFound
	}

	result := &paymentgateway.Notification{OrderID: orderID}
	switch strings.ToUpper(order.OrderStatus) {
	case statusActive:
		return result, nil
	case statusPaid:
		result.OrderStatus = paymentgateway.StatusPaid
	default:
		result.OrderStatus = strings.ToUpper(order.OrderStatus)
		return result, nil
	}

	var attempts []paymentEntity
	if _, err := g.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID)+"/payments", nil, &attempts); err != nil {
		g.logger.Warnw("cashfree payments lookup failed, settling without details",
			"order_id", orderID,
			"error", err,
		)
		return result, nil
	}
	for _, attempt := range attempts {
		if strings.EqualFold(attempt.PaymentStatus, "SUCCESS") {
			result.Payment = attempt.details()
			break
		}
	}
	return result, nil
}

func (p paymentEntity) details() *paymentgateway.PaymentDetails {
	method := p.PaymentGroup
	if method == "" {
		method = methodName(p.PaymentMethod)
	}
	utr := p.UTR
	if utr == "" {
		utr = p.BankReference
	}
	return &paymentgateway.PaymentDetails{
		Method:        method,
		UTR:           utr,
		TransactionID: rawString(p.CFPaymentID),
	}
}

type webhookPayment struct {
	PaymentMethod json.RawMessage `json:"payment_method"`
	PaymentGroup  string          `json:"payment_group"`
	PaymentStatus string          `json:"payment_status"`
	UTR           string          `json:"utr"`
	BankReference string          `json:"bank_reference"`
	CFPaymentID   json.RawMessage `json:"cf_payment_id"`
}

type webhookBody struct {
	OrderID     string          `json:"order_id"`
	OrderStatus string          `json:"order_status"`
	Payment     *webhookPayment `json:"payment"`

	// Cashfree's versioned webhook envelope
	Type string `json:"type"`
	Data *struct {
		Order struct {
			OrderID string `json:"order_id"`
		} `json:"order"`
		Payment *webhookPayment `json:"payment"`
	} `json:"data"`
}

// ParseNotification accepts the flat {order_id, order_status, payment}
// delivery and the {type, data:{order, payment}} envelope.
func (g *Gateway) ParseNotification(_ context.Context, _ http.Header, body []byte) (*paymentgateway.Notification, error) {
	var wb webhookBody
	if err := json.Unmarshal(body, &wb); err != nil {
		return nil, fmt.Errorf("%w: %v", paymentgateway.ErrInvalidNotification, err)
	}

	if wb.Data != nil && wb.OrderID == "" {
		n := &paymentgateway.Notification{OrderID: wb.Data.Order.OrderID}
		if p := wb.Data.Payment; p != nil {
			n.OrderStatus = envelopeStatus(p.PaymentStatus)
			n.Payment = p.details()
		}
		return n, nil
	}

	n := &paymentgateway.Notification{
		OrderID:     wb.OrderID,
		OrderStatus: wb.OrderStatus,
	}
	if wb.Payment != nil {
		n.Payment = wb.Payment.details()
	}
	return n, nil
}

func (p *webhookPayment) details() *paymentgateway.PaymentDetails {
	method := methodName(p.PaymentMethod)
	if method == "" {
		method = p.PaymentGroup
	}
	utr := p.UTR
	if utr == "" {
		utr = p.BankReference
	}
	return &paymentgateway.PaymentDetails{
		Method:        method,
		UTR:           utr,
		TransactionID: rawString(p.CFPaymentID),
	}
}

// envelopeStatus maps payment attempt statuses to order statuses.
func envelopeStatus(paymentStatus string) string {
	switch strings.ToUpper(paymentStatus) {
	case "SUCCESS":
		return paymentgateway.StatusPaid
	case "":
		return ""
	default:
		return strings.ToUpper(paymentStatus)
	}
}

// methodName reads payment_method as either a plain string or Cashfree's
// object form such as {"upi": {...}}, where the single key names the method.
func methodName(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		for k := range obj {
			return k
		}
	}
	return ""
}

// rawString renders a JSON string or number without quotes.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// do sends a request and decodes 2xx bodies into out. Non-2xx statuses other
// than 404 are returned as errors carrying the gateway message.
func (g *Gateway) do(ctx context.Context, method, path string, payload, out any) (int, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal cashfree request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to build cashfree request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", g.clientID)
	req.Header.Set("x-client-secret", g.clientSecret)
	req.Header.Set("x-api-version", g.apiVersion)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("cashfree %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read cashfree response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return resp.StatusCode, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		_ = json.Unmarshal(data, &apiErr)
		g.logger.Warnw("cashfree request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"code", apiErr.Code,
			"message", apiErr.Message,
		)
		return resp.StatusCode, fmt.Errorf("cashfree %s %s: status %d: %s", method, path, resp.StatusCode, apiErr.Message)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode cashfree response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
