// Package midtrans implements the payment gateway on Midtrans Snap and Core API.
package midtrans

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/brt06a/Testv5/internal/application/payment/paymentgateway"
	sharedConfig "github.com/brt06a/Testv5/internal/shared/config"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

const (
	statusSettlement = "settlement"
	statusCapture    = "capture"
	statusPending    = "pending"
	fraudAccept      = "accept"
)

type snapAPI interface {
	CreateTransaction(req *snap.Request, opts *midtrans.ConfigOptions) (*snap.Response, *midtrans.Error)
}

// snapClient sends each transaction with its own options so concurrent
// checkouts never share notification headers.
type snapClient struct {
	base snap.Client
}

func (c snapClient) CreateTransaction(req *snap.Request, opts *midtrans.ConfigOptions) (*snap.Response, *midtrans.Error) {
	client := c.base
	if opts != nil {
		client.Options = opts
	}
	return client.CreateTransaction(req)
}

type coreAPI interface {
	CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, *midtrans.Error)
}

// Gateway creates Snap checkouts and reads transaction status from the Core API.
type Gateway struct {
	serverKey string
	snap      snapAPI
	core      coreAPI
	logger    logger.Interface
}

func NewGateway(cfg sharedConfig.MidtransConfig, log logger.Interface) *Gateway {
	env := midtrans.Sandbox
	if cfg.IsProduction {
		env = midtrans.Production
	}

	var s snap.Client
	s.New(cfg.ServerKey, env)

	var c coreapi.Client
	c.New(cfg.ServerKey, env)

	return &Gateway{
		serverKey: cfg.ServerKey,
		snap:      snapClient{base: s},
		core:      &c,
		logger:    log.Named("midtrans"),
	}
}

func (g *Gateway) Name() string {
	return sharedConfig.GatewayMidtrans
}

// CreateOrder opens a Snap transaction. Midtrans takes whole currency units,
// so the amount is rounded.
func (g *Gateway) CreateOrder(_ context.Context, req paymentgateway.CreateOrderRequest) (*paymentgateway.CreateOrderResponse, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.Amount.Round(0).IntPart(),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
	}
	if req.ReturnURL != "" {
		snapReq.Callbacks = &snap.Callbacks{Finish: req.ReturnURL}
	}

	opts := &midtrans.ConfigOptions{}
	if req.NotifyURL != "" {
		opts.SetPaymentOverrideNotification(req.NotifyURL)
	}

	resp, mErr := g.snap.CreateTransaction(snapReq, opts)
	if mErr != nil {
		return nil, fmt.Errorf("midtrans create transaction %s: %s", req.OrderID, errorMessage(mErr))
	}
	if resp == nil || resp.RedirectURL == "" {
		return nil, fmt.Errorf("midtrans create transaction %s: empty redirect url", req.OrderID)
	}

	return &paymentgateway.CreateOrderResponse{
		GatewayOrderID:   req.OrderID,
		PaymentSessionID: resp.Token,
		PaymentURL:       resp.RedirectURL,
	}, nil
}

type notificationBody struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	TransactionID     string `json:"transaction_id"`
}

// ParseNotification verifies the notification signature
// SHA512(order_id + status_code + gross_amount + server key) before use.
func (g *Gateway) ParseNotification(_ context.Context, _ http.Header, body []byte) (*paymentgateway.Notification, error) {
	var nb notificationBody
	if err := json.Unmarshal(body, &nb); err != nil {
		return nil, fmt.Errorf("%w: %v", paymentgateway.ErrInvalidNotification, err)
	}
	if nb.OrderID == "" {
		return &paymentgateway.Notification{}, nil
	}

	want := Signature(nb.OrderID, nb.StatusCode, nb.GrossAmount, g.serverKey)
	got := strings.ToLower(strings.TrimSpace(nb.SignatureKey))
	if subtle.ConstantTimeCompare([]byte(want), []byte(got)) != 1 {
		g.logger.Warnw("midtrans notification signature mismatch", "order_id", nb.OrderID)
		return nil, fmt.Errorf("%w: signature mismatch", paymentgateway.ErrInvalidNotification)
	}

	n := &paymentgateway.Notification{
		OrderID:     nb.OrderID,
		OrderStatus: normalizeStatus(nb.TransactionStatus, nb.FraudStatus),
	}
	if n.OrderStatus == "" {
		n.OrderStatus = strings.ToUpper(statusPending)
	}
	if nb.PaymentType != "" || nb.TransactionID != "" {
		n.Payment = &paymentgateway.PaymentDetails{
			Method:        nb.PaymentType,
			TransactionID: nb.TransactionID,
		}
	}
	return n, nil
}

// QueryOrder checks the transaction. Pending transactions report an empty
// status.
func (g *Gateway) QueryOrder(_ context.Context, orderID string) (*paymentgateway.Notification, error) {
	resp, mErr := g.core.CheckTransaction(orderID)
	if mErr != nil {
		if mErr.StatusCode == http.StatusNotFound {
			return nil, paymentgateway.ErrOrderNotFound
		}
		return nil, fmt.Errorf("midtrans check transaction %s: %s", orderID, errorMessage(mErr))
	}
	if resp == nil || resp.StatusCode == "404" {
		return nil, paymentgateway.ErrOrderNotFound
	}

	n := &paymentgateway.Notification{
		OrderID:     orderID,
		OrderStatus: normalizeStatus(resp.TransactionStatus, resp.FraudStatus),
	}
	if n.OrderStatus == paymentgateway.StatusPaid {
		n.Payment = &paymentgateway.PaymentDetails{
			Method:        resp.PaymentType,
			TransactionID: resp.TransactionID,
		}
	}
	return n, nil
}

// normalizeStatus maps Midtrans transaction statuses onto order statuses:
// settled or accepted captures are PAID, pending is empty and the rest pass
// through upper-cased.
func normalizeStatus(transactionStatus, fraudStatus string) string {
	switch strings.ToLower(transactionStatus) {
	case statusSettlement:
		return paymentgateway.StatusPaid
	case statusCapture:
		if fraudStatus == "" || strings.EqualFold(fraudStatus, fraudAccept) {
			return paymentgateway.StatusPaid
		}
		return strings.ToUpper(fraudStatus)
	case statusPending, "":
		return ""
	default:
		return strings.ToUpper(transactionStatus)
	}
}

// Signature computes the Midtrans notification signature key.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func errorMessage(e *midtrans.Error) string {
	if e.RawError != nil {
		return fmt.Sprintf("%d %s: %v", e.StatusCode, e.Message, e.RawError)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}
