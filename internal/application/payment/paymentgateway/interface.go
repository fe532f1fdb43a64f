package paymentgateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderNotFound is returned by QueryOrder when the gateway has no
	// record of the order.
	ErrOrderNotFound = errors.New("order not found at payment gateway")
	// ErrInvalidNotification is returned for webhook bodies that cannot be
	// parsed or fail signature verification.
	ErrInvalidNotification = errors.New("invalid payment notification")
)

// StatusPaid is the normalized order status for a completed payment.
const StatusPaid = "PAID"

// PaymentGateway is a hosted checkout provider.
type PaymentGateway interface {
	Name() string
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error)
	// ParseNotification decodes a webhook delivery into the normalized form.
	// A missing order id is not an error here; callers validate it.
	ParseNotification(ctx context.Context, header http.Header, body []byte) (*Notification, error)
	// QueryOrder fetches the current order status from the gateway. While the
	// customer has not finished paying OrderStatus is empty.
	QueryOrder(ctx context.Context, orderID string) (*Notification, error)
}

type Customer struct {
	ID    string
	Name  string
	Email string
	Phone string
}

type CreateOrderRequest struct {
	OrderID   string
	Amount    decimal.Decimal
	Currency  string
	Customer  Customer
	ReturnURL string
	NotifyURL string
}

type CreateOrderResponse struct {
	GatewayOrderID   string
	PaymentSessionID string
	PaymentURL       string
	OrderStatus      string
}

// Notification is the normalized order status report. OrderStatus is
// StatusPaid for completed payments and the gateway's own status otherwise.
type Notification struct {
	OrderID     string
	OrderStatus string
	Payment     *PaymentDetails
}

type PaymentDetails struct {
	Method        string
	UTR           string
	TransactionID string
}
