package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	vo "github.com/brt06a/Testv5/internal/domain/payment/valueobjects"
	"github.com/brt06a/Testv5/internal/shared/biztime"
)

// DefaultCurrency is the currency of every order created by the shop.
const DefaultCurrency = "INR"

// ErrStatusRegression is returned when an update tries to move a successful
// payment to another status.
var ErrStatusRegression = errors.New("payment already succeeded")

// Customer is the optional contact data captured at checkout.
type Customer struct {
	Name  *string
	Email *string
	Phone *string
}

// Settlement holds the payment details a gateway reports for an order.
// Empty strings are stored as null.
type Settlement struct {
	PaymentMethod string
	UTR           string
	TransactionID string
}

// Payment is one checkout attempt. orderID never changes after creation and
// completedAt is set exactly when the status becomes SUCCESS.
type Payment struct {
	id       string
	orderID  string
	amount   decimal.Decimal
	currency string
	status   vo.PaymentStatus

	planID   *string
	planName string
	customer Customer

	paymentMethod *string
	utr           *string
	transactionID *string

	createdAt   time.Time
	completedAt *time.Time
}

// NewPayment creates a PENDING payment that snapshots the plan name and price.
func NewPayment(orderID, planID, planName string, amount decimal.Decimal, customer Customer) (*Payment, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, fmt.Errorf("order ID is required")
	}
	if strings.TrimSpace(planName) == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}

	var planRef *string
	if planID != "" {
		planRef = &planID
	}

	return &Payment{
		id:       uuid.NewString(),
		orderID:  orderID,
		amount:   amount,
		currency: DefaultCurrency,
		status:   vo.PaymentStatusPending,
		planID:   planRef,
		planName: planName,
		customer: Customer{
			Name:  nullable(deref(customer.Name)),
			Email: nullable(deref(customer.Email)),
			Phone: nullable(deref(customer.Phone)),
		},
		createdAt: biztime.NowUTC(),
	}, nil
}

// ApplyGatewayUpdate records a status reported by the gateway.
//
// An empty status leaves the status untouched. When settlement is non-nil its
// fields overwrite the stored payment details. The first transition into
// SUCCESS stamps completedAt with at and reports completed=true. A successful
// payment accepts repeated SUCCESS updates without re-stamping completedAt and
// rejects any other status with ErrStatusRegression.
func (p *Payment) ApplyGatewayUpdate(gatewayStatus string, settlement *Settlement, at time.Time) (completed bool, err error) {
	next := p.status
	if gatewayStatus != "" {
		next = vo.FromGatewayStatus(gatewayStatus)
	}

	if p.status.IsSuccess() && !next.IsSuccess() {
		return false, fmt.Errorf("%w: ignoring status %s for order %s", ErrStatusRegression, next, p.orderID)
	}

	if settlement != nil {
		p.paymentMethod = nullable(settlement.PaymentMethod)
		p.utr = nullable(settlement.UTR)
		p.transactionID = nullable(settlement.TransactionID)
	}

	if next.IsSuccess() && !p.status.IsSuccess() {
		completedAt := at.UTC()
		p.completedAt = &completedAt
		completed = true
	}
	p.status = next

	return completed, nil
}

// MarkAsFailed fails a payment the gateway has no record of. Only pending
// payments can be failed this way.
func (p *Payment) MarkAsFailed() error {
	if !p.status.IsPending() {
		return fmt.Errorf("cannot mark payment %s as failed with status %s", p.orderID, p.status)
	}
	p.status = vo.PaymentStatusFailed
	return nil
}

// IsStale reports whether a pending payment has waited longer than after.
func (p *Payment) IsStale(now time.Time, after time.Duration) bool {
	return p.status.IsPending() && now.Sub(p.createdAt) > after
}

func (p *Payment) ID() string {
	return p.id
}

func (p *Payment) OrderID() string {
	return p.orderID
}

func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

func (p *Payment) Currency() string {
	return p.currency
}

func (p *Payment) Status() vo.PaymentStatus {
	return p.status
}

func (p *Payment) PlanID() *string {
	return p.planID
}

func (p *Payment) PlanName() string {
	return p.planName
}

func (p *Payment) Customer() Customer {
	return p.customer
}

func (p *Payment) PaymentMethod() *string {
	return p.paymentMethod
}

func (p *Payment) UTR() *string {
	return p.utr
}

func (p *Payment) TransactionID() *string {
	return p.transactionID
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) CompletedAt() *time.Time {
	return p.completedAt
}

// ReconstructPayment rebuilds a payment from persistence.
func ReconstructPayment(
	id, orderID string,
	amount decimal.Decimal,
	currency string,
	status vo.PaymentStatus,
	planID *string,
	planName string,
	customer Customer,
	paymentMethod, utr, transactionID *string,
	createdAt time.Time,
	completedAt *time.Time,
) *Payment {
	return &Payment{
		id:            id,
		orderID:       orderID,
		amount:        amount,
		currency:      currency,
		status:        status,
		planID:        planID,
		planName:      planName,
		customer:      customer,
		paymentMethod: paymentMethod,
		utr:           utr,
		transactionID: transactionID,
		createdAt:     createdAt,
		completedAt:   completedAt,
	}
}

func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
