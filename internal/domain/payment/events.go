package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSucceededEvent is a snapshot of a payment taken when it first
// reaches SUCCESS. Listeners receive a copy and never the live entity.
type PaymentSucceededEvent struct {
	OrderID       string
	PlanName      string
	Amount        decimal.Decimal
	Currency      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PaymentMethod string
	UTR           string
	TransactionID string
	CompletedAt   time.Time
}

// NewPaymentSucceededEvent snapshots p. It must only be called after p
// transitioned into SUCCESS.
func NewPaymentSucceededEvent(p *Payment) PaymentSucceededEvent {
	event := PaymentSucceededEvent{
		OrderID:       p.orderID,
		PlanName:      p.planName,
		Amount:        p.amount,
		Currency:      p.currency,
		CustomerName:  deref(p.customer.Name),
		CustomerEmail: deref(p.customer.Email),
		CustomerPhone: deref(p.customer.Phone),
		PaymentMethod: deref(p.paymentMethod),
		UTR:           deref(p.utr),
		TransactionID: deref(p.transactionID),
	}
	if p.completedAt != nil {
		event.CompletedAt = *p.completedAt
	}
	return event
}
