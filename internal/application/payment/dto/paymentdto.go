package dto

import (
	"time"

	"github.com/brt06a/Testv5/internal/domain/payment"
)

// PaymentDTO is the public representation of a payment record.
type PaymentDTO struct {
	ID            string     `json:"id"`
	OrderID       string     `json:"orderId"`
	Amount        string     `json:"amount"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	PlanID        *string    `json:"planId"`
	PlanName      string     `json:"planName"`
	CustomerName  *string    `json:"customerName"`
	CustomerEmail *string    `json:"customerEmail"`
	CustomerPhone *string    `json:"customerPhone"`
	PaymentMethod *string    `json:"paymentMethod"`
	UTR           *string    `json:"utr"`
	TransactionID *string    `json:"transactionId"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt"`
}

// CreatePaymentOrderResponse is returned after a checkout was opened.
type CreatePaymentOrderResponse struct {
	PaymentURL string `json:"paymentUrl"`
	OrderID    string `json:"orderId"`
}

func ToPaymentDTO(p *payment.Payment) *PaymentDTO {
	customer := p.Customer()
	return &PaymentDTO{
		ID:            p.ID(),
		OrderID:       p.OrderID(),
		Amount:        p.Amount().StringFixed(2),
		Currency:      p.Currency(),
		Status:        p.Status().String(),
		PlanID:        p.PlanID(),
		PlanName:      p.PlanName(),
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		PaymentMethod: p.PaymentMethod(),
		UTR:           p.UTR(),
		TransactionID: p.TransactionID(),
		CreatedAt:     p.CreatedAt(),
		CompletedAt:   p.CompletedAt(),
	}
}

func ToPaymentDTOList(payments []*payment.Payment) []*PaymentDTO {
	result := make([]*PaymentDTO, 0, len(payments))
	for _, p := range payments {
		result = append(result, ToPaymentDTO(p))
	}
	return result
}
