package mappers

import (
	"github.com/brt06a/Testv5/internal/domain/payment"
	vo "github.com/brt06a/Testv5/internal/domain/payment/valueobjects"
	"github.com/brt06a/Testv5/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) *models.PaymentModel {
	customer := p.Customer()
	return &models.PaymentModel{
		ID:            p.ID(),
		OrderID:       p.OrderID(),
		Amount:        p.Amount(),
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

// PaymentToDomain rebuilds a payment. Status values the shop does not know
// are kept as reported by the gateway.
func PaymentToDomain(model *models.PaymentModel) *payment.Payment {
	return payment.ReconstructPayment(
		model.ID,
		model.OrderID,
		model.Amount,
		model.Currency,
		vo.PaymentStatus(model.Status),
		model.PlanID,
		model.PlanName,
		payment.Customer{
			Name:  model.CustomerName,
			Email: model.CustomerEmail,
			Phone: model.CustomerPhone,
		},
		model.PaymentMethod,
		model.UTR,
		model.TransactionID,
		model.CreatedAt,
		model.CompletedAt,
	)
}

func PaymentsToDomain(list []models.PaymentModel) []*payment.Payment {
	payments := make([]*payment.Payment, len(list))
	for i := range list {
		payments[i] = PaymentToDomain(&list[i])
	}
	return payments
}
