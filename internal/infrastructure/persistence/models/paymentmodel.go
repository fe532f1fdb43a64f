package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brt06a/Testv5/internal/shared/constants"
)

type PaymentModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	OrderID       string          `gorm:"uniqueIndex;size:64;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency      string          `gorm:"size:10;not null;default:'INR'"`
	Status        string          `gorm:"size:32;not null;index:idx_payments_status_created,priority:1"`
	PlanID        *string         `gorm:"size:36;index"`
	PlanName      string          `gorm:"size:100;not null"`
	CustomerName  *string         `gorm:"size:255"`
	CustomerEmail *string         `gorm:"size:255"`
	CustomerPhone *string         `gorm:"size:32"`
	PaymentMethod *string         `gorm:"size:64"`
	UTR           *string         `gorm:"column:utr;size:128"`
	TransactionID *string         `gorm:"size:128"`
	CreatedAt     time.Time       `gorm:"not null;index:idx_payments_status_created,priority:2"`
	CompletedAt   *time.Time
}

func (PaymentModel) TableName() string {
	return constants.TablePayments
}
