package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/brt06a/Testv5/internal/shared/constants"
)

// PlanModel represents the database persistence model for promotion plans
type PlanModel struct {
	ID        string          `gorm:"primaryKey;size:36"`
	Name      string          `gorm:"not null;size:100"`
	Duration  string          `gorm:"not null;size:50"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Features  datatypes.JSON  `gorm:"not null"`
	Popular   bool            `gorm:"not null;default:false"`
	SortOrder int             `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
