package models

import (
	"time"

	"github.com/brt06a/Testv5/internal/shared/constants"
)

type AdminModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;not null"`
	CreatedAt    time.Time
}

func (AdminModel) TableName() string {
	return constants.TableAdmins
}
