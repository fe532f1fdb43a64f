package migration

import (
	"github.com/brt06a/Testv5/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the persistence models managed by gorm AutoMigrate.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PlanModel{},
		&models.PaymentModel{},
		&models.AdminModel{},
	}
}
