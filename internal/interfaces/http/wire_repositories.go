package http

import (
	"gorm.io/gorm"

	"github.com/brt06a/Testv5/internal/domain/admin"
	"github.com/brt06a/Testv5/internal/domain/payment"
	"github.com/brt06a/Testv5/internal/domain/plan"
	"github.com/brt06a/Testv5/internal/infrastructure/repository"
	"github.com/brt06a/Testv5/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	planRepo    plan.PlanRepository
	paymentRepo payment.PaymentRepository
	adminRepo   admin.AdminRepository
	txManager   db.Transactor
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(gdb *gorm.DB) *repositories {
	return &repositories{
		planRepo:    repository.NewPlanRepository(gdb),
		paymentRepo: repository.NewPaymentRepository(gdb),
		adminRepo:   repository.NewAdminRepository(gdb),
		txManager:   db.NewTransactionManager(gdb),
	}
}
