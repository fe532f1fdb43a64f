package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/brt06a/Testv5/internal/domain/admin"
	"github.com/brt06a/Testv5/internal/domain/plan"
	"github.com/brt06a/Testv5/internal/shared/db"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

const (
	MessageSeeded        = "Data seeded successfully"
	MessageAlreadySeeded = "Data already seeded"
)

// Catalog is the initial data written by the seed.
type Catalog struct {
	Admin AdminSeed
	Plans []PlanSeed
}

type AdminSeed struct {
	Username string
	Password string
	Email    string
}

type PlanSeed struct {
	Name     string
	Duration string
	Price    decimal.Decimal
	Features []string
	Popular  bool
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type SeedResult struct {
	Seeded  bool
	Message string
}

type SeedDataUseCase struct {
	planRepo  plan.PlanRepository
	adminRepo admin.AdminRepository
	hasher    PasswordHasher
	txManager db.Transactor
	catalog   Catalog
	logger    logger.Interface
}

func NewSeedDataUseCase(
	planRepo plan.PlanRepository,
	adminRepo admin.AdminRepository,
	hasher PasswordHasher,
	txManager db.Transactor,
	catalog Catalog,
	logger logger.Interface,
) *SeedDataUseCase {
	return &SeedDataUseCase{
		planRepo:  planRepo,
		adminRepo: adminRepo,
		hasher:    hasher,
		txManager: txManager,
		catalog:   catalog,
		logger:    logger,
	}
}

// Execute writes the catalogue once. It is a no-op when any plan exists; an
// existing admin account with the seeded username is kept as is.
func (uc *SeedDataUseCase) Execute(ctx context.Context) (*SeedResult, error) {
	count, err := uc.planRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count plans", "error", err)
		return nil, apperrors.NewInternalError("Failed to seed data").WithCause(err)
	}
	if count > 0 {
		return &SeedResult{Seeded: false, Message: MessageAlreadySeeded}, nil
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.seedAdmin(txCtx); err != nil {
			return err
		}
		return uc.seedPlans(txCtx)
	})
	if err != nil {
		uc.logger.Errorw("failed to seed data", "error", err)
		return nil, apperrors.NewInternalError("Failed to seed data").WithCause(err)
	}

	uc.logger.Infow("seed data created", "plans", len(uc.catalog.Plans), "admin", uc.catalog.Admin.Username)
	return &SeedResult{Seeded: true, Message: MessageSeeded}, nil
}

func (uc *SeedDataUseCase) seedAdmin(ctx context.Context) error {
	seed := uc.catalog.Admin
	_, err := uc.adminRepo.GetByUsername(ctx, seed.Username)
	if err == nil {
		uc.logger.Infow("admin already present, skipping", "username", seed.Username)
		return nil
	}
	if !errors.Is(err, admin.ErrAdminNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	hash, err := uc.hasher.Hash(seed.Password)
	if err != nil {
		return err
	}
	account, err := admin.NewAdmin(seed.Username, hash, seed.Email)
	if err != nil {
		return fmt.Errorf("build admin: %w", err)
	}
	return uc.adminRepo.Create(ctx, account)
}

func (uc *SeedDataUseCase) seedPlans(ctx context.Context) error {
	for i, seed := range uc.catalog.Plans {
		p, err := plan.NewPlan(seed.Name, seed.Duration, seed.Price, seed.Features, seed.Popular, i+1)
		if err != nil {
			return fmt.Errorf("build plan %q: %w", seed.Name, err)
		}
		if err := uc.planRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("create plan %q: %w", seed.Name, err)
		}
	}
	return nil
}
