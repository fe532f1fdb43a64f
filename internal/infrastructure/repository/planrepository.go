package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/brt06a/Testv5/internal/domain/plan"
	"github.com/brt06a/Testv5/internal/infrastructure/persistence/mappers"
	"github.com/brt06a/Testv5/internal/infrastructure/persistence/models"
	"github.com/brt06a/Testv5/internal/shared/db"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	model, err := mappers.PlanToModel(p)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	var model models.PlanModel

	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return mappers.PlanToDomain(&model)
}

// List returns plans in catalogue order.
func (r *PlanRepository) List(ctx context.Context) ([]*plan.Plan, error) {
	var planModels []models.PlanModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&planModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return mappers.PlansToDomain(planModels)
}

func (r *PlanRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count plans: %w", err)
	}
	return count, nil
}
