package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/brt06a/Testv5/internal/domain/admin"
	"github.com/brt06a/Testv5/internal/infrastructure/persistence/mappers"
	"github.com/brt06a/Testv5/internal/infrastructure/persistence/models"
	"github.com/brt06a/Testv5/internal/shared/db"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.AdminToModel(a)).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	var model models.AdminModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("username = ?", username).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return mappers.AdminToDomain(&model), nil
}
