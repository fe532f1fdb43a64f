package mappers

import (
	"github.com/brt06a/Testv5/internal/domain/admin"
	"github.com/brt06a/Testv5/internal/infrastructure/persistence/models"
)

func AdminToModel(a *admin.Admin) *models.AdminModel {
	return &models.AdminModel{
		ID:           a.ID(),
		Username:     a.Username(),
		PasswordHash: a.PasswordHash(),
		Email:        a.Email(),
		CreatedAt:    a.CreatedAt(),
	}
}

func AdminToDomain(model *models.AdminModel) *admin.Admin {
	return admin.ReconstructAdmin(model.ID, model.Username, model.PasswordHash, model.Email, model.CreatedAt)
}
