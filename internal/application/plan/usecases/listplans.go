package usecases

import (
	"context"

	"github.com/brt06a/Testv5/internal/application/plan/dto"
	"github.com/brt06a/Testv5/internal/domain/plan"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

type ListPlansUseCase struct {
	planRepo plan.PlanRepository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, logger: logger}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, apperrors.NewInternalError("Failed to fetch plans").WithCause(err)
	}

	result := make([]*dto.PlanDTO, 0, len(plans))
	for _, p := range plans {
		result = append(result, dto.ToPlanDTO(p))
	}
	return result, nil
}
