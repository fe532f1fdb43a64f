package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/brt06a/Testv5/internal/domain/plan"
	"github.com/brt06a/Testv5/internal/infrastructure/persistence/models"
)

// PlanToModel converts a plan entity to its persistence model
func PlanToModel(p *plan.Plan) (*models.PlanModel, error) {
	features, err := json.Marshal(p.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan features: %w", err)
	}

	return &models.PlanModel{
		ID:        p.ID(),
		Name:      p.Name(),
		Duration:  p.Duration(),
		Price:     p.Price(),
		Features:  features,
		Popular:   p.Popular(),
		SortOrder: p.SortOrder(),
	}, nil
}

// PlanToDomain converts a persistence model to a plan entity
func PlanToDomain(model *models.PlanModel) (*plan.Plan, error) {
	var features []string
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal features of plan %s: %w", model.ID, err)
		}
	}

	return plan.ReconstructPlan(
		model.ID,
		model.Name,
		model.Duration,
		model.Price,
		features,
		model.Popular,
		model.SortOrder,
	), nil
}

func PlansToDomain(list []models.PlanModel) ([]*plan.Plan, error) {
	plans := make([]*plan.Plan, 0, len(list))
	for i := range list {
		p, err := PlanToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}
