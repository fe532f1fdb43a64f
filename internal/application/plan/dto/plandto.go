package dto

import "github.com/brt06a/Testv5/internal/domain/plan"

type PlanDTO struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Duration string   `json:"duration"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	return &PlanDTO{
		ID:       p.ID(),
		Name:     p.Name(),
		Duration: p.Duration(),
		Price:    p.Price().StringFixed(2),
		Features: p.Features(),
		Popular:  p.Popular(),
	}
}
