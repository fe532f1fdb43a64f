package plan

import (
	"context"
	"errors"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanRepository interface {
	Create(ctx context.Context, p *Plan) error
	// GetByID returns ErrPlanNotFound when id is unknown.
	GetByID(ctx context.Context, id string) (*Plan, error)
	// List returns all plans in catalogue order.
	List(ctx context.Context) ([]*Plan, error)
	Count(ctx context.Context) (int64, error)
}
