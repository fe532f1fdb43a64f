package plan

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Plan is a purchasable promotion package. Plans are created by the seed
// and read-only afterwards.
type Plan struct {
	id       string
	name     string
	duration string
	price    decimal.Decimal
	features []string
	popular  bool
	// sortOrder positions the plan in the catalogue, lowest first.
	sortOrder int
}

func NewPlan(name, duration string, price decimal.Decimal, features []string, popular bool, sortOrder int) (*Plan, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if strings.TrimSpace(duration) == "" {
		return nil, fmt.Errorf("plan duration is required")
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("plan price must be positive")
	}

	return &Plan{
		id:        uuid.NewString(),
		name:      name,
		duration:  duration,
		price:     price,
		features:  append([]string(nil), features...),
		popular:   popular,
		sortOrder: sortOrder,
	}, nil
}

func ReconstructPlan(id, name, duration string, price decimal.Decimal, features []string, popular bool, sortOrder int) *Plan {
	return &Plan{
		id:        id,
		name:      name,
		duration:  duration,
		price:     price,
		features:  features,
		popular:   popular,
		sortOrder: sortOrder,
	}
}

func (p *Plan) ID() string {
	return p.id
}

func (p *Plan) Name() string {
	return p.name
}

// Duration is a display label such as "7 days".
func (p *Plan) Duration() string {
	return p.duration
}

func (p *Plan) Price() decimal.Decimal {
	return p.price
}

// Features returns a copy of the ordered feature list.
func (p *Plan) Features() []string {
	out := make([]string, len(p.features))
	copy(out, p.features)
	return out
}

func (p *Plan) Popular() bool {
	return p.popular
}

func (p *Plan) SortOrder() int {
	return p.sortOrder
}
