package plan

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	features := []string{"Instant channel promotions", "Basic analytics"}
	p, err := NewPlan("1 Day Pass", "24 hours", decimal.NewFromInt(99), features, false, 1)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID())
	assert.Equal(t, "24 hours", p.Duration())
	assert.Equal(t, features, p.Features())

	features[0] = "mutated"
	assert.Equal(t, "Instant channel promotions", p.Features()[0])

	got := p.Features()
	got[1] = "mutated"
	assert.Equal(t, "Basic analytics", p.Features()[1])
}

func TestNewPlan_Validation(t *testing.T) {
	_, err := NewPlan("", "24 hours", decimal.NewFromInt(99), nil, false, 0)
	assert.Error(t, err)

	_, err = NewPlan("Plan", "", decimal.NewFromInt(99), nil, false, 0)
	assert.Error(t, err)

	_, err = NewPlan("Plan", "24 hours", decimal.NewFromInt(-1), nil, false, 0)
	assert.Error(t, err)
}
