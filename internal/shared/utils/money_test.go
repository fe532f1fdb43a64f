package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	out := FormatAmount(decimal.NewFromInt(499), "INR")
	assert.Contains(t, out, "499")
	assert.NotContains(t, out, "INR 499")

	assert.Equal(t, "ZZZ 12.50", FormatAmount(decimal.RequireFromString("12.5"), "ZZZ"))
}
