package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	d := decimal.RequireFromString("10.005")
	assert.Equal(t, "10.01", Format(Round2(d)))

	d = decimal.RequireFromString("10.004")
	assert.Equal(t, "10.00", Format(Round2(d)))
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("ten")
	require.Error(t, err)

	d, err := Parse(" 42.5 ")
	require.NoError(t, err)
	assert.Equal(t, "42.50", Format(d))
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "₹1500.00", Rupees(decimal.NewFromInt(1500)))
}
