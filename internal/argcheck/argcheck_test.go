package argcheck

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

func TestFinite(t *testing.T) {
	got, err := Finite([]cty.Value{cty.NumberIntVal(1), cty.NumberFloatVal(2.5)})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5}, got)

	_, err = Finite([]cty.Value{cty.NumberIntVal(1), cty.PositiveInfinity})
	require.Error(t, err)

	var argErr function.ArgError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, 1, argErr.Index)
}

func TestNonZero(t *testing.T) {
	args := []cty.Value{cty.NumberIntVal(3), cty.NumberIntVal(0)}
	assert.NoError(t, NonZero(args, 0, "x"))

	err := NonZero(args, 1, "division by zero")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestInteger(t *testing.T) {
	args := []cty.Value{cty.NumberFloatVal(2.9), cty.NumberFloatVal(-2.9), cty.NegativeInfinity, cty.NumberFloatVal(1e12)}

	n, err := Integer(args, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = Integer(args, 1)
	require.NoError(t, err)
	assert.Equal(t, -2, n)

	_, err = Integer(args, 2)
	assert.Error(t, err)

	n, err = Integer(args, 3)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, n)
}

func TestNumber(t *testing.T) {
	v, err := Number(1.5)
	require.NoError(t, err)
	assert.True(t, v.RawEquals(cty.NumberFloatVal(1.5)))

	_, err = Number(math.NaN())
	assert.Error(t, err)
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.5, 3},
		{2.4, 2},
		{-2.5, -2},
		{-2.6, -3},
		{0, 0},
		{7, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in), "Round(%v)", tt.in)
	}
	assert.True(t, math.IsInf(Round(math.Inf(1)), 1))
}
