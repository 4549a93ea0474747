package statistical

import (
	"math"
	"testing"

	"github.com/Lenostatos/Orinoco-2/internal/ctyval"
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func nums(fs ...float64) []cty.Value {
	out := make([]cty.Value, len(fs))
	for i, f := range fs {
		out[i] = cty.NumberFloatVal(f)
	}
	return out
}

func TestAverage(t *testing.T) {
	got, err := Average(nums(1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, 2.5, ctyval.Float(got))

	_, err = Average(nil)
	assert.ErrorIs(t, err, ErrNoValues)

	_, err = Average(nums(math.Inf(1), math.Inf(-1)))
	assert.ErrorIs(t, err, ctyval.ErrNaN)
}

func TestMaxMin(t *testing.T) {
	got, err := Max(nums(3, -1, 7.5))
	require.NoError(t, err)
	assert.Equal(t, 7.5, ctyval.Float(got))

	got, err = Min(nums(3, -1, 7.5))
	require.NoError(t, err)
	assert.Equal(t, -1.0, ctyval.Float(got))

	got, err = Max(nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(ctyval.Float(got), -1))

	got, err = Min(nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(ctyval.Float(got), 1))
}

func TestRandom(t *testing.T) {
	r := registry.New()
	(&Module{Rand: func() float64 { return 0.25 }}).Register(r)

	fn, ok := r.Function("random")
	require.True(t, ok)
	got, err := fn.Impl(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.25, ctyval.Float(got))
}

func TestRandom_DefaultSourceStaysInRange(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	fn, _ := r.Function("random")
	for range 100 {
		got, err := fn.Impl(nil)
		require.NoError(t, err)
		f := ctyval.Float(got)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}
