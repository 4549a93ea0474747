package logical

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestEquals(t *testing.T) {
	got, err := Equals([]cty.Value{cty.StringVal("5"), cty.StringVal("5")})
	require.NoError(t, err)
	assert.True(t, got.True())

	got, err = Equals([]cty.Value{cty.StringVal("5"), cty.StringVal("5.0")})
	require.NoError(t, err)
	assert.False(t, got.True())
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		name string
		fn   func([]cty.Value) (cty.Value, error)
		a, b float64
		want bool
	}{
		{"less", LessThan, 1, 2, true},
		{"less equal", LessThan, 2, 2, false},
		{"less infinity", LessThan, 1e300, math.Inf(1), true},
		{"greater", GreaterThan, 3, 2, true},
		{"greater equal", GreaterThan, 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn([]cty.Value{cty.NumberFloatVal(tt.a), cty.NumberFloatVal(tt.b)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.True())
		})
	}
}

func TestIf(t *testing.T) {
	yes, no := cty.StringVal("yes"), cty.StringVal("no")

	got, err := If([]cty.Value{cty.True, yes, no})
	require.NoError(t, err)
	assert.Equal(t, "yes", got.AsString())

	got, err = If([]cty.Value{cty.False, yes, no})
	require.NoError(t, err)
	assert.Equal(t, "no", got.AsString())
}

func TestAndOrNot(t *testing.T) {
	got, _ := And([]cty.Value{cty.True, cty.True})
	assert.True(t, got.True())
	got, _ = And([]cty.Value{cty.True, cty.False})
	assert.False(t, got.True())
	got, _ = And(nil)
	assert.True(t, got.True())

	got, _ = Or([]cty.Value{cty.False, cty.True})
	assert.True(t, got.True())
	got, _ = Or(nil)
	assert.False(t, got.True())

	got, _ = Not([]cty.Value{cty.True})
	assert.False(t, got.True())
}
