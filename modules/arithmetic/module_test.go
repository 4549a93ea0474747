package arithmetic

import (
	"math"
	"testing"

	"github.com/Lenostatos/Orinoco-2/internal/ctyval"
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

func nums(fs ...float64) []cty.Value {
	out := make([]cty.Value, len(fs))
	for i, f := range fs {
		out[i] = cty.NumberFloatVal(f)
	}
	return out
}

func call(t *testing.T, id string, args ...float64) (cty.Value, error) {
	t.Helper()
	r := registry.New()
	(&Module{}).Register(r)
	fn, ok := r.Function(id)
	require.True(t, ok, "function %q not registered", id)
	return fn.Impl(nums(args...))
}

func assertNumber(t *testing.T, want float64, got cty.Value) {
	t.Helper()
	require.Equal(t, cty.Number, got.Type())
	assert.InDelta(t, want, ctyval.Float(got), 1e-9)
}

func TestModule_RegistersEveryFunction(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	assert.Equal(t, []string{
		"summation", "subtraction", "multiplication", "division", "identity",
		"exponentiation", "square", "sqrt", "is_even", "quotient", "remainder",
		"absolute", "sign", "round", "round_up", "round_down", "ceiling",
	}, r.IDs())
}

func TestNumericResults(t *testing.T) {
	tests := []struct {
		id   string
		args []float64
		want float64
	}{
		{"summation", []float64{1, 2, 3}, 6},
		{"summation", nil, 0},
		{"subtraction", []float64{5, 8}, -3},
		{"multiplication", []float64{2, 3, 4}, 24},
		{"multiplication", nil, 1},
		{"division", []float64{10, 4}, 2.5},
		{"identity", []float64{42}, 42},
		{"exponentiation", []float64{2, 10}, 1024},
		{"square", []float64{-3}, 9},
		{"sqrt", []float64{16}, 4},
		{"quotient", []float64{7, 2}, 3},
		{"quotient", []float64{-7, 2}, -4},
		{"remainder", []float64{7, 3}, 1},
		{"remainder", []float64{-7, 3}, -1},
		{"absolute", []float64{-2.5}, 2.5},
		{"sign", []float64{-9}, -1},
		{"sign", []float64{0}, 0},
		{"sign", []float64{0.1}, 1},
		{"round", []float64{2.5}, 3},
		{"round", []float64{-2.5}, -2},
		{"round_up", []float64{1.1}, 2},
		{"round_down", []float64{1.9}, 1},
		{"ceiling", []float64{7, 5}, 10},
		{"ceiling", []float64{7, 0}, 0},
		{"ceiling", []float64{2.1, 0.5}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := call(t, tt.id, tt.args...)
			require.NoError(t, err)
			assertNumber(t, tt.want, got)
		})
	}
}

func TestIsEven(t *testing.T) {
	got, err := call(t, "is_even", 4)
	require.NoError(t, err)
	assert.True(t, got.True())

	got, err = call(t, "is_even", 3)
	require.NoError(t, err)
	assert.False(t, got.True())

	got, err = call(t, "is_even", 2.5)
	require.NoError(t, err)
	assert.False(t, got.True())
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		args    []float64
		wantIdx int
	}{
		{"division by zero", "division", []float64{10, 0}, 1},
		{"quotient by zero", "quotient", []float64{10, 0}, 1},
		{"remainder by zero", "remainder", []float64{10, 0}, 1},
		{"infinite summand", "summation", []float64{1, math.Inf(1)}, 1},
		{"infinite identity", "identity", []float64{math.Inf(-1)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call(t, tt.id, tt.args...)
			require.Error(t, err)

			var argErr function.ArgError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.wantIdx, argErr.Index)
		})
	}
}

func TestNaNResultIsRejected(t *testing.T) {
	_, err := call(t, "sqrt", -1)
	require.ErrorIs(t, err, ctyval.ErrNaN)
}
