// Package argcheck holds the runtime argument checks shared by the builtin
// modules. Checks report failures as function.ArgError so callers can tell
// which argument was rejected.
package argcheck

import (
	"math"

	"github.com/Lenostatos/Orinoco-2/internal/ctyval"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Finite returns the float64 form of every argument, failing on the first
// infinite one.
func Finite(args []cty.Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i, v := range args {
		f := ctyval.Float(v)
		if math.IsInf(f, 0) {
			return nil, function.NewArgErrorf(i, "must be a finite number, got %s", ctyval.FormatNumber(f))
		}
		out[i] = f
	}
	return out, nil
}

// NonZero fails when the number at index i is zero.
func NonZero(args []cty.Value, i int, msg string) error {
	if ctyval.Float(args[i]) == 0 {
		return function.NewArgErrorf(i, "%s", msg)
	}
	return nil
}

// Integer returns the number at index i truncated towards zero. Infinite
// values are rejected.
func Integer(args []cty.Value, i int) (int, error) {
	f := ctyval.Float(args[i])
	if math.IsInf(f, 0) {
		return 0, function.NewArgErrorf(i, "must be a finite number, got %s", ctyval.FormatNumber(f))
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, nil
	}
	if f < math.MinInt32 {
		return math.MinInt32, nil
	}
	return int(math.Trunc(f)), nil
}

// Number builds a numeric result. NaN is an error.
func Number(f float64) (cty.Value, error) {
	v, err := ctyval.Number(f)
	if err != nil {
		return cty.NilVal, err
	}
	return v, nil
}

// Round rounds half up towards positive infinity, so 2.5 becomes 3 and -2.5
// becomes -2.
func Round(f float64) float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}
	r := math.Floor(f)
	if f-r >= 0.5 {
		r++
	}
	return r
}
