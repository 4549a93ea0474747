// Package ctyval holds helpers for moving between Go values and the
// cty.Value representation that catalog functions receive and return.
package ctyval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Null stands for an absent (undefined or null) runtime value.
var Null = cty.NullVal(cty.DynamicPseudoType)

// ErrNaN is returned when a computation produces a value that is not a
// number. cty numbers cannot represent NaN.
var ErrNaN = errors.New("result is not a number")

// FromGo converts a native Go value into a primitive cty.Value. Strings,
// booleans, all integer and float kinds, cty.Value and nil are accepted.
func FromGo(v any) (cty.Value, error) {
	switch tv := v.(type) {
	case nil:
		return Null, nil
	case cty.Value:
		return tv, nil
	case float64:
		return Number(tv)
	case float32:
		return Number(float64(tv))
	}

	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	if !ty.IsPrimitiveType() {
		return cty.NilVal, fmt.Errorf("unsupported value of type %s: only strings, numbers and booleans are allowed", ty.FriendlyName())
	}
	return gocty.ToCtyValue(v, ty)
}

// MustFromGo is like FromGo but panics on error. It is intended for
// literals in tests and static tables.
func MustFromGo(v any) cty.Value {
	val, err := FromGo(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Values converts a list of Go values with FromGo.
func Values(vs ...any) ([]cty.Value, error) {
	out := make([]cty.Value, len(vs))
	for i, v := range vs {
		val, err := FromGo(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = val
	}
	return out, nil
}

// MustValues is like Values but panics on error.
func MustValues(vs ...any) []cty.Value {
	out, err := Values(vs...)
	if err != nil {
		panic(err)
	}
	return out
}

// Number returns a cty number for f. NaN yields ErrNaN; infinities are
// allowed.
func Number(f float64) (cty.Value, error) {
	if math.IsNaN(f) {
		return cty.NilVal, ErrNaN
	}
	return cty.NumberFloatVal(f), nil
}

// Float returns the float64 closest to a known, non-null number value.
func Float(v cty.Value) float64 {
	f, _ := v.AsBigFloat().Float64()
	return f
}

// Floats converts a list of number values.
func Floats(vs []cty.Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = Float(v)
	}
	return out
}

// FormatNumber renders f the way JavaScript's Number#toString does for
// base 10: integers without a fraction, exponent notation below 1e-6 and
// from 1e21 upwards, "Infinity" for infinities.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

// Display renders a runtime value for humans: strings verbatim, numbers via
// FormatNumber, booleans as true/false and absent values as "null".
func Display(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	if !v.IsKnown() {
		return "(unknown)"
	}
	switch v.Type() {
	case cty.String:
		return v.AsString()
	case cty.Number:
		return FormatNumber(Float(v))
	case cty.Bool:
		return strconv.FormatBool(v.True())
	default:
		return v.GoString()
	}
}
