// Package statistical implements the statistical catalog functions.
package statistical

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/Lenostatos/Orinoco-2/internal/argcheck"
	"github.com/Lenostatos/Orinoco-2/internal/ctyval"
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
	"github.com/zclconf/go-cty/cty"
)

// ErrNoValues is returned by average when it receives no arguments.
var ErrNoValues = errors.New("average of no values is undefined")

// Module implements the registry.Module interface for this package.
type Module struct {
	// Rand returns a pseudo-random number in [0, 1). Defaults to
	// math/rand/v2.Float64.
	Rand func() float64
}

// Register registers every statistical function with the registry.
func (m *Module) Register(r *registry.Registry) {
	num := valuetype.Number

	r.RegisterFunction("average", registry.Variadic(num, num, Average))
	r.RegisterFunction("max", registry.Variadic(num, num, Max))
	r.RegisterFunction("min", registry.Variadic(num, num, Min))
	r.RegisterFunction("random", registry.Fixed(num, m.random))
}

// Average returns the arithmetic mean of its arguments.
func Average(args []cty.Value) (cty.Value, error) {
	if len(args) == 0 {
		return cty.NilVal, ErrNoValues
	}
	var sum float64
	for _, f := range ctyval.Floats(args) {
		sum += f
	}
	return argcheck.Number(sum / float64(len(args)))
}

// Max returns the largest argument, or -Infinity when there are none.
func Max(args []cty.Value) (cty.Value, error) {
	out := math.Inf(-1)
	for _, f := range ctyval.Floats(args) {
		out = math.Max(out, f)
	}
	return argcheck.Number(out)
}

// Min returns the smallest argument, or +Infinity when there are none.
func Min(args []cty.Value) (cty.Value, error) {
	out := math.Inf(1)
	for _, f := range ctyval.Floats(args) {
		out = math.Min(out, f)
	}
	return argcheck.Number(out)
}

func (m *Module) random(_ []cty.Value) (cty.Value, error) {
	next := m.Rand
	if next == nil {
		next = rand.Float64
	}
	return argcheck.Number(next())
}
