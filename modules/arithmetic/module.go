// Package arithmetic implements the arithmetic catalog functions.
package arithmetic

import (
	"math"

	"github.com/Lenostatos/Orinoco-2/internal/argcheck"
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers every arithmetic function with the registry.
func (m *Module) Register(r *registry.Registry) {
	num := valuetype.Number

	r.RegisterFunction("summation", registry.Variadic(num, num, Summation))
	r.RegisterFunction("subtraction", registry.Fixed(num, Subtraction, num, num))
	r.RegisterFunction("multiplication", registry.Variadic(num, num, Multiplication))
	r.RegisterFunction("division", registry.Fixed(num, Division, num, num))
	r.RegisterFunction("identity", registry.Fixed(num, Identity, num))
	r.RegisterFunction("exponentiation", registry.Fixed(num, Exponentiation, num, num))
	r.RegisterFunction("square", registry.Fixed(num, unary(func(f float64) float64 { return f * f }), num))
	r.RegisterFunction("sqrt", registry.Fixed(num, unary(math.Sqrt), num))
	r.RegisterFunction("is_even", registry.Fixed(valuetype.Boolean, IsEven, num))
	r.RegisterFunction("quotient", registry.Fixed(num, Quotient, num, num))
	r.RegisterFunction("remainder", registry.Fixed(num, Remainder, num, num))
	r.RegisterFunction("absolute", registry.Fixed(num, unary(math.Abs), num))
	r.RegisterFunction("sign", registry.Fixed(num, unary(sign), num))
	r.RegisterFunction("round", registry.Fixed(num, unary(argcheck.Round), num))
	r.RegisterFunction("round_up", registry.Fixed(num, unary(math.Ceil), num))
	r.RegisterFunction("round_down", registry.Fixed(num, unary(math.Floor), num))
	r.RegisterFunction("ceiling", registry.Fixed(num, Ceiling, num, num))
}

// unary adapts a float64 function taking one finite argument.
func unary(fn func(float64) float64) registry.ImplFunc {
	return func(args []cty.Value) (cty.Value, error) {
		fs, err := argcheck.Finite(args)
		if err != nil {
			return cty.NilVal, err
		}
		return argcheck.Number(fn(fs[0]))
	}
}

// binary adapts a float64 function taking two finite arguments.
func binary(args []cty.Value, fn func(a, b float64) float64) (cty.Value, error) {
	fs, err := argcheck.Finite(args)
	if err != nil {
		return cty.NilVal, err
	}
	return argcheck.Number(fn(fs[0], fs[1]))
}

// Summation adds all arguments. The sum of nothing is 0.
func Summation(args []cty.Value) (cty.Value, error) {
	fs, err := argcheck.Finite(args)
	if err != nil {
		return cty.NilVal, err
	}
	var sum float64
	for _, f := range fs {
		sum += f
	}
	return argcheck.Number(sum)
}

// Subtraction subtracts the second argument from the first.
func Subtraction(args []cty.Value) (cty.Value, error) {
	return binary(args, func(a, b float64) float64 { return a - b })
}

// Multiplication multiplies all arguments. The product of nothing is 1.
func Multiplication(args []cty.Value) (cty.Value, error) {
	fs, err := argcheck.Finite(args)
	if err != nil {
		return cty.NilVal, err
	}
	product := 1.0
	for _, f := range fs {
		product *= f
	}
	return argcheck.Number(product)
}

// Division divides the first argument by the second.
func Division(args []cty.Value) (cty.Value, error) {
	if err := argcheck.NonZero(args, 1, "division by zero"); err != nil {
		return cty.NilVal, err
	}
	return binary(args, func(a, b float64) float64 { return a / b })
}

// Identity returns its argument unchanged.
func Identity(args []cty.Value) (cty.Value, error) {
	if _, err := argcheck.Finite(args); err != nil {
		return cty.NilVal, err
	}
	return args[0], nil
}

// Exponentiation raises the base to the power of the exponent.
func Exponentiation(args []cty.Value) (cty.Value, error) {
	return binary(args, math.Pow)
}

// IsEven reports whether the argument is an even integer.
func IsEven(args []cty.Value) (cty.Value, error) {
	fs, err := argcheck.Finite(args)
	if err != nil {
		return cty.NilVal, err
	}
	return cty.BoolVal(math.Mod(fs[0], 2) == 0), nil
}

// Quotient returns the floored result of dividing the numerator by the
// denominator.
func Quotient(args []cty.Value) (cty.Value, error) {
	if err := argcheck.NonZero(args, 1, "division by zero"); err != nil {
		return cty.NilVal, err
	}
	return binary(args, func(a, b float64) float64 { return math.Floor(a / b) })
}

// Remainder returns the remainder of the division, carrying the sign of the
// numerator.
func Remainder(args []cty.Value) (cty.Value, error) {
	if err := argcheck.NonZero(args, 1, "division by zero"); err != nil {
		return cty.NilVal, err
	}
	return binary(args, math.Mod)
}

// Ceiling rounds the number up to the nearest multiple of significance. A
// significance of zero yields zero.
func Ceiling(args []cty.Value) (cty.Value, error) {
	return binary(args, func(number, significance float64) float64 {
		if significance == 0 {
			return 0
		}
		return math.Ceil(number/significance) * significance
	})
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
