// Package logical implements comparisons and boolean logic.
package logical

import (
	"github.com/Lenostatos/Orinoco-2/internal/ctyval"
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers every logical function with the registry.
func (m *Module) Register(r *registry.Registry) {
	num, boolean, anyT := valuetype.Number, valuetype.Boolean, valuetype.Any

	r.RegisterFunction("equals", registry.Fixed(boolean, Equals, anyT, anyT))
	r.RegisterFunction("less_than", registry.Fixed(boolean, LessThan, num, num))
	r.RegisterFunction("greater_than", registry.Fixed(boolean, GreaterThan, num, num))
	r.RegisterFunction("if", registry.Fixed(anyT, If, boolean, anyT, anyT))
	r.RegisterFunction("and", registry.Variadic(boolean, boolean, And))
	r.RegisterFunction("or", registry.Variadic(boolean, boolean, Or))
	r.RegisterFunction("not", registry.Fixed(boolean, Not, boolean))
}

// Equals reports whether both values are identical. Inputs arrive in their
// string form, so 5 and "5" compare equal.
func Equals(args []cty.Value) (cty.Value, error) {
	return cty.BoolVal(args[0].RawEquals(args[1])), nil
}

// LessThan reports whether the first number is smaller than the second.
func LessThan(args []cty.Value) (cty.Value, error) {
	return cty.BoolVal(ctyval.Float(args[0]) < ctyval.Float(args[1])), nil
}

// GreaterThan reports whether the first number is larger than the second.
func GreaterThan(args []cty.Value) (cty.Value, error) {
	return cty.BoolVal(ctyval.Float(args[0]) > ctyval.Float(args[1])), nil
}

// If returns the second argument when the condition holds, else the third.
func If(args []cty.Value) (cty.Value, error) {
	if args[0].True() {
		return args[1], nil
	}
	return args[2], nil
}

// And is true when no argument is false, including when there are none.
func And(args []cty.Value) (cty.Value, error) {
	for _, v := range args {
		if v.False() {
			return cty.False, nil
		}
	}
	return cty.True, nil
}

// Or is true when at least one argument is true.
func Or(args []cty.Value) (cty.Value, error) {
	for _, v := range args {
		if v.True() {
			return cty.True, nil
		}
	}
	return cty.False, nil
}

// Not inverts its argument.
func Not(args []cty.Value) (cty.Value, error) {
	return args[0].Not(), nil
}
