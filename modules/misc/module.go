// Package misc implements the catalog functions that fit no other category.
package misc

import (
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers every misc function with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunction("gabriel", registry.Variadic(valuetype.Any, valuetype.String, Gabriel))
	r.RegisterFunction("count", registry.Variadic(valuetype.Number, valuetype.Number, Count))
}

// Gabriel ignores its inputs.
func Gabriel(_ []cty.Value) (cty.Value, error) {
	return cty.StringVal("popo"), nil
}

// Count returns the number of numeric arguments.
func Count(args []cty.Value) (cty.Value, error) {
	n := 0
	for _, v := range args {
		if v.Type() == cty.Number {
			n++
		}
	}
	return cty.NumberIntVal(int64(n)), nil
}
