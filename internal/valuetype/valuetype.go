// Package valuetype defines the small set of declared types a catalog
// function can use for its inputs and output, and their mapping onto the
// cty type system used for runtime values.
package valuetype

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Type is a declared input or output type of a catalog function.
type Type string

const (
	String  Type = "string"
	Number  Type = "number"
	Boolean Type = "boolean"
	Any     Type = "any"
)

// All lists every declared type in a stable order.
var All = []Type{String, Number, Boolean, Any}

var ctyTypes = map[Type]cty.Type{
	String:  cty.String,
	Number:  cty.Number,
	Boolean: cty.Bool,
	Any:     cty.DynamicPseudoType,
}

// Valid reports whether t is one of the known declared types.
func (t Type) Valid() bool {
	_, ok := ctyTypes[t]
	return ok
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// CtyType returns the cty type values of t are represented with. The
// "any" type maps to cty.DynamicPseudoType.
func (t Type) CtyType() cty.Type {
	if ty, ok := ctyTypes[t]; ok {
		return ty
	}
	return cty.DynamicPseudoType
}

// Parse converts a type keyword into a Type. Both "bool" (the HCL keyword)
// and "boolean" are accepted.
func Parse(keyword string) (Type, error) {
	switch keyword {
	case "string":
		return String, nil
	case "number":
		return Number, nil
	case "bool", "boolean":
		return Boolean, nil
	case "any":
		return Any, nil
	default:
		return "", fmt.Errorf("unknown primitive type %q", keyword)
	}
}

// Of reports the declared type matching a runtime value's cty type. Null
// and unknown values, and values of any other cty type, report false.
func Of(v cty.Value) (Type, bool) {
	if v.IsNull() || !v.IsKnown() {
		return "", false
	}
	switch v.Type() {
	case cty.String:
		return String, true
	case cty.Number:
		return Number, true
	case cty.Bool:
		return Boolean, true
	default:
		return "", false
	}
}
