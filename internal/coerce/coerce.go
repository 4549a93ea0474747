// Package coerce converts loosely typed runtime values into the declared
// type a catalog function expects.
//
// Every conversion is total: it never panics and either yields a value of
// the target type or reports that no conversion exists. Callers decide how
// a failed conversion is surfaced.
package coerce

import (
	"github.com/Lenostatos/Orinoco-2/internal/ctyval"
	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Func converts a single runtime value. The boolean result is false when
// the value has no representation in the target type.
type Func func(cty.Value) (cty.Value, bool)

// table maps each declared type to its conversion. "any" shares the string
// conversion so that heterogeneous inputs compare as text.
var table = map[valuetype.Type]Func{
	valuetype.String:  toString,
	valuetype.Any:     toString,
	valuetype.Number:  toNumber,
	valuetype.Boolean: toBoolean,
}

// For returns the conversion for target. It reports false for a type with
// no registered conversion.
func For(target valuetype.Type) (Func, bool) {
	fn, ok := table[target]
	return fn, ok
}

// Value converts v to target in one step.
func Value(target valuetype.Type, v cty.Value) (cty.Value, bool) {
	fn, ok := For(target)
	if !ok {
		return cty.NilVal, false
	}
	return fn(v)
}

func toString(v cty.Value) (cty.Value, bool) {
	kind, ok := valuetype.Of(v)
	if !ok {
		return cty.NilVal, false
	}

	switch kind {
	case valuetype.String:
		return v, true
	case valuetype.Number:
		return cty.StringVal(ctyval.FormatNumber(ctyval.Float(v))), true
	case valuetype.Boolean:
		out, err := convert.Convert(v, cty.String)
		if err != nil {
			return cty.NilVal, false
		}
		return out, true
	}
	return cty.NilVal, false
}

func toNumber(v cty.Value) (cty.Value, bool) {
	kind, ok := valuetype.Of(v)
	if !ok {
		return cty.NilVal, false
	}

	switch kind {
	case valuetype.Number:
		return v, true
	case valuetype.String:
		f, ok := ParseNumberPrefix(v.AsString())
		if !ok {
			return cty.NilVal, false
		}
		out, err := ctyval.Number(f)
		if err != nil {
			return cty.NilVal, false
		}
		return out, true
	}
	return cty.NilVal, false
}

func toBoolean(v cty.Value) (cty.Value, bool) {
	kind, ok := valuetype.Of(v)
	if !ok {
		return cty.NilVal, false
	}

	switch kind {
	case valuetype.Boolean:
		return v, true
	case valuetype.String:
		switch v.AsString() {
		case "true":
			return cty.True, true
		case "false":
			return cty.False, true
		}
	}
	return cty.NilVal, false
}

// Supported lists every type with a registered conversion, in the stable
// order of valuetype.All.
func Supported() []valuetype.Type {
	out := make([]valuetype.Type, 0, len(table))
	for _, t := range valuetype.All {
		if _, ok := table[t]; ok {
			out = append(out, t)
		}
	}
	return out
}
