package ctyval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// ParseJSON decodes a single JSON literal (string, number, boolean or null)
// into a runtime value.
func ParseJSON(data []byte) (cty.Value, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return Null, nil
	}

	ty, err := ctyjson.ImpliedType(data)
	if err != nil {
		return cty.NilVal, fmt.Errorf("invalid JSON value %q: %w", data, err)
	}
	if !ty.IsPrimitiveType() {
		return cty.NilVal, fmt.Errorf("unsupported JSON value %q: only strings, numbers, booleans and null are allowed", data)
	}
	return ctyjson.Unmarshal(data, ty)
}

// ParseJSONList decodes each raw JSON message with ParseJSON.
func ParseJSONList(raw []json.RawMessage) ([]cty.Value, error) {
	out := make([]cty.Value, len(raw))
	for i, msg := range raw {
		v, err := ParseJSON(msg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// MarshalJSON encodes a primitive runtime value as JSON. Infinite numbers,
// which JSON cannot express, are encoded as the strings "Infinity" and
// "-Infinity".
func MarshalJSON(v cty.Value) ([]byte, error) {
	if v.IsNull() {
		return []byte("null"), nil
	}
	if v.Type() == cty.Number {
		if f := Float(v); math.IsInf(f, 0) {
			return json.Marshal(FormatNumber(f))
		}
	}
	return ctyjson.Marshal(v, v.Type())
}
