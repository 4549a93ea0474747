// Package text implements the string catalog functions. Lengths and
// positions are counted in Unicode code points.
package text

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Lenostatos/Orinoco-2/internal/argcheck"
	"github.com/Lenostatos/Orinoco-2/internal/ctyval"
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers every text function with the registry.
func (m *Module) Register(r *registry.Registry) {
	str, num := valuetype.String, valuetype.Number

	r.RegisterFunction("concatenate", registry.Variadic(str, str, Concatenate))
	r.RegisterFunction("length", registry.Fixed(num, Length, str))
	r.RegisterFunction("upper_case", registry.Fixed(str, UpperCase, str))
	r.RegisterFunction("lower_case", registry.Fixed(str, LowerCase, str))
	r.RegisterFunction("replace", registry.Fixed(str, Replace, str, str, str))
	r.RegisterFunction("find", registry.Fixed(num, Find, str, str))
	r.RegisterFunction("mid", registry.Fixed(str, Mid, str, num, num))
	r.RegisterFunction("char_code", registry.Fixed(str, CharCode, num))
	r.RegisterFunction("char_code_value", registry.Fixed(num, CharCodeValue, str))
	r.RegisterFunction("left", registry.Fixed(str, Left, str, num))
	r.RegisterFunction("right", registry.Fixed(str, Right, str, num))
}

// Concatenate joins all arguments without a separator.
func Concatenate(args []cty.Value) (cty.Value, error) {
	var b strings.Builder
	for _, v := range args {
		b.WriteString(v.AsString())
	}
	return cty.StringVal(b.String()), nil
}

// Length returns the number of code points in the argument.
func Length(args []cty.Value) (cty.Value, error) {
	return cty.NumberIntVal(int64(utf8.RuneCountInString(args[0].AsString()))), nil
}

// UpperCase applies full Unicode upper-case mapping, so "ß" becomes "SS".
func UpperCase(args []cty.Value) (cty.Value, error) {
	return cty.StringVal(cases.Upper(language.Und).String(args[0].AsString())), nil
}

// LowerCase applies full Unicode lower-case mapping.
func LowerCase(args []cty.Value) (cty.Value, error) {
	return cty.StringVal(cases.Lower(language.Und).String(args[0].AsString())), nil
}

// Replace substitutes every match of the search pattern, a regular
// expression, with the replacement. "$1" in the replacement expands to the
// first capture group.
func Replace(args []cty.Value) (cty.Value, error) {
	re, err := regexp.Compile(args[1].AsString())
	if err != nil {
		return cty.NilVal, function.NewArgErrorf(1, "invalid regular expression: %s", err)
	}
	return cty.StringVal(re.ReplaceAllString(args[0].AsString(), args[2].AsString())), nil
}

// Find returns the code point position of the first occurrence of the
// substring, or -1.
func Find(args []cty.Value) (cty.Value, error) {
	text := args[0].AsString()
	i := strings.Index(text, args[1].AsString())
	if i < 0 {
		return cty.NumberIntVal(-1), nil
	}
	return cty.NumberIntVal(int64(utf8.RuneCountInString(text[:i]))), nil
}

// Mid returns the code points between start (inclusive) and end
// (exclusive). Both positions are clamped to the text and swapped when
// start is past end.
func Mid(args []cty.Value) (cty.Value, error) {
	runes := []rune(args[0].AsString())
	start := clamp(ctyval.Float(args[1]), len(runes))
	end := clamp(ctyval.Float(args[2]), len(runes))
	if start > end {
		start, end = end, start
	}
	return cty.StringVal(string(runes[start:end])), nil
}

// CharCode returns the character for a Unicode code point.
func CharCode(args []cty.Value) (cty.Value, error) {
	code, err := argcheck.Integer(args, 0)
	if err != nil {
		return cty.NilVal, err
	}
	if !utf8.ValidRune(rune(code)) {
		return cty.NilVal, function.NewArgErrorf(0, "%d is not a valid Unicode code point", code)
	}
	return cty.StringVal(string(rune(code))), nil
}

// CharCodeValue returns the code point of the first character.
func CharCodeValue(args []cty.Value) (cty.Value, error) {
	text := args[0].AsString()
	if text == "" {
		return cty.NilVal, function.NewArgErrorf(0, "text must not be empty")
	}
	r, _ := utf8.DecodeRuneInString(text)
	return cty.NumberIntVal(int64(r)), nil
}

// Left returns the first count code points.
func Left(args []cty.Value) (cty.Value, error) {
	runes := []rune(args[0].AsString())
	n := clamp(ctyval.Float(args[1]), len(runes))
	return cty.StringVal(string(runes[:n])), nil
}

// Right returns the last count code points. A count of zero or less
// instead drops the first -count code points, so zero keeps the whole
// text.
func Right(args []cty.Value) (cty.Value, error) {
	runes := []rune(args[0].AsString())
	start := -math.Trunc(ctyval.Float(args[1]))
	if start < 0 {
		start = math.Max(float64(len(runes))+start, 0)
	}
	start = math.Min(start, float64(len(runes)))
	return cty.StringVal(string(runes[int(start):])), nil
}

// clamp truncates f towards zero and limits it to [0, n].
func clamp(f float64, n int) int {
	switch {
	case f <= 0:
		return 0
	case f >= float64(n):
		return n
	}
	return int(math.Trunc(f))
}
