package text

import (
	"testing"

	"github.com/Lenostatos/Orinoco-2/internal/ctyval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

func args(vs ...any) []cty.Value {
	out := make([]cty.Value, len(vs))
	for i, v := range vs {
		out[i] = ctyval.MustFromGo(v)
	}
	return out
}

func TestStringResults(t *testing.T) {
	tests := []struct {
		name string
		fn   func([]cty.Value) (cty.Value, error)
		args []any
		want string
	}{
		{"concatenate", Concatenate, []any{"a", "b", "c"}, "abc"},
		{"concatenate nothing", Concatenate, nil, ""},
		{"upper", UpperCase, []any{"straße"}, "STRASSE"},
		{"lower", LowerCase, []any{"ÄBC"}, "äbc"},
		{"replace global", Replace, []any{"a-b-c", "-", "+"}, "a+b+c"},
		{"replace pattern", Replace, []any{"x1y22", `\d+`, "#"}, "x#y#"},
		{"replace group", Replace, []any{"john smith", `(\w+) (\w+)`, "$2 $1"}, "smith john"},
		{"mid", Mid, []any{"Hello", 1, 3}, "el"},
		{"mid swapped", Mid, []any{"Hello", 3, 1}, "el"},
		{"mid clamped", Mid, []any{"Hello", -5, 99}, "Hello"},
		{"mid code points", Mid, []any{"äöü", 1, 2}, "ö"},
		{"char", CharCode, []any{65}, "A"},
		{"char euro", CharCode, []any{8364}, "€"},
		{"left", Left, []any{"Hello", 2}, "He"},
		{"left too many", Left, []any{"Hi", 10}, "Hi"},
		{"left negative", Left, []any{"Hi", -1}, ""},
		{"right", Right, []any{"Hello", 3}, "llo"},
		{"right zero keeps everything", Right, []any{"Hello", 0}, "Hello"},
		{"right negative drops prefix", Right, []any{"Hello", -2}, "llo"},
		{"right negative past end", Right, []any{"Hello", -9}, ""},
		{"right fraction truncates", Right, []any{"Hello", 2.7}, "lo"},
		{"right too many", Right, []any{"Hi", 10}, "Hi"},
		{"right code points", Right, []any{"äöü", 1}, "ü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(args(tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.AsString())
		})
	}
}

func TestNumberResults(t *testing.T) {
	tests := []struct {
		name string
		fn   func([]cty.Value) (cty.Value, error)
		args []any
		want float64
	}{
		{"length", Length, []any{"Hello"}, 5},
		{"length code points", Length, []any{"Größe"}, 5},
		{"find", Find, []any{"Hello", "l"}, 2},
		{"find missing", Find, []any{"Hello", "z"}, -1},
		{"find after umlaut", Find, []any{"Ärger", "g"}, 2},
		{"code", CharCodeValue, []any{"A"}, 65},
		{"code first only", CharCodeValue, []any{"€uro"}, 8364},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(args(tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ctyval.Float(got))
		})
	}
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		fn      func([]cty.Value) (cty.Value, error)
		args    []any
		wantIdx int
	}{
		{"bad regexp", Replace, []any{"abc", "(", "x"}, 1},
		{"negative code point", CharCode, []any{-1}, 0},
		{"surrogate", CharCode, []any{0xD800}, 0},
		{"beyond unicode", CharCode, []any{0x110000}, 0},
		{"empty code value", CharCodeValue, []any{""}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn(args(tt.args...))
			require.Error(t, err)

			var argErr function.ArgError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.wantIdx, argErr.Index)
		})
	}
}
