package valuetype

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func parseExpr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.Pos{Line: 1, Column: 1})
	require.False(t, diags.HasErrors(), "expression parsing failed: %s", diags.Error())
	return expr
}

func TestFromExpr(t *testing.T) {
	tests := []struct {
		src     string
		want    Type
		wantErr string
	}{
		{src: "string", want: String},
		{src: "number", want: Number},
		{src: "bool", want: Boolean},
		{src: "boolean", want: Boolean},
		{src: "any", want: Any},
		{src: "float", wantErr: `unknown primitive type "float"`},
		{src: "list(string)", wantErr: "collection type"},
		{src: `"string"`, wantErr: "unsupported expression"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := FromExpr(parseExpr(t, tt.src))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromExpr_NilIsAny(t *testing.T) {
	got, err := FromExpr(nil)
	require.NoError(t, err)
	assert.Equal(t, Any, got)
}

func TestCtyType(t *testing.T) {
	assert.Equal(t, cty.String, String.CtyType())
	assert.Equal(t, cty.Number, Number.CtyType())
	assert.Equal(t, cty.Bool, Boolean.CtyType())
	assert.Equal(t, cty.DynamicPseudoType, Any.CtyType())
	assert.False(t, Type("float").Valid())
}

func TestOf(t *testing.T) {
	typ, ok := Of(cty.StringVal("x"))
	assert.True(t, ok)
	assert.Equal(t, String, typ)

	typ, ok = Of(cty.NumberIntVal(1))
	assert.True(t, ok)
	assert.Equal(t, Number, typ)

	typ, ok = Of(cty.True)
	assert.True(t, ok)
	assert.Equal(t, Boolean, typ)

	_, ok = Of(cty.NullVal(cty.DynamicPseudoType))
	assert.False(t, ok)
	_, ok = Of(cty.NilVal)
	assert.False(t, ok)
}
