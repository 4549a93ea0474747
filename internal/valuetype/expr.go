package valuetype

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// FromExpr converts an HCL type expression such as `number` or `bool` into
// a Type. Collection constructors like `list(string)` are rejected since
// catalog functions only exchange primitive values.
func FromExpr(expr hcl.Expression) (Type, error) {
	if expr == nil {
		return Any, nil
	}

	switch v := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return "", fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		return Parse(v.Traversal.RootName())

	case *hclsyntax.FunctionCallExpr:
		return "", fmt.Errorf("collection type %q is not supported for function inputs or outputs", v.Name)

	default:
		return "", fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}
