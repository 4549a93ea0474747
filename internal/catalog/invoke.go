package catalog

import (
	"context"
	"errors"

	"github.com/Lenostatos/Orinoco-2/internal/coerce"
	"github.com/Lenostatos/Orinoco-2/internal/ctxlog"
	"github.com/Lenostatos/Orinoco-2/internal/observability"
	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Result is the outcome of a successful invocation. Type is the declared
// output type; the value itself is not coerced.
type Result struct {
	Value cty.Value
	Type  valuetype.Type
}

// Invoke validates the arity of args, coerces each argument to its declared
// input type and calls the function. A failed call leaves no trace on the
// catalog.
func (c *Catalog) Invoke(ctx context.Context, d *Descriptor, args []cty.Value) (Result, error) {
	if d == nil {
		return Result{}, &UnknownFunctionError{}
	}

	ctx, span := observability.StartInvokeSpan(ctx, d.ID, len(args))
	defer span.End()
	logger := ctxlog.FromContext(ctx)

	res, err := invoke(d, args)
	if err != nil {
		observability.RecordError(span, err)
		logger.Debug("Function invocation failed.", "function", d.ID, "error", err)
		return Result{}, err
	}

	observability.RecordInvokeResult(span, string(res.Type))
	logger.Debug("Function invoked.", "function", d.ID, "args", len(args))
	return res, nil
}

// InvokeByName resolves nameOrID with Resolve and invokes the function.
func (c *Catalog) InvokeByName(ctx context.Context, nameOrID string, args []cty.Value) (Result, error) {
	d, err := c.Resolve(nameOrID)
	if err != nil {
		return Result{}, err
	}
	return c.Invoke(ctx, d, args)
}

func invoke(d *Descriptor, args []cty.Value) (Result, error) {
	if !d.Variadic() && len(args) != len(d.Inputs) {
		return Result{}, &ArityMismatchError{
			FunctionID: d.ID,
			Expected:   len(d.Inputs),
			Actual:     len(args),
		}
	}

	coerced := make([]cty.Value, len(args))
	for i, arg := range args {
		in := d.Inputs[0]
		if !d.Variadic() {
			in = d.Inputs[i]
		}

		v, ok := coerce.Value(in.Type, arg)
		if !ok {
			return Result{}, &TypeCoercionError{
				FunctionID: d.ID,
				ArgIndex:   i,
				Expected:   in.Type,
				Actual:     kindOf(arg),
				Value:      arg,
			}
		}
		coerced[i] = v
	}

	out, err := d.Function.Call(coerced)
	if err != nil {
		idx := -1
		var argErr function.ArgError
		if errors.As(err, &argErr) {
			idx = argErr.Index
		}
		return Result{}, &InvalidArgumentError{FunctionID: d.ID, ArgIndex: idx, Err: err}
	}

	return Result{Value: out, Type: d.Output.Type}, nil
}

func kindOf(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	if t, ok := valuetype.Of(v); ok {
		return string(t)
	}
	return v.Type().FriendlyName()
}
