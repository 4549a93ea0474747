package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lenostatos/Orinoco-2/internal/ctyval"
	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrConstruction matches every *ConstructionError.
	ErrConstruction = errors.New("catalog construction failed")
	// ErrArityMismatch matches every *ArityMismatchError.
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrTypeCoercionFailed matches every *TypeCoercionError.
	ErrTypeCoercionFailed = errors.New("type coercion failed")
	// ErrInvalidArgument matches every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownFunction matches every *UnknownFunctionError.
	ErrUnknownFunction = errors.New("unknown function")
)

// ConstructionError lists every problem that prevented a catalog from
// being built.
type ConstructionError struct {
	Problems []string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s:\n- %s", ErrConstruction, strings.Join(e.Problems, "\n- "))
}

func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }

// ArityMismatchError reports a call to a fixed-arity function with the
// wrong number of arguments.
type ArityMismatchError struct {
	FunctionID string
	Expected   int
	Actual     int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("function '%s' expects %d arguments, got %d", e.FunctionID, e.Expected, e.Actual)
}

func (e *ArityMismatchError) Is(target error) bool { return target == ErrArityMismatch }

// TypeCoercionError reports an argument that has no representation in the
// declared input type.
type TypeCoercionError struct {
	FunctionID string
	ArgIndex   int
	Expected   valuetype.Type
	// Actual names the kind of the supplied value, or "null".
	Actual string
	// Value is the argument as supplied.
	Value cty.Value
}

func (e *TypeCoercionError) Error() string {
	if e.Value.IsNull() {
		return fmt.Sprintf("function '%s', argument %d: cannot convert %s to %s", e.FunctionID, e.ArgIndex, e.Actual, e.Expected)
	}
	return fmt.Sprintf("function '%s', argument %d: cannot convert %s %q to %s",
		e.FunctionID, e.ArgIndex, e.Actual, ctyval.Display(e.Value), e.Expected)
}

func (e *TypeCoercionError) Is(target error) bool { return target == ErrTypeCoercionFailed }

// InvalidArgumentError wraps a failure reported by a function
// implementation. ArgIndex is -1 when the failure concerns no single
// argument.
type InvalidArgumentError struct {
	FunctionID string
	ArgIndex   int
	Err        error
}

func (e *InvalidArgumentError) Error() string {
	if e.ArgIndex < 0 {
		return fmt.Sprintf("function '%s': %v", e.FunctionID, e.Err)
	}
	return fmt.Sprintf("function '%s', argument %d: %v", e.FunctionID, e.ArgIndex, e.Err)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func (e *InvalidArgumentError) Unwrap() error { return e.Err }

// UnknownFunctionError reports a lookup of a name or id no function has.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function '%s'", e.Name)
}

func (e *UnknownFunctionError) Is(target error) bool { return target == ErrUnknownFunction }
