package registry

import (
	"fmt"
	"log/slog"

	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
	"github.com/zclconf/go-cty/cty"
)

// Module is the interface that all builtin function modules implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// ImplFunc is the Go implementation of a catalog function. It receives
// arguments already coerced to the declared input types.
type ImplFunc func(args []cty.Value) (cty.Value, error)

// RegisteredFunction holds the compiled Go parts of a catalog function and
// the signature the implementation expects.
type RegisteredFunction struct {
	// Inputs lists the parameter types. A variadic function has exactly one
	// entry, the element type.
	Inputs   []valuetype.Type
	Variadic bool
	Output   valuetype.Type
	Impl     ImplFunc
}

// Fixed describes a function taking exactly the given inputs.
func Fixed(output valuetype.Type, impl ImplFunc, inputs ...valuetype.Type) *RegisteredFunction {
	return &RegisteredFunction{
		Inputs: inputs,
		Output: output,
		Impl:   impl,
	}
}

// Variadic describes a function taking any number of values of one type.
func Variadic(element, output valuetype.Type, impl ImplFunc) *RegisteredFunction {
	return &RegisteredFunction{
		Inputs:   []valuetype.Type{element},
		Variadic: true,
		Output:   output,
		Impl:     impl,
	}
}

// Registry holds all registered function implementations for a single
// application instance.
type Registry struct {
	functions map[string]*RegisteredFunction
	order     []string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		functions: make(map[string]*RegisteredFunction),
	}
}

// RegisterFunction registers the Go implementation for the function with the
// given manifest id. Registering an id twice is a programmer error.
func (r *Registry) RegisterFunction(id string, fn *RegisteredFunction) {
	if _, exists := r.functions[id]; exists {
		panic(fmt.Sprintf("function implementation with id '%s' already registered", id))
	}
	if fn == nil || fn.Impl == nil {
		panic(fmt.Sprintf("function implementation with id '%s' has no Impl", id))
	}
	slog.Debug("Registering function implementation.", "id", id)
	r.functions[id] = fn
	r.order = append(r.order, id)
}

// Function returns the implementation registered under id.
func (r *Registry) Function(id string) (*RegisteredFunction, bool) {
	fn, ok := r.functions[id]
	return fn, ok
}

// IDs returns all registered ids in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered implementations.
func (r *Registry) Len() int {
	return len(r.order)
}
