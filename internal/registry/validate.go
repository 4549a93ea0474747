package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lenostatos/Orinoco-2/internal/config"
	"github.com/Lenostatos/Orinoco-2/internal/ctxlog"
)

// ValidationError lists every mismatch found between manifests and Go code.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("registry validation failed:\n- %s", strings.Join(e.Problems, "\n- "))
}

// ValidateRegistry performs a strict parity check between manifests and Go
// code. It checks both the presence of implementations and the
// compatibility of their signatures.
func (r *Registry) ValidateRegistry(ctx context.Context, model *config.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	declared := make(map[string]struct{}, len(model.Functions))
	for _, def := range model.Functions {
		declared[def.ID] = struct{}{}

		fn, ok := r.functions[def.ID]
		if !ok {
			errs = append(errs, fmt.Sprintf("function '%s': manifest declares function, but no Go implementation is registered", def.ID))
			continue
		}

		errs = append(errs, compareSignature(def, fn)...)
	}

	for _, id := range r.order {
		if _, ok := declared[id]; !ok {
			errs = append(errs, fmt.Sprintf("function '%s': Go implementation is registered, but no manifest declares it", id))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}

	logger.Debug("Registry validation passed.", "functions", len(model.Functions))
	return nil
}

// compareSignature reports every difference between the manifest's inputs
// and output and the signature the Go implementation was written against.
func compareSignature(def *config.FunctionDefinition, fn *RegisteredFunction) []string {
	var errs []string

	manifestVariadic := false
	for _, in := range def.Inputs {
		if in.Array {
			manifestVariadic = true
		}
	}
	if manifestVariadic != fn.Variadic {
		errs = append(errs, fmt.Sprintf("function '%s': manifest array input is %t but Go implementation variadic is %t", def.ID, manifestVariadic, fn.Variadic))
	}

	if len(def.Inputs) != len(fn.Inputs) {
		errs = append(errs, fmt.Sprintf("function '%s': manifest declares %d inputs but Go implementation expects %d", def.ID, len(def.Inputs), len(fn.Inputs)))
	} else {
		for i, in := range def.Inputs {
			if in.Type != fn.Inputs[i] {
				errs = append(errs, fmt.Sprintf("function '%s', input '%s': type mismatch. Manifest requires '%s' but Go implementation expects '%s'", def.ID, in.Name, in.Type, fn.Inputs[i]))
			}
		}
	}

	if def.Output != nil && def.Output.Type != fn.Output {
		errs = append(errs, fmt.Sprintf("function '%s', output: type mismatch. Manifest declares '%s' but Go implementation produces '%s'", def.ID, def.Output.Type, fn.Output))
	}

	return errs
}
