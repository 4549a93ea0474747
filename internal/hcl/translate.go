// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"fmt"

	"github.com/Lenostatos/Orinoco-2/internal/config"
	"github.com/Lenostatos/Orinoco-2/internal/schema"
	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
)

// translateFunctionDefinition converts a `function` block into the agnostic
// model. Structural rules that span several definitions (unique ids, the
// array-input rule) are enforced later by the catalog.
func translateFunctionDefinition(s *schema.FunctionDefinition, source string) (*config.FunctionDefinition, error) {
	def := &config.FunctionDefinition{
		ID:          s.ID,
		Names:       append([]string(nil), s.Names...),
		Description: s.Description,
		Inputs:      make([]*config.InputDefinition, 0, len(s.Inputs)),
		Source:      source,
	}

	for _, in := range s.Inputs {
		typ, err := valuetype.FromExpr(in.Type)
		if err != nil {
			return nil, fmt.Errorf("in function '%s', input '%s': %w", s.ID, in.Name, err)
		}
		def.Inputs = append(def.Inputs, &config.InputDefinition{
			Name:        in.Name,
			Type:        typ,
			Description: in.Description,
			Array:       in.Array,
		})
	}

	if s.Output == nil {
		return nil, fmt.Errorf("function '%s' has no output block", s.ID)
	}
	typ, err := valuetype.FromExpr(s.Output.Type)
	if err != nil {
		return nil, fmt.Errorf("in function '%s', output: %w", s.ID, err)
	}
	def.Output = &config.OutputDefinition{
		Type:        typ,
		Description: s.Output.Description,
	}

	return def, nil
}

// translateCategoryDefinition converts a `category` block into the agnostic
// model. A missing display name falls back to the id.
func translateCategoryDefinition(s *schema.CategoryDefinition, source string) *config.CategoryDefinition {
	name := s.Name
	if name == "" {
		name = s.ID
	}
	return &config.CategoryDefinition{
		ID:        s.ID,
		Name:      name,
		Functions: append([]string(nil), s.Functions...),
		Source:    source,
	}
}
