package config

import "github.com/Lenostatos/Orinoco-2/internal/valuetype"

// Model is the unified representation of all loaded function manifests.
// Slices preserve definition order.
type Model struct {
	Functions  []*FunctionDefinition
	Categories []*CategoryDefinition
	// Order lists function ids in catalog definition order. Functions it
	// does not name follow in load order. Empty means load order.
	Order []string
}

// FunctionDefinition is the manifest entry of a single catalog function.
type FunctionDefinition struct {
	ID          string
	Names       []string
	Description string
	Inputs      []*InputDefinition
	Output      *OutputDefinition
	// Source is the manifest file the definition was read from.
	Source string
}

// InputDefinition describes one input slot of a function.
type InputDefinition struct {
	Name        string
	Type        valuetype.Type
	Description string
	Array       bool
}

// OutputDefinition describes the value a function produces.
type OutputDefinition struct {
	Type        valuetype.Type
	Description string
}

// CategoryDefinition groups function ids for presentation.
type CategoryDefinition struct {
	ID        string
	Name      string
	Functions []string
	Source    string
}

// Function returns the definition with the given id, if present.
func (m *Model) Function(id string) (*FunctionDefinition, bool) {
	for _, fn := range m.Functions {
		if fn.ID == id {
			return fn, true
		}
	}
	return nil, false
}

// Merge appends the definitions of other to m, keeping order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Functions = append(m.Functions, other.Functions...)
	m.Categories = append(m.Categories, other.Categories...)
	if len(m.Order) == 0 {
		m.Order = other.Order
	}
}
