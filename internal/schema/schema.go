package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// InputDefinition is an `input` block inside a function manifest.
type InputDefinition struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
	Array       bool           `hcl:"array,optional"`
}

// OutputDefinition is the `output` block of a function manifest.
type OutputDefinition struct {
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
}

// FunctionDefinition represents a `function` block describing one catalog
// entry. The Go implementation is bound by the block label.
type FunctionDefinition struct {
	ID          string             `hcl:"id,label"`
	Names       []string           `hcl:"names"`
	Description string             `hcl:"description,optional"`
	Inputs      []*InputDefinition `hcl:"input,block"`
	Output      *OutputDefinition  `hcl:"output,block"`
}

// CategoryDefinition represents a `category` block grouping functions for
// presentation.
type CategoryDefinition struct {
	ID        string   `hcl:"id,label"`
	Name      string   `hcl:"name,optional"`
	Functions []string `hcl:"functions"`
}

// OrderDefinition is the `order` block fixing the catalog's definition
// order independently of manifest file layout.
type OrderDefinition struct {
	Functions []string `hcl:"functions"`
}

// ManifestFile is the top-level structure of a manifest file.
type ManifestFile struct {
	Functions  []*FunctionDefinition `hcl:"function,block"`
	Categories []*CategoryDefinition `hcl:"category,block"`
	Order      *OrderDefinition      `hcl:"order,block"`
}
