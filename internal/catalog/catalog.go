package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lenostatos/Orinoco-2/internal/config"
	"github.com/Lenostatos/Orinoco-2/internal/ctxlog"
	"github.com/Lenostatos/Orinoco-2/internal/i18n"
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// InputSpec describes one input slot of a function.
type InputSpec struct {
	Name        string
	Type        valuetype.Type
	Description string
	// ArrayInput marks a variadic slot. It is only ever set on the sole
	// input of a function.
	ArrayInput bool
}

// OutputSpec describes the value a function produces.
type OutputSpec struct {
	Type        valuetype.Type
	Description string
}

// Descriptor is one catalog function. Descriptors are shared between
// callers and must not be modified.
type Descriptor struct {
	ID          string
	Names       []string
	Description string
	Inputs      []InputSpec
	Output      OutputSpec
	Function    function.Function
	// Source is the manifest file the function was declared in.
	Source string
}

// Variadic reports whether the function takes its arguments through a
// single array input.
func (d *Descriptor) Variadic() bool {
	return len(d.Inputs) == 1 && d.Inputs[0].ArrayInput
}

// Category groups functions for presentation.
type Category struct {
	ID string
	// Name is the display name, translated when a translation exists.
	Name        string
	FunctionIDs []string
	Functions   []*Descriptor
}

// ShadowedAlias records an alias claimed by more than one function. Lookups
// by the alias resolve to Winner.
type ShadowedAlias struct {
	Name     string
	Winner   string
	Shadowed string
}

// Catalog is the immutable, validated collection of functions.
type Catalog struct {
	functions  []*Descriptor
	byID       map[string]*Descriptor
	byName     map[string]*Descriptor
	categories []*Category
	shadowed   []ShadowedAlias
}

// Option configures catalog construction.
type Option func(*options)

type options struct {
	translator i18n.Translator
}

// WithTranslator sets the translator used for category display names.
func WithTranslator(t i18n.Translator) Option {
	return func(o *options) {
		o.translator = t
	}
}

// New validates model against reg and builds the catalog. All problems are
// returned together as a *ConstructionError.
func New(ctx context.Context, model *config.Model, reg *registry.Registry, opts ...Option) (*Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if model == nil {
		return nil, &ConstructionError{Problems: []string{"no manifest model provided"}}
	}
	if reg == nil {
		return nil, &ConstructionError{Problems: []string{"no function registry provided"}}
	}

	problems := validateModel(model)
	if err := reg.ValidateRegistry(ctx, model); err != nil {
		var verr *registry.ValidationError
		if errors.As(err, &verr) {
			problems = append(problems, verr.Problems...)
		} else {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) > 0 {
		return nil, &ConstructionError{Problems: problems}
	}

	c := &Catalog{
		byID:   make(map[string]*Descriptor, len(model.Functions)),
		byName: make(map[string]*Descriptor),
	}

	for _, def := range orderedFunctions(model) {
		impl, _ := reg.Function(def.ID)
		d := newDescriptor(def, impl)
		c.functions = append(c.functions, d)
		c.byID[d.ID] = d

		for _, name := range d.Names {
			if winner, taken := c.byName[name]; taken {
				if winner.ID == d.ID {
					continue
				}
				logger.Warn("Alias is already taken; lookups resolve to the first function.",
					"alias", name, "winner", winner.ID, "shadowed", d.ID)
				c.shadowed = append(c.shadowed, ShadowedAlias{Name: name, Winner: winner.ID, Shadowed: d.ID})
				continue
			}
			c.byName[name] = d
		}
	}

	for _, def := range model.Categories {
		cat := &Category{
			ID:          def.ID,
			Name:        def.Name,
			FunctionIDs: append([]string(nil), def.Functions...),
		}
		if o.translator != nil {
			if name, ok := o.translator.Translate(i18n.CategoryKey(def.ID)); ok {
				cat.Name = name
			}
		}
		for _, id := range def.Functions {
			cat.Functions = append(cat.Functions, c.byID[id])
		}
		c.categories = append(c.categories, cat)
	}

	logger.Debug("Catalog constructed.",
		"functions", len(c.functions),
		"categories", len(c.categories),
		"aliases", len(c.byName),
	)
	return c, nil
}

// validateModel checks the structural invariants that do not depend on the
// Go implementations.
func validateModel(model *config.Model) []string {
	var problems []string

	ids := make(map[string]struct{}, len(model.Functions))
	for i, def := range model.Functions {
		if def.ID == "" {
			problems = append(problems, fmt.Sprintf("function #%d has an empty id", i))
			continue
		}
		if _, dup := ids[def.ID]; dup {
			problems = append(problems, fmt.Sprintf("function '%s' is declared more than once", def.ID))
		}
		ids[def.ID] = struct{}{}

		if len(def.Names) == 0 {
			problems = append(problems, fmt.Sprintf("function '%s' has no names", def.ID))
		}
		for _, name := range def.Names {
			if name == "" {
				problems = append(problems, fmt.Sprintf("function '%s' has an empty name", def.ID))
			}
		}
		if def.Output == nil {
			problems = append(problems, fmt.Sprintf("function '%s' has no output", def.ID))
		}

		for _, in := range def.Inputs {
			if in.Array && len(def.Inputs) != 1 {
				problems = append(problems, fmt.Sprintf("function '%s': array input '%s' must be the only input, found %d inputs", def.ID, in.Name, len(def.Inputs)))
			}
		}
	}

	catIDs := make(map[string]struct{}, len(model.Categories))
	for _, cat := range model.Categories {
		if _, dup := catIDs[cat.ID]; dup {
			problems = append(problems, fmt.Sprintf("category '%s' is declared more than once", cat.ID))
		}
		catIDs[cat.ID] = struct{}{}

		for _, id := range cat.Functions {
			if _, ok := ids[id]; !ok {
				problems = append(problems, fmt.Sprintf("category '%s' references unknown function '%s'", cat.ID, id))
			}
		}
	}

	ordered := make(map[string]struct{}, len(model.Order))
	for _, id := range model.Order {
		if _, dup := ordered[id]; dup {
			problems = append(problems, fmt.Sprintf("order lists function '%s' more than once", id))
		}
		ordered[id] = struct{}{}
		if _, ok := ids[id]; !ok {
			problems = append(problems, fmt.Sprintf("order references unknown function '%s'", id))
		}
	}

	return problems
}

// orderedFunctions returns the definitions named by model.Order first, in
// that order, followed by the rest in load order.
func orderedFunctions(model *config.Model) []*config.FunctionDefinition {
	if len(model.Order) == 0 {
		return model.Functions
	}

	out := make([]*config.FunctionDefinition, 0, len(model.Functions))
	placed := make(map[string]struct{}, len(model.Order))
	for _, id := range model.Order {
		if def, ok := model.Function(id); ok {
			out = append(out, def)
			placed[id] = struct{}{}
		}
	}
	for _, def := range model.Functions {
		if _, ok := placed[def.ID]; !ok {
			out = append(out, def)
		}
	}
	return out
}

func newDescriptor(def *config.FunctionDefinition, impl *registry.RegisteredFunction) *Descriptor {
	d := &Descriptor{
		ID:          def.ID,
		Names:       append([]string(nil), def.Names...),
		Description: def.Description,
		Output: OutputSpec{
			Type:        def.Output.Type,
			Description: def.Output.Description,
		},
		Source: def.Source,
	}

	spec := &function.Spec{
		Description: def.Description,
		Type:        function.StaticReturnType(def.Output.Type.CtyType()),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return impl.Impl(args)
		},
	}

	for _, in := range def.Inputs {
		d.Inputs = append(d.Inputs, InputSpec{
			Name:        in.Name,
			Type:        in.Type,
			Description: in.Description,
			ArrayInput:  in.Array,
		})

		param := function.Parameter{
			Name:        in.Name,
			Description: in.Description,
			Type:        in.Type.CtyType(),
		}
		if in.Array {
			spec.VarParam = &param
		} else {
			spec.Params = append(spec.Params, param)
		}
	}

	d.Function = function.New(spec)
	return d
}

// ListFunctions returns every function in definition order.
func (c *Catalog) ListFunctions() []*Descriptor {
	return append([]*Descriptor(nil), c.functions...)
}

// FindByID returns the function with the given id.
func (c *Catalog) FindByID(id string) (*Descriptor, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// FindByName returns the function that owns the alias. Matching is case
// sensitive. When several functions declare the same alias, the one defined
// first wins.
func (c *Catalog) FindByName(name string) (*Descriptor, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// Resolve looks a function up by alias and then by id.
func (c *Catalog) Resolve(nameOrID string) (*Descriptor, error) {
	if d, ok := c.FindByName(nameOrID); ok {
		return d, nil
	}
	if d, ok := c.FindByID(nameOrID); ok {
		return d, nil
	}
	return nil, &UnknownFunctionError{Name: nameOrID}
}

// ListCategories returns every category in definition order.
func (c *Catalog) ListCategories() []*Category {
	return append([]*Category(nil), c.categories...)
}

// FindCategory returns the category with the given id.
func (c *Catalog) FindCategory(id string) (*Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return nil, false
}

// ShadowedAliases lists the aliases that resolve to an earlier function
// than one of the functions declaring them.
func (c *Catalog) ShadowedAliases() []ShadowedAlias {
	return append([]ShadowedAlias(nil), c.shadowed...)
}
