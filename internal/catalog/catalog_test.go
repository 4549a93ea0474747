package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Lenostatos/Orinoco-2/internal/config"
	"github.com/Lenostatos/Orinoco-2/internal/ctxlog"
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/Lenostatos/Orinoco-2/internal/testutil"
	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

const twoFunctions = `
function "first" {
  names = ["ONE", "SHARED"]
  input "value" {
    type = number
  }
  output {
    type = number
  }
}

function "second" {
  names = ["TWO", "SHARED"]
  input "value" {
    type  = number
    array = true
  }
  output {
    type = number
  }
}

category "all" {
  name      = "All"
  functions = ["second", "first"]
}
`

func echo(args []cty.Value) (cty.Value, error) {
	if len(args) == 0 {
		return cty.NumberIntVal(0), nil
	}
	return args[0], nil
}

func twoFunctionRegistry() *registry.Registry {
	r := registry.New()
	r.RegisterFunction("first", registry.Fixed(valuetype.Number, echo, valuetype.Number))
	r.RegisterFunction("second", registry.Variadic(valuetype.Number, valuetype.Number, echo))
	return r
}

type fakeTranslator map[string]string

func (f fakeTranslator) Translate(key string) (string, bool) {
	s, ok := f[key]
	return s, ok
}

func TestNew_BuildsLookups(t *testing.T) {
	ctx, logs := testutil.LoggedContext(t)
	model := testutil.LoadManifests(t, map[string]string{"fns.hcl": twoFunctions})

	c, err := New(ctx, model, twoFunctionRegistry())
	require.NoError(t, err)

	fns := c.ListFunctions()
	require.Len(t, fns, 2)
	assert.Equal(t, "first", fns[0].ID)
	assert.Equal(t, "second", fns[1].ID)
	assert.Equal(t, "fns.hcl", fns[0].Source)
	assert.False(t, fns[0].Variadic())
	assert.True(t, fns[1].Variadic())

	d, ok := c.FindByID("second")
	require.True(t, ok)
	assert.Equal(t, []string{"TWO", "SHARED"}, d.Names)

	d, ok = c.FindByName("TWO")
	require.True(t, ok)
	assert.Equal(t, "second", d.ID)

	_, ok = c.FindByName("two")
	assert.False(t, ok, "lookups are case sensitive")

	cats := c.ListCategories()
	require.Len(t, cats, 1)
	assert.Equal(t, "All", cats[0].Name)
	assert.Equal(t, []string{"second", "first"}, cats[0].FunctionIDs)
	require.Len(t, cats[0].Functions, 2)
	assert.Same(t, fns[1], cats[0].Functions[0])

	cat, ok := c.FindCategory("all")
	require.True(t, ok)
	assert.Same(t, cats[0], cat)

	assert.Contains(t, logs.String(), "Catalog constructed.")
}

func TestNew_FirstRegisteredAliasWins(t *testing.T) {
	ctx, logs := testutil.LoggedContext(t)
	model := testutil.LoadManifests(t, map[string]string{"fns.hcl": twoFunctions})

	c, err := New(ctx, model, twoFunctionRegistry())
	require.NoError(t, err)

	d, ok := c.FindByName("SHARED")
	require.True(t, ok)
	assert.Equal(t, "first", d.ID)

	assert.Equal(t, []ShadowedAlias{{Name: "SHARED", Winner: "first", Shadowed: "second"}}, c.ShadowedAliases())
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "alias=SHARED")
}

func TestNew_OrderSetsDefinitionOrder(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	model := testutil.LoadManifests(t, map[string]string{
		"fns.hcl":   twoFunctions,
		"order.hcl": `order { functions = ["second"] }`,
	})

	c, err := New(ctx, model, twoFunctionRegistry())
	require.NoError(t, err)

	fns := c.ListFunctions()
	require.Len(t, fns, 2)
	assert.Equal(t, "second", fns[0].ID)
	assert.Equal(t, "first", fns[1].ID, "unordered functions follow in load order")

	d, ok := c.FindByName("SHARED")
	require.True(t, ok)
	assert.Equal(t, "second", d.ID, "alias precedence follows definition order")
}

func TestNew_TranslatesCategoryNames(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	model := testutil.LoadManifests(t, map[string]string{"fns.hcl": twoFunctions})

	c, err := New(ctx, model, twoFunctionRegistry(), WithTranslator(fakeTranslator{"category.all": "Alle"}))
	require.NoError(t, err)
	assert.Equal(t, "Alle", c.ListCategories()[0].Name)

	c, err = New(ctx, model, twoFunctionRegistry(), WithTranslator(fakeTranslator{}))
	require.NoError(t, err)
	assert.Equal(t, "All", c.ListCategories()[0].Name, "falls back to the manifest name")
}

func TestNew_ConstructionErrors(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())

	num := func(name string, array bool) *config.InputDefinition {
		return &config.InputDefinition{Name: name, Type: valuetype.Number, Array: array}
	}
	out := &config.OutputDefinition{Type: valuetype.Number}

	tests := []struct {
		name     string
		model    *config.Model
		register func(r *registry.Registry)
		want     []string
	}{
		{
			name: "array input mixed with fixed input",
			model: &config.Model{Functions: []*config.FunctionDefinition{
				{ID: "mixed", Names: []string{"MIXED"}, Inputs: []*config.InputDefinition{num("a", false), num("rest", true)}, Output: out},
			}},
			register: func(r *registry.Registry) {
				r.RegisterFunction("mixed", &registry.RegisteredFunction{
					Inputs: []valuetype.Type{valuetype.Number, valuetype.Number}, Variadic: true,
					Output: valuetype.Number, Impl: echo,
				})
			},
			want: []string{"function 'mixed': array input 'rest' must be the only input, found 2 inputs"},
		},
		{
			name: "category references unknown function",
			model: &config.Model{
				Functions:  []*config.FunctionDefinition{{ID: "a", Names: []string{"A"}, Output: out}},
				Categories: []*config.CategoryDefinition{{ID: "c", Name: "C", Functions: []string{"a", "ghost"}}},
			},
			register: func(r *registry.Registry) {
				r.RegisterFunction("a", registry.Fixed(valuetype.Number, echo))
			},
			want: []string{"category 'c' references unknown function 'ghost'"},
		},
		{
			name: "duplicate ids and categories",
			model: &config.Model{
				Functions: []*config.FunctionDefinition{
					{ID: "a", Names: []string{"A"}, Output: out},
					{ID: "a", Names: []string{"B"}, Output: out},
				},
				Categories: []*config.CategoryDefinition{{ID: "c"}, {ID: "c"}},
			},
			register: func(r *registry.Registry) {
				r.RegisterFunction("a", registry.Fixed(valuetype.Number, echo))
			},
			want: []string{
				"function 'a' is declared more than once",
				"category 'c' is declared more than once",
			},
		},
		{
			name: "missing names and empty id",
			model: &config.Model{Functions: []*config.FunctionDefinition{
				{ID: "", Names: []string{"X"}, Output: out},
				{ID: "nameless", Output: out},
			}},
			register: func(r *registry.Registry) {
				r.RegisterFunction("nameless", registry.Fixed(valuetype.Number, echo))
			},
			want: []string{
				"function #0 has an empty id",
				"function 'nameless' has no names",
			},
		},
		{
			name: "order names unknown and repeated functions",
			model: &config.Model{
				Functions: []*config.FunctionDefinition{{ID: "a", Names: []string{"A"}, Output: out}},
				Order:     []string{"a", "ghost", "a"},
			},
			register: func(r *registry.Registry) {
				r.RegisterFunction("a", registry.Fixed(valuetype.Number, echo))
			},
			want: []string{
				"order references unknown function 'ghost'",
				"order lists function 'a' more than once",
			},
		},
		{
			name: "implementation missing",
			model: &config.Model{Functions: []*config.FunctionDefinition{
				{ID: "a", Names: []string{"A"}, Output: out},
			}},
			register: func(r *registry.Registry) {},
			want:     []string{"function 'a': manifest declares function, but no Go implementation is registered"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := registry.New()
			tt.register(r)

			c, err := New(ctx, tt.model, r)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrConstruction))

			var cerr *ConstructionError
			require.ErrorAs(t, err, &cerr)
			for _, want := range tt.want {
				assert.Contains(t, cerr.Problems, want)
			}
		})
	}
}

func TestNew_NilInputs(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())

	_, err := New(ctx, nil, registry.New())
	assert.ErrorIs(t, err, ErrConstruction)

	_, err = New(ctx, &config.Model{}, nil)
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestResolve(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	model := testutil.LoadManifests(t, map[string]string{"fns.hcl": twoFunctions})
	c, err := New(ctx, model, twoFunctionRegistry())
	require.NoError(t, err)

	d, err := c.Resolve("ONE")
	require.NoError(t, err)
	assert.Equal(t, "first", d.ID)

	d, err = c.Resolve("second")
	require.NoError(t, err)
	assert.Equal(t, "second", d.ID)

	_, err = c.Resolve("nope")
	assert.ErrorIs(t, err, ErrUnknownFunction)
	assert.EqualError(t, err, "unknown function 'nope'")
}
