package modules

import (
	"context"
	"testing"
	"time"

	"github.com/Lenostatos/Orinoco-2/internal/ctxlog"
	"github.com/Lenostatos/Orinoco-2/internal/hcl"
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/Lenostatos/Orinoco-2/modules/arithmetic"
	"github.com/Lenostatos/Orinoco-2/modules/datetime"
	"github.com/Lenostatos/Orinoco-2/modules/logical"
	"github.com/Lenostatos/Orinoco-2/modules/misc"
	"github.com/Lenostatos/Orinoco-2/modules/statistical"
	"github.com/Lenostatos/Orinoco-2/modules/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifests_MatchImplementations(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())

	model, err := hcl.NewLoader().Load(ctx, Manifests)
	require.NoError(t, err)

	r := registry.New()
	for _, m := range []registry.Module{
		&arithmetic.Module{},
		&statistical.Module{},
		&logical.Module{},
		&text.Module{},
		&datetime.Module{Location: time.UTC},
		&misc.Module{},
	} {
		m.Register(r)
	}

	require.NoError(t, r.ValidateRegistry(ctx, model))
	assert.Len(t, model.Functions, 51)
	assert.Equal(t, 51, r.Len())
}

func TestManifests_CategoriesCoverEveryFunction(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())

	model, err := hcl.NewLoader().Load(ctx, Manifests)
	require.NoError(t, err)

	var ids []string
	for _, c := range model.Categories {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"arithmetic", "statistical", "logical", "text", "time", "misc"}, ids)

	listed := map[string]int{}
	for _, c := range model.Categories {
		for _, id := range c.Functions {
			listed[id]++
		}
	}
	for _, fn := range model.Functions {
		assert.Equal(t, 1, listed[fn.ID], "function %q should be listed in exactly one category", fn.ID)
	}
}

func TestManifests_OrderListsEveryFunctionOnce(t *testing.T) {
	model, err := hcl.NewLoader().Load(ctxlog.Discard(context.Background()), Manifests)
	require.NoError(t, err)

	require.Len(t, model.Order, len(model.Functions))
	assert.Equal(t, "gabriel", model.Order[0])
	assert.Equal(t, "summation", model.Order[1])
	assert.Equal(t, "count", model.Order[len(model.Order)-1])

	seen := map[string]bool{}
	for _, id := range model.Order {
		assert.False(t, seen[id], "function %q ordered twice", id)
		seen[id] = true
		_, ok := model.Function(id)
		assert.True(t, ok, "order names unknown function %q", id)
	}
}
