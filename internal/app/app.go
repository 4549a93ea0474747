package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/Lenostatos/Orinoco-2/internal/catalog"
	"github.com/Lenostatos/Orinoco-2/internal/config"
	"github.com/Lenostatos/Orinoco-2/internal/ctxlog"
	"github.com/Lenostatos/Orinoco-2/internal/graph"
	"github.com/Lenostatos/Orinoco-2/internal/i18n"
	"github.com/Lenostatos/Orinoco-2/internal/observability"
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/Lenostatos/Orinoco-2/modules"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	ctx        context.Context
	logger     *slog.Logger
	config     *Config
	registry   *registry.Registry
	catalog    *catalog.Catalog
	translator *i18n.Catalog
	graph      *graph.Store
	tracing    *observability.TracerProvider
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Startup failures (unreadable manifests, manifests out of sync with the Go
// code, an invalid catalog) panic.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, mods ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	loc, err := cfg.Location()
	if err != nil {
		panic(err)
	}

	var manifests fs.FS = modules.Manifests
	if cfg.ModulesPath != "" {
		manifests = os.DirFS(cfg.ModulesPath)
		logger.Debug("Using manifests from disk.", "path", cfg.ModulesPath)
	}

	model, err := loader.Load(ctx, manifests)
	if err != nil {
		panic(fmt.Errorf("failed to load manifests: %w", err))
	}
	logger.Debug("Manifests loaded.", "functions", len(model.Functions), "categories", len(model.Categories))

	reg := registry.New()
	if len(mods) == 0 {
		mods = coreModules(loc)
	}
	for _, mod := range mods {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(mods))

	translator, err := i18n.New(cfg.Locale)
	if err != nil {
		panic(err)
	}

	cat, err := catalog.New(ctx, model, reg, catalog.WithTranslator(translator))
	if err != nil {
		// A mismatch between code and manifests is a programmer error.
		panic(err)
	}

	tracing, err := observability.InitTracing(ctx, &observability.TracingConfig{
		ServiceName:    "orinoco",
		ServiceVersion: "0.1.0",
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SampleRate:     1.0,
	})
	if err != nil {
		panic(fmt.Errorf("failed to initialize tracing: %w", err))
	}

	store := graph.NewStore(graph.DefaultState())
	store.Subscribe(func(st graph.State) {
		logger.Debug("Graph state changed.", "nodes", len(st.Nodes), "edges", len(st.Edges))
	})

	logger.Info("Catalog ready.",
		"functions", len(cat.ListFunctions()),
		"categories", len(cat.ListCategories()),
		"locale", translator.Language().String(),
	)

	return &App{
		outW:       outW,
		ctx:        ctx,
		logger:     logger,
		config:     cfg,
		registry:   reg,
		catalog:    cat,
		translator: translator,
		graph:      store,
		tracing:    tracing,
	}
}

// Context returns the application context carrying its logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Catalog returns the function catalog.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Graph returns the canvas state store.
func (a *App) Graph() *graph.Store {
	return a.graph
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Close releases the tracer provider and stops the HTTP server if running.
func (a *App) Close(ctx context.Context) error {
	if err := a.closeServer(ctx); err != nil {
		return err
	}
	return a.tracing.Shutdown(ctx)
}
