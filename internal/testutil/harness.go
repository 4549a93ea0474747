// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"testing/fstest"

	"github.com/Lenostatos/Orinoco-2/internal/config"
	"github.com/Lenostatos/Orinoco-2/internal/ctxlog"
	"github.com/Lenostatos/Orinoco-2/internal/hcl"
	"github.com/stretchr/testify/require"
)

// LoggedContext returns a context carrying a debug logger that writes to the
// returned buffer. The log is printed at cleanup when ORINOCO_TEST_LOGS is
// "true".
func LoggedContext(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()

	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Cleanup(func() {
		if os.Getenv("ORINOCO_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		}
	})

	return ctxlog.WithLogger(context.Background(), logger), buf
}

// LoadManifests decodes in-memory manifest files, keyed by path, into a
// model. Loading errors fail the test.
func LoadManifests(t *testing.T, files map[string]string) *config.Model {
	t.Helper()

	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}

	model, err := hcl.NewLoader().Load(ctxlog.Discard(context.Background()), fsys)
	require.NoError(t, err, "manifests should load")
	return model
}
