package app

import (
	"context"
	"testing"

	"github.com/Lenostatos/Orinoco-2/internal/hcl"
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/Lenostatos/Orinoco-2/internal/testutil"
	"github.com/stretchr/testify/require"
)

// setupAppTest builds an App writing its logs to a SafeBuffer. A nil cfg
// means the defaults with debug logging.
func setupAppTest(t *testing.T, cfg *Config, mods ...registry.Module) (*App, *testutil.SafeBuffer) {
	t.Helper()

	if cfg == nil {
		var err error
		cfg, err = NewConfig(Config{LogLevel: "debug", Timezone: "UTC"})
		require.NoError(t, err)
	}

	logBuffer := &testutil.SafeBuffer{}
	a := NewApp(logBuffer, cfg, hcl.NewLoader(), mods...)
	t.Cleanup(func() {
		_ = a.Close(context.Background())
	})
	return a, logBuffer
}
