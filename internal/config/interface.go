package config

import (
	"context"
	"io/fs"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads every manifest found in fsys and translates the result
	// into the format-agnostic model. Definition order follows file order.
	Load(ctx context.Context, fsys fs.FS) (*Model, error)
}
