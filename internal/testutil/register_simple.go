package testutil

import "github.com/Lenostatos/Orinoco-2/internal/registry"

// SimpleModule is a test helper for easily creating a mock module that
// registers a single function implementation.
type SimpleModule struct {
	ID       string
	Function *registry.RegisteredFunction
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.ID != "" && m.Function != nil {
		r.RegisterFunction(m.ID, m.Function)
	}
}
