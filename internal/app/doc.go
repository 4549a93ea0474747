// Package app contains the core application wiring. It loads the function
// manifests, registers the builtin modules, builds the catalog and the graph
// store, and serves them over HTTP, decoupled from any specific entrypoint
// like a CLI.
package app
