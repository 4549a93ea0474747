// Package registry provides the central "glue" between function manifests
// and their Go implementations.
//
// Manifests (see the `config` package) describe a function's identity and
// typed inputs and output; the Registry maps each function id to the
// compiled Go code implementing it, together with the signature that code
// was written against.
//
// During application startup, the registry is populated by every builtin
// Module and then validated against the loaded manifests, so that the Go
// code and the public-facing manifests are guaranteed to be in sync.
package registry
