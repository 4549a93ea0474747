// Package config defines the format-agnostic model of the function
// manifests, along with the Loader interface used to read them.
//
// The `config.Model` is the single source of truth for the `registry` and
// `catalog` packages. Concrete loaders, such as the HCL one, live in
// separate packages.
package config
