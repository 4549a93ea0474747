// Package modules bundles the manifests of every builtin function module.
// The Go implementations live in the sub-packages, one per category.
package modules

import "embed"

// Manifests holds the builtin function manifests and the category listing.
//
//go:embed catalog.hcl */manifest.hcl
var Manifests embed.FS
