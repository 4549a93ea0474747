// Package schema holds the HCL decoding structures for function manifest
// files. They mirror the file syntax one-to-one and are translated into the
// format-agnostic `config` model by the `hcl` package.
package schema
