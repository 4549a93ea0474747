// Package catalog owns the ordered set of builtin function descriptors and
// their categories.
//
// A Catalog is assembled once from a manifest model and a registry of Go
// implementations. Every structural problem (duplicate ids, a variadic
// input mixed with fixed ones, a category pointing at an unknown function,
// a manifest without an implementation) is collected and reported as one
// ConstructionError; a catalog that fails construction is never returned.
//
// After construction the catalog is immutable. Lookups and Invoke are safe
// for concurrent use without locking. Invoke checks arity, coerces every
// argument to its declared type and only then calls the implementation, so
// implementations only ever see values of the type they declared.
package catalog
