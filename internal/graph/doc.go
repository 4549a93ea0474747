// Package graph holds the node/edge state of the editor canvas and notifies
// subscribers whenever it changes.
//
// The Store is the only mutable state in the process. All changes go through
// Update, which applies a mutation to a private copy, validates the result
// and only then publishes it, so a failed mutation leaves the state
// untouched. Subscribers are called outside the store's lock, one update at
// a time, in the order the updates were applied.
//
// The function catalog does not depend on this package; callers that own a
// Store decide which catalog functions a function node refers to.
package graph
