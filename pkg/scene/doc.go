// Package scene holds the named geometric primitives a query script defines,
// and validates them before any predicate runs.
package scene
