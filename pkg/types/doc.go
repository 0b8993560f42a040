// Package types defines the ingredient, recipe, and unknown-entry value
// types, the sentinel errors, and the configuration shared across the
// what-to-cook engine.
package types
