// Package orchestrator coordinates the full compilation pipeline over one
// immutable declaration tree: optional structural validation followed by the
// JSON Schema and UI Schema compilers. The three passes share no mutable
// state; Generate simply runs them in sequence and bundles the artifacts.
package orchestrator
