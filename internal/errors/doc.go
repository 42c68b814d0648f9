// Package errors is the diagnostic channel for the Loom runtime.
//
// Runtime faults (render panics, hook misuse, cleanup failures) are wrapped
// in a structured Error with a stable code from the registry and reported
// through a swappable process-wide handler. Nothing reported here is fatal:
// callers degrade to stale state rather than propagate.
package errors
