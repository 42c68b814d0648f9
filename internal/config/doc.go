// Package config loads and validates loom.json.
//
// A missing file is not an error: Load returns the defaults, so an
// application runs with zero configuration. Present fields override
// defaults field by field, and out-of-range values fail validation with
// a registered error code.
package config
