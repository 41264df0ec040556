// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Policy applies at ingestion (NewMatrix, vector.NewVector). Arithmetic
//     kernels never re-check finiteness: NaN in, NaN out.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = true

	// DefaultAllowInf permits ±Inf values to pass ingestion while NaN is
	// still rejected. Has no effect when validation is disabled.
	DefaultAllowInf = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	allowInf       bool // DefaultAllowInf
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - When enabled, NaN is always rejected.
//   - ±Inf is rejected unless WithAllowInf is also applied.
//
// Notes:
//   - This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Non-finite values pass through constructors unchanged and propagate
// through arithmetic per IEEE-754.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowInf permits ±Inf entries under validation.
//
// Behavior highlights:
//   - Does NOT imply "allow NaN": while ValidateNaNInf is enabled, NaN is still rejected.
func WithAllowInf() Option {
	return func(o *Options) { o.allowInf = true }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply opts in order; last-writer-wins semantics.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// AllowInf reports whether ±Inf passes validation.
func (o Options) AllowInf() bool { return o.allowInf }

// defaultOptions returns the documented defaults.
// Keep this in sync with the constants above.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		allowInf:       DefaultAllowInf,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for constructors.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
