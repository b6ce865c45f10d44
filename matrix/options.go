// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for row-range storage.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultMaxElements bounds the number of float32 cells a single matrix
	// may allocate (4 GiB of payload). Larger requests fail with ErrOutOfMemory.
	DefaultMaxElements = 1 << 30
)

const panicMaxElementsInvalid = "matrix: WithMaxElements: limit must be > 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	maxElements    int  // DefaultMaxElements
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// When enabled, Set rejects NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithMaxElements caps the element count of newly created matrices.
// Panics when limit <= 0 (programmer error).
func WithMaxElements(limit int) Option {
	if limit <= 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = limit }
}

// ValidateNaNInf reports the effective numeric policy.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// MaxElements reports the effective allocation cap.
func (o Options) MaxElements() int { return o.maxElements }

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		maxElements:    DefaultMaxElements,
	}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}
