// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for grids.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options travel with a Grid: Clone copies them, Add/Mul start from the
//     left operand's options when it is a *Grid and then apply call options.
//   - Arithmetic policy: by default sums and products use Go's native int
//     semantics (two's-complement wraparound on overflow). WithCheckedArithmetic
//     switches Add/Mul to report ErrOverflow instead.
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRows is the row bound used by NewDefault.
	DefaultRows = 5

	// DefaultCols is the column bound used by NewDefault.
	DefaultCols = 5

	// DefaultCheckedArithmetic keeps native wraparound on overflow.
	DefaultCheckedArithmetic = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds grid configuration. Fields are unexported; use the WithX constructors.
type Options struct {
	checked bool // report ErrOverflow instead of wrapping
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{checked: DefaultCheckedArithmetic}
}

// WithCheckedArithmetic makes Add and Mul fail with ErrOverflow when an
// intermediate result does not fit in int.
func WithCheckedArithmetic() Option {
	return func(o *Options) { o.checked = true }
}

// WithWrappingArithmetic restores the default native wraparound policy.
// Useful to override a checked policy inherited from the left operand.
func WithWrappingArithmetic() Option {
	return func(o *Options) { o.checked = false }
}

// gatherOptions applies opts on top of base in order; nil options are skipped.
func gatherOptions(base Options, opts ...Option) Options {
	o := base
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
