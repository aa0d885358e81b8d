// SPDX-License-Identifier: MIT

package group

import "math"

// DefaultTolerance is the absolute element-wise tolerance used to decide that
// two members are the same matrix.
const DefaultTolerance = 1e-6

const panicToleranceInvalid = "group: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol float64 // >= 0; DefaultTolerance
}

// WithTolerance sets the element-wise tolerance for member comparison.
// Panics on NaN, ±Inf or negative values (programmer error).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, set := range user {
		set(&o)
	}

	return o
}
