// SPDX-License-Identifier: MIT

package lattice

import "math"

const (
	// DefaultTolerance is the relative tolerance for every numeric decision.
	// It absorbs bases typed with 8–9 significant digits (e.g. √3 ≈ 1.73205081).
	DefaultTolerance = 1e-6

	// DefaultMaxGroupDimension is the largest dimension for which groups are computed.
	DefaultMaxGroupDimension = 3
)

const (
	panicToleranceInvalid    = "lattice: WithTolerance: tol must be finite and > 0"
	panicMaxDimensionInvalid = "lattice: WithMaxGroupDimension: n must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol         float64 // > 0; DefaultTolerance
	maxGroupDim int     // >= 1; DefaultMaxGroupDimension
}

// WithTolerance sets the relative tolerance used by the lattice.
// Panics on NaN, ±Inf or non-positive values (programmer error).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxGroupDimension raises (or lowers) the dimension limit for group search.
// The search cost grows quickly with n; 4 is still cheap for reduced bases.
func WithMaxGroupDimension(n int) Option {
	if n < 1 {
		panic(panicMaxDimensionInvalid)
	}

	return func(o *Options) { o.maxGroupDim = n }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance, maxGroupDim: DefaultMaxGroupDimension}
	for _, set := range user {
		set(&o)
	}

	return o
}
