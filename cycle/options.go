// SPDX-License-Identifier: MIT
// Package: symgroup/cycle
//
// options.go — functional options for parsing and formatting.
//
// Contract:
//   • Option constructors validate and panic on meaningless values; parsing
//     itself never panics on user input.
//   • Later options override earlier ones.
//   • No globals: the group size is an explicit Parse argument and every other
//     knob flows through options.

package cycle

import "fmt"

// OverlapPolicy decides how Parse treats a symbol that appears in more than
// one cycle of the same expression, e.g. "(1 2)(2 3)".
type OverlapPolicy int

const (
	// OverlapCompose applies the cycles one after another in the order they
	// are written: "(1 2)(2 3)" in S_3 sends 1→2→3, 2→1, 3→2 and is [3 1 2].
	OverlapCompose OverlapPolicy = iota

	// OverlapOverwrite writes each cycle's mappings over the previous ones in
	// textual order; the last write for a symbol wins. If the result is not a
	// bijection Parse fails with ErrOverlappingCycles.
	OverlapOverwrite

	// OverlapReject fails with ErrOverlappingCycles on any shared symbol.
	OverlapReject
)

// String returns the policy name.
func (p OverlapPolicy) String() string {
	switch p {
	case OverlapCompose:
		return "compose"
	case OverlapOverwrite:
		return "overwrite"
	case OverlapReject:
		return "reject"
	default:
		return fmt.Sprintf("OverlapPolicy(%d)", int(p))
	}
}

// Defaults.
const (
	// DefaultOverlapPolicy applies overlapping cycles left to right. For
	// disjoint cycles every policy gives the same result.
	DefaultOverlapPolicy = OverlapCompose

	// DefaultFixedPoints omits fixed points from Format output.
	DefaultFixedPoints = false

	// DefaultMaxInputLen of 0 disables the length limit.
	DefaultMaxInputLen = 0
)

// Option customizes Parse and Format.
type Option func(*options)

type options struct {
	overlap     OverlapPolicy
	fixedPoints bool
	maxInputLen int
}

// WithOverlapPolicy selects the overlapping-cycle policy. Panics on an
// unknown policy.
func WithOverlapPolicy(p OverlapPolicy) Option {
	if p < OverlapCompose || p > OverlapReject {
		panic(fmt.Sprintf("cycle: WithOverlapPolicy(%d): unknown policy", int(p)))
	}

	return func(o *options) { o.overlap = p }
}

// WithFixedPoints makes Format print every fixed point as a singleton cycle.
func WithFixedPoints() Option {
	return func(o *options) { o.fixedPoints = true }
}

// WithMaxInputLen limits raw input to n bytes; 0 disables the limit.
// Panics if n < 0.
func WithMaxInputLen(n int) Option {
	if n < 0 {
		panic("cycle: WithMaxInputLen(n<0)")
	}

	return func(o *options) { o.maxInputLen = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		overlap:     DefaultOverlapPolicy,
		fixedPoints: DefaultFixedPoints,
		maxInputLen: DefaultMaxInputLen,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
