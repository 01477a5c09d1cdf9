// SPDX-License-Identifier: MIT
// Package: symgroup/perm
//
// errors.go — sentinel errors for the perm package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context (sizes, offending values) is attached with %w at the call site.
//   • Algorithms never panic on user input.

package perm

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch indicates that two permutations of different lengths were
// passed to a binary operation (Compose, Commute, Copy).
var ErrSizeMismatch = errors.New("perm: size mismatch")

// ErrEmptyInput indicates that an operation expecting a non-empty collection
// received none (ComposeAll with zero operands).
var ErrEmptyInput = errors.New("perm: empty input")

// ErrBadSize indicates a negative group size was requested.
var ErrBadSize = errors.New("perm: invalid group size")

// ErrNegativeExponent indicates Power was called with k < 0.
var ErrNegativeExponent = errors.New("perm: negative exponent")

// ErrNotBijection indicates a sequence is not a bijection on {1..n}: some
// value lies outside [1,n] or appears more than once.
var ErrNotBijection = errors.New("perm: not a bijection")

// ErrCorruptPermutation is returned by Order when the iteration count exceeds
// n!, the order of S_n. This cannot happen for a valid bijection, so it marks
// an invariant broken upstream rather than a user error.
var ErrCorruptPermutation = errors.New("perm: corrupt permutation")

// sizeMismatch wraps ErrSizeMismatch with both operand lengths.
func sizeMismatch(op string, a, b int) error {
	return fmt.Errorf("%s: %w (%d != %d)", op, ErrSizeMismatch, a, b)
}
