package perm

import (
	"fmt"
	"strconv"
	"strings"
)

// Permutation is a bijection on {1..n}. Index i holds the image of symbol i+1,
// so len(p) is the group size n.
//
// A nil or empty Permutation is the trivial permutation of S_0.
type Permutation []int

// Identity returns the identity permutation of S_n: [1 2 ... n].
// n = 0 yields an empty, non-nil permutation.
//
// Errors: ErrBadSize if n < 0.
//
// Complexity: O(n) time, O(n) space.
func Identity(n int) (Permutation, error) {
	if n < 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrBadSize)
	}
	p := make(Permutation, n)
	SetIdentity(p)

	return p, nil
}

// New validates values and returns them as an independent Permutation.
// The input slice is copied; later changes to it do not affect the result.
//
// Errors: ErrNotBijection if values is not a bijection on {1..len(values)}.
func New(values ...int) (Permutation, error) {
	p := make(Permutation, len(values))
	copy(p, values)
	if err := Validate(p); err != nil {
		return nil, err
	}

	return p, nil
}

// MustNew is like New but panics on invalid input. Intended for literals in
// tests and examples.
func MustNew(values ...int) Permutation {
	p, err := New(values...)
	if err != nil {
		panic(err)
	}

	return p
}

// Validate checks that p is a bijection on {1..len(p)}.
//
// Complexity: O(n) time, O(n) space for the marker slice.
func Validate(p Permutation) error {
	var (
		n    = len(p)
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = p[i]
		if v < 1 || v > n {
			return fmt.Errorf("%w: value %d at position %d outside [1,%d]", ErrNotBijection, v, i+1, n)
		}
		if seen[v-1] {
			return fmt.Errorf("%w: value %d repeated at position %d", ErrNotBijection, v, i+1)
		}
		seen[v-1] = true
	}

	return nil
}

// Len returns the group size n.
func (p Permutation) Len() int { return len(p) }

// Apply returns the image of symbol s (1-based). It returns s unchanged when
// s lies outside the domain, treating it as a fixed point.
func (p Permutation) Apply(s int) int {
	if s < 1 || s > len(p) {
		return s
	}

	return p[s-1]
}

// Clone returns an independent copy of p.
func (p Permutation) Clone() Permutation {
	if p == nil {
		return nil
	}
	out := make(Permutation, len(p))
	copy(out, p)

	return out
}

// String renders p in one-line notation, e.g. "[2 3 1]".
func (p Permutation) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}

// IsIdentity reports whether p[i] == i+1 for every i.
// The empty permutation is the identity of S_0.
func IsIdentity(p Permutation) bool {
	for i, v := range p {
		if v != i+1 {
			return false
		}
	}

	return true
}

// SetIdentity overwrites p in place with the identity of its current length.
func SetIdentity(p Permutation) {
	for i := range p {
		p[i] = i + 1
	}
}

// Equal reports whether a and b have the same length and the same images.
func Equal(a, b Permutation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Copy overwrites dst with the contents of src.
//
// Errors: ErrSizeMismatch if the lengths differ.
func Copy(dst, src Permutation) error {
	if len(dst) != len(src) {
		return sizeMismatch("Copy", len(dst), len(src))
	}
	copy(dst, src)

	return nil
}
