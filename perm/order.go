package perm

import (
	"fmt"
	"math"
)

// Factorial returns n! as a uint64, saturating at math.MaxUint64 once the
// true value no longer fits (n ≥ 21). Negative n yields 1.
//
// The saturation keeps Order's iteration bound monotone: it can grow too
// large to matter, but it never wraps to a small value.
func Factorial(n int) uint64 {
	var (
		val uint64 = 1
		i   int
	)
	for i = 2; i <= n; i++ {
		if val > math.MaxUint64/uint64(i) {
			return math.MaxUint64
		}
		val *= uint64(i)
	}

	return val
}

// Order returns the smallest k > 0 such that p composed with itself k times
// is the identity.
//
// Algorithm:
//  0. Validate p.
//  1. buffer := p, k := 1.
//  2. While buffer is not the identity: buffer = buffer∘p, k++.
//  3. If k ever exceeds n!, stop with ErrCorruptPermutation.
//
// The identity is detected before any composition, so Order(identity) = 1.
// Step 3 is unreachable for a bijection.
//
// Errors:
//   - ErrCorruptPermutation (also matching ErrNotBijection) if p is not a
//     permutation, or if the bound is exceeded.
//
// Complexity: O(n·k) time, O(n) space. See OrderByCycles for an O(n) variant.
func Order(p Permutation) (int, error) {
	var (
		n     = len(p)
		bound = Factorial(n)
		order = 1
	)
	if err := Validate(p); err != nil {
		return 0, fmt.Errorf("Order: %w: %w", ErrCorruptPermutation, err)
	}

	buffer := p.Clone()
	for !IsIdentity(buffer) {
		buffer, _ = Compose(buffer, p)
		order++
		if uint64(order) > bound {
			return 0, fmt.Errorf("Order: %w: exceeded %d! = %d iterations", ErrCorruptPermutation, n, bound)
		}
	}

	return order, nil
}

// OrderByCycles returns the order of p as the least common multiple of its
// cycle lengths.
//
// Errors: ErrNotBijection if p is invalid.
//
// Complexity: O(n) time.
func OrderByCycles(p Permutation) (int, error) {
	if err := Validate(p); err != nil {
		return 0, fmt.Errorf("OrderByCycles: %w", err)
	}

	order := 1
	for _, c := range Cycles(p) {
		order = lcm(order, len(c))
	}

	return order, nil
}

// Cycles returns the disjoint cycle decomposition of p. Each cycle starts at
// its smallest symbol, cycles are ordered by that head, and fixed points are
// omitted. The identity yields an empty, non-nil slice.
//
// p must be a bijection; values outside [1,n] end the walk of the current
// cycle so that corrupt input cannot loop.
//
// Complexity: O(n) time, O(n) space.
func Cycles(p Permutation) [][]int {
	var (
		n       = len(p)
		visited = make([]bool, n)
		out     = make([][]int, 0)
		s, next int
	)
	for s = 1; s <= n; s++ {
		if visited[s-1] || p[s-1] == s {
			visited[s-1] = true
			continue
		}
		c := []int{s}
		visited[s-1] = true
		for next = p[s-1]; next != s; next = p[next-1] {
			if next < 1 || next > n || visited[next-1] {
				break
			}
			visited[next-1] = true
			c = append(c, next)
		}
		out = append(out, c)
	}

	return out
}

// gcd returns the greatest common divisor of two non-negative ints.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm returns the least common multiple of two positive ints.
func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
