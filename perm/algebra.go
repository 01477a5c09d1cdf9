package perm

// Convention: Compose(left, right) is "apply right, then left", i.e.
//
//	Compose(left, right)(s) = left(right(s))
//
// which matches the usual right-to-left reading of a product of permutations.

import "fmt"

// Compose returns left∘right: result[i] = left[right[i]-1].
//
// Contract:
//   - len(left) == len(right), otherwise ErrSizeMismatch.
//   - every right[i] lies in [1,n], otherwise ErrNotBijection (the lookup
//     into left would be undefined).
//
// Complexity: O(n) time, O(n) space.
func Compose(left, right Permutation) (Permutation, error) {
	if len(left) != len(right) {
		return nil, sizeMismatch("Compose", len(left), len(right))
	}

	var (
		n      = len(right)
		result = make(Permutation, n)
		i, r   int
	)
	for i = 0; i < n; i++ {
		r = right[i]
		if r < 1 || r > n {
			return nil, fmt.Errorf("Compose: %w: value %d at position %d outside [1,%d]", ErrNotBijection, r, i+1, n)
		}
		result[i] = left[r-1]
	}

	return result, nil
}

// ComposeAll folds Compose over ps from the left, starting at the identity of
// len(ps[0]):
//
//	ComposeAll(a, b, c) = ((id∘a)∘b)∘c = a∘b∘c
//
// so the rightmost operand is applied first.
//
// Errors:
//   - ErrEmptyInput if no operands are given.
//   - ErrSizeMismatch if any operand's length differs from the first.
func ComposeAll(ps ...Permutation) (Permutation, error) {
	if len(ps) == 0 {
		return nil, fmt.Errorf("ComposeAll: %w", ErrEmptyInput)
	}

	n := len(ps[0])
	result, err := Identity(n)
	if err != nil {
		return nil, err
	}
	for k, p := range ps {
		if len(p) != n {
			return nil, fmt.Errorf("ComposeAll: operand %d: %w (%d != %d)", k, ErrSizeMismatch, len(p), n)
		}
		if result, err = Compose(result, p); err != nil {
			return nil, fmt.Errorf("ComposeAll: operand %d: %w", k, err)
		}
	}

	return result, nil
}

// Commute exchanges the contents of a and b position by position, in place.
// Despite the name this is a swap of values, not the group commutator
// a⁻¹b⁻¹ab.
//
// Errors: ErrSizeMismatch if the lengths differ; neither operand is touched.
func Commute(a, b Permutation) error {
	if len(a) != len(b) {
		return sizeMismatch("Commute", len(a), len(b))
	}
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}

	return nil
}

// Inverse returns p⁻¹, the permutation with Compose(p, p⁻¹) = identity.
//
// Errors: ErrNotBijection if p is not a bijection.
//
// Complexity: O(n) time, O(n) space.
func Inverse(p Permutation) (Permutation, error) {
	if err := Validate(p); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	inv := make(Permutation, len(p))
	for i, v := range p {
		inv[v-1] = i + 1
	}

	return inv, nil
}

// Power returns p composed with itself k times; Power(p, 0) is the identity.
// Uses binary exponentiation.
//
// Errors: ErrNegativeExponent if k < 0, ErrNotBijection if p is invalid.
//
// Complexity: O(n·log k) time.
func Power(p Permutation, k int) (Permutation, error) {
	if k < 0 {
		return nil, fmt.Errorf("Power(k=%d): %w", k, ErrNegativeExponent)
	}
	if err := Validate(p); err != nil {
		return nil, fmt.Errorf("Power: %w", err)
	}

	result, _ := Identity(len(p))
	base := p.Clone()
	for k > 0 {
		if k&1 == 1 {
			// Powers of one permutation commute, so operand order is irrelevant.
			result, _ = Compose(result, base)
		}
		base, _ = Compose(base, base)
		k >>= 1
	}

	return result, nil
}
