package grid

import (
	"fmt"

	"github.com/Rmoneygit/SymmetricGroupExplorer/perm"
)

// Group is a non-owning view over permutations that must always share the
// same size, e.g. both operands and the result of a composition.
type Group []*perm.Permutation

// members returns the distinct non-nil members, in order, after checking
// that each has length n. A pointer listed twice is visited once.
func (g Group) members(op string, n int) ([]*perm.Permutation, error) {
	var (
		out  = make([]*perm.Permutation, 0, len(g))
		seen = make(map[*perm.Permutation]struct{}, len(g))
	)
	for k, p := range g {
		if p == nil {
			return nil, fmt.Errorf("%s: member %d: %w", op, k, ErrNilPermutation)
		}
		if len(*p) != n {
			return nil, fmt.Errorf("%s: member %d: %w (%d != %d)", op, k, perm.ErrSizeMismatch, len(*p), n)
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out, nil
}

// Grow extends every member from S_oldN to S_newN by appending the symbols
// oldN+1..newN as fixed points.
//
// Errors: perm.ErrBadSize if oldN < 0 or newN < oldN; perm.ErrSizeMismatch if
// a member's length is not oldN. Members are untouched on error.
func Grow(g Group, oldN, newN int) error {
	if oldN < 0 || newN < oldN {
		return fmt.Errorf("Grow(%d -> %d): %w", oldN, newN, perm.ErrBadSize)
	}
	ms, err := g.members("Grow", oldN)
	if err != nil {
		return err
	}
	for _, p := range ms {
		for k := oldN + 1; k <= newN; k++ {
			*p = append(*p, k)
		}
	}

	return nil
}

// ShrinkByOne removes symbol n from *p: the slot holding n takes the value
// at the last position, then the last position is dropped. Symbol n is
// spliced out of its cycle, e.g. [2 3 1] → [2 1].
//
// Errors: perm.ErrEmptyInput on S_0; perm.ErrNotBijection if n is missing.
// *p is untouched on error.
func ShrinkByOne(p *perm.Permutation) error {
	if p == nil {
		return fmt.Errorf("ShrinkByOne: %w", ErrNilPermutation)
	}
	var (
		s = *p
		n = len(s)
	)
	if n == 0 {
		return fmt.Errorf("ShrinkByOne: %w", perm.ErrEmptyInput)
	}
	for i, v := range s {
		if v == n {
			s[i] = s[n-1]
			*p = s[:n-1]
			return nil
		}
	}

	return fmt.Errorf("ShrinkByOne: %w: symbol %d has no preimage", perm.ErrNotBijection, n)
}

// Resize moves every member of g from S_oldN to S_newN, growing with fixed
// points or shrinking one symbol at a time.
//
// Errors: ErrSizeOutOfBounds if newN is outside the configured bounds;
// perm.ErrSizeMismatch if a member's length is not oldN; perm.ErrNotBijection
// if a member must shrink but is not a permutation. Members are untouched on
// error.
func Resize(g Group, oldN, newN int, opts ...Option) error {
	o := gatherOptions(opts...)
	if newN < o.minSize || newN > o.maxSize {
		return fmt.Errorf("Resize(%d): %w [%d,%d]", newN, ErrSizeOutOfBounds, o.minSize, o.maxSize)
	}
	if newN >= oldN {
		return Grow(g, oldN, newN)
	}

	ms, err := g.members("Resize", oldN)
	if err != nil {
		return err
	}
	// ShrinkByOne never fails on a bijection.
	for k, p := range ms {
		if err = perm.Validate(*p); err != nil {
			return fmt.Errorf("Resize(%d -> %d): member %d: %w", oldN, newN, k, err)
		}
	}
	for n := oldN; n > newN; n-- {
		for _, p := range ms {
			if err = ShrinkByOne(p); err != nil {
				return fmt.Errorf("Resize(%d -> %d): %w", oldN, newN, err)
			}
		}
	}

	return nil
}

// Reset sets every member to the identity of S_n, reusing storage when it
// is large enough.
//
// Errors: perm.ErrBadSize if n < 0; ErrNilPermutation for a nil member.
func Reset(g Group, n int) error {
	if n < 0 {
		return fmt.Errorf("Reset(%d): %w", n, perm.ErrBadSize)
	}
	for k, p := range g {
		if p == nil {
			return fmt.Errorf("Reset: member %d: %w", k, ErrNilPermutation)
		}
		if cap(*p) >= n {
			*p = (*p)[:n]
		} else {
			*p = make(perm.Permutation, n)
		}
		perm.SetIdentity(*p)
	}

	return nil
}
