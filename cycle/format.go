package cycle

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Rmoneygit/SymmetricGroupExplorer/perm"
)

// Format renders p in cycle notation, e.g. [2 3 1 5 4] → "(1 2 3)(4 5)".
//
// Each cycle starts at its smallest symbol and cycles are ordered by that
// head. Fixed points are omitted unless WithFixedPoints is given. The
// identity of S_n (n ≥ 1) renders as "(1)" so the output always parses back;
// the empty permutation of S_0 renders as "".
//
// Parse(Format(p), len(p)) == p for every valid p.
//
// Errors: perm.ErrNotBijection if p is invalid.
func Format(p perm.Permutation, opts ...Option) (string, error) {
	if err := perm.Validate(p); err != nil {
		return "", fmt.Errorf("Format: %w", err)
	}
	if len(p) == 0 {
		return "", nil
	}

	o := gatherOptions(opts...)
	cycles := perm.Cycles(p)
	if o.fixedPoints {
		for s := 1; s <= len(p); s++ {
			if p[s-1] == s {
				cycles = append(cycles, []int{s})
			}
		}
		slices.SortFunc(cycles, func(a, b []int) int { return a[0] - b[0] })
	}
	if len(cycles) == 0 {
		return "(1)", nil
	}

	var b strings.Builder
	for _, c := range cycles {
		b.WriteString(Cycle(c).String())
	}

	return b.String(), nil
}

// String renders the cycle in notation, e.g. "(1 2 3)".
func (c Cycle) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, s := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(s))
	}
	b.WriteByte(')')

	return b.String()
}
