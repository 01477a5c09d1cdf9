// Package perm_test provides small helpers shared across the perm test files.
package perm_test

import "github.com/Rmoneygit/SymmetricGroupExplorer/perm"

// allPermutations enumerates every element of S_n in lexicographic order.
// Used for exhaustive property checks on small n (n ≤ 5 keeps it under 120).
func allPermutations(n int) []perm.Permutation {
	var (
		out  []perm.Permutation
		cur  = make([]int, 0, n)
		used = make([]bool, n+1)
		rec  func()
	)
	rec = func() {
		if len(cur) == n {
			out = append(out, perm.MustNew(cur...))
			return
		}
		for v := 1; v <= n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			cur = append(cur, v)
			rec()
			cur = cur[:len(cur)-1]
			used[v] = false
		}
	}
	rec()

	return out
}

// mustIdentity returns the identity of S_n or panics.
func mustIdentity(n int) perm.Permutation {
	id, err := perm.Identity(n)
	if err != nil {
		panic(err)
	}

	return id
}
