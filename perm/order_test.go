package perm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rmoneygit/SymmetricGroupExplorer/perm"
)

func TestFactorial(t *testing.T) {
	assert.Equal(t, uint64(1), perm.Factorial(0))
	assert.Equal(t, uint64(1), perm.Factorial(1))
	assert.Equal(t, uint64(6), perm.Factorial(3))
	assert.Equal(t, uint64(479001600), perm.Factorial(12))
	assert.Equal(t, uint64(6227020800), perm.Factorial(13), "must not wrap at 32 bits")
	assert.Equal(t, uint64(2432902008176640000), perm.Factorial(20))
	assert.Equal(t, uint64(math.MaxUint64), perm.Factorial(21), "saturates instead of wrapping")
	assert.Equal(t, uint64(math.MaxUint64), perm.Factorial(100))
}

func TestOrder_Identity(t *testing.T) {
	for n := 0; n <= 20; n++ {
		got, err := perm.Order(mustIdentity(n))
		require.NoError(t, err)
		assert.Equal(t, 1, got, "n=%d", n)
	}
}

func TestOrder_Known(t *testing.T) {
	cases := []struct {
		p    perm.Permutation
		want int
	}{
		{perm.MustNew(2, 1), 2},
		{perm.MustNew(2, 3, 1), 3},
		{perm.MustNew(2, 1, 4, 5, 3), 6},
		{perm.MustNew(2, 3, 4, 5, 6, 7, 1), 7},
	}
	for _, tc := range cases {
		got, err := perm.Order(tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Order(%v)", tc.p)
	}
}

func TestOrder_Properties(t *testing.T) {
	for n := 1; n <= 5; n++ {
		groupOrder := perm.Factorial(n)
		for _, p := range allPermutations(n) {
			k, err := perm.Order(p)
			require.NoError(t, err)

			assert.Zero(t, groupOrder%uint64(k), "ord(%v)=%d must divide %d!", p, k, n)

			pk, err := perm.Power(p, k)
			require.NoError(t, err)
			assert.True(t, perm.IsIdentity(pk), "p^ord(p) must be identity for %v", p)

			for j := 1; j < k; j++ {
				pj, _ := perm.Power(p, j)
				assert.False(t, perm.IsIdentity(pj), "p^%d already identity for %v", j, p)
			}

			byCycles, err := perm.OrderByCycles(p)
			require.NoError(t, err)
			assert.Equal(t, k, byCycles, "Order and OrderByCycles disagree on %v", p)
		}
	}
}

func TestOrder_Corrupt(t *testing.T) {
	_, err := perm.Order(perm.Permutation{1, 1})
	assert.ErrorIs(t, err, perm.ErrCorruptPermutation)
	assert.ErrorIs(t, err, perm.ErrNotBijection)

	_, err = perm.Order(perm.Permutation{2, 2, 2})
	assert.ErrorIs(t, err, perm.ErrCorruptPermutation)

	_, err = perm.Order(perm.Permutation{0, 1})
	assert.ErrorIs(t, err, perm.ErrCorruptPermutation)

	// Rejected before iterating: 18! compositions would never finish.
	big := mustIdentity(18)
	big[17] = 1
	_, err = perm.Order(big)
	assert.ErrorIs(t, err, perm.ErrCorruptPermutation)

	_, err = perm.OrderByCycles(perm.Permutation{1, 1})
	assert.ErrorIs(t, err, perm.ErrNotBijection)
}

func TestCycles(t *testing.T) {
	cases := []struct {
		name string
		p    perm.Permutation
		want [][]int
	}{
		{"identity", perm.MustNew(1, 2, 3), [][]int{}},
		{"three-cycle", perm.MustNew(2, 3, 1), [][]int{{1, 2, 3}}},
		{"transposition", perm.MustNew(3, 2, 1), [][]int{{1, 3}}},
		{"two cycles", perm.MustNew(2, 1, 4, 5, 3), [][]int{{1, 2}, {3, 4, 5}}},
		{"head is smallest", perm.MustNew(1, 5, 2, 4, 3), [][]int{{2, 5, 3}}},
		{"empty", perm.Permutation{}, [][]int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, perm.Cycles(tc.p))
		})
	}
}
