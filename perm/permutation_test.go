package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rmoneygit/SymmetricGroupExplorer/perm"
)

func TestIdentity(t *testing.T) {
	id, err := perm.Identity(4)
	require.NoError(t, err)
	assert.Equal(t, perm.Permutation{1, 2, 3, 4}, id)
	assert.True(t, perm.IsIdentity(id))

	empty, err := perm.Identity(0)
	require.NoError(t, err)
	assert.NotNil(t, empty, "S_0 identity must be non-nil")
	assert.Len(t, empty, 0)
	assert.True(t, perm.IsIdentity(empty))

	_, err = perm.Identity(-1)
	assert.ErrorIs(t, err, perm.ErrBadSize)
}

func TestSetIdentity(t *testing.T) {
	p := perm.Permutation{3, 1, 2}
	perm.SetIdentity(p)
	assert.Equal(t, perm.Permutation{1, 2, 3}, p)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		p    perm.Permutation
		ok   bool
	}{
		{"empty", perm.Permutation{}, true},
		{"nil", nil, true},
		{"identity", perm.Permutation{1, 2, 3}, true},
		{"cycle", perm.Permutation{2, 3, 1}, true},
		{"zero", perm.Permutation{0, 1, 2}, false},
		{"too large", perm.Permutation{1, 2, 4}, false},
		{"repeat", perm.Permutation{1, 1, 3}, false},
		{"negative", perm.Permutation{-1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := perm.Validate(tc.p)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, perm.ErrNotBijection)
			}
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	src := []int{2, 1, 3}
	p, err := perm.New(src...)
	require.NoError(t, err)
	src[0] = 9
	assert.Equal(t, perm.Permutation{2, 1, 3}, p, "New must not alias its input")

	_, err = perm.New(1, 1)
	assert.ErrorIs(t, err, perm.ErrNotBijection)

	assert.Panics(t, func() { perm.MustNew(0) })
}

func TestClone_Independent(t *testing.T) {
	p := perm.MustNew(2, 3, 1)
	c := p.Clone()
	c[0] = 1
	assert.Equal(t, 2, p[0])
	assert.Nil(t, perm.Permutation(nil).Clone())
}

func TestApplyAndString(t *testing.T) {
	p := perm.MustNew(2, 3, 1)
	assert.Equal(t, 2, p.Apply(1))
	assert.Equal(t, 1, p.Apply(3))
	assert.Equal(t, 7, p.Apply(7), "symbols outside the domain are fixed")
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "[2 3 1]", p.String())
	assert.Equal(t, "[]", perm.Permutation{}.String())
}

func TestEqualAndCopy(t *testing.T) {
	a := perm.MustNew(2, 1, 3)
	b := perm.MustNew(1, 2, 3)
	assert.False(t, perm.Equal(a, b))
	require.NoError(t, perm.Copy(b, a))
	assert.True(t, perm.Equal(a, b))
	assert.False(t, perm.Equal(a, perm.MustNew(1, 2)))

	err := perm.Copy(b, perm.MustNew(1, 2))
	assert.ErrorIs(t, err, perm.ErrSizeMismatch)
}
