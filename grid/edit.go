package grid

import (
	"fmt"

	"github.com/Rmoneygit/SymmetricGroupExplorer/perm"
)

// EditCell applies value v typed into cell i.
//
// buffer is the pending row a widget writes into; committed is the
// permutation it shadows. Both must have length n.
//
//   - v outside [1,n]: the edit is rejected, buffer[i] reverts to
//     committed[i], and EditCell returns false.
//   - otherwise the index j ≠ i that currently holds v in committed receives
//     committed[i] (in both rows), then cell i takes v. Exactly one
//     occurrence of each symbol remains, e.g. editing [1 2 3] at i=0 to 3
//     yields [3 2 1].
//
// Errors: perm.ErrSizeMismatch for rows of different length;
// ErrIndexOutOfRange for i outside [0,n).
//
// Panics if no such j exists: committed was not a bijection before the call.
func EditCell(buffer, committed perm.Permutation, i, v int) (bool, error) {
	n := len(committed)
	if len(buffer) != n {
		return false, fmt.Errorf("EditCell: %w (%d != %d)", perm.ErrSizeMismatch, len(buffer), n)
	}
	if i < 0 || i >= n {
		return false, fmt.Errorf("EditCell(%d): %w [0,%d)", i, ErrIndexOutOfRange, n)
	}

	if v < 1 || v > n {
		buffer[i] = committed[i]
		return false, nil
	}
	if v == committed[i] {
		buffer[i] = v
		return true, nil
	}

	j := -1
	for k := range committed {
		if k != i && committed[k] == v {
			j = k
			break
		}
	}
	if j < 0 {
		panic(fmt.Sprintf("grid: EditCell: value %d not found in committed row %v", v, committed))
	}

	committed[j] = committed[i]
	buffer[j] = committed[i]
	committed[i] = v
	buffer[i] = v

	return true, nil
}

// Row pairs a committed permutation with the pending buffer its cells are
// edited through.
type Row struct {
	Buffer    perm.Permutation
	Committed perm.Permutation
}

// NewRow returns a row holding the identity of S_n in both halves.
func NewRow(n int) (*Row, error) {
	b, err := perm.Identity(n)
	if err != nil {
		return nil, err
	}

	return &Row{Buffer: b, Committed: b.Clone()}, nil
}

// Edit applies EditCell to the row.
func (r *Row) Edit(i, v int) (bool, error) {
	return EditCell(r.Buffer, r.Committed, i, v)
}

// Sync copies the committed permutation into the buffer, e.g. after the
// committed side changed through Commute or a composition.
func (r *Row) Sync() error {
	return perm.Copy(r.Buffer, r.Committed)
}

// Group returns both halves as a Group so they resize together.
func (r *Row) Group() Group {
	return Group{&r.Buffer, &r.Committed}
}
