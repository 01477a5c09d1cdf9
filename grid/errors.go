package grid

import "errors"

var (
	// ErrSizeOutOfBounds indicates a requested group size outside the
	// configured [min,max] range (default [1,20]).
	ErrSizeOutOfBounds = errors.New("grid: size out of bounds")

	// ErrIndexOutOfRange indicates a cell index outside [0,n).
	ErrIndexOutOfRange = errors.New("grid: cell index out of range")

	// ErrNilPermutation indicates a nil member in a Group or a nil pointer
	// passed to ShrinkByOne.
	ErrNilPermutation = errors.New("grid: nil permutation")
)
