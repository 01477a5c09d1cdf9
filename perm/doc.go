// Package perm implements permutation algebra over the finite symmetric
// group S_n.
//
// What:
//
//   - Permutation: a bijection on {1..n} stored as a []int where index i holds
//     the image of symbol i+1. The identity of S_3 is [1 2 3]; the 3-cycle
//     1→2→3→1 is [2 3 1].
//   - Compose / ComposeAll: function composition "apply right, then left".
//   - Commute: in-place exchange of two permutations' contents.
//   - Order / OrderByCycles: smallest k > 0 with p^k = identity.
//   - Cycles: disjoint cycle decomposition, the basis of cycle notation.
//   - Inverse, Power, Validate, Equal, Copy and identity helpers.
//
// Invariants:
//
//   - Every exported operation expects bijections on entry and returns
//     bijections on exit. Validate reports ErrNotBijection otherwise.
//   - Results are always freshly allocated; no operation aliases its inputs
//     except the explicit in-place mutators (Commute, SetIdentity, Copy).
//
// Errors:
//
//   - ErrSizeMismatch        operands of unequal length
//   - ErrEmptyInput          ComposeAll without operands, shrinking S_0
//   - ErrBadSize             negative group size
//   - ErrNegativeExponent    Power with k < 0
//   - ErrNotBijection        value outside [1,n] or repeated
//   - ErrCorruptPermutation  Order exceeded n! iterations
//
// Complexity:
//
//   - Compose, Commute, Inverse, Validate: O(n)
//   - Order: O(n·ord(p)), bounded by O(n·n!) on corrupt input
//   - OrderByCycles, Cycles: O(n)
//
// The package is not safe for concurrent mutation of the same Permutation;
// callers own synchronization.
package perm
