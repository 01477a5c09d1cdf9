// Package grid keeps permutations edited through a table consistent.
//
// A table editor shows one permutation per row, one cell per symbol, and lets
// the user type any integer into any cell or change the number of symbols.
// The helpers here turn those raw edits into operations that preserve the
// bijection invariant of perm.Permutation:
//
//   - EditCell: accept a value typed into one cell; the symbol's previous
//     holder receives the cell's old value, so each symbol still appears once.
//     Out-of-range values are rejected and the cell reverts.
//   - Grow / ShrinkByOne / Resize: change n for a whole Group at once. New
//     symbols are fixed points; a removed symbol n is spliced out of its
//     cycle.
//   - Row: a committed permutation paired with the pending buffer a widget
//     writes into.
//
// Group is a non-owning view: it holds pointers to permutations owned by the
// caller and mutates them in place.
package grid
