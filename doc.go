// Package symgroup is a small toolkit for exploring the symmetric group S_n:
// permutations of {1..n}, their products and orders, and the cycle notation
// used to write them.
//
// Subpackages:
//
//	perm/  — Permutation type and algebra: Compose, ComposeAll, Commute,
//	         Inverse, Power, Order, Cycles, identity helpers
//	cycle/ — cycle notation: a table-driven Lexer, Parse, Format
//	grid/  — table-editing helpers that keep permutations bijective:
//	         EditCell, Grow, ShrinkByOne, Resize
//
// Quick example:
//
//	p, _ := cycle.Parse("(1 2 3)", 3)   // [2 3 1]
//	q, _ := cycle.Parse("(1 3)", 3)     // [3 2 1]
//	r, _ := perm.Compose(p, q)          // apply q, then p: [1 3 2]
//	s, _ := cycle.Format(r)             // "(2 3)"
//	k, _ := perm.Order(p)               // 3
//
// Runnable demonstrations live in examples/.
package symgroup
