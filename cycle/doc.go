// Package cycle reads and writes permutations in cycle notation.
//
// What:
//
//	Cycle notation lists the non-trivial cycles of a permutation:
//
//	  (1 2 3)(4 5)   1→2, 2→3, 3→1, 4→5, 5→4, every other symbol fixed
//
//	The notation is ambiguous about the group size, so every parse takes the
//	declared n of S_n explicitly.
//
// Grammar:
//
//	expression := cycle*
//	cycle      := '(' number (sep number)* ')'
//	sep        := ' '+
//	number     := digit+
//
// Pipeline:
//
//	text ──Lexer──▶ []Token ──Parse──▶ perm.Permutation ──Format──▶ text
//
// Stages:
//   - Lexer: a table-driven finite-state tokenizer producing Number,
//     Parentheses and Invalid tokens. The first Invalid token ends the stream.
//   - Parse / ParseTokens: group tokens into cycles, validate each symbol
//     against [1,n] and against repeats in the same cycle, then write the
//     cycle mappings over the identity of S_n.
//   - Format: the inverse, built on perm.Cycles.
//
// Options:
//
//   - WithOverlapPolicy: what to do when one symbol appears in two cycles
//     (apply left to right, overwrite, or reject).
//   - WithFixedPoints: make Format print fixed points as singleton cycles.
//   - WithMaxInputLen: reject raw text longer than a fixed buffer.
//
// Errors:
//
//	Every parse failure is a *SyntaxError whose Kind is one of ErrNoTokens,
//	ErrMalformedInput, ErrOutOfRange, ErrDuplicateSymbol, ErrOverlappingCycles
//	or ErrInputTooLong. errors.Is matches the Kind directly.
package cycle
