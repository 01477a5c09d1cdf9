// SPDX-License-Identifier: MIT
// Package: symgroup/cycle
//
// errors.go — sentinel error kinds and the structured SyntaxError.

package cycle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoTokens indicates the input produced no tokens at all (empty or
	// whitespace-only text).
	ErrNoTokens = errors.New("cycle: no tokens recognized")

	// ErrMalformedInput indicates text that is not valid cycle notation: an
	// invalid character, a symbol outside parentheses, or unbalanced or empty
	// parentheses.
	ErrMalformedInput = errors.New("cycle: malformed input")

	// ErrOutOfRange indicates a symbol ≤ 0 or greater than the group size.
	ErrOutOfRange = errors.New("cycle: symbol out of range")

	// ErrDuplicateSymbol indicates a symbol repeated inside one cycle.
	ErrDuplicateSymbol = errors.New("cycle: duplicate symbol in cycle")

	// ErrOverlappingCycles indicates a symbol shared by two cycles of one
	// expression. Only reported under OverlapReject.
	ErrOverlappingCycles = errors.New("cycle: symbol appears in more than one cycle")

	// ErrInputTooLong indicates the raw text exceeds WithMaxInputLen.
	ErrInputTooLong = errors.New("cycle: input too long")
)

// SyntaxError describes a failed parse. Kind is one of the sentinels above;
// the remaining fields are set when they apply and are zero otherwise.
type SyntaxError struct {
	Kind   error  // sentinel, matched by errors.Is
	Msg    string // short human-readable detail
	Lexeme string // offending token text
	Offset int    // byte offset of Lexeme in the input
	Symbol int    // offending symbol value
	Bound  int    // declared group size n
	Cycle  int    // 1-based index of the offending cycle
}

// Error renders the kind followed by whatever context is available.
func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Lexeme != "" {
		fmt.Fprintf(&b, " (%q at offset %d)", e.Lexeme, e.Offset)
	}

	return b.String()
}

// Unwrap exposes Kind so that errors.Is(err, ErrOutOfRange) and friends work.
func (e *SyntaxError) Unwrap() error { return e.Kind }

// syntaxErrorAt builds a SyntaxError anchored at tok.
func syntaxErrorAt(kind error, tok Token, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Kind:   kind,
		Msg:    fmt.Sprintf(format, args...),
		Lexeme: tok.Value,
		Offset: tok.Offset,
	}
}
