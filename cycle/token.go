package cycle

import (
	"fmt"
	"strings"
)

// TokenType classifies a lexeme.
type TokenType int

const (
	// Number is a run of ASCII digits.
	Number TokenType = iota
	// Parentheses is a single '(' or ')'.
	Parentheses
	// Invalid is text the lexer could not classify. It is always the last
	// token of a stream.
	Invalid
)

// String returns the type name.
func (t TokenType) String() string {
	switch t {
	case Number:
		return "Number"
	case Parentheses:
		return "Parentheses"
	case Invalid:
		return "Invalid"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is one classified lexeme.
type Token struct {
	Value  string    // exact matched text
	Type   TokenType // Number, Parentheses or Invalid
	Offset int       // byte offset of Value in the input
}

// DebugString renders the token on one line, e.g. "Value: 12 Type: Number".
func (t Token) DebugString() string {
	return "Value: " + t.Value + " Type: " + t.Type.String()
}

// DebugTokens renders a token sequence one token per line, numbered from 1.
func DebugTokens(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		fmt.Fprintf(&b, "Token %d: %s\n", i+1, t.DebugString())
	}

	return b.String()
}
