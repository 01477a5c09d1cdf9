package cycle

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/Rmoneygit/SymmetricGroupExplorer/perm"
)

// Cycle is an ordered run of distinct symbols; each maps to the next and the
// last wraps to the first. A singleton cycle is a fixed point.
type Cycle []int

// Permutation returns the cycle as an element of S_n.
//
// Errors: ErrOutOfRange if a symbol lies outside [1,n]; ErrDuplicateSymbol
// if a symbol repeats.
func (c Cycle) Permutation(n int) (perm.Permutation, error) {
	p, err := perm.Identity(n)
	if err != nil {
		return nil, err
	}
	seen := make([]bool, n+1)
	for _, s := range c {
		if s < 1 || s > n {
			return nil, &SyntaxError{
				Kind:   ErrOutOfRange,
				Msg:    fmt.Sprintf("symbol %d outside [1,%d]", s, n),
				Symbol: s,
				Bound:  n,
			}
		}
		if seen[s] {
			return nil, &SyntaxError{
				Kind:   ErrDuplicateSymbol,
				Msg:    fmt.Sprintf("symbol %d repeated in cycle %s", s, c),
				Symbol: s,
				Bound:  n,
			}
		}
		seen[s] = true
	}
	c.writeInto(p)

	return p, nil
}

// writeInto assigns p[s_i-1] = s_{i+1}, wrapping the last symbol to the head.
func (c Cycle) writeInto(p perm.Permutation) {
	k := len(c)
	for i, s := range c {
		p[s-1] = c[(i+1)%k]
	}
}

// Parse reads cycle notation as an element of S_n.
//
// Steps:
//  1. Tokenize; no tokens → ErrNoTokens.
//  2. A trailing Invalid token → ErrMalformedInput carrying the lexeme.
//  3. Group '(' Number+ ')' runs into cycles; anything else → ErrMalformedInput.
//  4. Each symbol must lie in [1,n] (ErrOutOfRange) and be unique within its
//     cycle (ErrDuplicateSymbol).
//  5. Start from the identity of S_n so unmentioned symbols are fixed, then
//     write each cycle's mappings according to the OverlapPolicy.
//
// Errors: perm.ErrBadSize for n < 0; otherwise a *SyntaxError.
//
// Complexity: O(len(text) + n) time.
func Parse(text string, n int, opts ...Option) (perm.Permutation, error) {
	o := gatherOptions(opts...)
	if n < 0 {
		return nil, fmt.Errorf("Parse(n=%d): %w", n, perm.ErrBadSize)
	}
	if o.maxInputLen > 0 && len(text) > o.maxInputLen {
		return nil, &SyntaxError{
			Kind: ErrInputTooLong,
			Msg:  fmt.Sprintf("%d bytes exceeds limit of %d", len(text), o.maxInputLen),
		}
	}

	return parseTokens(Tokenize(text), n, o)
}

// ParseTokens is Parse over an already tokenized input.
func ParseTokens(tokens []Token, n int, opts ...Option) (perm.Permutation, error) {
	if n < 0 {
		return nil, fmt.Errorf("ParseTokens(n=%d): %w", n, perm.ErrBadSize)
	}

	return parseTokens(tokens, n, gatherOptions(opts...))
}

// ParseCycles checks the grammar of text and returns its cycles without a
// group size: symbols must be positive and unique within a cycle, but no
// upper bound applies.
func ParseCycles(text string) ([]Cycle, error) {
	tokens := Tokenize(text)
	if err := checkTokens(tokens); err != nil {
		return nil, err
	}

	return groupCycles(tokens, unbounded)
}

func parseTokens(tokens []Token, n int, o options) (perm.Permutation, error) {
	if err := checkTokens(tokens); err != nil {
		return nil, err
	}
	cycles, err := groupCycles(tokens, n)
	if err != nil {
		return nil, err
	}

	return buildPermutation(cycles, n, o.overlap)
}

// checkTokens enforces steps 1 and 2 of Parse.
func checkTokens(tokens []Token) error {
	if len(tokens) == 0 {
		return &SyntaxError{Kind: ErrNoTokens, Msg: "input holds no cycles"}
	}
	// The lexer stops at the first Invalid token, so only the last can be one.
	if last := tokens[len(tokens)-1]; last.Type == Invalid {
		return syntaxErrorAt(ErrMalformedInput, last, "invalid token")
	}

	return nil
}

// unbounded disables the upper symbol bound in groupCycles.
const unbounded = -1

// groupCycles splits tokens into cycles and validates every symbol against
// [1,bound]; bound == unbounded only requires symbols to be positive.
func groupCycles(tokens []Token, bound int) ([]Cycle, error) {
	var (
		cycles  []Cycle
		cur     Cycle
		open    bool
		opening Token
		v       int
		err     error
	)
	for _, tok := range tokens {
		switch tok.Type {
		case Parentheses:
			if tok.Value == "(" {
				if open {
					return nil, syntaxErrorAt(ErrMalformedInput, tok, "nested '(' inside cycle %d", len(cycles)+1)
				}
				open, opening, cur = true, tok, nil
				continue
			}
			if tok.Value != ")" {
				return nil, syntaxErrorAt(ErrMalformedInput, tok, "%q is not a parenthesis", tok.Value)
			}
			if !open {
				return nil, syntaxErrorAt(ErrMalformedInput, tok, "unmatched ')'")
			}
			if len(cur) == 0 {
				return nil, syntaxErrorAt(ErrMalformedInput, tok, "empty cycle %d", len(cycles)+1)
			}
			cycles = append(cycles, cur)
			open = false

		case Number:
			if !open {
				return nil, syntaxErrorAt(ErrMalformedInput, tok, "symbol outside parentheses")
			}
			if !isNumeral(tok.Value) {
				return nil, syntaxErrorAt(ErrMalformedInput, tok, "%q is not a numeral", tok.Value)
			}
			v, err = strconv.Atoi(tok.Value)
			if err != nil || v <= 0 || (bound != unbounded && v > bound) {
				e := syntaxErrorAt(ErrOutOfRange, tok, "symbol %s outside [1,%d]", tok.Value, bound)
				e.Symbol, e.Bound, e.Cycle = v, bound, len(cycles)+1
				if bound == unbounded {
					e.Msg = fmt.Sprintf("symbol %s is not a positive int", tok.Value)
					e.Bound = 0
				}
				return nil, e
			}
			if slices.Contains(cur, v) {
				e := syntaxErrorAt(ErrDuplicateSymbol, tok, "symbol %d repeated in cycle %d", v, len(cycles)+1)
				e.Symbol, e.Bound, e.Cycle = v, bound, len(cycles)+1
				return nil, e
			}
			cur = append(cur, v)

		default:
			return nil, syntaxErrorAt(ErrMalformedInput, tok, "invalid token")
		}
	}
	if open {
		return nil, syntaxErrorAt(ErrMalformedInput, opening, "cycle %d is not closed", len(cycles)+1)
	}

	return cycles, nil
}

// isNumeral reports whether s is a non-empty run of ASCII digits, the only
// shape the lexer produces for Number.
func isNumeral(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// overlapError reports symbol s claimed by cycles first and second.
func overlapError(s, n, first, second int) *SyntaxError {
	return &SyntaxError{
		Kind:   ErrOverlappingCycles,
		Msg:    fmt.Sprintf("symbol %d appears in cycles %d and %d", s, first, second),
		Symbol: s,
		Bound:  n,
		Cycle:  second,
	}
}

// buildPermutation writes validated cycles over the identity of S_n.
func buildPermutation(cycles []Cycle, n int, policy OverlapPolicy) (perm.Permutation, error) {
	result, err := perm.Identity(n)
	if err != nil {
		return nil, err
	}

	switch policy {
	case OverlapCompose:
		factors := make([]perm.Permutation, 0, len(cycles))
		for _, c := range cycles {
			p, err := c.Permutation(n)
			if err != nil {
				return nil, err
			}
			factors = append(factors, p)
		}
		if len(factors) == 0 {
			return result, nil
		}
		// Cycles apply in the order written, so the leftmost is the
		// rightmost operand of the product.
		slices.Reverse(factors)
		return perm.ComposeAll(factors...)

	case OverlapReject:
		owner := make([]int, n+1) // symbol → 1-based cycle index
		for k, c := range cycles {
			for _, s := range c {
				if owner[s] != 0 {
					return nil, overlapError(s, n, owner[s], k+1)
				}
				owner[s] = k + 1
			}
			c.writeInto(result)
		}

	default:
		for _, c := range cycles {
			c.writeInto(result)
		}
		// Last-write-wins can leave two symbols with the same image; the
		// bijection is asserted once construction is complete.
		if err = perm.Validate(result); err != nil {
			return nil, &SyntaxError{
				Kind:  ErrOverlappingCycles,
				Msg:   "overwriting shared symbols does not yield a permutation: " + err.Error(),
				Bound: n,
			}
		}
	}

	return result, nil
}
