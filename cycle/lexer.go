package cycle

// The automaton has five states. Rows are the current state, columns the
// class of the current input byte, cells the next state:
//
//	             digit  space  (      )      \n     end    other
//	Start        InNum  Start  Paren  Paren  Start  Start  Error
//	InNum        InNum  EndNum EndNum EndNum EndNum EndNum Error
//	EndNum  (A)  Start  Start  Start  Start  Start  Start  Start    backs up
//	Paren   (A)  Start  Start  Start  Start  Start  Start  Start
//	Error   (A)  Start  Start  Start  Start  Start  Start  Start
//
// Entering an accepting state (A) emits a token. EndNum is only recognised
// one byte past the numeral, so the lexer backs up and re-examines that byte
// as the start of the next token. Error emits Invalid and stops the stream.
//
// Scanning visits one position past the input; that virtual position is
// classified as end, which flushes a trailing numeral.

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// lexState is a row of the transition table.
type lexState int

const (
	stateStart lexState = iota
	stateInNumber
	stateEndOfNumber // accepting, backs up
	stateFoundParen  // accepting
	stateError       // accepting, terminal
	numStates
)

// inputClass is a column of the transition table.
type inputClass int

const (
	classDigit inputClass = iota
	classSpace
	classOpen
	classClose
	classNewline
	classEnd
	classOther
	numClasses
)

var transitions = [numStates][numClasses]lexState{
	stateStart:       {stateInNumber, stateStart, stateFoundParen, stateFoundParen, stateStart, stateStart, stateError},
	stateInNumber:    {stateInNumber, stateEndOfNumber, stateEndOfNumber, stateEndOfNumber, stateEndOfNumber, stateEndOfNumber, stateError},
	stateEndOfNumber: {stateStart, stateStart, stateStart, stateStart, stateStart, stateStart, stateStart},
	stateFoundParen:  {stateStart, stateStart, stateStart, stateStart, stateStart, stateStart, stateStart},
	stateError:       {stateStart, stateStart, stateStart, stateStart, stateStart, stateStart, stateStart},
}

// classify returns the column for position pos; pos == len(s) is end.
func classify(s string, pos int) inputClass {
	if pos >= len(s) {
		return classEnd
	}
	switch c := s[pos]; {
	case c >= '0' && c <= '9':
		return classDigit
	case c == ' ':
		return classSpace
	case c == '(':
		return classOpen
	case c == ')':
		return classClose
	case c == '\n':
		return classNewline
	default:
		return classOther
	}
}

// Lexer is a one-shot token stream over a single input string. Once Next
// reports false the stream is exhausted; tokenizing again needs a new Lexer.
type Lexer struct {
	input string
	start int // first byte of the pending lexeme
	pos   int // byte under examination
	state lexState
	done  bool
}

// NewLexer returns a Lexer over text. A NUL byte terminates the input, as it
// would a C string buffer.
func NewLexer(text string) *Lexer {
	if i := strings.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}

	return &Lexer{input: text}
}

// Next returns the next token, or false once the stream is exhausted.
//
// Complexity: amortised O(1) per input byte; each byte is examined at most
// twice (once more after a back-up).
func (l *Lexer) Next() (Token, bool) {
	var (
		class inputClass
		next  lexState
		tok   Token
	)
	for !l.done {
		if l.pos > len(l.input) {
			l.done = true
			break
		}

		class = classify(l.input, l.pos)
		next = transitions[l.state][class]

		switch next {
		case stateEndOfNumber:
			tok = Token{Value: l.input[l.start:l.pos], Type: Number, Offset: l.start}
			// Back up: the current byte is re-examined from Start.
			l.state = transitions[next][class]
			l.start = l.pos
			return tok, true

		case stateFoundParen:
			tok = Token{Value: l.input[l.pos : l.pos+1], Type: Parentheses, Offset: l.pos}
			l.state = transitions[next][class]
			l.pos++
			l.start = l.pos
			return tok, true

		case stateError:
			_, width := utf8.DecodeRuneInString(l.input[l.pos:])
			tok = Token{Value: l.input[l.start : l.pos+width], Type: Invalid, Offset: l.start}
			l.state = transitions[next][class]
			l.done = true
			return tok, true

		case stateInNumber:
			l.state = next
			l.pos++

		default:
			l.state = next
			l.pos++
			l.start = l.pos
		}
	}

	return Token{}, false
}

// All returns the remaining tokens as a range-over-func sequence. Breaking
// out of the loop leaves the rest of the stream available to Next.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize runs a fresh Lexer over text and collects every token. The result
// is nil when text holds no tokens.
func Tokenize(text string) []Token {
	var tokens []Token
	for tok := range NewLexer(text).All() {
		tokens = append(tokens, tok)
	}

	return tokens
}
