package calculator

import (
	"strconv"
	"strings"
)

// Token is a single lexical unit of an expression. Tokens are created only by
// Tokenize and are immutable; each carries everything needed to evaluate it
// without the source text.
type Token struct {
	kind TokenKind
	num  float64
	op   *Operator
	fn   *Function
	left bool
	pos  int
}

// TokenKind identifies which variant a Token holds.
type TokenKind int8

const (
	// InvalidToken is the kind of the zero Token.
	InvalidToken TokenKind = iota
	// NumberToken is a numeric literal, possibly negative.
	NumberToken
	// OperatorToken is a binary operator.
	OperatorToken
	// FunctionToken is a named function.
	FunctionToken
	// ParenToken is an open or close parenthesis.
	ParenToken
)

func (k TokenKind) String() string {
	switch k {
	case InvalidToken:
		return "Invalid"
	case NumberToken:
		return "Number"
	case OperatorToken:
		return "Operator"
	case FunctionToken:
		return "Function"
	case ParenToken:
		return "Paren"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func numtok(v float64, pos int) Token {
	return Token{kind: NumberToken, num: v, pos: pos}
}

func optok(op *Operator, pos int) Token {
	return Token{kind: OperatorToken, op: op, pos: pos}
}

func functok(fn *Function, pos int) Token {
	return Token{kind: FunctionToken, fn: fn, pos: pos}
}

func parentok(left bool, pos int) Token {
	return Token{kind: ParenToken, left: left, pos: pos}
}

// Kind returns the variant of the token.
func (t Token) Kind() TokenKind {
	return t.kind
}

// Value returns the value of a number token and 0 for any other kind.
func (t Token) Value() float64 {
	return t.num
}

// Operator returns the operator of an operator token and nil otherwise.
func (t Token) Operator() *Operator {
	return t.op
}

// Function returns the function of a function token and nil otherwise.
func (t Token) Function() *Function {
	return t.fn
}

// IsLeft reports whether the token is an open parenthesis.
func (t Token) IsLeft() bool {
	return t.kind == ParenToken && t.left
}

// Pos returns the 1-based rune column at which the token began.
func (t Token) Pos() int {
	return t.pos
}

// String formats the token as it would be written in an expression. Numbers
// use the shortest representation that reads back to the same value, which
// has an exponent for large or small magnitudes, e.g. "9.87654321e+09".
func (t Token) String() string {
	switch t.kind {
	case NumberToken:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case OperatorToken:
		return string(t.op.symbol)
	case FunctionToken:
		return t.fn.name
	case ParenToken:
		if t.left {
			return "("
		}
		return ")"
	default:
		return "$invalid$"
	}
}

// Postfix is a sequence of number, operator, and function tokens in reverse
// Polish order, as produced by Parse.
type Postfix []Token

// String formats the sequence with tokens separated by spaces, e.g. "2 3 4 * +".
func (p Postfix) String() string {
	var b strings.Builder
	for i, tok := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
