package calculator

import (
	"errors"
	"strconv"
)

// Error kinds. Every error returned by Tokenize, Parse, and Evaluate unwraps
// to exactly one of these, so callers can classify failures with errors.Is.
var (
	// ErrEmptyExpression means the input was empty or only whitespace.
	ErrEmptyExpression = errors.New("empty expression")
	// ErrUnknownCharacter means a character cannot begin any token.
	ErrUnknownCharacter = errors.New("unknown character")
	// ErrUnknownFunction means an identifier names no function.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrInvalidNumber means a numeric literal has no digits, including a
	// negative sign that is not immediately followed by a number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrMismatchedParentheses means an open or close parenthesis has no
	// partner.
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
	// ErrInsufficientOperands means an operator, or the expression as a whole,
	// has too few values to work with.
	ErrInsufficientOperands = errors.New("insufficient operands")
	// ErrInsufficientArguments means a function has too few arguments.
	ErrInsufficientArguments = errors.New("insufficient arguments")
	// ErrExtraOperands means values remain that no operator consumes, e.g.
	// "2 3".
	ErrExtraOperands = errors.New("extra operands")
	// ErrMalformedPostfix means a token that cannot appear in postfix order
	// reached the evaluator. Parse never produces one.
	ErrMalformedPostfix = errors.New("malformed postfix")
)

// EmptyExpressionError is an error indicating an input with no tokens. It
// implements InputError.
type EmptyExpressionError struct {
	// Col is the position just past the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrEmptyExpression
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the unclosed open parenthesis, or empty if a close parenthesis
	// had no partner.
	Left string
	// Right is the unopened close parenthesis, or empty if an open
	// parenthesis had no partner.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrMismatchedParentheses
}

// OperandError is an error indicating an operator without two operands, or
// an expression that produced no value at all. It implements InputError.
type OperandError struct {
	// Col is the position of the operator, or 0 for an empty expression.
	Col int
	// Operator is the operator symbol, or empty for an empty expression.
	Operator string
	// Have is the number of values that were available.
	Have int
}

func (err *OperandError) Error() string {
	if err.Operator == "" {
		return errpos(err.Col, "expression has no value")
	}
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" needs 2 operands but has "+strconv.Itoa(err.Have))
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Unwrap() error {
	return ErrInsufficientOperands
}

// CallError is an error indicating a function call with too few arguments.
// It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Arity is the number of arguments the function takes.
	Arity int
	// Have is the number of values that were available.
	Have int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Have)+" of "+strconv.Itoa(err.Arity)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

func (err *CallError) Unwrap() error {
	return ErrInsufficientArguments
}

// ExtraOperandsError is an error indicating values left over after
// evaluation. It implements InputError.
type ExtraOperandsError struct {
	// Col is the position of the first value that nothing consumed.
	Col int
	// Count is the number of values that remained.
	Count int
}

func (err *ExtraOperandsError) Error() string {
	return errpos(err.Col, strconv.Itoa(err.Count)+" values with no operator between them")
}

func (err *ExtraOperandsError) Pos() int {
	return err.Col
}

func (err *ExtraOperandsError) Unwrap() error {
	return ErrExtraOperands
}

// PostfixError is an error indicating a token that cannot be evaluated in
// postfix order. It is not caused by input and does not implement InputError.
type PostfixError struct {
	// Token is the offending token.
	Token Token
}

func (err *PostfixError) Error() string {
	return "calculator: " + err.Token.Kind().String() + " token " + strconv.Quote(err.Token.String()) + " in postfix at " + strconv.Itoa(err.Token.Pos())
}

func (err *PostfixError) Unwrap() error {
	return ErrMalformedPostfix
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of the
	// token that caused it, or 0 if there is no such token.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*ExtraOperandsError)(nil)
)
