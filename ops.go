package calculator

import "math"

// Assoc is the associativity of a binary operator.
type Assoc int8

const (
	// LeftAssoc groups repeated operators left to right: a-b-c = (a-b)-c.
	LeftAssoc Assoc = iota
	// RightAssoc groups repeated operators right to left: a^b^c = a^(b^c).
	RightAssoc
)

func (a Assoc) String() string {
	if a == RightAssoc {
		return "right"
	}
	return "left"
}

// Operator is a binary operator. Operators are only obtained from the
// package's fixed table and are never modified.
type Operator struct {
	symbol rune
	name   string
	prec   int
	assoc  Assoc
	apply  func(a, b float64) float64
}

// Symbol returns the rune that denotes the operator.
func (op *Operator) Symbol() rune {
	return op.symbol
}

// Name returns a descriptive name for the operator, e.g. "addition".
func (op *Operator) Name() string {
	return op.name
}

// Prec returns the operator's precedence. Higher is more binding.
func (op *Operator) Prec() int {
	return op.prec
}

// Assoc returns the operator's associativity.
func (op *Operator) Assoc() Assoc {
	return op.assoc
}

// Apply computes a op b. Division and exponentiation follow IEEE-754, so
// e.g. 1/0 is +Inf and 0/0 is NaN.
func (op *Operator) Apply(a, b float64) float64 {
	return op.apply(a, b)
}

// yields reports whether top, an operator already waiting on the parse stack,
// must be output before op is pushed.
func (op *Operator) yields(top *Operator) bool {
	if op.assoc == LeftAssoc {
		return op.prec <= top.prec
	}
	return op.prec < top.prec
}

var operators = [...]Operator{
	{'+', "addition", 1, LeftAssoc, func(a, b float64) float64 { return a + b }},
	{'-', "subtraction", 1, LeftAssoc, func(a, b float64) float64 { return a - b }},
	{'*', "multiplication", 2, LeftAssoc, func(a, b float64) float64 { return a * b }},
	{'/', "division", 2, LeftAssoc, func(a, b float64) float64 { return a / b }},
	{'^', "exponentiation", 3, RightAssoc, math.Pow},
}

// binop gets the binary operator for a rune, or nil if there is none.
func binop(r rune) *Operator {
	switch r {
	case '+':
		return &operators[0]
	case '-':
		return &operators[1]
	case '*':
		return &operators[2]
	case '/':
		return &operators[3]
	case '^':
		return &operators[4]
	default:
		return nil
	}
}

// LookupOperator returns the operator denoted by r.
func LookupOperator(r rune) (*Operator, bool) {
	op := binop(r)
	return op, op != nil
}

// Operators returns every operator in order of increasing precedence.
func Operators() []*Operator {
	r := make([]*Operator, len(operators))
	for i := range operators {
		r[i] = &operators[i]
	}
	return r
}
