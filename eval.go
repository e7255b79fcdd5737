package calculator

import (
	"io"
	"strings"
)

// operand is a value on the evaluation stack along with the position of the
// token that produced it.
type operand struct {
	v   float64
	pos int
}

// Evaluate computes the value of a postfix sequence.
func Evaluate(p Postfix) (float64, error) {
	stack := make([]operand, 0, len(p))
	for _, tok := range p {
		switch tok.kind {
		case NumberToken:
			stack = append(stack, operand{tok.num, tok.pos})
		case OperatorToken:
			if len(stack) < 2 {
				return 0, &OperandError{Col: tok.pos, Operator: string(tok.op.symbol), Have: len(stack)}
			}
			// The value pushed last is the right operand.
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = operand{tok.op.Apply(l.v, r.v), l.pos}
		case FunctionToken:
			n := tok.fn.arity
			if len(stack) < n {
				return 0, &CallError{Col: tok.pos, Func: tok.fn.name, Arity: n, Have: len(stack)}
			}
			k := len(stack) - n
			args := make([]float64, n)
			for i, a := range stack[k:] {
				args[i] = a.v
			}
			stack = append(stack[:k], operand{tok.fn.Call(args), tok.pos})
		default:
			return 0, &PostfixError{Token: tok}
		}
	}
	switch len(stack) {
	case 0:
		return 0, &OperandError{}
	case 1:
		return stack[0].v, nil
	default:
		return 0, &ExtraOperandsError{Col: stack[1].pos, Count: len(stack)}
	}
}

// Eval is a shortcut for Evaluate(p).
func (p Postfix) Eval() (float64, error) {
	return Evaluate(p)
}

// Compile tokenizes and parses an expression into postfix order.
func Compile(src io.RuneScanner) (Postfix, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// Eval tokenizes, parses, and evaluates an expression. The first error from
// any stage is returned unchanged.
func Eval(src io.RuneScanner) (float64, error) {
	p, err := Compile(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(p)
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}
