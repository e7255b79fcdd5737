package calculator

// Parse reorders infix tokens into postfix order using the shunting yard
// algorithm. Functions bind to the parenthesized group that follows them.
//
// Among operators of equal precedence, left-associative ones are output as
// soon as the next operator arrives, so 10-2-3 becomes "10 2 - 3 -", while
// right-associative ones wait, so 2^3^2 becomes "2 3 2 ^ ^".
//
// Parse panics if tokens contains a zero Token.
func Parse(tokens []Token) (Postfix, error) {
	out := make(Postfix, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.kind {
		case NumberToken:
			out = append(out, tok)
		case FunctionToken:
			stack = append(stack, tok)
		case OperatorToken:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != FunctionToken && (top.kind != OperatorToken || !tok.op.yields(top.op)) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case ParenToken:
			if tok.left {
				stack = append(stack, tok)
				continue
			}
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.pos, Right: ")"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == ParenToken {
					break
				}
				out = append(out, top)
			}
			// A function waiting on the group it names is complete now.
			if len(stack) > 0 && stack[len(stack)-1].kind == FunctionToken {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		default:
			panic("calculator: invalid token kind " + tok.kind.String() + " in parse")
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == ParenToken {
			return nil, &BracketError{Col: top.pos, Left: "("}
		}
		out = append(out, top)
	}
	return out, nil
}
