package postfix

// Convert reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Operands keep their source order; each operator
// moves after its operand span. Every operator is left-associative: an
// operator on the stack with precedence at least that of the incoming
// operator is emitted first, so equal-precedence chains, including chains of
// ^, group strictly left to right. Mismatched brackets fail with a
// *SyntaxError.
//
// Convert does not check that operands and operators alternate sensibly;
// sequences like "a b" pass through unchanged and are rejected by Build.
func Convert(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var ops []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case Constant, Variable:
			out = append(out, tok)
		case OpenBracket:
			ops = append(ops, tok)
		case ClosedBracket:
			for {
				if len(ops) == 0 {
					return nil, &SyntaxError{Col: tok.Pos, Msg: "close bracket with no open bracket"}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == OpenBracket {
					break
				}
				out = append(out, top)
			}
		case Add, Sub, Mult, Div, Pow, Rem:
			p := precedence(tok.Kind)
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind == OpenBracket || precedence(top.Kind) < p {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			panic("postfix: unknown token: " + tok.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == OpenBracket {
			return nil, &SyntaxError{Col: top.Pos, Msg: "open bracket with no close bracket"}
		}
		out = append(out, top)
	}
	return out, nil
}
