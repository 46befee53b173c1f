package postfix

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// SolveBig evaluates the tree using arbitrary-precision arithmetic at prec
// bits. If prec is 0, the default is 64. The binding rules match Solve: the
// count is checked up front against the tree's Variable leaf count, and
// names during the walk. Unlike Solve, operations that would produce a NaN,
// which big floats cannot represent, fail with a *DomainError: 0/0, inf/inf,
// a remainder with zero or infinite dividend structure, and exponentiation
// of a negative base.
func (t *Tree) SolveBig(bindings map[string]*big.Float, prec uint) (*big.Float, error) {
	if prec == 0 {
		prec = 64
	}
	if len(bindings) < t.nvars {
		return nil, &ArityError{Want: t.nvars, Got: len(bindings)}
	}
	return t.root.solveBig(bindings, prec)
}

func (n *node) solveBig(bindings map[string]*big.Float, prec uint) (*big.Float, error) {
	switch n.tok.Kind {
	case Constant:
		r, _, err := new(big.Float).SetPrec(prec).Parse(n.tok.Text, 10)
		if err != nil {
			return nil, &InternalError{Msg: "constant " + strconv.Quote(n.tok.Text) + " is not a number"}
		}
		return r, nil
	case Variable:
		v := bindings[n.tok.Text]
		if v == nil {
			return nil, &MissingVariableError{Name: n.tok.Text}
		}
		return new(big.Float).SetPrec(prec).Set(v), nil
	case Add, Sub, Mult, Div, Pow, Rem:
		a, err := n.left.solveBig(bindings, prec)
		if err != nil {
			return nil, err
		}
		b, err := n.right.solveBig(bindings, prec)
		if err != nil {
			return nil, err
		}
		switch n.tok.Kind {
		case Add:
			return a.Add(a, b), nil
		case Sub:
			return a.Sub(a, b), nil
		case Mult:
			return a.Mul(a, b), nil
		case Div:
			// Guard against invalid divisions, 0/0 or inf/inf.
			if a.Sign() == 0 && b.Sign() == 0 || a.IsInf() && b.IsInf() {
				return nil, &DomainError{X: b, Op: "/"}
			}
			return a.Quo(a, b), nil
		case Pow:
			// Guard against invalid exponentiations, i.e. negative base.
			if a.Signbit() {
				return nil, &DomainError{X: a, Op: "^"}
			}
			return bigfloat.Pow(a, a, b), nil
		default: // Rem
			return bigmod(a, b)
		}
	default:
		return nil, &InternalError{Msg: "token " + n.tok.String() + " on a tree node"}
	}
}

// bigmod computes the floating-point remainder of a by b with the sign of a,
// the big.Float analogue of math.Mod. It modifies a.
func bigmod(a, b *big.Float) (*big.Float, error) {
	if b.Sign() == 0 || a.IsInf() {
		return nil, &DomainError{X: a, Op: "%"}
	}
	if b.IsInf() {
		return a, nil
	}
	q := new(big.Float).SetPrec(a.Prec()).Quo(a, b)
	// Int truncates toward zero, matching math.Mod.
	i, _ := q.Int(nil)
	q.SetInt(i)
	return a.Sub(a, q.Mul(q, b)), nil
}

// DomainError indicates an operand outside an operator's domain during
// arbitrary-precision evaluation, where there is no NaN to return.
type DomainError struct {
	// X is the offending operand.
	X *big.Float
	// Op is the operator's symbol.
	Op string
}

func (err *DomainError) Error() string {
	return "operator " + err.Op + " is undefined at " + err.X.String()
}
