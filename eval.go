package postfix

import (
	"math"
	"strconv"
)

// Solve evaluates the tree against bindings, a map from variable name to
// value. bindings may be nil for a tree with no variables. Solve first
// checks that the number of bindings is at least the tree's Variable leaf
// count and fails with an *ArityError otherwise; names are only checked as
// leaves are reached during the walk, where an absent name fails with a
// *MissingVariableError. Arithmetic follows float64 semantics throughout,
// so division by zero yields an infinity or NaN rather than an error.
// Solve never modifies the tree or the bindings.
func (t *Tree) Solve(bindings map[string]float64) (float64, error) {
	if len(bindings) < t.nvars {
		return 0, &ArityError{Want: t.nvars, Got: len(bindings)}
	}
	return t.root.solve(bindings)
}

// solve evaluates the subtree rooted at n in post order.
func (n *node) solve(bindings map[string]float64) (float64, error) {
	switch n.tok.Kind {
	case Constant:
		v, err := strconv.ParseFloat(n.tok.Text, 64)
		if err != nil {
			return 0, &InternalError{Msg: "constant " + strconv.Quote(n.tok.Text) + " is not a number"}
		}
		return v, nil
	case Variable:
		v, ok := bindings[n.tok.Text]
		if !ok {
			return 0, &MissingVariableError{Name: n.tok.Text}
		}
		return v, nil
	case Add, Sub, Mult, Div, Pow, Rem:
		a, err := n.left.solve(bindings)
		if err != nil {
			return 0, err
		}
		b, err := n.right.solve(bindings)
		if err != nil {
			return 0, err
		}
		switch n.tok.Kind {
		case Add:
			return a + b, nil
		case Sub:
			return a - b, nil
		case Mult:
			return a * b, nil
		case Div:
			return a / b, nil
		case Pow:
			return math.Pow(a, b), nil
		default: // Rem
			return math.Mod(a, b), nil
		}
	default:
		return 0, &InternalError{Msg: "token " + n.tok.String() + " on a tree node"}
	}
}

// Eval is a shortcut to tokenize, convert, build, and solve an expression.
func Eval(src string, bindings map[string]float64) (float64, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	seq, err := Convert(toks)
	if err != nil {
		return 0, err
	}
	t, err := Build(seq)
	if err != nil {
		return 0, err
	}
	return t.Solve(bindings)
}

// MissingVariableError is an error from a lookup for a variable that is
// absent from the bindings at solve time.
type MissingVariableError struct {
	// Name is the name that was missing.
	Name string
}

func (err *MissingVariableError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// ArityError indicates that fewer bindings were supplied than the tree has
// Variable leaves. The check counts entries only; a map of the right size
// with the wrong names passes and surfaces a *MissingVariableError during
// the walk instead.
type ArityError struct {
	// Want is the tree's Variable leaf count.
	Want int
	// Got is the number of bindings supplied.
	Got int
}

func (err *ArityError) Error() string {
	return "not enough bindings: expression has " + strconv.Itoa(err.Want) +
		" variable uses, got " + strconv.Itoa(err.Got)
}
