package postfix

import (
	"strconv"
	"strings"
)

// node is one operator or leaf in an expression tree. An operator node has
// exactly two children; a Constant or Variable node has none. Each node is
// owned by exactly one parent, so the structure is a strict binary tree.
type node struct {
	tok   Token
	left  *node
	right *node
}

// Tree is an immutable expression tree built from a postfix token sequence.
// A Tree may be solved repeatedly, including from concurrent goroutines,
// against distinct or shared bindings.
type Tree struct {
	root *node
	// nvars counts Variable leaves. Duplicate names count once per leaf.
	nvars int
	names []string
}

// Build constructs an expression tree from a postfix token sequence, such as
// one produced by Convert. Operands push nodes and each operator combines
// the top two, the first popped becoming its right child. A sequence that
// does not reduce to exactly one node fails with a *SyntaxError; a bracket
// kind in the input fails with a *InvalidTokenError.
func Build(postfix []Token) (*Tree, error) {
	var stack []*node
	nvars := 0
	var seen map[string]bool
	for _, tok := range postfix {
		switch tok.Kind {
		case Constant:
			stack = append(stack, &node{tok: tok})
		case Variable:
			stack = append(stack, &node{tok: tok})
			nvars++
			if seen == nil {
				seen = make(map[string]bool)
			}
			seen[tok.Text] = true
		case Add, Sub, Mult, Div, Pow, Rem:
			if len(stack) < 2 {
				return nil, &SyntaxError{Col: tok.Pos, Msg: "operator " + tok.Kind.Symbol() + " is missing an operand"}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, &node{tok: tok, left: left, right: right})
		case OpenBracket, ClosedBracket:
			return nil, &InvalidTokenError{Col: tok.Pos, Token: tok.Kind.Symbol()}
		default:
			panic("postfix: unknown token: " + tok.String())
		}
	}
	switch len(stack) {
	case 0:
		return nil, &SyntaxError{Msg: "no expression"}
	case 1:
		t := &Tree{root: stack[0], nvars: nvars, names: make([]string, 0, len(seen))}
		for k := range seen {
			t.names = append(t.names, k)
		}
		sortstrs(t.names)
		return t, nil
	default:
		return nil, &SyntaxError{
			Col: stack[1].tok.Pos,
			Msg: "expression reduces to " + strconv.Itoa(len(stack)) + " terms instead of one",
		}
	}
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// Vars returns the distinct variable names in the tree, sorted.
func (t *Tree) Vars() []string {
	return append(([]string)(nil), t.names...)
}

// NumVars returns the number of Variable leaves in the tree. A name used
// more than once counts once per leaf; Solve requires at least this many
// bindings regardless of coverage.
func (t *Tree) NumVars() int {
	return t.nvars
}

// String creates a fully parenthesized infix rendering of the tree.
func (t *Tree) String() string {
	var b strings.Builder
	t.root.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.tok.Kind {
	case Constant, Variable:
		b.WriteString(n.tok.Text)
	case Add, Sub, Mult, Div, Pow, Rem:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.tok.Kind.Symbol())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	}
}
