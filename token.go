package postfix

import "strconv"

// Kind classifies a Token.
type Kind int8

const (
	// None is the zero Kind. It never appears in a token sequence produced by
	// Tokenize or Convert.
	None Kind = iota
	// Variable is a named value looked up in the bindings at solve time.
	Variable
	// Constant is an unsigned integer literal.
	Constant
	// Add through Rem are the binary operators.
	Add
	Sub
	Mult
	Div
	Pow
	Rem
	// OpenBracket and ClosedBracket group subexpressions. They appear only in
	// infix sequences; Convert consumes them and Build rejects them.
	OpenBracket
	ClosedBracket
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Variable:
		return "Variable"
	case Constant:
		return "Constant"
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mult:
		return "Mult"
	case Div:
		return "Div"
	case Pow:
		return "Pow"
	case Rem:
		return "Rem"
	case OpenBracket:
		return "OpenBracket"
	case ClosedBracket:
		return "ClosedBracket"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Symbol returns the source character for an operator or bracket kind, or
// the empty string for any other kind.
func (k Kind) Symbol() string {
	switch k {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mult:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Rem:
		return "%"
	case OpenBracket:
		return "("
	case ClosedBracket:
		return ")"
	default:
		return ""
	}
}

// IsOperator reports whether k is one of the six binary operator kinds.
func (k Kind) IsOperator() bool {
	switch k {
	case Add, Sub, Mult, Div, Pow, Rem:
		return true
	default:
		return false
	}
}

// precedence returns the binding strength of an operator kind. Higher binds
// tighter. Panics if k is not an operator; Convert only queries kinds it has
// already matched as operators, so reaching the panic indicates a defect
// there, not bad input.
func precedence(k Kind) int8 {
	switch k {
	case Add, Sub:
		return 1
	case Mult, Div, Rem:
		return 2
	case Pow:
		return 3
	default:
		panic("postfix: no precedence for " + k.String())
	}
}

// Token is one lexical element of an expression. A Token is an immutable
// value; Text is set only for Variable and Constant kinds, and operators and
// brackets are identified by Kind alone.
type Token struct {
	Kind Kind
	Text string
	// Pos is the 1-based byte column of the token in the source text. Byte
	// and character columns agree for the ASCII input the scanning rules
	// recognize.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}
