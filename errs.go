package postfix

import "strconv"

// SyntaxError indicates a structurally malformed expression: unbalanced
// brackets during conversion, or a postfix sequence that does not reduce to
// exactly one tree during building. It implements InputError.
type SyntaxError struct {
	// Col is the 1-based column of the token at which the malformation was
	// detected, or 0 if it was detected at the end of the input.
	Col int
	// Msg describes the malformation.
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// InvalidTokenError indicates a token kind that must never reach a stage,
// i.e. a bracket kind in the input to Build. It implements InputError.
type InvalidTokenError struct {
	// Col is the 1-based column of the token.
	Col int
	// Token is the offending token's symbol.
	Token string
}

func (err *InvalidTokenError) Error() string {
	return errpos(err.Col, "bracket "+strconv.Quote(err.Token)+" in postfix sequence")
}

func (err *InvalidTokenError) Pos() int {
	return err.Col
}

// InternalError indicates an invariant violation inside an expression tree,
// such as a bracket kind on an interior node. It reports a defect in the
// stage that produced the tree, not in the caller's input; trees built by
// Build never produce one.
type InternalError struct {
	// Msg describes the violation.
	Msg string
}

func (err *InternalError) Error() string {
	return "internal: " + err.Msg
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos == 0 {
		return "at end: " + msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid expression text implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based byte column of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*InvalidTokenError)(nil)
)
