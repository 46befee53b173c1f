package postfix

import "strconv"

// TokenizeOption is an option for tokenizing.
type TokenizeOption interface {
	lexOption(lexctx) lexctx
}

// lexctx holds the tokenizer configuration.
type lexctx struct {
	// strict rejects characters no scanning rule recognizes instead of
	// skipping them.
	strict bool
}

type strictopt struct{}

func (strictopt) lexOption(p lexctx) lexctx {
	p.strict = true
	return p
}

// Strict makes Tokenize fail with a *LexError when it encounters a character
// that no scanning rule recognizes. The default is to skip such characters
// silently. Whitespace is skipped in either mode.
func Strict() TokenizeOption {
	return strictopt{}
}

// Tokenize scans src into an ordered token sequence. A run of decimal digits
// forms one Constant token; a letter followed by any run of letters, digits,
// and underscores forms one Variable token; each of + - * / ^ % ( ) forms
// one operator or bracket token. Identifiers and digits are ASCII only.
// Whitespace separates tokens and is otherwise ignored. Any other character
// is skipped, or is a *LexError under the Strict option.
func Tokenize(src string, opts ...TokenizeOption) ([]Token, error) {
	var p lexctx
	for _, opt := range opts {
		p = opt.lexOption(p)
	}
	var toks []Token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case isSpace(c):
			i++
		case isDigit(c):
			j := i + 1
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			toks = append(toks, Token{Kind: Constant, Text: src[i:j], Pos: i + 1})
			i = j
		case isLetter(c):
			j := i + 1
			for j < len(src) && (isLetter(src[j]) || isDigit(src[j]) || src[j] == '_') {
				j++
			}
			toks = append(toks, Token{Kind: Variable, Text: src[i:j], Pos: i + 1})
			i = j
		default:
			if k := symbolKind(c); k != None {
				toks = append(toks, Token{Kind: k, Pos: i + 1})
				i++
				break
			}
			if p.strict {
				// Conversion through []byte keeps the raw input byte, so a
				// non-ASCII byte quotes as a hex escape instead of mojibake.
				return nil, &LexError{Text: string([]byte{c}), Col: i + 1}
			}
			i++
		}
	}
	return toks, nil
}

// symbolKind returns the kind of a single-character operator or bracket, or
// None if c is not one.
func symbolKind(c byte) Kind {
	switch c {
	case '+':
		return Add
	case '-':
		return Sub
	case '*':
		return Mult
	case '/':
		return Div
	case '^':
		return Pow
	case '%':
		return Rem
	case '(':
		return OpenBracket
	case ')':
		return ClosedBracket
	default:
		return None
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// LexError indicates a character that no scanning rule recognizes. Tokenize
// returns it only under the Strict option. It implements InputError.
type LexError struct {
	// Text is the unrecognized input byte.
	Text string
	// Col is the 1-based byte column of the character.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unrecognized character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
