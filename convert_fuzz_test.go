//go:build go1.18
// +build go1.18

package postfix_test

import (
	"testing"

	"github.com/zephyrtronium/postfix"
)

func FuzzConvert(f *testing.F) {
	f.Add("x")
	f.Add("(3+a)*2/(b-5)^2^3")
	f.Add("1+%$")
	f.Add("))((")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := postfix.Tokenize(s)
		if err != nil {
			t.Fatalf("non-strict tokenizing failed: %v", err)
		}
		seq, err := postfix.Convert(toks)
		if err != nil {
			return
		}
		for _, tok := range seq {
			if tok.Kind == postfix.OpenBracket || tok.Kind == postfix.ClosedBracket {
				t.Fatalf("bracket in converted sequence for %q: %v", s, seq)
			}
		}
		postfix.Build(seq)
	})
}
