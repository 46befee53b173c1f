package postfix_test

import (
	"math/big"
	"testing"

	"github.com/zephyrtronium/postfix"
)

func TestSolveBig(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		bindings map[string]*big.Float
		want     float64
	}{
		{"num", "1", nil, 1},
		{"add", "4+5+6", nil, 15},
		{"sub", "4-5-6", nil, -7},
		{"mul", "4*5*6", nil, 120},
		{"div", "1/8", nil, 0.125},
		{"rem", "7%3", nil, 1},
		{"rem-chain", "17%7%3", nil, 0},
		{"pow-left", "2^3^2", nil, 64},
		{"vars", "(3+a)*2/(b-5)^2^3", map[string]*big.Float{
			"a": big.NewFloat(4),
			"b": big.NewFloat(7),
		}, 0.21875},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree := mktree(t, c.src)
			r, err := tree.SolveBig(c.bindings, 64)
			if err != nil {
				t.Fatalf("solving %q: %v", c.src, err)
			}
			if want := big.NewFloat(c.want); r.Cmp(want) != 0 {
				t.Errorf("solving %q: want %g, got %g", c.src, want, r)
			}
		})
	}
}

func TestSolveBigPrecision(t *testing.T) {
	// 1/3 at 256 bits is closer to one third than float64 can be.
	tree := mktree(t, "1/3")
	r, err := tree.SolveBig(nil, 256)
	if err != nil {
		t.Fatal(err)
	}
	if r.Prec() != 256 {
		t.Errorf("result precision is %d, want 256", r.Prec())
	}
	third := new(big.Float).SetPrec(256).Quo(big.NewFloat(1), big.NewFloat(3))
	if r.Cmp(third) != 0 {
		t.Errorf("want %g, got %g", third, r)
	}
	coarse := big.NewFloat(1.0 / 3.0)
	if r.Cmp(coarse) == 0 {
		t.Error("256-bit result is no better than float64")
	}
}

func TestSolveBigDomain(t *testing.T) {
	cases := []struct {
		name string
		src  string
		op   string
	}{
		{"div-zero-zero", "0/0", "/"},
		{"rem-zero", "7%0", "%"},
		{"pow-neg-base", "(0-1)^2", "^"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree := mktree(t, c.src)
			r, err := tree.SolveBig(nil, 64)
			if err == nil {
				t.Fatalf("solving %q gave no error, result %g", c.src, r)
			}
			domain, ok := err.(*postfix.DomainError)
			if !ok {
				t.Fatalf("%#v is not *postfix.DomainError", err)
			}
			if domain.Op != c.op {
				t.Errorf("solving %q: error names operator %q, want %q", c.src, domain.Op, c.op)
			}
		})
	}
}

func TestSolveBigBindings(t *testing.T) {
	tree := mktree(t, "x+x")
	if _, err := tree.SolveBig(map[string]*big.Float{"x": big.NewFloat(1)}, 64); err == nil {
		t.Error("one binding for two leaves gave no error")
	} else if _, ok := err.(*postfix.ArityError); !ok {
		t.Errorf("%#v is not *postfix.ArityError", err)
	}
	vars := map[string]*big.Float{"y": big.NewFloat(1), "z": big.NewFloat(2)}
	if _, err := tree.SolveBig(vars, 64); err == nil {
		t.Error("wrong names gave no error")
	} else if _, ok := err.(*postfix.MissingVariableError); !ok {
		t.Errorf("%#v is not *postfix.MissingVariableError", err)
	}
}

func TestSolveBigDefaultPrec(t *testing.T) {
	tree := mktree(t, "2^3^2")
	r, err := tree.SolveBig(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.Prec() != 64 {
		t.Errorf("result precision is %d, want the default 64", r.Prec())
	}
	if f, _ := r.Float64(); f != 64 {
		t.Errorf("want 64, got %g", f)
	}
}
