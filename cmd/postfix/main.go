package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/zephyrtronium/postfix"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		given        = make(map[string]float64)
		echo, strict bool
		prec         int
	)
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(d[1]), 64)
		if err != nil {
			return err
		}
		given[strings.TrimSpace(d[0])] = v
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.IntVar(&prec, "p", 0, "evaluate at this precision in bits instead of float64")
	flag.BoolVar(&echo, "echo", false, "print postfix and tree forms")
	flag.BoolVar(&strict, "strict", false, "reject unrecognized characters instead of skipping them")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	exprs := flag.Args()
	if f := infile(inname, len(exprs) == 0); f != nil {
		scan := bufio.NewScanner(f)
		for scan.Scan() {
			if s := strings.TrimSpace(scan.Text()); s != "" {
				exprs = append(exprs, s)
			}
		}
		if err := scan.Err(); err != nil {
			log.Fatal(err)
		}
	}

	var biggiven map[string]*big.Float
	if prec > 0 {
		biggiven = make(map[string]*big.Float, len(given))
		for k, v := range given {
			biggiven[k] = new(big.Float).SetPrec(uint(prec)).SetFloat64(v)
		}
	}

	var opts []postfix.TokenizeOption
	if strict {
		opts = append(opts, postfix.Strict())
	}
	verb += "\n"
	for _, src := range exprs {
		toks, err := postfix.Tokenize(src, opts...)
		if err != nil {
			log.Fatal(err)
		}
		seq, err := postfix.Convert(toks)
		if err != nil {
			log.Fatal(err)
		}
		tree, err := postfix.Build(seq)
		if err != nil {
			log.Fatal(err)
		}
		if echo {
			fmt.Printf("%s : %v : ", fmtseq(seq), tree)
		}
		if prec > 0 {
			r, err := tree.SolveBig(biggiven, uint(prec))
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf(verb, r)
		} else {
			r, err := tree.Solve(given)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf(verb, r)
		}
	}
}

// fmtseq renders a token sequence as source text separated by spaces.
func fmtseq(toks []postfix.Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		if tok.Text != "" {
			b.WriteString(tok.Text)
		} else {
			b.WriteString(tok.Kind.Symbol())
		}
	}
	return b.String()
}

func infile(inname string, std bool) *os.File {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		return f
	case inname == "-", std:
		return os.Stdin
	}
	return nil
}
