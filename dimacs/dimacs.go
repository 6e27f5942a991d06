// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package dimacs reads clause lists in dimacs format, as conjunctions of
// clauses (cnf) or disjunctions of cubes (dnf), and compiles them to
// decision diagrams.
//
// The input is a problem line 'p cnf N M' or 'p dnf N M' followed by M
// clauses of non-zero literals over variables 1..N, each terminated by 0.
// Lines starting with 'c' are comments.  A '%' token ends the input, as in
// the SATLIB benchmarks.
package dimacs

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/go-air/bddc/bdd"
	"github.com/go-air/bddc/diag"
	"github.com/go-air/bddc/lex"
)

// Comment starts a comment line.
const Comment = "c"

// Problem line tokens.
const (
	Problem = "p"
	Stop    = "%"
)

// Kind tells how clauses and literals combine.
type Kind int

const (
	// CNF clauses are disjunctions of literals, and the formula is their
	// conjunction.
	CNF Kind = iota
	// DNF clauses are conjunctions of literals, and the formula is their
	// disjunction.
	DNF
)

func (k Kind) String() string {
	if k == DNF {
		return "dnf"
	}
	return "cnf"
}

// Formula is a parsed clause list.  Literals are gini literals: dimacs
// variable v is z.Var(v) and diagram variable v-1.
type Formula struct {
	Kind     Kind
	Vars     int // variables declared by the problem line
	Declared int // clauses declared by the problem line
	Clauses  [][]z.Lit
	Diags    []error
}

// Options control parsing.
type Options struct {
	// Strict makes a clause count which differs from the declared one
	// an error.
	Strict bool
	Log    logrus.FieldLogger
}

// Read tokenizes r and parses the result.
func Read(r io.Reader, opts Options) (*Formula, error) {
	toks, err := lex.Tokenize(r, Comment)
	if err != nil {
		return nil, diag.Wrap(diag.IO, "clause list", err)
	}
	return Parse(toks, opts)
}

// ReadFile parses the clause list at path; see lex.ReadFile.
func ReadFile(path string, opts Options) (*Formula, error) {
	toks, err := lex.ReadFile(path, Comment)
	if err != nil {
		return nil, err
	}
	return Parse(toks, opts)
}

// Parse builds a Formula from tokens as produced by lex.Tokenize.
func Parse(toks []string, opts Options) (*Formula, error) {
	cur := lex.NewCursor(toks)
	f, err := preamble(cur)
	if err != nil {
		return nil, err
	}
	if err := f.clauses(cur); err != nil {
		return nil, err
	}
	if len(f.Clauses) != f.Declared {
		err := diag.New(diag.ClauseCount, Problem, "declared %d clauses, read %d", f.Declared, len(f.Clauses))
		if opts.Strict {
			return nil, err
		}
		diag.Logger(opts.Log).WithFields(logrus.Fields{
			"declared": f.Declared,
			"read":     len(f.Clauses),
		}).Warn(err)
		f.Diags = append(f.Diags, err)
	}
	return f, nil
}

func preamble(cur *lex.Cursor) (*Formula, error) {
	cur.SkipNewlines()
	line := cur.Line()
	if len(line) != 4 || line[0] != Problem {
		return nil, diag.New(diag.MalformedPreamble, strings.Join(line, " "), "want 'p cnf|dnf <vars> <clauses>'")
	}
	f := &Formula{}
	switch line[1] {
	case "cnf":
		f.Kind = CNF
	case "dnf":
		f.Kind = DNF
	default:
		return nil, diag.New(diag.MalformedPreamble, line[1], "unknown format")
	}
	var err error
	if f.Vars, err = count(line[2]); err != nil {
		return nil, err
	}
	if f.Declared, err = count(line[3]); err != nil {
		return nil, err
	}
	return f, nil
}

func count(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, diag.New(diag.MalformedPreamble, tok, "not a count")
	}
	return n, nil
}

func (f *Formula) clauses(cur *lex.Cursor) error {
	var cls []z.Lit
	for {
		tok, ok := cur.Next()
		if !ok || tok == Stop {
			break
		}
		if tok == lex.Newline {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return diag.New(diag.MalformedClause, tok, "clause %d: not a literal", len(f.Clauses)+1)
		}
		if v == 0 {
			f.Clauses = append(f.Clauses, cls)
			cls = nil
			continue
		}
		if v > f.Vars || -v > f.Vars {
			return diag.New(diag.MalformedClause, tok, "clause %d: variable out of range 1..%d", len(f.Clauses)+1, f.Vars)
		}
		cls = append(cls, z.Dimacs2Lit(v))
	}
	if len(cls) != 0 {
		return diag.New(diag.MalformedClause, fmt.Sprint(cls), "clause %d: missing terminating 0", len(f.Clauses)+1)
	}
	return nil
}

// Var returns the diagram variable of m.
func Var(m z.Lit) int {
	return int(m.Var()) - 1
}

// Compile builds the function of f with e, whose variables must include
// 0..f.Vars-1.
func (f *Formula) Compile(e bdd.Engine) bdd.Node {
	if f.Kind == DNF {
		g := e.False()
		for _, c := range f.Clauses {
			t := e.True()
			for _, m := range c {
				t = e.And(t, bdd.Lit(e, Var(m), m.IsPos()))
			}
			g = e.Or(g, t)
		}
		return g
	}
	g := e.True()
	for _, c := range f.Clauses {
		d := e.False()
		for _, m := range c {
			d = e.Or(d, bdd.Lit(e, Var(m), m.IsPos()))
		}
		g = e.And(g, d)
	}
	return g
}
