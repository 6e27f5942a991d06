// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package blif

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/go-air/bddc/diag"
	"github.com/go-air/bddc/lex"
	"github.com/go-air/bddc/vars"
)

type parser struct {
	cur    *lex.Cursor
	strict bool
	log    logrus.FieldLogger
	net    *Netlist
	seenIn map[string]bool
	seenOu map[string]bool
}

// Parse builds a Netlist from netlist tokens as produced by lex.Tokenize.
//
// Parsing stops at .end or at the end of the tokens.  Recovered problems
// are logged and collected in the Diags of the result; in strict mode the
// structural ones are returned as errors instead.
func Parse(toks []string, opts Options) (*Netlist, error) {
	p := &parser{
		cur:    lex.NewCursor(toks),
		strict: opts.Strict,
		log:    diag.Logger(opts.Log),
		net: &Netlist{
			Vars:     vars.NewTable(opts.Policy, opts.Log),
			byOutput: make(map[int]*Gate),
			inputs:   make(map[int]bool),
		},
		seenIn: make(map[string]bool),
		seenOu: make(map[string]bool),
	}
	if err := p.statements(); err != nil {
		return nil, err
	}
	if err := p.resolve(); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p.net, nil
}

// report records a recovered problem, or returns it if fatal or of a kind
// which is never recovered.
func (p *parser) report(err *diag.Error, fatal bool) error {
	if fatal || !diag.Recoverable(err) {
		return err
	}
	p.log.WithFields(logrus.Fields{
		"kind":    err.Kind.String(),
		"subject": err.Subject,
	}).Warn(err.Detail)
	p.net.Diags = append(p.net.Diags, err)
	return nil
}

func (p *parser) statements() error {
	for {
		p.cur.SkipNewlines()
		tok, ok := p.cur.Next()
		if !ok {
			return nil
		}
		switch tok {
		case Model:
			if line := p.cur.Line(); len(line) > 0 {
				p.net.Model = line[0]
			}
		case Inputs:
			for _, nm := range p.cur.Line() {
				if !p.seenIn[nm] {
					p.seenIn[nm] = true
					p.net.Inputs = append(p.net.Inputs, nm)
				}
			}
		case Outputs:
			for _, nm := range p.cur.Line() {
				if !p.seenOu[nm] {
					p.seenOu[nm] = true
					p.net.Outputs = append(p.net.Outputs, nm)
				}
			}
		case Names:
			if err := p.names(); err != nil {
				return err
			}
		case End:
			return nil
		default:
			p.cur.Line()
			p.report(diag.New(diag.UnsupportedConstruct, tok, "statement skipped"), false)
		}
	}
}

func (p *parser) names() error {
	header := p.cur.Line()
	if len(header) == 0 {
		err := diag.New(diag.MalformedRow, Names, "no output name")
		if e := p.report(err, p.strict); e != nil {
			return e
		}
		p.skipRows()
		return nil
	}
	last := len(header) - 1
	g := &Gate{
		Name:       header[last],
		InputNames: append([]string(nil), header[:last]...),
	}
	for p.inRows() {
		row, err := p.row(g, p.cur.Line())
		if err != nil {
			return err
		}
		if row != nil {
			g.Rows = append(g.Rows, *row)
		}
	}
	p.net.Gates = append(p.net.Gates, g)
	return nil
}

// inRows reports whether the next token starts a truth table row rather
// than a statement.
func (p *parser) inRows() bool {
	tok, ok := p.cur.Peek()
	return ok && !strings.HasPrefix(tok, ".")
}

func (p *parser) skipRows() {
	for p.inRows() {
		p.cur.Line()
	}
}

// row parses one truth table line of g.  It returns a nil row when a
// recovered problem leaves nothing usable.
func (p *parser) row(g *Gate, line []string) (*Row, error) {
	var pat, bit string
	switch {
	case len(g.InputNames) == 0 && len(line) == 1:
		bit = line[0]
	case len(line) == 2:
		pat, bit = line[0], line[1]
	default:
		err := diag.New(diag.MalformedRow, g.Name, "row %q has %d fields", strings.Join(line, " "), len(line))
		if e := p.report(err, p.strict); e != nil {
			return nil, e
		}
		if len(line) < 2 {
			return nil, nil
		}
		pat, bit = line[0], line[1]
	}
	if i := strings.IndexFunc(pat, func(r rune) bool { return r != '0' && r != '1' && r != '-' }); i >= 0 {
		err := diag.New(diag.MalformedRow, g.Name, "pattern %q has %q at %d", pat, pat[i], i)
		if e := p.report(err, p.strict); e != nil {
			return nil, e
		}
	}
	if bit != "0" && bit != "1" {
		err := diag.New(diag.MalformedRow, g.Name, "output bit %q is not 0 or 1", bit)
		if e := p.report(err, p.strict); e != nil {
			return nil, e
		}
	}
	return &Row{Pattern: pat, Out: bit == "1"}, nil
}

func (p *parser) resolve() error {
	net := p.net
	names := make([]string, 0, len(net.Inputs)+len(net.Outputs)+2*len(net.Gates))
	names = append(names, net.Inputs...)
	names = append(names, net.Outputs...)
	for _, g := range net.Gates {
		names = append(names, g.Name)
		names = append(names, g.InputNames...)
	}
	if err := net.Vars.Register(names...); err != nil {
		return err
	}
	for _, nm := range net.Inputs {
		net.inputs[net.MustID(nm)] = true
	}
	for _, g := range net.Gates {
		g.Output = net.MustID(g.Name)
		g.Inputs = make([]int, len(g.InputNames))
		for i, nm := range g.InputNames {
			g.Inputs[i] = net.MustID(nm)
		}
		if _, dup := net.byOutput[g.Output]; dup {
			err := diag.New(diag.DuplicateGate, g.Name, "later definition replaces earlier one")
			if e := p.report(err, p.strict); e != nil {
				return e
			}
		}
		net.byOutput[g.Output] = g
	}
	return nil
}

func (p *parser) validate() error {
	for _, g := range p.net.Gates {
		for i, r := range g.Rows {
			if len(r.Pattern) != len(g.Inputs) {
				err := diag.New(diag.InconsistentRowLength, g.Name,
					"row %d %q has %d positions for %d inputs", i, r.Pattern, len(r.Pattern), len(g.Inputs))
				if e := p.report(err, p.strict); e != nil {
					return e
				}
			}
		}
		for i, r := range g.Rows {
			if r.Out != g.Rows[0].Out {
				err := diag.New(diag.InconsistentOutputBit, g.Name,
					"row %d disagrees with row 0 on the output bit", i)
				if e := p.report(err, p.strict); e != nil {
					return e
				}
				break
			}
		}
	}
	return nil
}
