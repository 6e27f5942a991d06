// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sat mirrors netlists and clause lists as and-inverter circuits
// and checks compiled decision diagrams against them with the gini SAT
// solver.
package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/go-air/bddc/blif"
	"github.com/go-air/bddc/compile"
	"github.com/go-air/bddc/dimacs"
)

// Circuit is a strashed and-inverter circuit over one input per diagram
// variable.
type Circuit struct {
	S      *logic.S
	inputs map[int]z.Lit // variable id to input
	lits   map[int]z.Lit // gate output id to function
	global z.Lit
	names  map[int]string
}

func newCircuit(capHint int) *Circuit {
	return &Circuit{
		S:      logic.NewSCap(capHint),
		inputs: make(map[int]z.Lit),
		lits:   make(map[int]z.Lit),
		global: z.LitNull,
		names:  make(map[int]string),
	}
}

// input returns the input of variable id, creating it if needed.
func (c *Circuit) input(id int) z.Lit {
	m, ok := c.inputs[id]
	if !ok {
		m = c.S.Lit()
		c.inputs[id] = m
	}
	return m
}

// FromNetlist builds the circuit computing the functions the compiler
// builds for net in mode.
func FromNetlist(net *blif.Netlist, mode compile.Mode) (*Circuit, error) {
	c := newCircuit(2*len(net.Gates) + net.Vars.Len() + 2)
	for _, v := range net.Vars.Vars() {
		c.names[v.ID] = v.Name
	}
	if mode == compile.Shared {
		ids, err := net.Topo()
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			g, ok := net.Gate(id)
			if !ok {
				c.input(id)
				continue
			}
			ins := make([]z.Lit, len(g.Inputs))
			for i, in := range g.Inputs {
				if m, ok := c.lits[in]; ok && !net.IsInput(in) {
					ins[i] = m
				} else {
					ins[i] = c.input(in)
				}
			}
			c.lits[id] = c.gate(g, ins)
		}
		return c, nil
	}
	if mode == compile.Characteristic {
		c.global = c.S.T
	}
	for _, g := range net.Gates {
		ins := make([]z.Lit, len(g.Inputs))
		for i, in := range g.Inputs {
			ins[i] = c.input(in)
		}
		f := c.gate(g, ins)
		c.lits[g.Output] = f
		if mode == compile.Characteristic {
			eq := c.S.Xor(f, c.input(g.Output)).Not()
			c.global = c.S.And(c.global, eq)
		}
	}
	return c, nil
}

// gate mirrors the row disjunction of g over ins.
func (c *Circuit) gate(g *blif.Gate, ins []z.Lit) z.Lit {
	if len(g.Rows) == 0 {
		return c.S.F
	}
	d := c.S.F
	for _, r := range g.Rows {
		t := c.S.T
		for i, in := range ins {
			if i >= len(r.Pattern) {
				break
			}
			switch r.Pattern[i] {
			case '1':
				t = c.S.And(t, in)
			case '0':
				t = c.S.And(t, in.Not())
			}
		}
		d = c.S.Or(d, t)
	}
	if !g.Polarity() {
		d = d.Not()
	}
	return d
}

// FromFormula builds the circuit of a clause list.  Its global function
// is the formula.
func FromFormula(f *dimacs.Formula) *Circuit {
	c := newCircuit(2*len(f.Clauses) + f.Vars + 2)
	for v := 0; v < f.Vars; v++ {
		c.input(v)
	}
	lit := func(m z.Lit) z.Lit {
		in := c.input(dimacs.Var(m))
		if m.IsPos() {
			return in
		}
		return in.Not()
	}
	ms := make([]z.Lit, 0, 8)
	cls := make([]z.Lit, 0, len(f.Clauses))
	for _, cl := range f.Clauses {
		ms = ms[:0]
		for _, m := range cl {
			ms = append(ms, lit(m))
		}
		if f.Kind == dimacs.DNF {
			cls = append(cls, c.S.Ands(ms...))
		} else {
			cls = append(cls, c.S.Ors(ms...))
		}
	}
	if f.Kind == dimacs.DNF {
		c.global = c.S.Ors(cls...)
	} else {
		c.global = c.S.Ands(cls...)
	}
	return c
}

// Lit returns the function of the gate with output id.
func (c *Circuit) Lit(id int) (z.Lit, bool) {
	m, ok := c.lits[id]
	return m, ok
}

// Input returns the input of variable id.
func (c *Circuit) Input(id int) (z.Lit, bool) {
	m, ok := c.inputs[id]
	return m, ok
}

// Global returns the function of a clause list, or of the characteristic
// conjunction of a netlist; z.LitNull otherwise.
func (c *Circuit) Global() z.Lit {
	return c.global
}

// Satisfiable reports whether some input assignment makes m true.
func (c *Circuit) Satisfiable(m z.Lit) bool {
	g := gini.New()
	c.S.ToCnfFrom(g, m)
	g.Add(m)
	g.Add(0)
	return g.Solve() == 1
}

// Eval returns the value of m when each variable id with an input takes
// the value vs[id], or false if vs is too short.
func (c *Circuit) Eval(vs []bool, m z.Lit) bool {
	vals := make([]bool, c.S.Len())
	for id, in := range c.inputs {
		if id < len(vs) {
			vals[in.Var()] = vs[id]
		}
	}
	c.S.Eval(vals)
	v := vals[m.Var()]
	if !m.IsPos() {
		v = !v
	}
	return v
}
