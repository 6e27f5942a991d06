// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package compile

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/go-air/bddc/bdd"
	"github.com/go-air/bddc/blif"
	"github.com/go-air/bddc/diag"
)

// Mode selects how gates are turned into functions.
type Mode int

const (
	// Direct compiles gates in file order over raw variables; a gate's
	// function is its row disjunction, negated for off-set gates.
	Direct Mode = iota
	// Characteristic compiles gates like Direct and conjoins, over all
	// gates, the equivalence of each gate's function with its output
	// variable.
	Characteristic
	// Shared compiles a gate after the gates it reads and builds it over
	// their functions, each gate at most once.
	Shared
)

var modeNames = [...]string{
	Direct:         "direct",
	Characteristic: "characteristic",
	Shared:         "shared",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode returns the mode named s.
func ParseMode(s string) (Mode, error) {
	for i, nm := range modeNames {
		if strings.EqualFold(s, nm) {
			return Mode(i), nil
		}
	}
	return Direct, fmt.Errorf("unknown mode %q, want one of %s", s, strings.Join(modeNames[:], ", "))
}

// Flat reports whether m compiles gates in file order without sharing.
func (m Mode) Flat() bool {
	return m != Shared
}

// Global is the id of the entry holding the result of Characteristic mode.
const Global = -1

// Entry is a memo table entry: the function compiled for the gate with
// output ID.  Consumed is set once another gate has been built from it.
type Entry struct {
	ID       int
	Name     string
	Node     bdd.Node
	Consumed bool
}

// Options control a Compiler.
type Options struct {
	Mode Mode
	Log  logrus.FieldLogger
	// Trace, if not nil, is called with a gate's output id right before
	// the gate's function is built.
	Trace func(gate int)
}

// Compiler builds the functions of the gates of a netlist with an Engine.
// A Compiler is used for one run and is not safe for concurrent use.
type Compiler struct {
	net  *blif.Netlist
	eng  bdd.Engine
	opts Options
	log  logrus.FieldLogger

	memo    map[int]*Entry
	entries []*Entry // memo in insertion order
	global  *Entry
	leaves  map[int]bool // undefined signals already reported

	Diags []error
}

// New creates a compiler for net over eng.  Variable ids of net must be
// valid variables of eng.
func New(net *blif.Netlist, eng bdd.Engine, opts Options) *Compiler {
	return &Compiler{
		net:    net,
		eng:    eng,
		opts:   opts,
		log:    diag.Logger(opts.Log).WithField("mode", opts.Mode.String()),
		memo:   make(map[int]*Entry, len(net.Gates)),
		leaves: make(map[int]bool),
	}
}

// Compile builds every gate of the netlist according to the mode.
func (c *Compiler) Compile() error {
	c.log.WithField("order", c.orderNames()).Debug("variable order")
	if c.opts.Mode.Flat() {
		c.flat()
	} else if err := c.shared(); err != nil {
		return err
	}
	if err := c.eng.Err(); err != nil {
		return err
	}
	c.log.WithField("constructs", c.Constructs()).Info("compiled")
	return nil
}

// Order returns the variable order hint for the mode: gate outputs before
// the signals they read, restricted to primary inputs in Direct mode.
func (c *Compiler) Order() []int {
	return c.net.Order(c.opts.Mode == Direct)
}

func (c *Compiler) orderNames() string {
	ids := c.Order()
	nms := make([]string, len(ids))
	for i, id := range ids {
		nms[i], _ = c.net.Vars.Name(id)
	}
	return strings.Join(nms, " ")
}

// Constructs returns the number of gates of the netlist.
func (c *Compiler) Constructs() int {
	return len(c.net.Gates)
}

func (c *Compiler) flat() {
	referenced := make(map[int]bool)
	if c.opts.Mode == Characteristic {
		c.global = &Entry{ID: Global, Name: c.net.Model, Node: c.eng.True()}
	}
	for _, g := range c.net.Gates {
		ins := make([]bdd.Node, len(g.Inputs))
		for i, id := range g.Inputs {
			ins[i] = c.eng.Var(id)
			referenced[id] = true
		}
		f := c.gate(g, ins)
		if c.opts.Mode == Characteristic {
			c.global.Node = c.eng.And(c.global.Node, bdd.Equiv(c.eng, f, c.eng.Var(g.Output)))
		}
	}
	for _, e := range c.entries {
		e.Consumed = referenced[e.ID]
	}
}

// gate builds the function of g given the functions of its inputs and
// records it in the memo table.
func (c *Compiler) gate(g *blif.Gate, ins []bdd.Node) bdd.Node {
	if c.opts.Trace != nil {
		c.opts.Trace(g.Output)
	}
	c.log.WithField("gate", g.Name).Debug("building")
	f := c.eng.False()
	if len(g.Rows) != 0 {
		f = c.rows(g, ins)
		if !g.Polarity() {
			f = c.eng.Not(f)
		}
	}
	c.record(g, f)
	return f
}

// rows returns the disjunction over the rows of g of the conjunction of
// the literals fixed by each row's pattern.  Missing positions and
// anything other than '0' and '1' are don't cares.
func (c *Compiler) rows(g *blif.Gate, ins []bdd.Node) bdd.Node {
	e := c.eng
	terms := make([]bdd.Node, 0, len(g.Rows))
	lits := make([]bdd.Node, 0, len(ins))
	for _, r := range g.Rows {
		lits = lits[:0]
		for i, in := range ins {
			if i >= len(r.Pattern) {
				break
			}
			switch r.Pattern[i] {
			case '1':
				lits = append(lits, in)
			case '0':
				lits = append(lits, e.Not(in))
			}
		}
		terms = append(terms, bdd.Ands(e, lits...))
	}
	return bdd.Ors(e, terms...)
}

func (c *Compiler) record(g *blif.Gate, f bdd.Node) {
	if e, ok := c.memo[g.Output]; ok {
		// redefinition of the output, the later gate wins
		e.Node = f
		return
	}
	e := &Entry{ID: g.Output, Name: g.Name, Node: f}
	c.memo[g.Output] = e
	c.entries = append(c.entries, e)
}

// Lookup returns the memo entry of the gate with output id.
func (c *Compiler) Lookup(id int) (*Entry, bool) {
	e, ok := c.memo[id]
	return e, ok
}

// Entries returns the memo table in insertion order.
func (c *Compiler) Entries() []*Entry {
	return c.entries
}
