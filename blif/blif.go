// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package blif

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/go-air/bddc/diag"
	"github.com/go-air/bddc/lex"
	"github.com/go-air/bddc/vars"
)

// Statement keywords.
const (
	Model   = ".model"
	Inputs  = ".inputs"
	Outputs = ".outputs"
	Names   = ".names"
	End     = ".end"
)

// Comment starts a comment line.
const Comment = "#"

// Row is one truth table row: an input pattern over '0', '1' and '-' and
// the output bit produced when the pattern matches.
type Row struct {
	Pattern string
	Out     bool
}

func (r Row) String() string {
	b := "0"
	if r.Out {
		b = "1"
	}
	if r.Pattern == "" {
		return b
	}
	return r.Pattern + " " + b
}

// Gate is the function defined by one .names statement.
type Gate struct {
	Name       string   // output name
	InputNames []string // input names, in order
	Output     int      // output variable id
	Inputs     []int    // input variable ids, in order
	Rows       []Row
}

// Polarity returns the output bit of the last row, which decides whether
// the rows describe the on-set (true) or the off-set (false) of g.  A gate
// without rows has false polarity.
func (g *Gate) Polarity() bool {
	if len(g.Rows) == 0 {
		return false
	}
	return g.Rows[len(g.Rows)-1].Out
}

func (g *Gate) String() string {
	return fmt.Sprintf("%s %s", Names, strings.Join(append(append([]string{}, g.InputNames...), g.Name), " "))
}

// Netlist is a parsed combinational netlist.
type Netlist struct {
	Model   string
	Inputs  []string // declared inputs, first declaration order
	Outputs []string // declared outputs, first declaration order
	Gates   []*Gate  // in file order
	Vars    *vars.Table
	Diags   []error // recovered problems

	byOutput map[int]*Gate
	inputs   map[int]bool
}

// Options control parsing.
type Options struct {
	Policy vars.Policy
	// Strict selects consistency-check mode: malformed rows, row length
	// mismatches, mixed output bits and duplicate gates abort parsing.
	Strict bool
	Log    logrus.FieldLogger
}

// Read tokenizes r and parses the result.
func Read(r io.Reader, opts Options) (*Netlist, error) {
	toks, err := lex.Tokenize(r, Comment)
	if err != nil {
		return nil, diag.Wrap(diag.IO, "netlist", err)
	}
	return Parse(toks, opts)
}

// ReadFile parses the netlist at path; see lex.ReadFile.
func ReadFile(path string, opts Options) (*Netlist, error) {
	toks, err := lex.ReadFile(path, Comment)
	if err != nil {
		return nil, err
	}
	return Parse(toks, opts)
}

// Gate returns the gate whose output has id, if any.
func (n *Netlist) Gate(id int) (*Gate, bool) {
	g, ok := n.byOutput[id]
	return g, ok
}

// IsInput reports whether id is a declared primary input.
func (n *Netlist) IsInput(id int) bool {
	return n.inputs[id]
}

// Deps returns the dependency graph: every gate output id mapped to its
// input ids, and every declared input mapped to nothing.
func (n *Netlist) Deps() map[int][]int {
	deps := make(map[int][]int, len(n.byOutput)+len(n.inputs))
	for id := range n.inputs {
		deps[id] = nil
	}
	for id, g := range n.byOutput {
		deps[id] = g.Inputs
	}
	return deps
}

// MustID returns the id of name, which must have been registered by Parse.
func (n *Netlist) MustID(name string) int {
	id, err := n.Vars.ID(name)
	if err != nil {
		panic(err)
	}
	return id
}
