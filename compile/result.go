// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package compile

import (
	"github.com/go-air/bddc/diag"
)

// Outputs returns the memo entries which no gate was built from, in
// insertion order.
func (c *Compiler) Outputs() []*Entry {
	var res []*Entry
	for _, e := range c.entries {
		if !e.Consumed {
			res = append(res, e)
		}
	}
	return res
}

// Largest returns the output with the most diagram nodes, the first one
// on ties.
func (c *Compiler) Largest() (*Entry, bool) {
	var best *Entry
	bestN := -1
	for _, e := range c.Outputs() {
		if n := c.eng.NodeCount(e.Node); n > bestN {
			best, bestN = e, n
		}
	}
	return best, best != nil
}

// Result returns the entries to export: the largest output in Direct
// mode, every output in Shared mode and the global function in
// Characteristic mode.
func (c *Compiler) Result() []*Entry {
	switch c.opts.Mode {
	case Shared:
		return c.Outputs()
	case Characteristic:
		if c.global == nil {
			return nil
		}
		return []*Entry{c.global}
	}
	if e, ok := c.Largest(); ok {
		return []*Entry{e}
	}
	return nil
}

// Declared returns an entry for each declared output of the netlist, in
// declaration order.  An output which is a primary input is its variable.
func (c *Compiler) Declared() ([]*Entry, error) {
	res := make([]*Entry, 0, len(c.net.Outputs))
	for _, nm := range c.net.Outputs {
		id, err := c.net.Vars.ID(nm)
		if err != nil {
			return nil, err
		}
		if e, ok := c.memo[id]; ok {
			res = append(res, e)
			continue
		}
		if !c.net.IsInput(id) {
			return nil, diag.New(diag.UndefinedSignal, nm, "declared output is not defined")
		}
		res = append(res, &Entry{ID: id, Name: nm, Node: c.eng.Var(id)})
	}
	return res, nil
}

// TotalNodes returns the sum of the node counts of es.
func (c *Compiler) TotalNodes(es []*Entry) int {
	n := 0
	for _, e := range es {
		n += c.eng.NodeCount(e.Node)
	}
	return n
}
