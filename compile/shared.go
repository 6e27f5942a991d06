// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package compile

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/go-air/bddc/bdd"
	"github.com/go-air/bddc/blif"
	"github.com/go-air/bddc/diag"
)

// visit marks
const (
	unseen byte = iota
	open
	closed
)

type frame struct {
	g    *blif.Gate
	next int // index of the next input to visit
}

func (c *Compiler) shared() error {
	marks := make(map[int]byte, len(c.net.Gates))
	for _, g := range c.net.Gates {
		// the last definition of a multiply defined output
		g, _ = c.net.Gate(g.Output)
		if err := c.post(g, marks); err != nil {
			return err
		}
	}
	return nil
}

// post builds root after every gate it transitively reads, in depth first
// post-order.  The walk keeps its own stack, so the depth of the netlist
// does not bound the native stack.
func (c *Compiler) post(root *blif.Gate, marks map[int]byte) error {
	if marks[root.Output] == closed {
		return nil
	}
	marks[root.Output] = open
	stack := []frame{{g: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.g.Inputs) {
			in := top.g.Inputs[top.next]
			top.next++
			if c.net.IsInput(in) {
				continue
			}
			dep, ok := c.net.Gate(in)
			if !ok {
				continue
			}
			switch marks[in] {
			case closed:
				continue
			case open:
				return c.cycle(stack, in)
			}
			marks[in] = open
			stack = append(stack, frame{g: dep})
			continue
		}
		g := top.g
		c.build(g)
		marks[g.Output] = closed
		stack = stack[:len(stack)-1]
	}
	return nil
}

// build compiles g, whose gate inputs are all in the memo table.  Primary
// inputs are leaves even when a gate also drives them.
func (c *Compiler) build(g *blif.Gate) {
	ins := make([]bdd.Node, len(g.Inputs))
	for i, id := range g.Inputs {
		if e, ok := c.memo[id]; ok && !c.net.IsInput(id) {
			e.Consumed = true
			ins[i] = e.Node
			continue
		}
		ins[i] = c.leaf(id, g)
	}
	c.gate(g, ins)
}

// leaf returns the variable of a signal which no gate defines.
func (c *Compiler) leaf(id int, reader *blif.Gate) bdd.Node {
	if !c.net.IsInput(id) && !c.leaves[id] {
		c.leaves[id] = true
		nm, _ := c.net.Vars.Name(id)
		err := diag.New(diag.UndefinedSignal, nm, "read by %s, compiled as a free variable", reader.Name)
		c.log.WithFields(logrus.Fields{"gate": reader.Name, "variable": nm}).Warn(err)
		c.Diags = append(c.Diags, err)
	}
	return c.eng.Var(id)
}

// cycle returns the error for reaching gate id again while it is on the
// stack.
func (c *Compiler) cycle(stack []frame, id int) error {
	var path []string
	on := false
	for _, f := range stack {
		if f.g.Output == id {
			on = true
		}
		if on {
			path = append(path, f.g.Name)
		}
	}
	nm, _ := c.net.Vars.Name(id)
	path = append(path, nm)
	return diag.New(diag.CyclicDependency, nm, "%s", strings.Join(path, " -> "))
}
