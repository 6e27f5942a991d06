// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sat

import (
	"io"

	"github.com/go-air/gini/logic/aiger"
	"github.com/go-air/gini/z"
)

// Output is a named circuit function.
type Output struct {
	Name string
	Lit  z.Lit
}

// Outputs returns the functions of the gates with output ids, named after
// their variables.  Ids without a gate are skipped.
func (c *Circuit) Outputs(ids ...int) []Output {
	res := make([]Output, 0, len(ids))
	for _, id := range ids {
		if m, ok := c.lits[id]; ok {
			res = append(res, Output{Name: c.names[id], Lit: m})
		}
	}
	return res
}

// WriteAiger writes c in ascii aiger format with outputs outs.  Inputs
// are named after their variables.
func (c *Circuit) WriteAiger(w io.Writer, outs []Output) error {
	ms := make([]z.Lit, len(outs))
	for i, o := range outs {
		ms[i] = o.Lit
	}
	t := aiger.MakeFor(c.S, ms...)
	byVar := make(map[z.Var]int, len(c.inputs))
	for id, m := range c.inputs {
		byVar[m.Var()] = id
	}
	for i, m := range t.Inputs {
		nm, ok := c.names[byVar[m.Var()]]
		if !ok || nm == "" {
			continue
		}
		if err := t.NameInput(i, nm); err != nil {
			return err
		}
	}
	for i, o := range outs {
		if o.Name == "" {
			continue
		}
		if err := t.NameOutput(i, o.Name); err != nil {
			return err
		}
	}
	return t.WriteAscii(w)
}
