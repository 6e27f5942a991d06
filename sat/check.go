// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sat

import (
	"math/big"

	"github.com/go-air/gini/z"

	"github.com/go-air/bddc/bdd"
)

// Check is the outcome of checking one diagram against its circuit.
type Check struct {
	Name    string
	Nodes   int
	Models  *big.Int // satisfying assignments of the diagram over all variables
	BDD     bool     // the diagram is not the constant false function
	SAT     bool     // the circuit function is satisfiable
	Witness bool     // a diagram model satisfies the circuit function
}

// OK reports whether the diagram and the circuit agree: both are
// unsatisfiable, or both are satisfiable and the diagram's model is one of
// the circuit's.
func (c Check) OK() bool {
	if c.BDD != c.SAT {
		return false
	}
	return !c.BDD || c.Witness
}

// Verify checks diagram n of k against circuit function m.
func (c *Circuit) Verify(k *bdd.Kernel, name string, n bdd.Node, m z.Lit) Check {
	res := Check{
		Name:   name,
		Nodes:  k.NodeCount(n),
		Models: k.SatCount(n),
		BDD:    k.RootID(n) != bdd.False,
		SAT:    c.Satisfiable(m),
	}
	if w, ok := k.Witness(n); ok {
		res.Witness = c.Eval(w, m)
	}
	return res
}
