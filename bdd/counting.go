// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bdd

// NoGate is the gate to which operations outside any gate are attributed.
const NoGate = -1

// Counting is an Engine which forwards to another one and counts the
// And, Or and Not operations, in total and per gate.  The current gate is
// set with Begin, typically as a compiler trace hook.
type Counting struct {
	Engine
	Ops    int
	ByGate map[int]int // operations per gate
	Begins map[int]int // calls to Begin per gate
	gate   int
}

// NewCounting returns a Counting engine over e.
func NewCounting(e Engine) *Counting {
	return &Counting{
		Engine: e,
		ByGate: make(map[int]int),
		Begins: make(map[int]int),
		gate:   NoGate,
	}
}

// Begin attributes the following operations to gate.
func (c *Counting) Begin(gate int) {
	c.gate = gate
	c.Begins[gate]++
}

func (c *Counting) count() {
	c.Ops++
	c.ByGate[c.gate]++
}

func (c *Counting) And(a, b Node) Node {
	c.count()
	return c.Engine.And(a, b)
}

func (c *Counting) Or(a, b Node) Node {
	c.count()
	return c.Engine.Or(a, b)
}

func (c *Counting) Not(a Node) Node {
	c.count()
	return c.Engine.Not(a)
}
