// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bdd is the boundary between the compilers and the decision
// diagram engine.
//
// The compilers only see the Engine interface.  Kernel implements it on top
// of a rudd BDD; Counting wraps any Engine and counts operations.
package bdd

import (
	"fmt"

	"github.com/dalzilio/rudd"
)

// Node is a handle on a canonical Boolean function owned by an Engine.
// Handles are cheap to copy.  Two handles denote the same function iff
// their Engine reports the same RootID for both.
type Node = rudd.Node

// Terminal node ids.
const (
	False = 0
	True  = 1
)

// Entry is one internal node of a dumped diagram: the node tests variable
// Var and continues to Low when it is false and High when it is true.
// Low and High are node ids or one of the terminals False and True.
type Entry struct {
	ID   int
	Var  int
	Low  int
	High int
}

func (e Entry) String() string {
	return fmt.Sprintf("[%d] %d: %d %d", e.ID, e.Var, e.Low, e.High)
}

// Engine encapsulates a reduced ordered decision diagram package.
//
// The composition operators canonicalize: the same logical function always
// yields a handle with the same RootID.  Operations which fail record an
// error retrievable with Err and return an unspecified handle.
type Engine interface {
	// Var returns the function which is true iff variable id is.
	Var(id int) Node
	True() Node
	False() Node
	And(a, b Node) Node
	Or(a, b Node) Node
	Not(a Node) Node

	// NodeCount returns the number of internal (non terminal) nodes
	// reachable from n.
	NodeCount(n Node) int

	// Dump returns the internal nodes reachable from n ordered by id.
	Dump(n Node) []Entry

	// RootID returns the id of the node of n.
	RootID(n Node) int

	// Err returns the first error met by the engine, if any.
	Err() error
}

// Ands returns the conjunction of ns, which is True for no arguments.
func Ands(e Engine, ns ...Node) Node {
	a := e.True()
	for _, n := range ns {
		a = e.And(a, n)
	}
	return a
}

// Ors returns the disjunction of ns, which is False for no arguments.
func Ors(e Engine, ns ...Node) Node {
	d := e.False()
	for _, n := range ns {
		d = e.Or(d, n)
	}
	return d
}

// Equiv returns a function equivalent to (a iff b).
func Equiv(e Engine, a, b Node) Node {
	return e.Or(e.And(a, b), e.And(e.Not(a), e.Not(b)))
}

// Equal reports whether a and b denote the same function.
func Equal(e Engine, a, b Node) bool {
	return e.RootID(a) == e.RootID(b)
}

// Lit returns the variable id as a positive or negative literal.
func Lit(e Engine, id int, pos bool) Node {
	v := e.Var(id)
	if pos {
		return v
	}
	return e.Not(v)
}
