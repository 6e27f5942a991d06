// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bdd

import (
	"errors"
	"math/big"
	"sort"

	"github.com/dalzilio/rudd"

	"github.com/go-air/bddc/diag"
)

// Default sizes of a Kernel's tables.
const (
	DefaultNodeSize  = 10000
	DefaultCacheSize = 10000
)

// Sizes hints the initial table sizes of a Kernel.  Zero values select the
// defaults.
type Sizes struct {
	NodeSize  int
	CacheSize int
}

// Kernel is an Engine over a fixed number of variables, backed by rudd.
type Kernel struct {
	b   *rudd.BDD
	err error
}

// NewKernel creates a kernel with variables 0..varnum-1.  At least one
// variable is always created.
func NewKernel(varnum int, sz Sizes) (*Kernel, error) {
	if varnum < 1 {
		varnum = 1
	}
	if sz.NodeSize <= 0 {
		sz.NodeSize = DefaultNodeSize
	}
	if sz.CacheSize <= 0 {
		sz.CacheSize = DefaultCacheSize
	}
	b, err := rudd.New(varnum, rudd.Nodesize(sz.NodeSize), rudd.Cachesize(sz.CacheSize))
	if err != nil {
		return nil, diag.Wrap(diag.Engine, "rudd", err)
	}
	return &Kernel{b: b}, nil
}

// Varnum returns the number of variables of k.
func (k *Kernel) Varnum() int {
	return k.b.Varnum()
}

func (k *Kernel) check(n Node) Node {
	if k.err == nil {
		if msg := k.b.Error(); msg != "" {
			k.err = diag.Wrap(diag.Engine, "rudd", errors.New(msg))
		} else if n == nil {
			k.err = diag.New(diag.Engine, "rudd", "nil node")
		}
	}
	return n
}

func (k *Kernel) Var(id int) Node {
	if id < 0 || id >= k.b.Varnum() {
		if k.err == nil {
			k.err = diag.New(diag.Engine, "rudd", "variable %d out of range [0, %d)", id, k.b.Varnum())
		}
		return k.b.False()
	}
	return k.check(k.b.Ithvar(id))
}

func (k *Kernel) True() Node  { return k.b.True() }
func (k *Kernel) False() Node { return k.b.False() }

func (k *Kernel) And(a, b Node) Node {
	return k.check(k.b.Apply(a, b, rudd.OPand))
}

func (k *Kernel) Or(a, b Node) Node {
	return k.check(k.b.Apply(a, b, rudd.OPor))
}

func (k *Kernel) Not(a Node) Node {
	return k.check(k.b.Not(a))
}

func (k *Kernel) RootID(n Node) int {
	if n == nil {
		return -1
	}
	return *n
}

func (k *Kernel) NodeCount(n Node) int {
	c := 0
	k.walk(n, func(Entry) { c++ })
	return c
}

func (k *Kernel) Dump(n Node) []Entry {
	var es []Entry
	k.walk(n, func(e Entry) { es = append(es, e) })
	sort.Slice(es, func(i, j int) bool { return es[i].ID < es[j].ID })
	return es
}

func (k *Kernel) walk(n Node, f func(Entry)) {
	if n == nil {
		return
	}
	err := k.b.Allnodes(func(id, level, low, high int) error {
		if id > True {
			f(Entry{ID: id, Var: level, Low: low, High: high})
		}
		return nil
	}, n)
	if err != nil && k.err == nil {
		k.err = diag.Wrap(diag.Engine, "rudd", err)
	}
}

func (k *Kernel) Err() error {
	return k.err
}

// SatCount returns the number of assignments to all variables of k which
// satisfy n.
func (k *Kernel) SatCount(n Node) *big.Int {
	return k.b.Satcount(n)
}

// Witness returns one assignment satisfying n, indexed by variable, and
// true; or nil and false if n is the constant false function.  Variables
// which do not matter are false.
func (k *Kernel) Witness(n Node) ([]bool, bool) {
	var w []bool
	err := k.b.Allsat(func(prof []int) error {
		if w != nil {
			return nil
		}
		w = make([]bool, len(prof))
		for i, v := range prof {
			w[i] = v == 1
		}
		return nil
	}, n)
	if err != nil && k.err == nil {
		k.err = diag.Wrap(diag.Engine, "rudd", err)
	}
	return w, w != nil
}
