// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package export serializes decision diagrams.
//
// A Diagram is the node table of one compiled function together with the
// variable names it ranges over.  It is written as a flat node list
// (abdd), as a tree automaton over the alphabet LH (vtf) or as a graphviz
// digraph (dot).  Node lists can be read back.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-air/bddc/bdd"
	"github.com/go-air/bddc/vars"
)

// Format selects a serialization.
type Format int

const (
	A   Format = iota // flat node list, @BDD
	B                 // tree automaton, @NTA
	Dot               // graphviz
)

var formatExts = [...]string{A: "abdd", B: "vtf", Dot: "dot"}

// Ext returns the file extension of f.
func (f Format) Ext() string {
	if f < 0 || int(f) >= len(formatExts) {
		return fmt.Sprintf("format%d", int(f))
	}
	return formatExts[f]
}

func (f Format) String() string {
	return f.Ext()
}

// ParseFormat returns the format whose extension is s.
func ParseFormat(s string) (Format, error) {
	for i, ext := range formatExts {
		if strings.EqualFold(strings.TrimPrefix(s, "."), ext) {
			return Format(i), nil
		}
	}
	return A, fmt.Errorf("unknown format %q, want one of %s", s, strings.Join(formatExts[:], ", "))
}

// Diagram is an exportable node table.
type Diagram struct {
	Name     string // may be empty
	Source   string // path of the compiled file
	VarCount int
	Vars     []vars.Var // name mapping by increasing id, may be empty
	Root     int
	Nodes    []bdd.Entry // by increasing id
}

// New dumps n from e.  VarCount is the number of variables in vs.
func New(e bdd.Engine, n bdd.Node, vs []vars.Var, name, source string) *Diagram {
	return &Diagram{
		Name:     name,
		Source:   source,
		VarCount: len(vs),
		Vars:     vs,
		Root:     e.RootID(n),
		Nodes:    e.Dump(n),
	}
}

// Write writes d to w in format f.
func (d *Diagram) Write(w io.Writer, f Format) error {
	switch f {
	case A:
		return d.WriteA(w)
	case B:
		return d.WriteB(w)
	case Dot:
		return d.WriteDot(w)
	}
	return fmt.Errorf("unknown format %d", int(f))
}

// States returns the internal node ids which d's nodes reference, in
// increasing order.
func (d *Diagram) States() []int {
	seen := make(map[int]bool, len(d.Nodes))
	for _, e := range d.Nodes {
		for _, id := range [...]int{e.ID, e.Low, e.High} {
			if id > bdd.True {
				seen[id] = true
			}
		}
	}
	res := make([]int, 0, len(seen))
	for id := range seen {
		res = append(res, id)
	}
	sort.Ints(res)
	return res
}

func (d *Diagram) mapping() string {
	var sb strings.Builder
	sb.WriteString("#")
	for _, v := range d.Vars {
		sb.WriteString(" ")
		sb.WriteString(v.String())
	}
	return sb.String()
}
