// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package blif

import (
	"errors"
	"sort"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/go-air/bddc/diag"
)

// Roots returns, in increasing order, the ids in the dependency graph which
// are not an input of any gate.
func (n *Netlist) Roots() []int {
	deps := n.Deps()
	used := make(map[int]bool)
	for _, ins := range deps {
		for _, in := range ins {
			used[in] = true
		}
	}
	ids := lo.Keys(deps)
	sort.Ints(ids)
	return lo.Filter(ids, func(id int, _ int) bool { return !used[id] })
}

// Order lists variable ids so that a gate output comes before the signals
// it depends on: a pre-order depth first walk from each root, visiting
// every id once.  If inputsOnly is set, only declared inputs are kept.
//
// The order is a heuristic for diagram variable ordering; it does not
// affect the compiled functions.
func (n *Netlist) Order(inputsOnly bool) []int {
	deps := n.Deps()
	visited := make(map[int]bool, len(deps))
	order := make([]int, 0, len(deps))
	var stack []int
	for _, root := range n.Roots() {
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[id] {
				continue
			}
			visited[id] = true
			order = append(order, id)
			ins := deps[id]
			for i := len(ins) - 1; i >= 0; i-- {
				if !visited[ins[i]] {
					stack = append(stack, ins[i])
				}
			}
		}
	}
	if inputsOnly {
		order = lo.Filter(order, func(id int, _ int) bool { return n.IsInput(id) })
	}
	return order
}

// Topo returns all variable ids with every gate input before the gate
// output, ties broken by id.  If the gates are cyclic, Topo returns a
// diag.CyclicDependency error naming the strongly connected components.
func (n *Netlist) Topo() ([]int, error) {
	g := simple.NewDirectedGraph()
	for _, v := range n.Vars.Vars() {
		g.AddNode(simple.Node(v.ID))
	}
	for _, gate := range n.byOutput {
		for _, in := range gate.Inputs {
			if in == gate.Output {
				return nil, diag.New(diag.CyclicDependency, gate.Name, "gate is its own input")
			}
			g.SetEdge(g.NewEdge(simple.Node(in), simple.Node(gate.Output)))
		}
	}
	sorted, err := topo.SortStabilized(g, func(ns []graph.Node) {
		sort.Slice(ns, func(i, j int) bool { return ns[i].ID() < ns[j].ID() })
	})
	if err != nil {
		var u topo.Unorderable
		if !errors.As(err, &u) {
			return nil, err
		}
		comps := make([]string, 0, len(u))
		subject := ""
		for _, comp := range u {
			names := make([]string, 0, len(comp))
			for _, nd := range comp {
				nm, _ := n.Vars.Name(int(nd.ID()))
				names = append(names, nm)
			}
			sort.Strings(names)
			if subject == "" {
				subject = names[0]
			}
			comps = append(comps, "{"+strings.Join(names, " ")+"}")
		}
		return nil, diag.New(diag.CyclicDependency, subject, "cycles through %s", strings.Join(comps, ", "))
	}
	ids := make([]int, len(sorted))
	for i, nd := range sorted {
		ids[i] = int(nd.ID())
	}
	return ids, nil
}
