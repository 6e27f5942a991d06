// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package blif

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/go-air/bddc/diag"
)

func names(t *testing.T, n *Netlist, ids []int) []string {
	t.Helper()
	res := make([]string, len(ids))
	for i, id := range ids {
		nm, err := n.Vars.Name(id)
		require.NoError(t, err)
		res[i] = nm
	}
	return res
}

func TestRoots(t *testing.T) {
	n := read(t, adder, Options{})
	require.Equal(t, []string{"cout", "s"}, names(t, n, n.Roots()))
}

func TestOrder(t *testing.T) {
	n := read(t, adder, Options{})
	// roots cout (id 3) then s (id 4); pre-order over each gate's inputs
	require.Equal(t, []string{"cout", "a", "b", "cin", "s", "t"}, names(t, n, n.Order(false)))
	require.Equal(t, []string{"a", "b", "cin"}, names(t, n, n.Order(true)))
}

func TestOrderSharedSubgraph(t *testing.T) {
	src := `.inputs x y
.names x y g
11 1
.names g x o1
11 1
.names y g o2
11 1
`
	n := read(t, src, Options{})
	order := n.Order(false)
	require.Equal(t, []string{"o1", "g", "x", "y", "o2"}, names(t, n, order))
	require.Equal(t, []string{"x", "y"}, names(t, n, n.Order(true)))
}

func TestTopo(t *testing.T) {
	n := read(t, adder, Options{})
	ids, err := n.Topo()
	require.NoError(t, err)
	pos := map[string]int{}
	for i, nm := range names(t, n, ids) {
		pos[nm] = i
	}
	require.Len(t, pos, 6)
	for _, g := range n.Gates {
		for _, in := range g.InputNames {
			require.Less(t, pos[in], pos[g.Name], "%s before %s", in, g.Name)
		}
	}
}

func TestTopoCycle(t *testing.T) {
	src := ".inputs a\n.names a y x\n11 1\n.names x y\n1 1\n"
	n := read(t, src, Options{})
	_, err := n.Topo()
	require.True(t, errors.Is(err, diag.ErrCyclicDependency))
	require.Contains(t, err.Error(), "{x y}")

	n = read(t, ".names s s\n1 1\n", Options{})
	_, err = n.Topo()
	require.True(t, errors.Is(err, diag.ErrCyclicDependency))
}
