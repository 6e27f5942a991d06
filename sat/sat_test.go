// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/bddc/bdd"
	"github.com/go-air/bddc/blif"
	"github.com/go-air/bddc/compile"
	"github.com/go-air/bddc/diag"
	"github.com/go-air/bddc/dimacs"
)

const adder = `.model fa
.inputs a b cin
.outputs s cout
.names a b t
10 1
01 1
.names t cin s
10 1
01 1
.names a b cin cout
11- 1
1-1 1
-11 1
.names a a never
10 1
.end
`

func netlist(t *testing.T, src string) *blif.Netlist {
	t.Helper()
	net, err := blif.Read(strings.NewReader(src), blif.Options{})
	require.NoError(t, err)
	return net
}

func TestVerifyNetlist(t *testing.T) {
	for _, mode := range []compile.Mode{compile.Direct, compile.Shared} {
		net := netlist(t, adder)
		k, err := bdd.NewKernel(net.Vars.Span(), bdd.Sizes{})
		require.NoError(t, err)
		c := compile.New(net, k, compile.Options{Mode: mode})
		require.NoError(t, c.Compile())
		circ, err := FromNetlist(net, mode)
		require.NoError(t, err)

		for _, e := range c.Entries() {
			m, ok := circ.Lit(e.ID)
			require.True(t, ok, e.Name)
			chk := circ.Verify(k, e.Name, e.Node, m)
			assert.True(t, chk.OK(), "%s %s: %+v", mode, e.Name, chk)
			assert.Equal(t, e.Name != "never", chk.SAT, e.Name)
		}
	}
}

func TestVerifyCharacteristic(t *testing.T) {
	net := netlist(t, adder)
	k, err := bdd.NewKernel(net.Vars.Span(), bdd.Sizes{})
	require.NoError(t, err)
	c := compile.New(net, k, compile.Options{Mode: compile.Characteristic})
	require.NoError(t, c.Compile())
	circ, err := FromNetlist(net, compile.Characteristic)
	require.NoError(t, err)
	res := c.Result()
	require.Len(t, res, 1)
	chk := circ.Verify(k, "global", res[0].Node, circ.Global())
	require.True(t, chk.OK(), "%+v", chk)
	require.True(t, chk.SAT)
}

func TestVerifyDisagreement(t *testing.T) {
	net := netlist(t, adder)
	k, err := bdd.NewKernel(net.Vars.Span(), bdd.Sizes{})
	require.NoError(t, err)
	circ, err := FromNetlist(net, compile.Shared)
	require.NoError(t, err)
	never, _ := circ.Lit(net.MustID("never"))
	chk := circ.Verify(k, "never", k.Var(0), never)
	require.False(t, chk.OK())

	s, _ := circ.Lit(net.MustID("s"))
	chk = circ.Verify(k, "s", k.Not(k.Var(net.MustID("a"))), s)
	require.True(t, chk.BDD)
	require.True(t, chk.SAT)
	require.False(t, chk.Witness)
	require.False(t, chk.OK())
}

func TestCycle(t *testing.T) {
	net := netlist(t, ".names y x\n1 1\n.names x y\n1 1\n")
	_, err := FromNetlist(net, compile.Shared)
	require.True(t, errors.Is(err, diag.ErrCyclicDependency))
	_, err = FromNetlist(net, compile.Direct)
	require.NoError(t, err)
}

func TestInputDrivenByGate(t *testing.T) {
	net := netlist(t, ".inputs a b\n.names b a\n1 1\n.names a b o\n11 1\n")
	circ, err := FromNetlist(net, compile.Shared)
	require.NoError(t, err)
	o, ok := circ.Lit(net.MustID("o"))
	require.True(t, ok)
	vs := make([]bool, net.Vars.Span())
	vs[net.MustID("b")] = true
	assert.False(t, circ.Eval(vs, o))
	vs[net.MustID("a")] = true
	assert.True(t, circ.Eval(vs, o))
}

func TestVerifyFormula(t *testing.T) {
	tests := []struct {
		src    string
		sat    bool
		models int64
	}{
		{"p cnf 2 2\n1 2 0\n-1 -2 0\n", true, 2},
		{"p cnf 1 2\n1 0\n-1 0\n", false, 0},
		{"p dnf 2 2\n1 -1 0\n2 -2 0\n", false, 0},
		{"p dnf 3 2\n1 -2 0\n3 0\n", true, 5},
		{"p cnf 0 0\n", true, 2}, // the kernel keeps one variable
	}
	for _, tc := range tests {
		f, err := dimacs.Read(strings.NewReader(tc.src), dimacs.Options{Strict: true})
		require.NoError(t, err)
		k, err := bdd.NewKernel(f.Vars, bdd.Sizes{})
		require.NoError(t, err)
		n := f.Compile(k)
		circ := FromFormula(f)
		chk := circ.Verify(k, "f", n, circ.Global())
		assert.True(t, chk.OK(), "%q: %+v", tc.src, chk)
		assert.Equal(t, tc.sat, chk.SAT, tc.src)
		assert.Equal(t, tc.models, chk.Models.Int64(), tc.src)
	}
}

func TestEval(t *testing.T) {
	net := netlist(t, adder)
	circ, err := FromNetlist(net, compile.Shared)
	require.NoError(t, err)
	cout, _ := circ.Lit(net.MustID("cout"))
	vs := make([]bool, net.Vars.Span())
	vs[net.MustID("a")] = true
	require.False(t, circ.Eval(vs, cout))
	vs[net.MustID("cin")] = true
	require.True(t, circ.Eval(vs, cout))
	require.False(t, circ.Eval(vs, cout.Not()))
}

func TestWriteAiger(t *testing.T) {
	net := netlist(t, adder)
	circ, err := FromNetlist(net, compile.Shared)
	require.NoError(t, err)
	outs := circ.Outputs(net.MustID("s"), net.MustID("cout"), net.MustID("a"))
	require.Len(t, outs, 2)
	var buf bytes.Buffer
	require.NoError(t, circ.WriteAiger(&buf, outs))
	s := buf.String()
	require.True(t, strings.HasPrefix(s, "aag "), s)
	for _, want := range []string{"i0 a\n", "o0 s\n", "o1 cout\n"} {
		assert.Contains(t, s, want)
	}
}
