// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package blif

import (
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/bddc/diag"
	"github.com/go-air/bddc/vars"
)

const adder = `# one bit full adder
.model fa
.inputs a b \
  cin
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
.end
`

func read(t *testing.T, src string, opts Options) *Netlist {
	t.Helper()
	n, err := Read(strings.NewReader(src), opts)
	require.NoError(t, err)
	return n
}

func TestParseAdder(t *testing.T) {
	n := read(t, adder, Options{})
	require.Equal(t, "fa", n.Model)
	require.Equal(t, []string{"a", "b", "cin"}, n.Inputs)
	require.Equal(t, []string{"s", "cout"}, n.Outputs)
	require.Len(t, n.Gates, 3)
	require.Empty(t, n.Diags)

	cout := n.Gates[2]
	require.Equal(t, "cout", cout.Name)
	require.Equal(t, []string{"a", "b", "cin"}, cout.InputNames)
	require.Equal(t, []Row{{"11-", true}, {"1-1", true}, {"-11", true}}, cout.Rows)
	require.Equal(t, n.MustID("cout"), cout.Output)
	require.Equal(t, []int{n.MustID("a"), n.MustID("b"), n.MustID("cin")}, cout.Inputs)

	g, ok := n.Gate(n.MustID("t"))
	require.True(t, ok)
	require.Equal(t, "t", g.Name)
	require.True(t, n.IsInput(n.MustID("cin")))
	require.False(t, n.IsInput(n.MustID("t")))
}

func TestParseRegistersEveryNameOnce(t *testing.T) {
	n := read(t, adder, Options{})
	vs := n.Vars.Vars()
	require.Len(t, vs, 6)
	seen := map[string]bool{}
	for i, v := range vs {
		require.Equal(t, i, v.ID)
		require.False(t, seen[v.Name])
		seen[v.Name] = true
	}
	for _, nm := range []string{"a", "b", "cin", "t", "s", "cout"} {
		require.True(t, seen[nm], nm)
	}
}

func TestParseEmbedded(t *testing.T) {
	src := ".model e\n.inputs x(4) y(2)\n.outputs z(9)\n.names x(4) y(2) z(9)\n11 1\n.end\n"
	n := read(t, src, Options{Policy: vars.Embedded})
	require.Equal(t, []int{4, 2}, n.Gates[0].Inputs)
	require.Equal(t, 9, n.Gates[0].Output)
	require.Equal(t, 10, n.Vars.Span())
}

func TestRedeclarationIsIdempotent(t *testing.T) {
	n := read(t, ".inputs a b\n.inputs b a c\n.outputs o\n.outputs o\n", Options{})
	require.Equal(t, []string{"a", "b", "c"}, n.Inputs)
	require.Equal(t, []string{"o"}, n.Outputs)
}

func TestConstantGates(t *testing.T) {
	n := read(t, ".names one\n1\n.names zero\n.end\n", Options{Strict: true})
	require.Len(t, n.Gates, 2)
	require.Equal(t, []Row{{"", true}}, n.Gates[0].Rows)
	require.True(t, n.Gates[0].Polarity())
	require.Empty(t, n.Gates[1].Rows)
	require.False(t, n.Gates[1].Polarity())
}

func TestUnsupportedConstruct(t *testing.T) {
	src := ".model m\n.latch a b 0\n.inputs a\n.names a b\n0 1\n.end\n"
	for _, strict := range []bool{false, true} {
		n := read(t, src, Options{Strict: strict})
		require.Len(t, n.Diags, 1)
		require.True(t, errors.Is(n.Diags[0], diag.ErrUnsupportedConstruct))
		require.Contains(t, n.Diags[0].Error(), ".latch")
		require.Len(t, n.Gates, 1)
	}
}

func TestStopsAtEnd(t *testing.T) {
	n := read(t, ".names a\n1\n.end\n.names b\n1\n", Options{})
	require.Len(t, n.Gates, 1)
}

var structuralTests = []struct {
	name    string
	src     string
	kind    *diag.Error
	subject string
}{
	{"bad pattern char", ".names a b\n2 1\n", diag.ErrMalformedRow, "b"},
	{"bad output bit", ".names a b\n1 x\n", diag.ErrMalformedRow, "b"},
	{"too many fields", ".names a b\n1 1 1\n", diag.ErrMalformedRow, "b"},
	{"short row", ".names a b c\n1 1\n", diag.ErrInconsistentRowLength, "c"},
	{"long row", ".names a b\n111 1\n", diag.ErrInconsistentRowLength, "b"},
	{"mixed bits", ".names a b\n1 1\n0 0\n", diag.ErrInconsistentOutputBit, "b"},
	{"duplicate gate", ".names a b\n1 1\n.names a b\n0 1\n", diag.ErrDuplicateGate, "b"},
}

func TestStructuralProblems(t *testing.T) {
	for _, tc := range structuralTests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Read(strings.NewReader(tc.src), Options{})
			require.NoError(t, err)
			require.NotEmpty(t, n.Diags)
			assert.True(t, errors.Is(n.Diags[0], tc.kind), "%v", n.Diags)
			require.Contains(t, n.Diags[0].Error(), strconv.Quote(tc.subject))

			_, err = Read(strings.NewReader(tc.src), Options{Strict: true})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), "%v", err)
		})
	}
}

func TestNonStrictKeepsMalformedRow(t *testing.T) {
	n := read(t, ".names a b\n1 x\n", Options{})
	require.Equal(t, []Row{{"1", false}}, n.Gates[0].Rows)
}

func TestGateString(t *testing.T) {
	n := read(t, adder, Options{})
	require.Equal(t, ".names a b cin cout", n.Gates[2].String())
	require.Equal(t, "11- 1", n.Gates[2].Rows[0].String())
}

func TestReportNeverRecoversFatalKinds(t *testing.T) {
	p := &parser{log: diag.Logger(nil), net: &Netlist{}}
	require.NoError(t, p.report(diag.New(diag.MalformedRow, "g", "x"), false))
	require.Len(t, p.net.Diags, 1)
	err := p.report(diag.New(diag.BadVariableID, "g", "x"), false)
	require.True(t, errors.Is(err, diag.ErrBadVariableID))
	require.Len(t, p.net.Diags, 1)
}
