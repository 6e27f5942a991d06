// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/bddc/export"
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
.end
`

const cnf = `c example
p cnf 3 2
1 -2 0
2 3 0
`

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, log bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&log)
	err := cmd.Execute()
	return out.String(), log.String(), err
}

func readDiagram(t *testing.T, path string) *export.Diagram {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	d, err := export.ParseA(f)
	require.NoError(t, err)
	return d
}

func TestSharedWritesDir(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "fa.blif", adder)
	out := filepath.Join(dir, "out")
	_, _, err := execute(t, "-r", in, out)
	require.NoError(t, err)
	ps, err := filepath.Glob(filepath.Join(out, "fa.var*.abdd"))
	require.NoError(t, err)
	assert.Len(t, ps, 2)
	for _, p := range ps {
		d := readDiagram(t, p)
		assert.True(t, strings.HasPrefix(d.Name, "fa.var"))
		assert.NotEmpty(t, d.Nodes)
	}
}

func TestDeclaredOutputsWritesDir(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "fa.blif", adder)
	out := filepath.Join(dir, "out")
	_, _, err := execute(t, "--declared-outputs", in, out)
	require.NoError(t, err)
	ps, err := filepath.Glob(filepath.Join(out, "fa.var*.abdd"))
	require.NoError(t, err)
	assert.Len(t, ps, 2)
}

func TestDirectWritesFile(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "fa.blif", adder)
	out := filepath.Join(dir, "fa.abdd")
	_, _, err := execute(t, "blif", in, out)
	require.NoError(t, err)
	d := readDiagram(t, out)
	assert.Equal(t, "fa", d.Name)
	// cout is the largest unread function over a, b and cin.
	assert.Len(t, d.Nodes, 4)
}

func TestFormats(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "fa.blif", adder)
	out := filepath.Join(dir, "fa.abdd")
	_, _, err := execute(t, "-f", "abdd,vtf,dot", in, out)
	require.NoError(t, err)
	for _, ext := range []string{"abdd", "vtf", "dot"} {
		_, err := os.Stat(filepath.Join(dir, "fa."+ext))
		assert.NoError(t, err, ext)
	}
	b, err := os.ReadFile(filepath.Join(dir, "fa.vtf"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), export.MagicB))
}

func TestDimacs(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "ex.cnf", cnf)
	out := filepath.Join(dir, "ex.abdd")
	_, _, err := execute(t, in, out)
	require.NoError(t, err)
	d := readDiagram(t, out)
	assert.Equal(t, 3, d.VarCount)
	assert.NotEmpty(t, d.Nodes)
}

func TestGzipInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "fa.blif.gz")
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(adder))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(in, buf.Bytes(), 0644))
	out := filepath.Join(dir, "fa.abdd")
	_, _, err = execute(t, in, out)
	require.NoError(t, err)
	assert.Equal(t, "fa", readDiagram(t, out).Name)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "fa.blif", adder)
	cfg := write(t, dir, "bddc.yaml", "mode: shared\nformats: [vtf]\n")
	out := filepath.Join(dir, "out")
	_, _, err := execute(t, "--config", cfg, in, out)
	require.NoError(t, err)
	ps, err := filepath.Glob(filepath.Join(out, "fa.var*.vtf"))
	require.NoError(t, err)
	assert.Len(t, ps, 2)

	// flags override the file.
	out = filepath.Join(dir, "fa.abdd")
	_, _, err = execute(t, "--config", cfg, "-m", "direct", "-f", "abdd", in, out)
	require.NoError(t, err)
	readDiagram(t, out)
}

func TestOrder(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "fa.blif", adder)
	got, _, err := execute(t, "order", "--inputs", in)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "cin"}, strings.Fields(got))

	got, _, err = execute(t, "order", in)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "cin", "t", "s", "cout"}, strings.Fields(got))

	got, _, err = execute(t, "order", "--topo", in)
	require.NoError(t, err)
	names := strings.Fields(got)
	require.Len(t, names, 6)
	pos := make(map[string]int)
	for i, nm := range names {
		pos[nm] = i
	}
	assert.Less(t, pos["t"], pos["s"])
	assert.Less(t, pos["a"], pos["t"])
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "fa.blif", adder)
	for _, m := range []string{"direct", "shared", "characteristic"} {
		got, _, err := execute(t, "verify", "-m", m, in)
		require.NoError(t, err, m)
		assert.Contains(t, got, "WITNESS", m)
		assert.Contains(t, got, "MODELS", m)
	}
	got, _, err := execute(t, "verify", write(t, dir, "ex.cnf", cnf))
	require.NoError(t, err)
	assert.Contains(t, got, "ex")
}

func TestCycle(t *testing.T) {
	dir := t.TempDir()
	src := ".model c\n.inputs a\n.outputs y\n.names a y x\n11 1\n.names x y\n1 1\n.end\n"
	in := write(t, dir, "c.blif", src)
	_, log, err := execute(t, "-r", in, filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Contains(t, log, "x -> y -> x")

	_, _, err = execute(t, "order", "--topo", in)
	require.Error(t, err)
}

func TestUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "fa.txt", adder)
	_, _, err := execute(t, in, filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path extension")
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "stdin", modelName("-"))
	assert.Equal(t, "fa", modelName("/tmp/fa.blif.gz"))
	assert.Equal(t, "ex", modelName("ex.cnf"))
}
