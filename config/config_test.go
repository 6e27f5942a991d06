// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-air/bddc/compile"
	"github.com/go-air/bddc/export"
	"github.com/go-air/bddc/vars"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	m, err := c.CompileMode()
	require.NoError(t, err)
	require.Equal(t, compile.Direct, m)
	fs, err := c.ExportFormats()
	require.NoError(t, err)
	require.Equal(t, []export.Format{export.A}, fs)
	require.Equal(t, vars.Sequential, c.Policy())
}

func TestRead(t *testing.T) {
	src := `mode: shared
smartvars: true
formats: [vtf, abdd, vtf]
engine:
  nodesize: 500
`
	c, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	m, err := c.CompileMode()
	require.NoError(t, err)
	require.Equal(t, compile.Shared, m)
	require.Equal(t, vars.Embedded, c.Policy())
	fs, err := c.ExportFormats()
	require.NoError(t, err)
	require.Equal(t, []export.Format{export.B, export.A}, fs)
	require.Equal(t, 500, c.Sizes().NodeSize)
	require.Equal(t, Default().Engine.CacheSize, c.Sizes().CacheSize)
}

func TestReadErrors(t *testing.T) {
	for _, src := range []string{
		"mode: recursive\n",
		"formats: [svg]\n",
		"colour: blue\n",
		"engine:\n  nodesize: -1\n",
		"mode: [\n",
	} {
		_, err := Read(strings.NewReader(src))
		require.Error(t, err, src)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bddc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strict: true\nmode: characteristic\n"), 0644))
	c, err := Load(path)
	require.NoError(t, err)
	require.True(t, c.Strict)
	require.Equal(t, "characteristic", c.Mode)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
