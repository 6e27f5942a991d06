// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-air/bddc/compile"
	"github.com/go-air/bddc/config"
	"github.com/go-air/bddc/lex"
)

type options struct {
	configPath string
	debug      bool
	mode       string
	recursive  bool
	smartvars  bool
	strict     bool
	declared   bool
	formats    []string
	aiger      string

	log *logrus.Logger
	cfg *config.Config
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "yaml configuration file")
	fs.BoolVar(&o.debug, "debug", false, "enable debug logging")
	fs.StringVarP(&o.mode, "mode", "m", compile.Direct.String(), "netlist compilation mode: direct, shared or characteristic")
	fs.BoolVarP(&o.recursive, "recursive", "r", false, "shorthand for --mode shared")
	fs.BoolVarP(&o.smartvars, "smartvars", "s", false, "take variable ids from parenthesized name suffixes")
	fs.BoolVar(&o.strict, "strict", false, "abort on malformed rows, mixed output bits and clause count mismatches")
	fs.BoolVar(&o.declared, "declared-outputs", false, "export the declared .outputs instead of the unread gates")
	fs.StringSliceVarP(&o.formats, "format", "f", []string{"abdd"}, "output formats: abdd, vtf, dot")
	fs.StringVar(&o.aiger, "aiger", "", "also write the netlist as an ascii aiger file")
}

// resolve sets up logging and merges the configuration file with the flags
// set on the command line.
func (o *options) resolve(cmd *cobra.Command) error {
	o.log = logrus.New()
	o.log.Out = cmd.ErrOrStderr()
	if o.debug {
		o.log.SetLevel(logrus.DebugLevel)
	}
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}
	fs := cmd.Flags()
	if fs.Changed("mode") {
		cfg.Mode = o.mode
	}
	if fs.Changed("recursive") && o.recursive {
		cfg.Mode = compile.Shared.String()
	}
	if fs.Changed("smartvars") {
		cfg.SmartVars = o.smartvars
	}
	if fs.Changed("strict") {
		cfg.Strict = o.strict
	}
	if fs.Changed("declared-outputs") {
		cfg.DeclaredOutputs = o.declared
	}
	if fs.Changed("format") {
		cfg.Formats = o.formats
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg
	o.log.WithFields(logrus.Fields{
		"mode":      cfg.Mode,
		"smartvars": cfg.SmartVars,
		"strict":    cfg.Strict,
		"formats":   strings.Join(cfg.Formats, ","),
	}).Debug("configuration")
	return nil
}

type format int

const (
	blifFormat format = 1 + iota
	dimacsFormat
)

func path2Format(p string) (format, error) {
	switch filepath.Ext(lex.Base(p)) {
	case ".blif":
		return blifFormat, nil
	case ".cnf", ".dnf":
		return dimacsFormat, nil
	}
	return 0, fmt.Errorf("%s: path extension isn't .blif, .cnf or .dnf", p)
}

// modelName returns the name of what was read from path when it has none.
func modelName(path string) string {
	if path == "-" {
		return "stdin"
	}
	b := filepath.Base(lex.Base(path))
	return strings.TrimSuffix(b, filepath.Ext(b))
}
