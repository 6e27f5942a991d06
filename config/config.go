// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config holds the settings of a compilation run.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/go-air/bddc/bdd"
	"github.com/go-air/bddc/compile"
	"github.com/go-air/bddc/export"
	"github.com/go-air/bddc/vars"
)

// Engine sizes the decision diagram tables.
type Engine struct {
	NodeSize  int `yaml:"nodesize"`
	CacheSize int `yaml:"cachesize"`
}

// Config is a run configuration as read from yaml.
type Config struct {
	Mode            string   `yaml:"mode"`
	SmartVars       bool     `yaml:"smartvars"`
	Strict          bool     `yaml:"strict"`
	Formats         []string `yaml:"formats"`
	DeclaredOutputs bool     `yaml:"declared_outputs"`
	Engine          Engine   `yaml:"engine"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Mode:    compile.Direct.String(),
		Formats: []string{export.A.Ext()},
		Engine: Engine{
			NodeSize:  bdd.DefaultNodeSize,
			CacheSize: bdd.DefaultCacheSize,
		},
	}
}

// Load reads the yaml file at path over the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()
	c, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Read decodes yaml from r over the defaults.  Unknown keys are errors.
func Read(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the mode and formats are known.
func (c *Config) Validate() error {
	if _, err := c.CompileMode(); err != nil {
		return err
	}
	if _, err := c.ExportFormats(); err != nil {
		return err
	}
	if c.Engine.NodeSize < 0 || c.Engine.CacheSize < 0 {
		return errors.New("engine sizes must not be negative")
	}
	return nil
}

// CompileMode returns the compiler mode named by c.
func (c *Config) CompileMode() (compile.Mode, error) {
	return compile.ParseMode(c.Mode)
}

// ExportFormats returns the formats named by c, without duplicates.  No
// formats means the node list format.
func (c *Config) ExportFormats() ([]export.Format, error) {
	if len(c.Formats) == 0 {
		return []export.Format{export.A}, nil
	}
	seen := make(map[export.Format]bool, len(c.Formats))
	res := make([]export.Format, 0, len(c.Formats))
	for _, s := range c.Formats {
		f, err := export.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			res = append(res, f)
		}
	}
	return res, nil
}

// Policy returns the variable allocation policy.
func (c *Config) Policy() vars.Policy {
	if c.SmartVars {
		return vars.Embedded
	}
	return vars.Sequential
}

// Sizes returns the engine table sizes.
func (c *Config) Sizes() bdd.Sizes {
	return bdd.Sizes{NodeSize: c.Engine.NodeSize, CacheSize: c.Engine.CacheSize}
}
