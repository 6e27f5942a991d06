// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/go-air/bddc/bdd"
	"github.com/go-air/bddc/blif"
	"github.com/go-air/bddc/compile"
	"github.com/go-air/bddc/diag"
	"github.com/go-air/bddc/dimacs"
	"github.com/go-air/bddc/export"
	"github.com/go-air/bddc/sat"
)

// netlistRun is a compiled netlist.
type netlistRun struct {
	net  *blif.Netlist
	mode compile.Mode
	k    *bdd.Kernel
	cnt  *bdd.Counting
	c    *compile.Compiler
}

func (o *options) compileBlif(in string) (*netlistRun, error) {
	mode, err := o.cfg.CompileMode()
	if err != nil {
		return nil, err
	}
	net, err := blif.ReadFile(in, blif.Options{
		Policy: o.cfg.Policy(),
		Strict: o.cfg.Strict,
		Log:    o.log,
	})
	if err != nil {
		return nil, err
	}
	if net.Model == "" {
		net.Model = modelName(in)
	}
	k, err := bdd.NewKernel(net.Vars.Span(), o.cfg.Sizes())
	if err != nil {
		return nil, err
	}
	cnt := bdd.NewCounting(k)
	c := compile.New(net, cnt, compile.Options{
		Mode:  mode,
		Log:   o.log.WithField("model", net.Model),
		Trace: cnt.Begin,
	})
	if err := c.Compile(); err != nil {
		return nil, err
	}
	return &netlistRun{net: net, mode: mode, k: k, cnt: cnt, c: c}, nil
}

// results returns the entries to export.
func (o *options) results(r *netlistRun) ([]*compile.Entry, error) {
	if o.cfg.DeclaredOutputs && r.mode != compile.Characteristic {
		return r.c.Declared()
	}
	return r.c.Result(), nil
}

func (o *options) runBlif(in, out string) error {
	r, err := o.compileBlif(in)
	if err != nil {
		return err
	}
	es, err := o.results(r)
	if err != nil {
		return err
	}
	o.log.WithFields(logrus.Fields{
		"constructs":       r.c.Constructs(),
		"results":          len(es),
		"total node count": r.c.TotalNodes(es),
		"operations":       r.cnt.Ops,
	}).Info("compiled ", r.net.Model)

	formats, err := o.cfg.ExportFormats()
	if err != nil {
		return err
	}
	vs := r.net.Vars.Vars()
	if r.mode == compile.Shared || o.cfg.DeclaredOutputs {
		if err := os.MkdirAll(out, 0755); err != nil {
			return diag.Wrap(diag.IO, out, err)
		}
		for _, e := range es {
			name := fmt.Sprintf("%s.var%d", r.net.Model, e.ID)
			d := export.New(r.k, e.Node, vs, name, in)
			for _, f := range formats {
				if err := o.writeDiagram(filepath.Join(out, name+"."+f.Ext()), d, f); err != nil {
					return err
				}
			}
		}
	} else if len(es) != 0 {
		d := export.New(r.k, es[0].Node, vs, r.net.Model, in)
		if err := o.writeFormats(out, d, formats); err != nil {
			return err
		}
	} else {
		o.log.Warn("nothing to export")
	}
	if o.aiger != "" {
		return o.writeAiger(r, es)
	}
	return nil
}

func (o *options) writeAiger(r *netlistRun, es []*compile.Entry) error {
	circ, err := sat.FromNetlist(r.net, r.mode)
	if err != nil {
		return err
	}
	var outs []sat.Output
	if r.mode == compile.Characteristic {
		outs = []sat.Output{{Name: r.net.Model, Lit: circ.Global()}}
	} else {
		ids := make([]int, len(es))
		for i, e := range es {
			ids[i] = e.ID
		}
		outs = circ.Outputs(ids...)
	}
	return o.writeFile(o.aiger, func(f *os.File) error {
		return circ.WriteAiger(f, outs)
	})
}

func (o *options) readFormula(in string) (*dimacs.Formula, *bdd.Kernel, bdd.Node, error) {
	f, err := dimacs.ReadFile(in, dimacs.Options{Strict: o.cfg.Strict, Log: o.log})
	if err != nil {
		return nil, nil, nil, err
	}
	k, err := bdd.NewKernel(f.Vars, o.cfg.Sizes())
	if err != nil {
		return nil, nil, nil, err
	}
	n := f.Compile(k)
	if err := k.Err(); err != nil {
		return nil, nil, nil, err
	}
	o.log.WithFields(logrus.Fields{
		"kind":             f.Kind.String(),
		"clauses":          len(f.Clauses),
		"total node count": k.NodeCount(n),
	}).Info("compiled ", in)
	return f, k, n, nil
}

func (o *options) runDimacs(in, out string) error {
	f, k, n, err := o.readFormula(in)
	if err != nil {
		return err
	}
	formats, err := o.cfg.ExportFormats()
	if err != nil {
		return err
	}
	d := export.New(k, n, nil, "", in)
	d.VarCount = f.Vars
	if err := o.writeFormats(out, d, formats); err != nil {
		return err
	}
	if o.aiger != "" {
		circ := sat.FromFormula(f)
		return o.writeFile(o.aiger, func(w *os.File) error {
			return circ.WriteAiger(w, []sat.Output{{Name: modelName(in), Lit: circ.Global()}})
		})
	}
	return nil
}

// writeFormats writes d to out in the first format and next to out in
// the others.
func (o *options) writeFormats(out string, d *export.Diagram, formats []export.Format) error {
	stem := strings.TrimSuffix(out, filepath.Ext(out))
	for i, f := range formats {
		path := out
		if i > 0 {
			path = stem + "." + f.Ext()
		}
		if err := o.writeDiagram(path, d, f); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) writeDiagram(path string, d *export.Diagram, f export.Format) error {
	return o.writeFile(path, func(w *os.File) error {
		return d.Write(w, f)
	})
}

func (o *options) writeFile(path string, write func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return diag.Wrap(diag.IO, path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = diag.Wrap(diag.IO, path, closeErr)
		}
	}()
	if err := write(f); err != nil {
		return diag.Wrap(diag.IO, path, err)
	}
	o.log.WithField("path", path).Info("wrote")
	return nil
}

// literal returns the circuit function of entry e.
func literal(circ *sat.Circuit, e *compile.Entry) (z.Lit, bool) {
	if e.ID == compile.Global {
		return circ.Global(), true
	}
	if m, ok := circ.Lit(e.ID); ok {
		return m, true
	}
	return circ.Input(e.ID)
}
