// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/go-air/bddc/compile"
	"github.com/go-air/bddc/diag"
	"github.com/go-air/bddc/sat"
)

func newVerifyCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify input",
		Short: "check compiled diagrams against the sat solver",
		Long: `verify compiles input as the root command would and checks each result
against an and-inverter mirror of the input with the gini sat solver: the
diagram is false exactly when the mirror is unsatisfiable, and otherwise
one of the diagram's models satisfies the mirror.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := path2Format(args[0])
			if err != nil {
				return o.fail(err)
			}
			var checks []sat.Check
			if f == dimacsFormat {
				checks, err = o.verifyDimacs(args[0])
			} else {
				checks, err = o.verifyBlif(args[0])
			}
			if err != nil {
				return o.fail(err)
			}
			bad := writeChecks(cmd.OutOrStdout(), checks)
			if bad != 0 {
				return o.fail(diag.New(diag.Engine, args[0], "%d of %d diagrams disagree with the solver", bad, len(checks)))
			}
			return nil
		},
	}
}

func (o *options) verifyBlif(in string) ([]sat.Check, error) {
	r, err := o.compileBlif(in)
	if err != nil {
		return nil, err
	}
	es, err := o.results(r)
	if err != nil {
		return nil, err
	}
	circ, err := sat.FromNetlist(r.net, r.mode)
	if err != nil {
		return nil, err
	}
	checks := make([]sat.Check, 0, len(es))
	for _, e := range es {
		m, ok := literal(circ, e)
		if !ok {
			return nil, diag.New(diag.UndefinedSignal, e.Name, "no circuit function")
		}
		name := e.Name
		if e.ID == compile.Global {
			name = r.net.Model
		}
		checks = append(checks, circ.Verify(r.k, name, e.Node, m))
	}
	return checks, nil
}

func (o *options) verifyDimacs(in string) ([]sat.Check, error) {
	f, k, n, err := o.readFormula(in)
	if err != nil {
		return nil, err
	}
	circ := sat.FromFormula(f)
	return []sat.Check{circ.Verify(k, modelName(in), n, circ.Global())}, nil
}

// writeChecks renders checks as a table and returns how many failed.
func writeChecks(w io.Writer, checks []sat.Check) int {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"name", "nodes", "models", "bdd", "sat", "witness", "ok"})
	t.SetAutoFormatHeaders(true)
	bad := 0
	for _, c := range checks {
		if !c.OK() {
			bad++
		}
		t.Append([]string{
			c.Name,
			strconv.Itoa(c.Nodes),
			c.Models.String(),
			fmt.Sprint(c.BDD),
			fmt.Sprint(c.SAT),
			fmt.Sprint(c.Witness),
			fmt.Sprint(c.OK()),
		})
	}
	t.Render()
	return bad
}
