// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-air/bddc/blif"
)

func newOrderCmd(o *options) *cobra.Command {
	var inputs, sorted bool
	cmd := &cobra.Command{
		Use:   "order input",
		Short: "print the variable order of a netlist",
		Long: `order prints the names of a netlist's signals, gate outputs before the
signals they read.  With --topo it prints them with every gate input
before the gate output instead, and fails if the gates are cyclic.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := blif.ReadFile(args[0], blif.Options{
				Policy: o.cfg.Policy(),
				Strict: o.cfg.Strict,
				Log:    o.log,
			})
			if err != nil {
				return o.fail(err)
			}
			var ids []int
			if sorted {
				if ids, err = net.Topo(); err != nil {
					return o.fail(err)
				}
				if inputs {
					ids = keepInputs(net, ids)
				}
			} else {
				ids = net.Order(inputs)
			}
			names := make([]string, len(ids))
			for i, id := range ids {
				names[i], _ = net.Vars.Name(id)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
			return err
		},
	}
	cmd.Flags().BoolVar(&inputs, "inputs", false, "list declared inputs only")
	cmd.Flags().BoolVar(&sorted, "topo", false, "list in topological order")
	return cmd
}

func keepInputs(net *blif.Netlist, ids []int) []int {
	res := ids[:0]
	for _, id := range ids {
		if net.IsInput(id) {
			res = append(res, id)
		}
	}
	return res
}
