// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command bddc compiles netlists and clause lists to decision diagrams.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "bddc [flags] input output",
		Short:         "compile netlists and clause lists to decision diagrams",
		Long:          usage,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := path2Format(args[0])
			if err != nil {
				return o.fail(err)
			}
			if f == dimacsFormat {
				return o.fail(o.runDimacs(args[0], args[1]))
			}
			return o.fail(o.runBlif(args[0], args[1]))
		},
	}
	o.bind(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "blif input output",
			Short: "compile a netlist",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.fail(o.runBlif(args[0], args[1]))
			},
		},
		&cobra.Command{
			Use:   "dimacs input output",
			Short: "compile a cnf or dnf clause list",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.fail(o.runDimacs(args[0], args[1]))
			},
		},
		newOrderCmd(o),
		newVerifyCmd(o),
	)
	return root
}

// fail logs a non nil err before cobra returns it.
func (o *options) fail(err error) error {
	if err != nil {
		o.log.Error(err)
	}
	return err
}
