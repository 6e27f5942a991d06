// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDot writes d as a graphviz digraph.  Low edges are dashed.
func (d *Diagram) WriteDot(w io.Writer) error {
	names := make(map[int]string, len(d.Vars))
	for _, v := range d.Vars {
		names[v.ID] = v.Name
	}
	label := func(v int) string {
		if nm, ok := names[v]; ok {
			return nm
		}
		return "v" + strconv.Itoa(v)
	}

	bw := bufio.NewWriter(w)
	name := d.Name
	if name == "" {
		name = "bdd"
	}
	// NB: %q is not quite the graphviz quoting function.
	fmt.Fprintf(bw, "digraph %q {\n", name)
	fmt.Fprintf(bw, "  labelloc=\"t\"; label=%q;\n", d.Source)
	fmt.Fprintln(bw, `  node [shape="box"];`)
	fmt.Fprintln(bw, `  n0 [label="0"];`)
	fmt.Fprintln(bw, `  n1 [label="1"];`)
	fmt.Fprintln(bw, `  node [shape="circle"];`)
	for _, e := range d.Nodes {
		fmt.Fprintf(bw, "  n%d [label=%q];\n", e.ID, label(e.Var))
	}
	for _, e := range d.Nodes {
		fmt.Fprintf(bw, "  n%d -> n%d [style=\"dashed\"];\n", e.ID, e.Low)
		fmt.Fprintf(bw, "  n%d -> n%d;\n", e.ID, e.High)
	}
	fmt.Fprintln(bw, `  root [shape="point"];`)
	fmt.Fprintf(bw, "  root -> n%d;\n", d.Root)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
