// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package export

import (
	"bufio"
	"fmt"
	"io"
)

// MagicB starts a tree automaton.
const MagicB = "@NTA"

// WriteB writes d as a tree automaton whose states are the node ids.
// Every node is a transition over the symbol LH, labelled by its variable,
// to its low and high states; the terminals are nullary transitions.
//
//	@NTA
//	# imported from <source>
//	%Root <id>
//	%States <id>:0 ... 0:0 1:0
//	# Variable mapping (from original file):
//	# <name>:<id> ...
//	%Alphabet LH:2 0:0 1:0
//
//	<id> LH <<var>> ( <low> <high> )
//	...
//	0 0 ( )
//	1 1 ( )
func (d *Diagram) WriteB(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, MagicB)
	fmt.Fprintf(bw, "%s%s\n", importedFrom, d.Source)
	fmt.Fprintf(bw, "%s %d\n", KeyRoot, d.Root)
	bw.WriteString("%States")
	for _, s := range d.States() {
		fmt.Fprintf(bw, " %d:0", s)
	}
	fmt.Fprintln(bw, " 0:0 1:0")
	fmt.Fprintln(bw, mappingTitle)
	fmt.Fprintln(bw, d.mapping())
	fmt.Fprintf(bw, "%%Alphabet LH:2 0:0 1:0\n\n")
	for _, e := range d.Nodes {
		fmt.Fprintf(bw, "%d LH <%d> ( %d %d )\n", e.ID, e.Var, e.Low, e.High)
	}
	fmt.Fprintln(bw, "0 0 ( )")
	fmt.Fprintln(bw, "1 1 ( )")
	return bw.Flush()
}
