// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/bddc/bdd"
	"github.com/go-air/bddc/lex"
	"github.com/go-air/bddc/vars"
)

// Node list keywords.
const (
	MagicA       = "@BDD"
	KeyName      = "%Name"
	KeyVars      = "%Vars"
	KeyRoot      = "%Root"
	importedFrom = "# imported from "
	mappingTitle = "# Variable mapping (from original file):"
)

// ref writes terminal references as <0> and <1>.
func ref(id int) string {
	if id == bdd.False || id == bdd.True {
		return "<" + strconv.Itoa(id) + ">"
	}
	return strconv.Itoa(id)
}

// WriteA writes d as a node list:
//
//	@BDD
//	# imported from <source>
//	%Name <name>
//	%Vars <count>
//	# Variable mapping (from original file):
//	# <name>:<id> ...
//	%Root <id>
//
//	<id>[<var>] <low> <high>
//	...
//
// The %Name line is omitted for unnamed diagrams.
func (d *Diagram) WriteA(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, MagicA)
	fmt.Fprintf(bw, "%s%s\n", importedFrom, d.Source)
	if d.Name != "" {
		fmt.Fprintf(bw, "%s %s\n", KeyName, d.Name)
	}
	fmt.Fprintf(bw, "%s %d\n", KeyVars, d.VarCount)
	fmt.Fprintln(bw, mappingTitle)
	fmt.Fprintln(bw, d.mapping())
	fmt.Fprintf(bw, "%s %d\n\n", KeyRoot, d.Root)
	for _, e := range d.Nodes {
		fmt.Fprintf(bw, "%d[%d] %s %s\n", e.ID, e.Var, ref(e.Low), ref(e.High))
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}

// ParseA reads a node list as written by WriteA.  Comment lines other
// than the source and the variable mapping are ignored.
func ParseA(r io.Reader) (*Diagram, error) {
	toks, err := lex.Tokenize(r)
	if err != nil {
		return nil, err
	}
	cur := lex.NewCursor(toks)
	line := cur.Line()
	if len(line) != 1 || line[0] != MagicA {
		return nil, errors.Errorf("node list: missing %s", MagicA)
	}
	d := &Diagram{}
	for ln := 2; !cur.Done(); ln++ {
		line = cur.Line()
		if err := d.parseLine(line); err != nil {
			return nil, errors.Wrapf(err, "node list line %d", ln)
		}
	}
	return d, nil
}

func (d *Diagram) parseLine(line []string) error {
	switch line[0] {
	case "#":
		if len(line) >= 3 && line[1] == "imported" && line[2] == "from" {
			d.Source = strings.Join(line[3:], " ")
			return nil
		}
		if vs, ok := parseMapping(line[1:]); ok {
			d.Vars = vs
		}
		return nil
	case KeyName:
		d.Name = strings.Join(line[1:], " ")
		return nil
	case KeyVars, KeyRoot:
		if len(line) != 2 {
			return errors.Errorf("%s: want one value", line[0])
		}
		n, err := strconv.Atoi(line[1])
		if err != nil {
			return errors.Wrap(err, line[0])
		}
		if line[0] == KeyVars {
			d.VarCount = n
		} else {
			d.Root = n
		}
		return nil
	}
	e, err := parseEntry(line)
	if err != nil {
		return err
	}
	d.Nodes = append(d.Nodes, e)
	return nil
}

func parseMapping(words []string) ([]vars.Var, bool) {
	vs := make([]vars.Var, 0, len(words))
	for _, w := range words {
		i := strings.LastIndexByte(w, ':')
		if i <= 0 {
			return nil, false
		}
		id, err := strconv.Atoi(w[i+1:])
		if err != nil {
			return nil, false
		}
		vs = append(vs, vars.Var{Name: w[:i], ID: id})
	}
	return vs, true
}

func parseEntry(line []string) (bdd.Entry, error) {
	var e bdd.Entry
	if len(line) != 3 {
		return e, errors.Errorf("%q: want <id>[<var>] <low> <high>", strings.Join(line, " "))
	}
	head := line[0]
	i := strings.IndexByte(head, '[')
	if i <= 0 || !strings.HasSuffix(head, "]") {
		return e, errors.Errorf("%q: want <id>[<var>]", head)
	}
	var err error
	if e.ID, err = strconv.Atoi(head[:i]); err != nil {
		return e, errors.Wrap(err, "node id")
	}
	if e.Var, err = strconv.Atoi(head[i+1 : len(head)-1]); err != nil {
		return e, errors.Wrap(err, "variable")
	}
	if e.Low, err = parseRef(line[1]); err != nil {
		return e, err
	}
	if e.High, err = parseRef(line[2]); err != nil {
		return e, err
	}
	return e, nil
}

func parseRef(s string) (int, error) {
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		switch s {
		case "<0>":
			return bdd.False, nil
		case "<1>":
			return bdd.True, nil
		}
		return 0, errors.Errorf("%q: not a terminal", s)
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(err, "reference")
	}
	return id, nil
}
