// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package vars maps variable names to the small integer ids used as
// decision diagram variables.
package vars

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/go-air/bddc/diag"
)

// Policy selects how ids are allocated.
type Policy int

const (
	// Sequential numbers names 0, 1, ... in lexicographic order.
	Sequential Policy = iota
	// Embedded takes the id from a parenthesized integer in the name,
	// as in "N(42)".
	Embedded
)

func (p Policy) String() string {
	switch p {
	case Sequential:
		return "sequential"
	case Embedded:
		return "embedded"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Var is a named variable.
type Var struct {
	Name string
	ID   int
}

func (v Var) String() string {
	return fmt.Sprintf("%s:%d", v.Name, v.ID)
}

// Table is a bijection between names and ids.  Once assigned, an id never
// changes.
type Table struct {
	policy Policy
	ids    map[string]int
	names  map[int]string
	max    int
	log    logrus.FieldLogger
}

// NewTable returns an empty table with the given policy.  log may be nil.
func NewTable(p Policy, log logrus.FieldLogger) *Table {
	return &Table{
		policy: p,
		ids:    make(map[string]int),
		names:  make(map[int]string),
		max:    -1,
		log:    diag.Logger(log),
	}
}

var embeddedID = regexp.MustCompile(`\(([^()]*)\)`)

// Register assigns ids to all names not yet in t.  Under the Sequential
// policy the new names are numbered in lexicographic order after the ids
// already in use.  Under the Embedded policy a name lacking a parenthesized
// id must itself be a non-negative integer, and no two names may share an
// id; violations are diag.BadVariableID errors.
func (t *Table) Register(names ...string) error {
	fresh := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, nm := range names {
		if _, ok := t.ids[nm]; ok || seen[nm] {
			continue
		}
		seen[nm] = true
		fresh = append(fresh, nm)
	}
	sort.Strings(fresh)
	for _, nm := range fresh {
		id, err := t.allocate(nm)
		if err != nil {
			return err
		}
		if other, ok := t.names[id]; ok {
			return diag.New(diag.BadVariableID, nm, "id %d already taken by %q", id, other)
		}
		t.ids[nm] = id
		t.names[id] = nm
		if id > t.max {
			t.max = id
		}
	}
	return nil
}

func (t *Table) allocate(nm string) (int, error) {
	if t.policy == Sequential {
		return t.max + 1, nil
	}
	if g := embeddedID.FindStringSubmatch(nm); g != nil {
		id, err := strconv.Atoi(strings.TrimSpace(g[1]))
		if err != nil || id < 0 {
			return 0, diag.New(diag.BadVariableID, nm, "parenthesized id %q is not a non-negative integer", g[1])
		}
		return id, nil
	}
	t.log.WithField("variable", nm).Warn("no parenthesized id, parsing the whole name")
	id, err := strconv.Atoi(nm)
	if err != nil || id < 0 {
		return 0, diag.New(diag.BadVariableID, nm, "name has no parenthesized id and is not an integer")
	}
	return id, nil
}

// ID returns the id of name, or a diag.UnknownVariable error.
func (t *Table) ID(name string) (int, error) {
	id, ok := t.ids[name]
	if !ok {
		return 0, diag.New(diag.UnknownVariable, name, "not registered")
	}
	return id, nil
}

// Name returns the name with id, or a diag.UnknownVariable error.
func (t *Table) Name(id int) (string, error) {
	nm, ok := t.names[id]
	if !ok {
		return "", diag.New(diag.UnknownVariable, strconv.Itoa(id), "no variable with this id")
	}
	return nm, nil
}

// Len returns the number of registered names.
func (t *Table) Len() int {
	return len(t.ids)
}

// Span returns one more than the largest id, the number of decision diagram
// variables needed to host t.
func (t *Table) Span() int {
	return t.max + 1
}

// Policy returns the allocation policy of t.
func (t *Table) Policy() Policy {
	return t.policy
}

// Vars returns all variables ordered by id.
func (t *Table) Vars() []Var {
	vs := make([]Var, 0, len(t.ids))
	for nm, id := range t.ids {
		vs = append(vs, Var{Name: nm, ID: id})
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].ID < vs[j].ID })
	return vs
}
