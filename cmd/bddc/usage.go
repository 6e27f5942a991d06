// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

var usage = `bddc compiles netlists and clause lists to binary decision diagrams.

Given an input and an output path, bddc dispatches on the input extension:
.blif files are netlists, .cnf and .dnf files are dimacs clause lists.
Inputs may be compressed with gzip (.gz) or bzip2 (.bz2).

Netlists compile in one of three modes.

	direct          gates in file order over raw variables; the largest
	                function not read by another gate is the result
	shared          gates after the gates they read, each at most once;
	                every function not read by another gate is a result
	characteristic  the conjunction over all gates of the equivalence of
	                the gate's function with its output variable

In shared mode, or whenever --declared-outputs is given, the output path is
a directory, created if missing, which receives one file
<model>.var<id>.<ext> per result.  Otherwise the output path is a file.

Formats are abdd (@BDD node lists), vtf (@NTA tree automata) and dot.
When several are given, the first is written to the output path and the
others next to it with their own extension.

Settings may be read from a yaml file with --config; flags given on the
command line override it.
`
