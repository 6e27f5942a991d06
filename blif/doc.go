// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package blif reads the combinational subset of the Berkeley Logic
// Interchange Format into a Netlist of gates with truth tables.
//
// Recognized statements are .model, .inputs, .outputs, .names and .end.
// Any other statement is skipped with a diagnostic.  Each .names
// statement
//
//	.names a b c
//	1- 1
//	-1 1
//
// declares a gate with output c over inputs a and b whose truth table rows
// follow the header line.
//
// Parsing also registers every name in a vars.Table, so that gates refer to
// their signals by variable id.
package blif
