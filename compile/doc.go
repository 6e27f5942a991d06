// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package compile turns the gates of a netlist into decision diagrams.
//
// Every gate's function is the disjunction over its truth table rows of
// the conjunction of the literals each row pattern fixes, negated when the
// rows describe the off-set.  The modes differ in what the literals range
// over and in which functions are the results.
//
// In Shared mode a gate is built from the functions of the gates it reads,
// which are built first, and every gate is built at most once.  The memo
// table records for each gate whether another gate was built from it; the
// gates which were not are the outputs.
package compile
