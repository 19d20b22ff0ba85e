// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aig provides a combinational and-inverter graph.
//
// A Network owns all of its nodes in a single array indexed by z.Var.  Node 0
// is the constant false node, inputs and and gates follow in creation order,
// so the array is always in topological order.  And gates are simplified with
// trivial rules and structurally hashed.
//
// Every auxiliary structure built over a Network (ranks, membership maps,
// levels) is a slice of length Len() indexed by node id.
package aig
