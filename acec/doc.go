// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package acec reconstructs arithmetic boxes from and-inverter graphs.
//
// A box describes an adder or multiplier as a sequence of ranks, least
// significant first.  Each rank is an xor tree together with the half and
// full adders whose carries feed the next rank.  For every rank the box
// records the literals entering it (leaves) and the literals leaving it
// (roots), sorted so that two boxes of structurally equal circuits compare
// equal literal for literal.
//
// The pipeline is
//
//	cuts -> FindXorRoots -> RankTrees -> OrderRoots -> RankTrees
//	     -> FindXorLeaves -> AssembleBox
//
// and is run by ProduceBox.  Structural inconsistencies are not errors the
// caller can handle: they panic with *InvariantError or *phase.Error.
package acec
