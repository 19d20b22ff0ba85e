// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aiger implements aiger format version 1.9 ascii and binary
// readers and writers for combinational circuits.
//
// The aiger objects are backed by *aig.Network.  Latches, bad state
// properties, constraints, justice and fairness sections are rejected with
// ErrSequential.
package aiger
