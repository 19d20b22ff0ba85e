// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cut enumerates small cuts of an and-inverter graph and reports the
// xor and adder patterns it finds.
//
// The output of the engine is a pair of raw lists: adders (three operands,
// a sum and a carry output, and a Polarity) and xor cuts (an output and up
// to three operands).  Both lists are in topological order of their outputs.
// They form the contract consumed by box reconstruction.
package cut
