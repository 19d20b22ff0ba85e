// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cec compares circuits: boxes of two networks are compared rank by
// rank under shared random simulation, and the outputs of two networks can
// be checked for equivalence with a SAT miter.
//
// Inputs of the two networks are matched by position.
package cec
