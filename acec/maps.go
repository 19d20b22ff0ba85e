// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec

import "github.com/go-air/acec/cut"

// MapXorOutputs marks the outputs of xors in an n node network.
func MapXorOutputs(n int, xors []cut.Xor) []bool {
	m := make([]bool, n)
	for i := range xors {
		m[xors[i].Out] = true
	}
	return m
}

// MapXorOutputsInRank marks the ranked outputs of xors.
func MapXorOutputsInRank(n int, xors []cut.Xor, ranks Ranks) []bool {
	m := make([]bool, n)
	for i := range xors {
		if ranks[xors[i].Out].Ranked() {
			m[xors[i].Out] = true
		}
	}
	return m
}

// MapXorOperands marks all operands of xors.  Node 0 is marked as soon as
// some record has fewer than three operands.
func MapXorOperands(n int, xors []cut.Xor) []bool {
	m := make([]bool, n)
	for i := range xors {
		for _, v := range xors[i].Ins {
			m[v] = true
		}
	}
	return m
}

// MapAdderCarryOutputs marks the carry outputs of adds.
func MapAdderCarryOutputs(n int, adds []cut.Adder) []bool {
	m := make([]bool, n)
	for i := range adds {
		m[adds[i].Carry] = true
	}
	return m
}

// MapAdderCarryOutputsInRank maps ranked carry outputs of adds to the index
// of their adder, and every other node to -1.
func MapAdderCarryOutputsInRank(n int, adds []cut.Adder, ranks Ranks) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = -1
	}
	for i := range adds {
		if c := adds[i].Carry; ranks[c].Ranked() {
			m[c] = i
		}
	}
	return m
}
