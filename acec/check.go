// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec

import (
	"github.com/go-air/acec/aig"
	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/z"
)

// XorReport describes suspicious two input xor cuts.
type XorReport struct {
	// Multiple holds nodes with more than one two input xor cut.
	Multiple []z.Var
	// Unrecognized holds nodes with exactly one two input xor cut which are
	// not structurally an xor of two and gates.
	Unrecognized []z.Var
}

// Clean returns whether r reports nothing.
func (r *XorReport) Clean() bool {
	return len(r.Multiple) == 0 && len(r.Unrecognized) == 0
}

// CheckXors checks the two input xor cuts of xors against net.
func CheckXors(net cut.Graph, xors []cut.Xor) *XorReport {
	count := make([]int, net.Len())
	for i := range xors {
		if xors[i].Ins[2] == 0 {
			count[xors[i].Out]++
		}
	}
	r := &XorReport{}
	for i, c := range count {
		switch {
		case c > 1:
			r.Multiple = append(r.Multiple, z.Var(i))
		case c == 1 && !isXor(net, z.Var(i)):
			r.Unrecognized = append(r.Unrecognized, z.Var(i))
		}
	}
	return r
}

// isXor returns whether v is and(!and(x, y), !and(!x, !y)) up to operand
// order and polarity of x and y.
func isXor(net cut.Graph, v z.Var) bool {
	if net.Kind(v) != aig.KindAnd {
		return false
	}
	a, b := net.Ins(v)
	if a.IsPos() || b.IsPos() {
		return false
	}
	if net.Kind(a.Var()) != aig.KindAnd || net.Kind(b.Var()) != aig.KindAnd {
		return false
	}
	a0, a1 := net.Ins(a.Var())
	b0, b1 := net.Ins(b.Var())
	return (a0 == b0.Not() && a1 == b1.Not()) || (a0 == b1.Not() && a1 == b0.Not())
}
