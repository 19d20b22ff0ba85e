// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec

import (
	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/z"
)

// OrderRoots orders roots by bit significance, least significant first.
//
// Every adder whose carry is in rank p and has an operand in rank q gives
// the edge p -> q: the tree of q feeds the tree of p.  The edges must form
// a simple chain.  The walk starts at the rank without successor that some
// rank points to and then repeatedly moves to the rank pointing at the
// current one.  Roots off the chain are not returned.
//
// OrderRoots panics with *InvariantError if the edges branch, or if there
// are at least two roots and no chain start.
func OrderRoots(adds []cut.Adder, roots []z.Var, ranks Ranks) []z.Var {
	switch len(roots) {
	case 0:
		return []z.Var{}
	case 1:
		return []z.Var{roots[0]}
	}
	move := make([]Rank, len(roots))
	for i := range move {
		move[i] = Unranked
	}
	for i := range adds {
		a := &adds[i]
		p := ranks[a.Carry]
		if !p.Ranked() {
			continue
		}
		for _, v := range a.Ins {
			if v == 0 {
				continue
			}
			q := ranks[v]
			if !q.Ranked() {
				continue
			}
			if q == p {
				fatalf("order", "adder %d: carry %s and operand %s both in rank %d", i, a.Carry, v, p)
			}
			if move[p] != Unranked && move[p] != q {
				fatalf("order", "rank %d feeds ranks %d and %d", p, move[p], q)
			}
			move[p] = q
		}
	}
	pred := make([]Rank, len(roots))
	for i := range pred {
		pred[i] = Unranked
	}
	for p, q := range move {
		if q == Unranked {
			continue
		}
		if pred[q] != Unranked {
			fatalf("order", "rank %d fed by ranks %d and %d", q, pred[q], p)
		}
		pred[q] = Rank(p)
	}
	start := Unranked
	for i, q := range move {
		if q == Unranked && pred[i] != Unranked {
			start = Rank(i)
			break
		}
	}
	if start == Unranked {
		fatalf("order", "no chain start among %d roots", len(roots))
	}
	order := make([]z.Var, 0, len(roots))
	for r := start; r != Unranked; r = pred[r] {
		order = append(order, roots[r])
	}
	return order
}
