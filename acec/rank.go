// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec

import (
	"strconv"

	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/z"
)

// Rank identifies an xor tree by the index of its root.
type Rank int32

const (
	// Unranked nodes belong to no tree.
	Unranked Rank = -1
	// Conflicted nodes were claimed by two trees and belong to neither.
	Conflicted Rank = -2
)

// Ranked returns whether r is a tree index.
func (r Rank) Ranked() bool {
	return r >= 0
}

func (r Rank) String() string {
	switch r {
	case Unranked:
		return "unranked"
	case Conflicted:
		return "conflicted"
	}
	return strconv.Itoa(int(r))
}

// Ranks maps node ids to ranks.
type Ranks []Rank

// NewRanks returns n unranked nodes.
func NewRanks(n int) Ranks {
	rs := make(Ranks, n)
	for i := range rs {
		rs[i] = Unranked
	}
	return rs
}

// Of returns the rank of v.
func (rs Ranks) Of(v z.Var) Rank {
	return rs[v]
}

// Conflicts returns the conflicted nodes in increasing order.
func (rs Ranks) Conflicts() []z.Var {
	var res []z.Var
	for i, r := range rs {
		if r == Conflicted {
			res = append(res, z.Var(i))
		}
	}
	return res
}

// RankTrees assigns each node of an n node network to the tree of at most
// one root in roots.
//
// The root roots[i] gets rank i.  The xor records are visited in reverse, so
// consumers come before producers; the operands of a record whose output is
// ranked join that rank.  An operand already in another tree is a
// conflict, and conflicts are retracted once all records are seen.
func RankTrees(n int, xors []cut.Xor, roots []z.Var) Ranks {
	rs := NewRanks(n)
	for i, r := range roots {
		rs[r] = Rank(i)
	}
	var doubles []z.Var
	for i := len(xors) - 1; i >= 0; i-- {
		x := &xors[i]
		r := rs[x.Out]
		if !r.Ranked() {
			continue
		}
		for _, v := range x.Ins {
			if v == 0 {
				continue
			}
			switch rs[v] {
			case r:
			case Unranked:
				rs[v] = r
			default:
				doubles = append(doubles, v)
			}
		}
	}
	for _, v := range doubles {
		rs[v] = Conflicted
	}
	return rs
}
