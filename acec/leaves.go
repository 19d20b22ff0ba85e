// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec

import (
	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/z"
)

// FindXorLeaves returns, per rank, the external leaves of the xor tree and
// the group of adders whose carry feeds the next rank.
//
// An operand of a ranked xor is skipped if it is a ranked xor output (it
// must then be in the same rank), a leaf if it is no ranked carry, and
// otherwise adds its adder to the group of the rank below.  Both lists are
// unique in order of first appearance.
func FindXorLeaves(n int, xors []cut.Xor, adds []cut.Adder, roots []z.Var, ranks Ranks) ([][]z.Var, [][]int) {
	xmap := MapXorOutputsInRank(n, xors, ranks)
	cmap := MapAdderCarryOutputsInRank(n, adds, ranks)
	leaves := make([][]z.Var, len(roots))
	groups := make([][]int, len(roots))
	type key struct {
		r Rank
		i int
	}
	seenLeaf := make(map[key]bool)
	seenAdd := make(map[key]bool)
	for i := range xors {
		x := &xors[i]
		r := ranks[x.Out]
		if !r.Ranked() {
			continue
		}
		for _, v := range x.Ins {
			if v == 0 {
				continue
			}
			if xmap[v] {
				if ranks[v] != r {
					fatalf("leaves", "xor %s in rank %d has operand %s in rank %d", x.Out, r, v, ranks[v])
				}
				continue
			}
			if a := cmap[v]; a == -1 {
				k := key{r, int(v)}
				if !seenLeaf[k] {
					seenLeaf[k] = true
					leaves[r] = append(leaves[r], v)
				}
			} else if r > 0 {
				k := key{r - 1, a}
				if !seenAdd[k] {
					seenAdd[k] = true
					groups[r-1] = append(groups[r-1], a)
				}
			}
		}
	}
	return leaves, groups
}
