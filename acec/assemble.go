// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec

import (
	"sort"

	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/z"
)

// AssembleBox builds the box of the ordered roots.  groups, leaves and roots
// must have one entry per rank.  The signs of the grouped adders in adds are
// assigned by ph, and the box takes ownership of groups and adds.
//
// The group of rank r holds the adders whose carry feeds rank r+1, so
// FindXorLeaves leaves the last group empty.  A caller supplied last group
// is accepted; the unconsumed carries of its adders are dropped.
func AssembleBox(net Network, adds []cut.Adder, groups [][]int, leaves [][]z.Var, roots []z.Var, ph PhaseEngine) *Box {
	if len(groups) != len(leaves) || len(groups) != len(roots) {
		fatalf("assemble", "rank counts differ: %d groups, %d leaf sets, %d roots",
			len(groups), len(leaves), len(roots))
	}
	box := &Box{Groups: groups, net: net, adds: adds}
	nr := len(roots)
	if nr == 0 {
		return box
	}
	n := net.Len()
	isLeaf := make([]bool, n)
	isRoot := make([]bool, n)
	for _, g := range groups {
		for _, i := range g {
			a := &adds[i]
			for _, v := range a.Ins {
				isLeaf[v] = true
			}
			isRoot[a.Sum] = true
			isRoot[a.Carry] = true
			a.Pol.ClearSigns()
		}
		sort.Ints(g)
	}

	cmap := ph.BuildCarryMap(n, adds, groups)
	visited := make([]bool, n)
	phases := make([]bool, n)
	for r := nr - 1; r >= 0; r-- {
		for _, i := range groups[r] {
			a := &adds[i]
			if isLeaf[a.Carry] {
				continue
			}
			ph.Propagate(adds, cmap, i, a.Pol.Compl(cut.SlotCarry), visited, phases)
		}
	}
	ph.Verify(adds, cmap, groups, visited, phases)
	ph.VerifyAlt(adds, groups)

	isRoot[0] = true
	last := nr - 1
	box.LeafLits = make([][]z.Lit, nr)
	box.RootLits = make([][]z.Lit, nr)
	for r, g := range groups {
		for _, i := range g {
			a := &adds[i]
			for s := cut.SlotA; s <= cut.SlotC; s++ {
				if !isRoot[a.Ins[s]] {
					box.LeafLits[r] = append(box.LeafLits[r], a.Lit(s))
				}
			}
			if !isLeaf[a.Sum] {
				box.RootLits[r] = append(box.RootLits[r], a.Lit(cut.SlotSum))
			}
			if !isLeaf[a.Carry] && r < last {
				box.RootLits[r+1] = append(box.RootLits[r+1], a.Lit(cut.SlotCarry))
			}
			if !a.IsFull() && a.Pol.Sign(cut.SlotC) {
				box.LeafLits[r] = append(box.LeafLits[r], z.LitTrue)
			}
		}
	}

	if len(box.LeafLits[last]) == 0 {
		for _, v := range leaves[last] {
			box.LeafLits[last] = append(box.LeafLits[last], v.Pos())
		}
	}
	box.RootLits[last] = []z.Lit{roots[last].Pos()}

	for r := 0; r < nr; r++ {
		sort.Sort(z.Lits(box.LeafLits[r]))
		sort.Sort(z.Lits(box.RootLits[r]))
	}
	return box
}
