// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-air/acec/acec"
	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/z"
)

func TestMaps(t *testing.T) {
	xors := []cut.Xor{{Out: 5, Ins: v3(1, 2, 0)}, {Out: 6, Ins: v3(5, 3, 4)}}
	adds := []cut.Adder{{Ins: v3(1, 2, 0), Sum: 5, Carry: 7}}

	outs := acec.MapXorOutputs(8, xors)
	require.True(t, outs[5])
	require.True(t, outs[6])
	require.False(t, outs[1])

	ins := acec.MapXorOperands(8, xors)
	require.True(t, ins[0])
	require.True(t, ins[5])
	require.False(t, ins[6])

	require.True(t, acec.MapAdderCarryOutputs(8, adds)[7])

	ranks := acec.NewRanks(8)
	ranks[6] = 0
	in := acec.MapXorOutputsInRank(8, xors, ranks)
	require.True(t, in[6])
	require.False(t, in[5])
	cm := acec.MapAdderCarryOutputsInRank(8, adds, ranks)
	require.Equal(t, -1, cm[7])
	ranks[7] = 0
	cm = acec.MapAdderCarryOutputsInRank(8, adds, ranks)
	require.Equal(t, 0, cm[7])
}

func TestFindXorRoots(t *testing.T) {
	xors := []cut.Xor{
		{Out: 9, Ins: v3(1, 2, 0)},
		{Out: 8, Ins: v3(3, 4, 0)},
		{Out: 9, Ins: v3(1, 2, 7)},
		{Out: 7, Ins: v3(5, 6, 0)},
		{Out: 8, Ins: v3(3, 4, 5)},
	}
	require.Equal(t, []z.Var{9, 8}, acec.FindXorRoots(10, xors))
	require.Empty(t, acec.FindXorRoots(10, nil))
}

func TestRankTreesConflict(t *testing.T) {
	// node 3 is shared by the trees of 10 and 11.
	xors := []cut.Xor{
		{Out: 8, Ins: v3(1, 3, 0)},
		{Out: 10, Ins: v3(8, 2, 0)},
		{Out: 11, Ins: v3(3, 4, 5)},
	}
	roots := acec.FindXorRoots(12, xors)
	require.Equal(t, []z.Var{10, 11}, roots)
	ranks := acec.RankTrees(12, xors, roots)
	require.Equal(t, acec.Rank(0), ranks.Of(10))
	require.Equal(t, acec.Rank(0), ranks.Of(8))
	require.Equal(t, acec.Rank(0), ranks.Of(1))
	require.Equal(t, acec.Rank(1), ranks.Of(4))
	require.Equal(t, acec.Conflicted, ranks.Of(3))
	require.False(t, ranks.Of(3).Ranked())
	require.Equal(t, acec.Unranked, ranks.Of(0))
	require.Equal(t, []z.Var{3}, ranks.Conflicts())
	for v, r := range ranks {
		if r.Ranked() {
			require.Less(t, int(r), len(roots), "node %d", v)
		}
	}
	require.Equal(t, "conflicted", acec.Conflicted.String())
	require.Equal(t, "1", acec.Rank(1).String())
}

func TestOrderRoots(t *testing.T) {
	f := ripple4()
	roots := []z.Var{16, 10, 14, 12}
	ranks := acec.RankTrees(18, f.xors, roots)
	require.Equal(t, []z.Var{10, 12, 14, 16}, acec.OrderRoots(f.adds, roots, ranks))

	require.Empty(t, acec.OrderRoots(f.adds, nil, ranks))
	require.Equal(t, []z.Var{14}, acec.OrderRoots(nil, []z.Var{14}, ranks))
}

func TestOrderRootsDropsUnreached(t *testing.T) {
	ranks := acec.NewRanks(10)
	roots := []z.Var{7, 8, 9}
	for i, r := range roots {
		ranks[r] = acec.Rank(i)
	}
	ranks[1], ranks[2] = 0, 1
	adds := []cut.Adder{{Ins: v3(1, 3, 0), Sum: 4, Carry: 2}}
	require.Equal(t, []z.Var{7, 8}, acec.OrderRoots(adds, roots, ranks))
}

func TestOrderRootsFatal(t *testing.T) {
	ranks := acec.NewRanks(20)
	roots := []z.Var{10, 11, 12}
	for i, r := range roots {
		ranks[r] = acec.Rank(i)
	}
	// operands 1, 2, 3 in ranks 0, 1, 2; carries 4, 5, 6 in ranks 0, 1, 2
	for i := 0; i < 3; i++ {
		ranks[1+i] = acec.Rank(i)
		ranks[4+i] = acec.Rank(i)
	}
	for _, tc := range []struct {
		name string
		adds []cut.Adder
		msg  string
	}{
		{"branch", []cut.Adder{
			{Ins: v3(1, 0, 0), Carry: 6},
			{Ins: v3(2, 0, 0), Carry: 6}}, "feeds"},
		{"join", []cut.Adder{
			{Ins: v3(1, 0, 0), Carry: 5},
			{Ins: v3(1, 0, 0), Carry: 6}}, "fed by"},
		{"self", []cut.Adder{
			{Ins: v3(2, 0, 0), Carry: 5}}, "both in rank"},
		{"cycle", []cut.Adder{
			{Ins: v3(1, 0, 0), Carry: 5},
			{Ins: v3(2, 0, 0), Carry: 4}}, "no chain start"},
		{"none", nil, "no chain start"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := invariant(func() { acec.OrderRoots(tc.adds, roots, ranks) })
			require.NotNil(t, err)
			require.Equal(t, "order", err.Op)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestFindXorLeaves(t *testing.T) {
	f := ripple4()
	roots := []z.Var{10, 12, 14, 16}
	ranks := acec.RankTrees(18, f.xors, roots)
	leaves, groups := acec.FindXorLeaves(18, f.xors, f.adds, roots, ranks)
	require.Equal(t, [][]z.Var{{1, 2, 6}, {3, 7}, {4, 8}, {5, 9}}, leaves)
	require.Equal(t, [][]int{{0}, {1}, {2}, nil}, groups)
}

func TestFindXorLeavesDedup(t *testing.T) {
	xors := []cut.Xor{
		{Out: 5, Ins: v3(1, 2, 0)},
		{Out: 6, Ins: v3(5, 3, 0)},
		{Out: 6, Ins: v3(1, 2, 3)},
	}
	roots := []z.Var{6}
	ranks := acec.RankTrees(7, xors, roots)
	leaves, groups := acec.FindXorLeaves(7, xors, nil, roots, ranks)
	require.Equal(t, [][]z.Var{{1, 2, 3}}, leaves)
	require.Equal(t, [][]int{nil}, groups)
}

func TestFindXorLeavesCrossRank(t *testing.T) {
	xors := []cut.Xor{
		{Out: 5, Ins: v3(1, 2, 0)},
		{Out: 6, Ins: v3(5, 3, 0)},
	}
	roots := []z.Var{6, 5}
	ranks := acec.NewRanks(7)
	ranks[6], ranks[5] = 0, 1
	err := invariant(func() { acec.FindXorLeaves(7, xors, nil, roots, ranks) })
	require.NotNil(t, err)
	require.Equal(t, "leaves", err.Op)
}
