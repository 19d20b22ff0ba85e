// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/go-air/acec/acec"
	"github.com/go-air/acec/z"
)

var (
	ErrInputs  = errors.New("networks have different numbers of inputs")
	ErrOutputs = errors.New("networks have different numbers of outputs")
	ErrNoSim   = errors.New("network does not support simulation")
)

// Simulator is a network which can be evaluated 64 patterns at a time.
// *aig.Network implements it.
type Simulator interface {
	acec.Network
	Eval64(vs []uint64)
}

// Diff is a difference between two boxes.
type Diff struct {
	Rank int    // -1 for a difference in the number of ranks
	What string // "ranks", "leaves" or "roots"
	A, B int    // sizes of the differing lists
}

func (d Diff) String() string {
	if d.Rank < 0 {
		return fmt.Sprintf("%s: %d != %d", d.What, d.A, d.B)
	}
	return fmt.Sprintf("rank %d %s: %d vs %d literals differ", d.Rank, d.What, d.A, d.B)
}

// Result is the outcome of CompareBoxes.
type Result struct {
	Diffs []Diff
}

// Equal returns whether no difference was found.
func (r *Result) Equal() bool {
	return len(r.Diffs) == 0
}

// CompareBoxes compares a and b rank by rank.  Each literal is replaced by
// its values under words*64 random input patterns shared by both networks;
// two ranks are the same if their leaf and root value multisets agree.
func CompareBoxes(a, b *acec.Box, words int, seed int64) (*Result, error) {
	sa, ok := a.Network().(Simulator)
	if !ok {
		return nil, ErrNoSim
	}
	sb, ok := b.Network().(Simulator)
	if !ok {
		return nil, ErrNoSim
	}
	na, nb := len(sa.Inputs()), len(sb.Inputs())
	if na != nb {
		return nil, errors.Wrapf(ErrInputs, "%d != %d", na, nb)
	}
	va, vb := simulate(sa, sb, words, seed)
	res := &Result{}
	if a.NumRanks() != b.NumRanks() {
		res.Diffs = append(res.Diffs, Diff{Rank: -1, What: "ranks", A: a.NumRanks(), B: b.NumRanks()})
		return res, nil
	}
	for r := 0; r < a.NumRanks(); r++ {
		if !sameSigs(va, a.LeafLits[r], vb, b.LeafLits[r]) {
			res.Diffs = append(res.Diffs, Diff{Rank: r, What: "leaves", A: len(a.LeafLits[r]), B: len(b.LeafLits[r])})
		}
		if !sameSigs(va, a.RootLits[r], vb, b.RootLits[r]) {
			res.Diffs = append(res.Diffs, Diff{Rank: r, What: "roots", A: len(a.RootLits[r]), B: len(b.RootLits[r])})
		}
	}
	return res, nil
}

// simulate evaluates sa and sb on the same random inputs.  The result holds
// words value vectors per network, indexed by word then node.
func simulate(sa, sb Simulator, words int, seed int64) ([][]uint64, [][]uint64) {
	rnd := rand.New(rand.NewSource(seed))
	ia, ib := sa.Inputs(), sb.Inputs()
	va := make([][]uint64, words)
	vb := make([][]uint64, words)
	for w := 0; w < words; w++ {
		va[w] = make([]uint64, sa.Len())
		vb[w] = make([]uint64, sb.Len())
		for i := range ia {
			x := rnd.Uint64()
			va[w][ia[i]] = x
			vb[w][ib[i]] = x
		}
		sa.Eval64(va[w])
		sb.Eval64(vb[w])
	}
	return va, vb
}

func sig(vs [][]uint64, m z.Lit) string {
	buf := make([]byte, 0, 8*len(vs))
	for _, w := range vs {
		x := w[m.Var()]
		if !m.IsPos() {
			x = ^x
		}
		buf = binary.LittleEndian.AppendUint64(buf, x)
	}
	return string(buf)
}

func sigs(vs [][]uint64, ms []z.Lit) []string {
	res := make([]string, len(ms))
	for i, m := range ms {
		res[i] = sig(vs, m)
	}
	sort.Strings(res)
	return res
}

func sameSigs(va [][]uint64, ma []z.Lit, vb [][]uint64, mb []z.Lit) bool {
	if len(ma) != len(mb) {
		return false
	}
	sa, sb := sigs(va, ma), sigs(vb, mb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
