// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cut

import (
	"math/bits"
	"sort"

	"github.com/go-air/acec/aig"
	"github.com/go-air/acec/z"
)

// Graph is the view of a network the engine needs.  Node ids are in
// topological order: the operands of an and node have smaller ids.
type Graph interface {
	Len() int
	Kind(v z.Var) aig.Kind
	Ins(v z.Var) (z.Lit, z.Lit)
	Outputs() []z.Lit
}

// DefaultMaxCuts is the default bound on the number of non-trivial cuts kept
// per node.
const DefaultMaxCuts = 24

// Engine finds xor and adder cuts.  The zero value is ready to use.
type Engine struct {
	MaxCuts int
}

// Compute runs a default Engine on g.
func Compute(g Graph) ([]Adder, []Xor) {
	var e Engine
	return e.ComputeCuts(g)
}

// truth tables of the elementary variables over 3 leaves.
var elems = [3]uint8{0xAA, 0xCC, 0xF0}

type cutT struct {
	leaves [3]z.Var
	n      uint8
	tt     uint8
}

func (c *cutT) vars() []z.Var {
	return c.leaves[:c.n]
}

// subset returns whether the leaves of c are a subset of those of d.
func (c *cutT) subset(d *cutT) bool {
	if c.n > d.n {
		return false
	}
	j := uint8(0)
	for i := uint8(0); i < c.n; i++ {
		for j < d.n && d.leaves[j] < c.leaves[i] {
			j++
		}
		if j == d.n || d.leaves[j] != c.leaves[i] {
			return false
		}
		j++
	}
	return true
}

// merge places the sorted union of the leaves of c and d in u, returning
// false if it has more than 3 leaves.
func merge(c, d *cutT, u *cutT) bool {
	i, j := uint8(0), uint8(0)
	u.n = 0
	for i < c.n || j < d.n {
		var v z.Var
		switch {
		case j == d.n || (i < c.n && c.leaves[i] < d.leaves[j]):
			v = c.leaves[i]
			i++
		case i == c.n || d.leaves[j] < c.leaves[i]:
			v = d.leaves[j]
			j++
		default:
			v = c.leaves[i]
			i++
			j++
		}
		if u.n == 3 {
			return false
		}
		u.leaves[u.n] = v
		u.n++
	}
	for k := u.n; k < 3; k++ {
		u.leaves[k] = 0
	}
	return true
}

// expand re-expresses the truth table of c over the leaves of u, which must
// contain the leaves of c.
func expand(c, u *cutT) uint8 {
	var pos [3]uint
	for i := uint8(0); i < c.n; i++ {
		for k := uint8(0); k < u.n; k++ {
			if u.leaves[k] == c.leaves[i] {
				pos[i] = uint(k)
				break
			}
		}
	}
	res := uint8(0)
	for m := uint(0); m < 8; m++ {
		idx := uint(0)
		for i := uint(0); i < uint(c.n); i++ {
			idx |= ((m >> pos[i]) & 1) << i
		}
		res |= ((c.tt >> idx) & 1) << m
	}
	return res
}

// majPol maps a 3-leaf truth table to the complements (c0,c1,c2 in bits
// 0..2) under which it is a majority function with c4 = 0.
var majPol [256]int8

func init() {
	for i := range majPol {
		majPol[i] = -1
	}
	for p := 0; p < 8; p++ {
		tt := uint8(0)
		for m := 0; m < 8; m++ {
			x := m ^ p
			if bits.OnesCount(uint(x)) >= 2 {
				tt |= 1 << m
			}
		}
		majPol[tt] = int8(p)
	}
}

type match struct {
	v   z.Var
	pol Polarity
}

type key [3]z.Var

type pair struct {
	sums   []match
	carrys []match
}

type engine struct {
	g       Graph
	max     int
	cuts    [][]cutT
	fanouts [][]z.Var
	isOut   []bool
	pairs   map[key]*pair
	xors    []Xor
	mark    []uint32
	stamp   uint32
}

// ComputeCuts enumerates cuts of g and returns the adders and xor cuts found.
func (e *Engine) ComputeCuts(g Graph) ([]Adder, []Xor) {
	max := e.MaxCuts
	if max <= 0 {
		max = DefaultMaxCuts
	}
	n := g.Len()
	st := &engine{
		g:       g,
		max:     max,
		cuts:    make([][]cutT, n),
		fanouts: make([][]z.Var, n),
		isOut:   make([]bool, n),
		pairs:   make(map[key]*pair),
		mark:    make([]uint32, n),
	}
	for _, m := range g.Outputs() {
		st.isOut[m.Var()] = true
	}
	for i := 1; i < n; i++ {
		v := z.Var(i)
		switch g.Kind(v) {
		case aig.KindInput:
			st.cuts[i] = []cutT{st.trivial(v)}
		case aig.KindAnd:
			a, b := g.Ins(v)
			st.fanouts[a.Var()] = append(st.fanouts[a.Var()], v)
			st.fanouts[b.Var()] = append(st.fanouts[b.Var()], v)
			st.enumerate(v, a, b)
		}
	}
	return st.adders(), st.xors
}

func (st *engine) trivial(v z.Var) cutT {
	return cutT{leaves: [3]z.Var{v}, n: 1, tt: elems[0]}
}

func (st *engine) enumerate(v z.Var, a, b z.Lit) {
	ca, cb := st.cuts[a.Var()], st.cuts[b.Var()]
	res := make([]cutT, 0, st.max+1)
	var u cutT
	for i := range ca {
		for j := range cb {
			if !merge(&ca[i], &cb[j], &u) {
				continue
			}
			if dominated(res, &u) {
				continue
			}
			ta, tb := expand(&ca[i], &u), expand(&cb[j], &u)
			if !a.IsPos() {
				ta = ^ta
			}
			if !b.IsPos() {
				tb = ^tb
			}
			u.tt = ta & tb
			res = prune(res, &u)
			res = append(res, u)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].n != res[j].n {
			return res[i].n < res[j].n
		}
		return res[i].leaves[0] < res[j].leaves[0] ||
			(res[i].leaves[0] == res[j].leaves[0] && (res[i].leaves[1] < res[j].leaves[1] ||
				(res[i].leaves[1] == res[j].leaves[1] && res[i].leaves[2] < res[j].leaves[2])))
	})
	if len(res) > st.max {
		res = res[:st.max]
	}
	for i := range res {
		st.classify(v, &res[i])
	}
	st.cuts[v] = append(res, st.trivial(v))
}

// dominated returns whether some cut in cs has a subset of the leaves of u.
func dominated(cs []cutT, u *cutT) bool {
	for i := range cs {
		if cs[i].subset(u) {
			return true
		}
	}
	return false
}

// prune removes the cuts in cs whose leaves are a superset of those of u.
func prune(cs []cutT, u *cutT) []cutT {
	j := 0
	for i := range cs {
		if u.subset(&cs[i]) {
			continue
		}
		cs[j] = cs[i]
		j++
	}
	return cs[:j]
}

func (st *engine) classify(v z.Var, c *cutT) {
	switch c.n {
	case 2:
		tt := c.tt & 0xF
		switch tt {
		case 0x6, 0x9:
			st.xors = append(st.xors, Xor{Out: v, Ins: c.leaves})
			var p Polarity
			p.SetCompl(SlotSum, tt == 0x9)
			st.pair(c).sums = append(st.pair(c).sums, match{v: v, pol: p})
			return
		}
		var p Polarity
		var m uint
		switch bits.OnesCount8(tt) {
		case 1:
			m = uint(bits.TrailingZeros8(tt))
		case 3:
			m = uint(bits.TrailingZeros8(^tt & 0xF))
			p.SetCompl(SlotCarry, true)
		default:
			return
		}
		p.SetCompl(SlotA, m&1 == 0)
		p.SetCompl(SlotB, m&2 == 0)
		st.pair(c).carrys = append(st.pair(c).carrys, match{v: v, pol: p})
	case 3:
		switch c.tt {
		case 0x96, 0x69:
			st.xors = append(st.xors, Xor{Out: v, Ins: c.leaves})
			var p Polarity
			p.SetCompl(SlotSum, c.tt == 0x69)
			st.pair(c).sums = append(st.pair(c).sums, match{v: v, pol: p})
			return
		}
		q := majPol[c.tt]
		if q < 0 {
			return
		}
		var p Polarity
		p.SetCompl(SlotA, q&1 != 0)
		p.SetCompl(SlotB, q&2 != 0)
		p.SetCompl(SlotC, q&4 != 0)
		st.pair(c).carrys = append(st.pair(c).carrys, match{v: v, pol: p})
	}
}

func (st *engine) pair(c *cutT) *pair {
	k := key(c.leaves)
	p := st.pairs[k]
	if p == nil {
		p = &pair{}
		st.pairs[k] = p
	}
	return p
}

// cone marks the nodes of the cone of v bounded by leaves with a fresh
// stamp, v included and leaves excluded.
func (st *engine) cone(v z.Var, leaves [3]z.Var) {
	st.stamp++
	for _, l := range leaves {
		if l != 0 {
			st.mark[l] = st.stamp
		}
	}
	stack := []z.Var{v}
	var out []z.Var
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if st.mark[u] == st.stamp {
			continue
		}
		st.mark[u] = st.stamp
		out = append(out, u)
		if st.g.Kind(u) != aig.KindAnd {
			continue
		}
		a, b := st.g.Ins(u)
		stack = append(stack, a.Var(), b.Var())
	}
	// leaves are not part of the cone.
	st.stamp++
	for _, u := range out {
		st.mark[u] = st.stamp
	}
}

func (st *engine) inCone(u z.Var) bool {
	return st.mark[u] == st.stamp
}

// internal returns whether carry candidate g is an internal gate of the
// cone currently marked.
func (st *engine) internal(g z.Var) bool {
	if !st.inCone(g) {
		return false
	}
	if st.isOut[g] {
		return false
	}
	for _, f := range st.fanouts[g] {
		if !st.inCone(f) {
			return false
		}
	}
	return true
}

func (st *engine) adders() []Adder {
	keys := make([]key, 0, len(st.pairs))
	for k, p := range st.pairs {
		if len(p.sums) == 0 || len(p.carrys) == 0 {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	var adds []Adder
	for _, k := range keys {
		p := st.pairs[k]
		for _, s := range p.sums {
			st.cone(s.v, k)
			best := -1
			for i, c := range p.carrys {
				if st.internal(c.v) {
					continue
				}
				if best == -1 || c.v < p.carrys[best].v {
					best = i
				}
			}
			if best == -1 {
				continue
			}
			c := p.carrys[best]
			pol := c.pol
			x := c.pol.Compl(SlotA) != c.pol.Compl(SlotB)
			x = x != c.pol.Compl(SlotC)
			pol.SetCompl(SlotSum, x != s.pol.Compl(SlotSum))
			adds = append(adds, Adder{Ins: k, Sum: s.v, Carry: c.v, Pol: pol})
		}
	}
	adds = st.removeContained(adds)
	sort.SliceStable(adds, func(i, j int) bool {
		if adds[i].Carry != adds[j].Carry {
			return adds[i].Carry < adds[j].Carry
		}
		return adds[i].Sum < adds[j].Sum
	})
	return adds
}

// removeContained drops half adders whose sum node lies in the sum cone of
// a full adder.
func (st *engine) removeContained(adds []Adder) []Adder {
	drop := make([]bool, len(adds))
	for i := range adds {
		if !adds[i].IsFull() {
			continue
		}
		st.cone(adds[i].Sum, adds[i].Ins)
		for j := range adds {
			if adds[j].IsFull() || drop[j] {
				continue
			}
			if st.inCone(adds[j].Sum) {
				drop[j] = true
			}
		}
	}
	res := adds[:0]
	for i := range adds {
		if !drop[i] {
			res = append(res, adds[i])
		}
	}
	return res
}
