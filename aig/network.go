// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import (
	"fmt"

	"github.com/go-air/acec/z"
)

// Kind is the kind of a node.
type Kind uint8

const (
	KindConst Kind = iota
	KindInput
	KindAnd
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindInput:
		return "input"
	case KindAnd:
		return "and"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Network is an and-inverter graph with designated inputs and outputs.
type Network struct {
	nodes  []node   // list of all nodes
	strash []uint32 // strash
	ins    []z.Var
	outs   []z.Lit
	F      z.Lit // false literal
	T      z.Lit
}

type node struct {
	a    z.Lit  // input a
	b    z.Lit  // input b
	n    uint32 // next strash
	kind Kind
}

// New creates a new network.
func New() *Network {
	return NewCap(128)
}

// NewCap creates a new network with initial capacity capHint.
func NewCap(capHint int) *Network {
	if capHint < 2 {
		capHint = 2
	}
	p := &Network{}
	p.nodes = make([]node, 1, capHint)
	p.strash = make([]uint32, capHint)
	p.F = z.LitFalse
	p.T = z.LitTrue
	return p
}

// Len returns the number of nodes, including the constant node.  Node ids
// range over 0..Len()-1.
func (p *Network) Len() int {
	return len(p.nodes)
}

// NumAnds returns the number of and gates.
func (p *Network) NumAnds() int {
	return len(p.nodes) - 1 - len(p.ins)
}

// Kind returns the kind of node v.
func (p *Network) Kind(v z.Var) Kind {
	return p.nodes[v].kind
}

// IsAnd returns whether v is an and gate.
func (p *Network) IsAnd(v z.Var) bool {
	return p.nodes[v].kind == KindAnd
}

// Ins returns the fanins of v.
//
//	If v is an input or the constant, Ins returns z.LitFalse, z.LitFalse
//	If v is an and, then Ins returns the two conjuncts, smaller first
func (p *Network) Ins(v z.Var) (z.Lit, z.Lit) {
	n := &p.nodes[v]
	return n.a, n.b
}

// Inputs returns the inputs in creation order.  The result must not be
// modified.
func (p *Network) Inputs() []z.Var {
	return p.ins
}

// Outputs returns the outputs in the order they were set.  The result must
// not be modified.
func (p *Network) Outputs() []z.Lit {
	return p.outs
}

// InputIndex returns a map from node id to input position, -1 for
// non-inputs.
func (p *Network) InputIndex() []int {
	res := make([]int, len(p.nodes))
	for i := range res {
		res[i] = -1
	}
	for i, v := range p.ins {
		res[v] = i
	}
	return res
}

// NewIn returns a new input.
func (p *Network) NewIn() z.Lit {
	_, j := p.newNode()
	p.nodes[j].kind = KindInput
	v := z.Var(j)
	p.ins = append(p.ins, v)
	return v.Pos()
}

// SetOutput appends m to the outputs.
func (p *Network) SetOutput(m z.Lit) {
	p.outs = append(p.outs, m)
}

// And returns a literal equivalent to "a and b", which may
// be a new node.
func (p *Network) And(a, b z.Lit) z.Lit {
	if a == b {
		return a
	}
	if a == b.Not() {
		return p.F
	}
	if a > b {
		a, b = b, a
	}
	if a == p.F {
		return p.F
	}
	if a == p.T {
		return b
	}
	c := strashCode(a, b)
	l := uint32(cap(p.nodes))
	si := p.strash[c%l]
	for si != 0 {
		n := &p.nodes[si]
		if n.a == a && n.b == b {
			return z.Var(si).Pos()
		}
		si = n.n
	}
	m, j := p.newNode()
	m.a = a
	m.b = b
	m.kind = KindAnd
	k := c % uint32(cap(p.nodes))
	m.n = p.strash[k]
	p.strash[k] = j
	return z.Var(j).Pos()
}

// Ands constructs a conjunction of a sequence of literals.
// If ms is empty, then Ands returns p.T.
func (p *Network) Ands(ms ...z.Lit) z.Lit {
	a := p.T
	for _, m := range ms {
		a = p.And(a, m)
	}
	return a
}

// Or constructs a literal which is the disjunction of a and b.
func (p *Network) Or(a, b z.Lit) z.Lit {
	nor := p.And(a.Not(), b.Not())
	return nor.Not()
}

// Ors constructs a literal which is the disjuntion of the literals in ms.
// If ms is empty, then Ors returns p.F
func (p *Network) Ors(ms ...z.Lit) z.Lit {
	d := p.F
	for _, m := range ms {
		d = p.Or(d, m)
	}
	return d
}

// Xor constructs a literal which is equivalent to (a xor b).
func (p *Network) Xor(a, b z.Lit) z.Lit {
	return p.Or(p.And(a, b.Not()), p.And(a.Not(), b))
}

// Maj constructs the majority of a, b and c in the usual full adder form
// (a and b) or (c and (a xor b)).
func (p *Network) Maj(a, b, c z.Lit) z.Lit {
	return p.Or(p.And(a, b), p.And(c, p.Xor(a, b)))
}

// Choice constructs a literal which is equivalent to
//
//	if i then t else e
func (p *Network) Choice(i, t, e z.Lit) z.Lit {
	return p.Or(p.And(i, t), p.And(i.Not(), e))
}

// Levels returns the level of every node: 0 for the constant and the
// inputs, one more than the maximal fanin level for and gates.
func (p *Network) Levels() []int {
	res := make([]int, len(p.nodes))
	for i := range p.nodes {
		n := &p.nodes[i]
		if n.kind != KindAnd {
			continue
		}
		la, lb := res[n.a.Var()], res[n.b.Var()]
		if lb > la {
			la = lb
		}
		res[i] = la + 1
	}
	return res
}

// Eval64 evaluates the network on 64 input vectors in parallel, one per bit
// of a uint64.  vs is indexed by node id and must have length Len(); the
// entries of the inputs must be set by the caller.
func (p *Network) Eval64(vs []uint64) {
	vs[0] = 0
	for i := range p.nodes {
		n := &p.nodes[i]
		if n.kind != KindAnd {
			continue
		}
		vs[i] = value64(vs, n.a) & value64(vs, n.b)
	}
}

// Value64 returns the value of m under the node values vs computed by Eval64.
func Value64(vs []uint64, m z.Lit) uint64 {
	return value64(vs, m)
}

func value64(vs []uint64, m z.Lit) uint64 {
	v := vs[m.Var()]
	if !m.IsPos() {
		v = ^v
	}
	return v
}

func (p *Network) newNode() (*node, uint32) {
	if len(p.nodes) == cap(p.nodes) {
		p.grow()
	}
	id := len(p.nodes)
	p.nodes = p.nodes[:id+1]
	return &p.nodes[id], uint32(id)
}

func (p *Network) grow() {
	newCap := cap(p.nodes) * 2
	nodes := make([]node, len(p.nodes), newCap)
	strash := make([]uint32, newCap)
	copy(nodes, p.nodes)
	ucap := uint32(newCap)
	for i := range nodes {
		n := &nodes[i]
		if n.kind != KindAnd {
			continue
		}
		c := strashCode(n.a, n.b)
		j := c % ucap
		n.n = strash[j]
		strash[j] = uint32(i)
	}
	p.nodes = nodes
	p.strash = strash
}

func strashCode(a, b z.Lit) uint32 {
	return uint32((a << 13) * b)
}
