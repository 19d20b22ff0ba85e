// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	gz "github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"github.com/go-air/acec/aig"
	"github.com/go-air/acec/z"
)

// Miter checks whether a and b compute the same outputs.  If not, it
// returns an input assignment, indexed by input position, under which some
// output differs.
func Miter(a, b *aig.Network) (bool, []bool, error) {
	ni := len(a.Inputs())
	if n := len(b.Inputs()); n != ni {
		return false, nil, errors.Wrapf(ErrInputs, "%d != %d", ni, n)
	}
	oa, ob := a.Outputs(), b.Outputs()
	if len(oa) != len(ob) {
		return false, nil, errors.Wrapf(ErrOutputs, "%d != %d", len(oa), len(ob))
	}
	c := logic.NewC()
	ins := make([]gz.Lit, ni)
	for i := range ins {
		ins[i] = c.Lit()
	}
	ma := translate(c, a, ins)
	mb := translate(c, b, ins)
	diffs := make([]gz.Lit, len(oa))
	for i := range oa {
		diffs[i] = c.Xor(lit(ma, oa[i]), lit(mb, ob[i]))
	}
	m := c.Ors(diffs...)
	switch m {
	case c.F:
		return true, nil, nil
	case c.T:
		return false, make([]bool, ni), nil
	}
	s := gini.New()
	c.ToCnfFrom(s, m)
	s.Assume(m)
	if s.Solve() != 1 {
		return true, nil, nil
	}
	cex := make([]bool, ni)
	for i, in := range ins {
		cex[i] = s.Value(in)
	}
	return false, cex, nil
}

// translate builds the ands of net in c, with the inputs of net mapped to
// ins by position.  The result maps node ids of net to literals of c.
func translate(c *logic.C, net *aig.Network, ins []gz.Lit) []gz.Lit {
	m := make([]gz.Lit, net.Len())
	m[0] = c.F
	for i, v := range net.Inputs() {
		m[v] = ins[i]
	}
	for i := 1; i < net.Len(); i++ {
		v := z.Var(i)
		if net.Kind(v) != aig.KindAnd {
			continue
		}
		x, y := net.Ins(v)
		m[v] = c.And(lit(m, x), lit(m, y))
	}
	return m
}

func lit(m []gz.Lit, x z.Lit) gz.Lit {
	g := m[x.Var()]
	if !x.IsPos() {
		g = g.Not()
	}
	return g
}
