// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"

	"github.com/go-air/acec/aig"
	"github.com/go-air/acec/aig/aiger"
	"github.com/go-air/acec/z"
)

// Adder holds the literals of a generated adder, least significant bit
// first.
type Adder struct {
	A, B []z.Lit
	Cin  z.Lit // LitFalse if there is no carry input
	Sum  []z.Lit
	Cout z.Lit
}

// Mult holds the literals of a generated multiplier, least significant bit
// first.
type Mult struct {
	A, B []z.Lit
	P    []z.Lit
}

// HalfAdder adds a and b.
func HalfAdder(c *aig.Network, a, b z.Lit) (s, co z.Lit) {
	return c.Xor(a, b), c.And(a, b)
}

// FullAdder adds a, b and ci using the usual two xor decomposition, sharing
// the partial sum between the sum and the carry.
func FullAdder(c *aig.Network, a, b, ci z.Lit) (s, co z.Lit) {
	t := c.Xor(a, b)
	s = c.Xor(t, ci)
	co = c.Or(c.And(a, b), c.And(ci, t))
	return
}

// RippleCarry generates an n bit ripple carry adder.  If cin is set the
// least significant bit gets a full adder with a carry input, otherwise a
// half adder.
func RippleCarry(c *aig.Network, n int, cin bool) *Adder {
	res := &Adder{
		A:   make([]z.Lit, n),
		B:   make([]z.Lit, n),
		Sum: make([]z.Lit, n)}
	for i := 0; i < n; i++ {
		res.A[i] = c.NewIn()
	}
	for i := 0; i < n; i++ {
		res.B[i] = c.NewIn()
	}
	carry := c.F
	if cin {
		res.Cin = c.NewIn()
		carry = res.Cin
	}
	for i := 0; i < n; i++ {
		if i == 0 && !cin {
			res.Sum[i], carry = HalfAdder(c, res.A[i], res.B[i])
			continue
		}
		res.Sum[i], carry = FullAdder(c, res.A[i], res.B[i], carry)
	}
	res.Cout = carry
	return res
}

// ArrayMultiplier generates an n by n unsigned shift-and-add multiplier:
// each partial product row is added to the accumulator with a ripple of
// half and full adders.
func ArrayMultiplier(c *aig.Network, n int) *Mult {
	res := &Mult{
		A: make([]z.Lit, n),
		B: make([]z.Lit, n)}
	for i := 0; i < n; i++ {
		res.A[i] = c.NewIn()
	}
	for i := 0; i < n; i++ {
		res.B[i] = c.NewIn()
	}
	acc := make([]z.Lit, 2*n)
	for i := range acc {
		acc[i] = c.F
	}
	for j := 0; j < n; j++ {
		acc[j] = c.And(res.A[j], res.B[0])
	}
	for i := 1; i < n; i++ {
		carry := c.F
		for j := 0; j < n; j++ {
			k := i + j
			pp := c.And(res.A[j], res.B[i])
			switch {
			case acc[k] == c.F && carry == c.F:
				acc[k] = pp
			case carry == c.F:
				acc[k], carry = HalfAdder(c, acc[k], pp)
			case acc[k] == c.F:
				acc[k], carry = HalfAdder(c, pp, carry)
			default:
				acc[k], carry = FullAdder(c, acc[k], pp, carry)
			}
		}
		acc[i+n] = carry
	}
	res.P = acc
	return res
}

// RippleCarryAiger generates an n bit ripple carry adder as a named aiger
// object with outputs s0..s{n-1}, cout.
func RippleCarryAiger(n int, cin bool) *aiger.T {
	c := aig.New()
	add := RippleCarry(c, n, cin)
	for _, s := range add.Sum {
		c.SetOutput(s)
	}
	c.SetOutput(add.Cout)
	a := aiger.MakeFor(c)
	for i := 0; i < n; i++ {
		a.NameInput(i, fmt.Sprintf("a%d", i))
		a.NameInput(n+i, fmt.Sprintf("b%d", i))
		a.NameOutput(i, fmt.Sprintf("s%d", i))
	}
	if cin {
		a.NameInput(2*n, "cin")
	}
	a.NameOutput(n, "cout")
	return a
}

// ArrayMultiplierAiger generates an n by n multiplier as a named aiger
// object with outputs p0..p{2n-1}.
func ArrayMultiplierAiger(n int) *aiger.T {
	c := aig.New()
	m := ArrayMultiplier(c, n)
	for _, p := range m.P {
		c.SetOutput(p)
	}
	a := aiger.MakeFor(c)
	for i := 0; i < n; i++ {
		a.NameInput(i, fmt.Sprintf("a%d", i))
		a.NameInput(n+i, fmt.Sprintf("b%d", i))
	}
	for i := range m.P {
		a.NameOutput(i, fmt.Sprintf("p%d", i))
	}
	return a
}
