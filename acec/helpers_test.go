// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec_test

import (
	"github.com/go-air/acec/acec"
	"github.com/go-air/acec/aig"
	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/z"
)

// sizeNet is a network of n unconnected nodes, enough for reconstruction
// from given raw lists.
type sizeNet int

func (n sizeNet) Len() int               { return int(n) }
func (sizeNet) Kind(z.Var) aig.Kind      { return aig.KindInput }
func (sizeNet) Ins(z.Var) (z.Lit, z.Lit) { return z.LitFalse, z.LitFalse }
func (sizeNet) Outputs() []z.Lit         { return nil }
func (sizeNet) Inputs() []z.Var          { return nil }
func (sizeNet) Levels() []int            { return nil }

// fixed is a cut engine returning copies of given raw lists.
type fixed struct {
	adds []cut.Adder
	xors []cut.Xor
}

func (f *fixed) ComputeCuts(cut.Graph) ([]cut.Adder, []cut.Xor) {
	return append([]cut.Adder(nil), f.adds...), append([]cut.Xor(nil), f.xors...)
}

func catch(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(error)
		}
	}()
	f()
	return nil
}

func invariant(f func()) *acec.InvariantError {
	err := catch(f)
	if err == nil {
		return nil
	}
	return err.(*acec.InvariantError)
}

func v3(a, b, c z.Var) [3]z.Var {
	return [3]z.Var{a, b, c}
}

// ripple4 is a 4 bit ripple carry adder with carry in, one xor3 per bit.
//
//	cin = 1, a_i = 2+i, b_i = 6+i, s_i = 10+2i, carry_i = 11+2i
func ripple4() *fixed {
	f := &fixed{}
	c := z.Var(1)
	for i := z.Var(0); i < 4; i++ {
		a, b, s, co := 2+i, 6+i, 10+2*i, 11+2*i
		ins := v3(a, b, c)
		if c < a {
			ins = v3(c, a, b)
		}
		f.xors = append(f.xors, cut.Xor{Out: s, Ins: ins})
		f.adds = append(f.adds, cut.Adder{Ins: ins, Sum: s, Carry: co})
		c = co
	}
	return f
}
