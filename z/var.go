// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Var is a node id.
type Var uint32

// VarConst is the id of the constant false node.
const VarConst Var = 0

// Pos returns the positive literal of v.
func (v Var) Pos() Lit {
	return Lit(v << 1)
}

// Neg returns the negative (inverted) literal of v.
func (v Var) Neg() Lit {
	return Lit(v<<1 | 1)
}

// Lit returns the literal of v with inversion inv.
func (v Var) Lit(inv bool) Lit {
	if inv {
		return v.Neg()
	}
	return v.Pos()
}

func (v Var) String() string {
	return fmt.Sprintf("v%d", uint32(v))
}
