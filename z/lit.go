// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Lit is a node id with an inversion bit.
type Lit uint32

const (
	// LitFalse is the constant false literal.
	LitFalse Lit = 0
	// LitTrue is the constant true literal, the inverted constant node.
	LitTrue Lit = 1
)

// Var returns the node id of m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// IsPos returns whether m is not inverted.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// IsConst returns whether m is LitTrue or LitFalse.
func (m Lit) IsConst() bool {
	return m>>1 == 0
}

// Sign returns 1 if m is positive and -1 otherwise.
func (m Lit) Sign() int {
	if m.IsPos() {
		return 1
	}
	return -1
}

// Xor returns m inverted when inv is true.
func (m Lit) Xor(inv bool) Lit {
	if inv {
		return m ^ 1
	}
	return m
}

func (m Lit) String() string {
	switch m {
	case LitFalse:
		return "0"
	case LitTrue:
		return "1"
	}
	if m.IsPos() {
		return fmt.Sprintf("v%d", uint32(m>>1))
	}
	return fmt.Sprintf("-v%d", uint32(m>>1))
}

// Lits implements sort.Interface in canonical literal order.
type Lits []Lit

func (s Lits) Len() int           { return len(s) }
func (s Lits) Less(i, j int) bool { return s[i] < s[j] }
func (s Lits) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
