// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cut

import (
	"fmt"

	"github.com/go-air/acec/z"
)

// Slot names one of the five nodes of an adder.
type Slot uint8

const (
	SlotA Slot = iota
	SlotB
	SlotC
	SlotSum
	SlotCarry
	NumSlots
)

var slotNames = [NumSlots]string{"a", "b", "c", "sum", "carry"}

func (s Slot) String() string {
	if s < NumSlots {
		return slotNames[s]
	}
	return fmt.Sprintf("slot(%d)", uint8(s))
}

const (
	signShift    = 8
	assignedMask = 1 << 15
)

// Polarity holds per slot polarity bits of an adder in two planes.
//
// The complement plane is written by the cut engine.  With operands x0, x1,
// x2 (x2 the constant node for a half adder) it satisfies
//
//	MAJ(x0^c0, x1^c1, x2^c2) == carry^c4
//	XOR(x0^c0, x1^c1, x2^c2) == sum^c3
//
// The sign plane is written by carry phase propagation and gives the
// polarity of each slot in the reconstructed box.
type Polarity uint16

// Compl returns the detected complement of slot s.
func (p Polarity) Compl(s Slot) bool {
	return p&(1<<s) != 0
}

// SetCompl sets the detected complement of slot s.
func (p *Polarity) SetCompl(s Slot, b bool) {
	if b {
		*p |= 1 << s
	} else {
		*p &^= 1 << s
	}
}

// Sign returns the assigned sign of slot s.
func (p Polarity) Sign(s Slot) bool {
	return p&(1<<(signShift+s)) != 0
}

// SetSign sets the assigned sign of slot s and marks p assigned.
func (p *Polarity) SetSign(s Slot, b bool) {
	if b {
		*p |= 1 << (signShift + s)
	} else {
		*p &^= 1 << (signShift + s)
	}
	*p |= assignedMask
}

// Assigned returns whether a sign has been assigned.
func (p Polarity) Assigned() bool {
	return p&assignedMask != 0
}

// ClearSigns resets the sign plane.
func (p *Polarity) ClearSigns() {
	*p &= 1<<NumSlots - 1
}

func (p Polarity) String() string {
	buf := make([]byte, 0, 2*NumSlots+1)
	for s := SlotA; s < NumSlots; s++ {
		if p.Compl(s) {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	}
	if !p.Assigned() {
		return string(buf)
	}
	buf = append(buf, '/')
	for s := SlotA; s < NumSlots; s++ {
		if p.Sign(s) {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	}
	return string(buf)
}

// Adder is a raw half or full adder.
type Adder struct {
	Ins   [3]z.Var // Ins[2] == 0 for a half adder
	Sum   z.Var
	Carry z.Var
	Pol   Polarity
}

// IsFull returns whether a has three operands.
func (a *Adder) IsFull() bool {
	return a.Ins[2] != 0
}

// Node returns the node of slot s.
func (a *Adder) Node(s Slot) z.Var {
	switch s {
	case SlotSum:
		return a.Sum
	case SlotCarry:
		return a.Carry
	}
	return a.Ins[s]
}

// Lit returns the node of slot s with its assigned sign.
func (a *Adder) Lit(s Slot) z.Lit {
	return a.Node(s).Lit(a.Pol.Sign(s))
}

func (a Adder) String() string {
	return fmt.Sprintf("(%s %s %s) -> %s %s [%s]", a.Ins[0], a.Ins[1], a.Ins[2], a.Sum, a.Carry, a.Pol)
}

// Xor is a raw xor cut.  Unused operands are 0.
type Xor struct {
	Out z.Var
	Ins [3]z.Var
}

// Arity returns the number of used operands.
func (x *Xor) Arity() int {
	n := 0
	for _, v := range x.Ins {
		if v != 0 {
			n++
		}
	}
	return n
}

func (x Xor) String() string {
	return fmt.Sprintf("%s = xor(%s %s %s)", x.Out, x.Ins[0], x.Ins[1], x.Ins[2])
}

// CountFull returns the number of full adders in adds.
func CountFull(adds []Adder) int {
	n := 0
	for i := range adds {
		if adds[i].IsFull() {
			n++
		}
	}
	return n
}
