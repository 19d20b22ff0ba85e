// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package phase

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/z"
)

// Error is the value of a panic raised when signs are inconsistent.
type Error struct {
	Op    string
	Adder int
	Node  z.Var
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("phase %s: adder %d node %s: %s", e.Op, e.Adder, e.Node, e.Msg)
}

// Engine carries phases.  The zero value logs nothing.
type Engine struct {
	Logger *zap.Logger
}

func (e Engine) log() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// BuildCarryMap returns, for each of the n nodes, the index of the grouped
// adder whose carry it is, or -1.
func (e Engine) BuildCarryMap(n int, adds []cut.Adder, groups [][]int) []int {
	return BuildCarryMap(n, adds, groups)
}

// Propagate propagates phase from adder start.
func (e Engine) Propagate(adds []cut.Adder, cmap []int, start int, phase bool, visited, phases []bool) {
	Propagate(adds, cmap, start, phase, visited, phases)
}

// Verify panics with *Error if an operand carry disagrees with its phase.
func (e Engine) Verify(adds []cut.Adder, cmap []int, groups [][]int, visited, phases []bool) {
	Verify(adds, cmap, groups, visited, phases)
}

// VerifyAlt panics with *Error if a grouped adder is unassigned or not
// uniformly flipped.
func (e Engine) VerifyAlt(adds []cut.Adder, groups [][]int) {
	VerifyAlt(adds, groups)
}

// VerifyConnections reports box outputs with more than one box reader.
func (e Engine) VerifyConnections(n int, adds []cut.Adder, groups [][]int) int {
	k := VerifyConnections(n, adds, groups)
	if k != 0 {
		e.log().Warn("box outputs with multiple readers", zap.Int("outputs", k))
	}
	return k
}

// BuildCarryMap maps carry nodes of the adders in groups to their adder
// index, -1 elsewhere.
func BuildCarryMap(n int, adds []cut.Adder, groups [][]int) []int {
	cmap := make([]int, n)
	for i := range cmap {
		cmap[i] = -1
	}
	for _, g := range groups {
		for _, i := range g {
			cmap[adds[i].Carry] = i
		}
	}
	return cmap
}

type item struct {
	adder int
	phase bool
}

// Propagate assigns signs to adder start reached with carry phase phase
// and to every adder reachable from it through operand carries.  An adder
// reached with phase f is flipped by t = c4 ^ f; each slot gets sign
// compl ^ t, and an operand which is a carry is reached with that sign.
//
// visited and phases are indexed by carry node; visited adders are not
// revisited.
func Propagate(adds []cut.Adder, cmap []int, start int, phase bool, visited, phases []bool) {
	stack := []item{{adder: start, phase: phase}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a := &adds[it.adder]
		if visited[a.Carry] {
			continue
		}
		visited[a.Carry] = true
		phases[a.Carry] = it.phase
		t := a.Pol.Compl(cut.SlotCarry) != it.phase
		for s := cut.SlotA; s < cut.NumSlots; s++ {
			a.Pol.SetSign(s, a.Pol.Compl(s) != t)
		}
		for s := cut.SlotA; s <= cut.SlotC; s++ {
			v := a.Ins[s]
			if v == 0 || cmap[v] < 0 || visited[v] {
				continue
			}
			stack = append(stack, item{adder: cmap[v], phase: a.Pol.Sign(s)})
		}
	}
}

// Verify checks that each operand of a grouped adder that is itself a
// grouped carry has the sign of that carry's phase.
func Verify(adds []cut.Adder, cmap []int, groups [][]int, visited, phases []bool) {
	for _, g := range groups {
		for _, i := range g {
			a := &adds[i]
			for s := cut.SlotA; s <= cut.SlotC; s++ {
				v := a.Ins[s]
				if v == 0 || cmap[v] < 0 {
					continue
				}
				if !visited[v] {
					panic(&Error{Op: "verify", Adder: i, Node: v, Msg: "operand carry has no phase"})
				}
				if a.Pol.Sign(s) != phases[v] {
					panic(&Error{Op: "verify", Adder: i, Node: v, Msg: fmt.Sprintf("operand %s sign differs from carry phase", s)})
				}
			}
		}
	}
}

// VerifyAlt checks that each grouped adder is assigned and that sign and
// complement differ by the same flip on all slots.
func VerifyAlt(adds []cut.Adder, groups [][]int) {
	for _, g := range groups {
		for _, i := range g {
			a := &adds[i]
			if !a.Pol.Assigned() {
				panic(&Error{Op: "verify-alt", Adder: i, Node: a.Carry, Msg: "unassigned"})
			}
			t := a.Pol.Sign(cut.SlotCarry) != a.Pol.Compl(cut.SlotCarry)
			for s := cut.SlotA; s < cut.SlotCarry; s++ {
				if a.Pol.Sign(s) != a.Pol.Compl(s) != t {
					panic(&Error{Op: "verify-alt", Adder: i, Node: a.Node(s), Msg: fmt.Sprintf("slot %s not flipped with carry", s)})
				}
			}
		}
	}
}

// VerifyConnections returns the number of sum or carry nodes of grouped
// adders read by more than one grouped adder.
func VerifyConnections(n int, adds []cut.Adder, groups [][]int) int {
	out := make([]bool, n)
	for _, g := range groups {
		for _, i := range g {
			out[adds[i].Sum] = true
			out[adds[i].Carry] = true
		}
	}
	readers := make([]int, n)
	for _, g := range groups {
		for _, i := range g {
			a := &adds[i]
			for _, v := range a.Ins {
				if v != 0 && out[v] {
					readers[v]++
				}
			}
		}
	}
	k := 0
	for _, r := range readers {
		if r > 1 {
			k++
		}
	}
	return k
}
