// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/go-air/acec/z"
)

// aiger numbering: constant, then inputs in input order, then and gates in
// network order, which is topological.
type idMap struct {
	ids  []uint
	ands []z.Var
}

func (a *T) makeIdMap() *idMap {
	n := a.Network
	m := &idMap{ids: make([]uint, n.Len())}
	id := uint(1)
	for _, v := range n.Inputs() {
		m.ids[v] = id
		id++
	}
	for i := 1; i < n.Len(); i++ {
		v := z.Var(i)
		if !n.IsAnd(v) {
			continue
		}
		m.ids[v] = id
		m.ands = append(m.ands, v)
		id++
	}
	return m
}

func (m *idMap) lit(x z.Lit) uint {
	u := 2 * m.ids[x.Var()]
	if !x.IsPos() {
		u |= 1
	}
	return u
}

func (a *T) header(m *idMap, binary bool) *header {
	nIn := uint(len(a.Inputs()))
	nAnd := uint(len(m.ands))
	return &header{
		Binary: binary,
		Max:    nIn + nAnd,
		In:     nIn,
		Out:    uint(len(a.Outputs())),
		And:    nAnd}
}

// WriteAscii writes an ASCII version of AIGER format
// for the object a to the writer w.  WriteAscii returns
// a non-nil error if there was an io error while writing.
func (a *T) WriteAscii(w io.Writer) error {
	m := a.makeIdMap()
	bw := bufio.NewWriter(w)
	a.header(m, false).write(bw)
	for _, v := range a.Inputs() {
		fmt.Fprintf(bw, "%d\n", m.lit(v.Pos()))
	}
	for _, o := range a.Outputs() {
		fmt.Fprintf(bw, "%d\n", m.lit(o))
	}
	for _, v := range m.ands {
		c0, c1 := a.Ins(v)
		fmt.Fprintf(bw, "%d %d %d\n", m.lit(v.Pos()), m.lit(c1), m.lit(c0))
	}
	a.writeSymtab(bw)
	writeComment(bw)
	return bw.Flush()
}

// WriteBinary writes a in binary AIGER format (version 1.9) to the writer w.
func (a *T) WriteBinary(w io.Writer) error {
	m := a.makeIdMap()
	bw := bufio.NewWriter(w)
	a.header(m, true).write(bw)
	for _, o := range a.Outputs() {
		fmt.Fprintf(bw, "%d\n", m.lit(o))
	}
	for _, v := range m.ands {
		c0, c1 := a.Ins(v)
		me, mc0, mc1 := m.lit(v.Pos()), m.lit(c0), m.lit(c1)
		if mc0 < mc1 {
			mc0, mc1 = mc1, mc0
		}
		if me <= mc0 {
			panic(fmt.Sprintf("incorrect delta computation %s(%s,%s)", v, c0, c1))
		}
		if err := write7(bw, me-mc0); err != nil {
			return err
		}
		if err := write7(bw, mc0-mc1); err != nil {
			return err
		}
	}
	a.writeSymtab(bw)
	writeComment(bw)
	return bw.Flush()
}

// write the symbol table
func (a *T) writeSymtab(w *bufio.Writer) {
	for _, k := range []byte{'i', 'o'} {
		idx := make([]int, 0, len(a.symbols[k]))
		for i := range a.symbols[k] {
			idx = append(idx, i)
		}
		sort.Ints(idx)
		for _, i := range idx {
			fmt.Fprintf(w, "%c%d %s\n", k, i, a.symbols[k][i])
		}
	}
}

// writes a trailing comment saying that acec wrote the file
func writeComment(w *bufio.Writer) {
	w.WriteString("c\naiger file version 1.9 created by acec\n")
}

// for binary aiger coding of and deltas
func write7(w *bufio.Writer, val uint) error {
	for {
		b := byte(val & 0x7f)
		val = val >> 7
		if val != 0 {
			b |= 0x80
		}
		if err := w.WriteByte(b); err != nil {
			return err
		}
		if val == 0 {
			return nil
		}
	}
}
