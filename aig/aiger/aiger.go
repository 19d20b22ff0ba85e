// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/acec/aig"
	"github.com/go-air/acec/z"
)

// Errors related to IO and formatting
var (
	ErrPrematureEOF   = errors.New("premature EOF")
	ErrUnexpectedChar = errors.New("unexpected char")
	ErrBadHeader      = errors.New("bad header")
	ErrLitOOB         = errors.New("literal out of bounds")
	ErrSequential     = errors.New("sequential aiger not supported")
	ErrSignedInput    = errors.New("input is negated")
	ErrSignedAnd      = errors.New("and gate def is negated")
	ErrCombLoop       = errors.New("combinational logic has a loop")
	ErrMultiplyDef    = errors.New("literal multiply defined")
	ErrUndefinedLit   = errors.New("literal not defined")
	ErrInvalidName    = errors.New("invalid symbol name")
	ErrInvalidIndex   = errors.New("invalid index")
)

// T is a combinational aiger object backed by a network.
type T struct {
	*aig.Network
	symbols map[byte]map[int]string
}

// MakeFor makes an aiger object for the network n.  No copy is made.
func MakeFor(n *aig.Network) *T {
	return &T{
		Network: n,
		symbols: map[byte]map[int]string{
			'i': {},
			'o': {},
		}}
}

// NameInput names the index'th input.
func (a *T) NameInput(index int, nm string) error {
	return a.name('i', index, len(a.Inputs()), nm)
}

// InputName gives the name of the index'th input, if any.
func (a *T) InputName(index int) (string, bool) {
	nm, ok := a.symbols['i'][index]
	return nm, ok
}

// NameOutput names the index'th output.
func (a *T) NameOutput(index int, nm string) error {
	return a.name('o', index, len(a.Outputs()), nm)
}

// OutputName gives the name of the index'th output, if any.
func (a *T) OutputName(index int) (string, bool) {
	nm, ok := a.symbols['o'][index]
	return nm, ok
}

func (a *T) name(k byte, index, n int, nm string) error {
	if index < 0 || index >= n {
		return ErrInvalidIndex
	}
	if strings.Contains(nm, "\n") {
		return ErrInvalidName
	}
	a.symbols[k][index] = nm
	return nil
}

// Read reads an ascii or binary aiger file, deciding by the header.
func Read(r io.Reader) (*T, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if hdr.Binary {
		return readBinary(br, hdr)
	}
	return readAscii(br, hdr)
}

// ReadAscii reads an ascii coded aiger file.
func ReadAscii(r io.Reader) (*T, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if hdr.Binary {
		return nil, errors.Wrap(ErrBadHeader, "expected aag")
	}
	return readAscii(br, hdr)
}

// ReadBinary reads a binary aiger file.
func ReadBinary(r io.Reader) (*T, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if !hdr.Binary {
		return nil, errors.Wrap(ErrBadHeader, "expected aig")
	}
	return readBinary(br, hdr)
}

type aigAnd struct {
	children [2]uint
	defined  bool
	dfsColor uint8
}

type reader struct {
	*T
	hdr    *header
	varMap []z.Lit // aiger var -> network literal
	mapped []bool
	ands   []aigAnd // indexed by aiger var
	outs   []uint
}

func newReader(hdr *header) *reader {
	r := &reader{
		T:      MakeFor(aig.NewCap(int(hdr.Max) + 2)),
		hdr:    hdr,
		varMap: make([]z.Lit, hdr.Max+1),
		mapped: make([]bool, hdr.Max+1),
		outs:   make([]uint, 0, hdr.Out)}
	r.mapped[0] = true
	return r
}

func (r *reader) litFor(aigerLit uint) (z.Lit, error) {
	v := aigerLit >> 1
	if v > r.hdr.Max {
		return 0, errors.Wrapf(ErrLitOOB, "literal %d", aigerLit)
	}
	if !r.mapped[v] {
		return 0, errors.Wrapf(ErrUndefinedLit, "literal %d", aigerLit)
	}
	return r.varMap[v].Xor(aigerLit&1 != 0), nil
}

func (r *reader) newInput(aigerLit uint) error {
	if aigerLit&1 != 0 {
		return errors.Wrapf(ErrSignedInput, "input %d", aigerLit)
	}
	v := aigerLit >> 1
	if v == 0 || v > r.hdr.Max {
		return errors.Wrapf(ErrLitOOB, "input %d", aigerLit)
	}
	if r.mapped[v] {
		return errors.Wrapf(ErrMultiplyDef, "input %d", aigerLit)
	}
	r.varMap[v] = r.Network.NewIn()
	r.mapped[v] = true
	return nil
}

func readAscii(br *bufio.Reader, hdr *header) (*T, error) {
	r := newReader(hdr)
	for i := uint(0); i < hdr.In; i++ {
		u, err := readLine1(br)
		if err != nil {
			return nil, err
		}
		if err := r.newInput(u); err != nil {
			return nil, err
		}
	}
	if err := r.readOutputs(br); err != nil {
		return nil, err
	}
	r.ands = make([]aigAnd, hdr.Max+1)
	for i := uint(0); i < hdr.And; i++ {
		var us [3]uint
		for j := range us {
			readWS(br, false)
			u, err := readUint(br)
			if err != nil {
				return nil, errors.Wrapf(err, "and %d", i)
			}
			us[j] = u
		}
		if err := readNL(br); err != nil {
			return nil, errors.Wrapf(err, "and %d", i)
		}
		lhs := us[0]
		if lhs&1 != 0 {
			return nil, errors.Wrapf(ErrSignedAnd, "and %d", lhs)
		}
		v := lhs >> 1
		if v == 0 || v > hdr.Max || us[1]>>1 > hdr.Max || us[2]>>1 > hdr.Max {
			return nil, errors.Wrapf(ErrLitOOB, "and %d", lhs)
		}
		if r.mapped[v] || r.ands[v].defined {
			return nil, errors.Wrapf(ErrMultiplyDef, "and %d", lhs)
		}
		r.ands[v] = aigAnd{children: [2]uint{us[1], us[2]}, defined: true}
	}
	for v := range r.ands {
		if r.ands[v].defined {
			if err := r.mapAnd(uint(v)); err != nil {
				return nil, err
			}
		}
	}
	return r.finish(br)
}

// mapAnd translates the and gate with aiger variable v and its undefined
// fanins, depth first.
func (r *reader) mapAnd(v uint) error {
	ag := &r.ands[v]
	if r.mapped[v] {
		return nil
	}
	if ag.dfsColor == 1 {
		return errors.Wrapf(ErrCombLoop, "at %d", 2*v)
	}
	ag.dfsColor = 1
	var ms [2]z.Lit
	for i, c := range ag.children {
		cv := c >> 1
		if !r.mapped[cv] {
			if !r.ands[cv].defined {
				return errors.Wrapf(ErrUndefinedLit, "literal %d", c)
			}
			if err := r.mapAnd(cv); err != nil {
				return err
			}
		}
		m, err := r.litFor(c)
		if err != nil {
			return err
		}
		ms[i] = m
	}
	r.varMap[v] = r.Network.And(ms[0], ms[1])
	r.mapped[v] = true
	ag.dfsColor = 2
	return nil
}

func readBinary(br *bufio.Reader, hdr *header) (*T, error) {
	if hdr.Max != hdr.In+hdr.And {
		return nil, errors.Wrapf(ErrBadHeader, "M=%d != I+A=%d", hdr.Max, hdr.In+hdr.And)
	}
	r := newReader(hdr)
	for i := uint(0); i < hdr.In; i++ {
		if err := r.newInput(2 * (i + 1)); err != nil {
			return nil, err
		}
	}
	if err := r.readOutputs(br); err != nil {
		return nil, err
	}
	for i := uint(0); i < hdr.And; i++ {
		lhs := 2 * (hdr.In + i + 1)
		d0, err := read7(br)
		if err != nil {
			return nil, err
		}
		d1, err := read7(br)
		if err != nil {
			return nil, err
		}
		if d0 > lhs || d1 > lhs-d0 {
			return nil, errors.Wrapf(ErrLitOOB, "bad delta encoding at and %d", lhs)
		}
		rhs0 := lhs - d0
		rhs1 := rhs0 - d1
		m0, err := r.litFor(rhs0)
		if err != nil {
			return nil, err
		}
		m1, err := r.litFor(rhs1)
		if err != nil {
			return nil, err
		}
		r.varMap[lhs>>1] = r.Network.And(m0, m1)
		r.mapped[lhs>>1] = true
	}
	return r.finish(br)
}

func (r *reader) readOutputs(br *bufio.Reader) error {
	for i := uint(0); i < r.hdr.Out; i++ {
		u, err := readLine1(br)
		if err != nil {
			return errors.Wrapf(err, "output %d", i)
		}
		if u>>1 > r.hdr.Max {
			return errors.Wrapf(ErrLitOOB, "output %d", u)
		}
		r.outs = append(r.outs, u)
	}
	return nil
}

func (r *reader) finish(br *bufio.Reader) (*T, error) {
	for _, u := range r.outs {
		m, err := r.litFor(u)
		if err != nil {
			return nil, err
		}
		r.Network.SetOutput(m)
	}
	if err := r.readSymsAndComments(br); err != nil {
		return nil, err
	}
	return r.T, nil
}

func (r *reader) readSymsAndComments(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch b {
		case 'c':
			// comments run to the end of the file
			return nil
		case 'i', 'o':
			idx, err := readUint(br)
			if err != nil {
				return errors.Wrapf(err, "symbol %c", b)
			}
			line, err := br.ReadString('\n')
			if err != nil && err != io.EOF {
				return err
			}
			nm := strings.TrimSpace(line)
			n := len(r.Inputs())
			if b == 'o' {
				n = len(r.Outputs())
			}
			if err := r.name(b, int(idx), n, nm); err != nil {
				return errors.Wrapf(err, "symbol %c%d", b, idx)
			}
		case 'l', 'b', 'j', 'f':
			return errors.Wrapf(ErrSequential, "symbol %c", b)
		case '\n':
		default:
			return errors.Wrapf(ErrUnexpectedChar, "%q in symbol table", b)
		}
	}
}

// header for aiger v 1.9
type header struct {
	Binary bool
	Max    uint
	In     uint
	Latch  uint
	Out    uint
	And    uint
}

func (h *header) write(w *bufio.Writer) {
	if h.Binary {
		w.WriteString("aig ")
	} else {
		w.WriteString("aag ")
	}
	w.WriteString(fmt.Sprintf("%d %d %d %d %d\n", h.Max, h.In, h.Latch, h.Out, h.And))
}

// read the header, allowing version 1 style files (without B,C,J,F).
// Non-zero latch, bad, constraint, justice or fairness counts are rejected.
func readHeader(r *bufio.Reader) (*header, error) {
	result := &header{}
	buf, err := readNonWS(r, make([]byte, 0, 3))
	if err != nil {
		return nil, err
	}
	switch string(buf) {
	case "aag":
		result.Binary = false
	case "aig":
		result.Binary = true
	default:
		return nil, ErrBadHeader
	}
	var counts [9]uint
	i := 0
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			return nil, ErrPrematureEOF
		}
		if e != nil {
			return nil, e
		}
		if b == '\n' {
			break
		}
		if b != ' ' {
			return nil, ErrBadHeader
		}
		if i > 8 {
			return nil, ErrBadHeader
		}
		counts[i], err = readUint(r)
		if err != nil {
			return nil, errors.Wrap(ErrBadHeader, err.Error())
		}
		i++
	}
	if i < 5 {
		return nil, ErrBadHeader
	}
	result.Max = counts[0]
	result.In = counts[1]
	result.Latch = counts[2]
	result.Out = counts[3]
	result.And = counts[4]
	if result.Latch != 0 {
		return nil, errors.Wrapf(ErrSequential, "%d latches", result.Latch)
	}
	for _, c := range counts[5:] {
		if c != 0 {
			return nil, errors.Wrap(ErrSequential, "bad/constraint/justice/fairness section")
		}
	}
	if result.In+result.And > result.Max {
		return nil, errors.Wrapf(ErrBadHeader, "M=%d < I+A=%d", result.Max, result.In+result.And)
	}
	return result, nil
}

// reads a single uint followed by a new line
func readLine1(r *bufio.Reader) (uint, error) {
	readWS(r, false)
	u, err := readUint(r)
	if err != nil {
		return 0, err
	}
	readWS(r, false)
	if err := readNL(r); err != nil {
		return 0, err
	}
	return u, nil
}

// read white space from the reader, discarding
// the read bytes.  Include newlines if newLine is true
func readWS(r *bufio.Reader, newLine bool) {
	for {
		b, e := r.ReadByte()
		if e != nil {
			return
		}
		if b == ' ' || b == '\t' || b == '\r' {
			continue
		}
		if newLine && b == '\n' {
			continue
		}
		r.UnreadByte()
		return
	}
}

// reads a new line character and returns nil
// unless there was no new line character
func readNL(r *bufio.Reader) error {
	b, e := r.ReadByte()
	if e == io.EOF {
		return ErrPrematureEOF
	}
	if e != nil {
		return e
	}
	if b == '\n' {
		return nil
	}
	return ErrUnexpectedChar
}

// reads non-white space and puts the result in buf
func readNonWS(r *bufio.Reader, buf []byte) ([]byte, error) {
	buf = buf[:0]
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			break
		}
		if e != nil {
			return buf, e
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			r.UnreadByte()
			break
		}
		buf = append(buf, b)
	}
	return buf, nil
}

// reads a uint
func readUint(r *bufio.Reader) (uint, error) {
	var result uint
	first := true
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			if first {
				return 0, ErrPrematureEOF
			}
			break
		}
		if e != nil {
			return 0, e
		}
		if b >= '0' && b <= '9' {
			result *= 10
			result += uint(b - '0')
			first = false
			continue
		}
		r.UnreadByte()
		break
	}
	if first {
		return 0, ErrUnexpectedChar
	}
	return result, nil
}

// for binary aiger coding of and deltas
func read7(r *bufio.Reader) (result uint, err error) {
	var i int
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			return 0, ErrPrematureEOF
		}
		if e != nil {
			return 0, e
		}
		result |= (uint(b) & 0x7f) << uint8(7*i)
		i++
		if b&0x80 == 0 {
			break
		}
	}
	return
}
