// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"slices"

	"github.com/zeebo/blake3"

	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/z"
)

// Box is a reconstructed arithmetic structure.  All per rank slices have
// the same length, and rank 0 is the least significant.
type Box struct {
	// Groups holds the sorted indices of the adders whose carry feeds the
	// rank above.  The last rank has no rank above, so its group is empty
	// for boxes from ProduceBox: an n bit ripple carry adder gives n ranks
	// and n-1 groups of one adder.
	Groups [][]int
	// LeafLits holds the sorted literals entering each rank.
	LeafLits [][]z.Lit
	// RootLits holds the sorted literals leaving each rank.
	RootLits [][]z.Lit

	net  Network
	adds []cut.Adder
}

// NumRanks returns the number of ranks.
func (b *Box) NumRanks() int {
	return len(b.LeafLits)
}

// Network returns the network b was built from.
func (b *Box) Network() Network {
	return b.net
}

// Adders returns the raw adders the group indices refer to, with signs
// assigned.
func (b *Box) Adders() []cut.Adder {
	return b.adds
}

// NumAdders returns the number of grouped adders.
func (b *Box) NumAdders() int {
	k := 0
	for _, g := range b.Groups {
		k += len(g)
	}
	return k
}

// Equal returns whether b and o have the same leaf and root literals.
// Groups are not compared since adder indices depend on the raw list order.
func (b *Box) Equal(o *Box) bool {
	if b.NumRanks() != o.NumRanks() {
		return false
	}
	for r := range b.LeafLits {
		if !slices.Equal(b.LeafLits[r], o.LeafLits[r]) {
			return false
		}
		if !slices.Equal(b.RootLits[r], o.RootLits[r]) {
			return false
		}
	}
	return true
}

// Fingerprint returns a blake3 digest of the leaf and root literals.
func (b *Box) Fingerprint() [32]byte {
	buf := make([]byte, 0, 64)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(b.NumRanks()))
	put := func(ms []z.Lit) {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(ms)))
		for _, m := range ms {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(m))
		}
	}
	for r := range b.LeafLits {
		put(b.LeafLits[r])
		put(b.RootLits[r])
	}
	return blake3.Sum256(buf)
}

// Print writes a human readable description of b to w.
func (b *Box) Print(w io.Writer) error {
	full := 0
	for _, g := range b.Groups {
		for _, i := range g {
			if b.adds[i].IsFull() {
				full++
			}
		}
	}
	_, err := fmt.Fprintf(w, "box: %d ranks, %d adders (%d full, %d half)\n",
		b.NumRanks(), b.NumAdders(), full, b.NumAdders()-full)
	if err != nil {
		return err
	}
	for r := range b.LeafLits {
		if _, err := fmt.Fprintf(w, "rank %3d: leaves %v roots %v\n", r, b.LeafLits[r], b.RootLits[r]); err != nil {
			return err
		}
		for _, i := range b.Groups[r] {
			if _, err := fmt.Fprintf(w, "    adder %5d: %s\n", i, b.adds[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// RankView is the serialized form of one rank.
type RankView struct {
	Rank   int      `yaml:"rank"`
	Adders []int    `yaml:"adders,flow"`
	Leaves []string `yaml:"leaves,flow"`
	Roots  []string `yaml:"roots,flow"`
}

// View is the serialized form of a box.
type View struct {
	Fingerprint string     `yaml:"fingerprint"`
	Ranks       []RankView `yaml:"ranks"`
}

// View returns the serialized form of b.
func (b *Box) View() *View {
	fp := b.Fingerprint()
	v := &View{
		Fingerprint: hex.EncodeToString(fp[:]),
		Ranks:       make([]RankView, b.NumRanks())}
	for r := range v.Ranks {
		v.Ranks[r] = RankView{
			Rank:   r,
			Adders: b.Groups[r],
			Leaves: litStrings(b.LeafLits[r]),
			Roots:  litStrings(b.RootLits[r])}
	}
	return v
}

// MarshalYAML implements yaml.Marshaler.
func (b *Box) MarshalYAML() (interface{}, error) {
	return b.View(), nil
}

func litStrings(ms []z.Lit) []string {
	res := make([]string, len(ms))
	for i, m := range ms {
		res[i] = m.String()
	}
	return res
}
