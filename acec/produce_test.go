// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/go-air/acec/acec"
	"github.com/go-air/acec/aig"
	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/gen"
	"github.com/go-air/acec/z"
)

func ripple(n int, cin bool) (*aig.Network, *gen.Adder) {
	c := aig.New()
	add := gen.RippleCarry(c, n, cin)
	for _, s := range add.Sum {
		c.SetOutput(s)
	}
	c.SetOutput(add.Cout)
	return c, add
}

func mult(n int) (*aig.Network, *gen.Mult) {
	c := aig.New()
	m := gen.ArrayMultiplier(c, n)
	for _, p := range m.P {
		c.SetOutput(p)
	}
	return c, m
}

func vars(ms []z.Lit) []z.Var {
	var res []z.Var
	for _, m := range ms {
		if !m.IsConst() {
			res = append(res, m.Var())
		}
	}
	return res
}

func TestProduceRippleCarry(t *testing.T) {
	for _, n := range []int{2, 4, 8} {
		c, add := ripple(n, false)
		box := acec.ProduceBox(c, acec.WithLogger(zaptest.NewLogger(t)))
		require.Equal(t, n, box.NumRanks(), "n=%d", n)
		for r := 0; r < n; r++ {
			want := []z.Var{add.A[r].Var(), add.B[r].Var()}
			require.ElementsMatch(t, want, vars(box.LeafLits[r]), "n=%d rank %d", n, r)
			require.Equal(t, []z.Var{add.Sum[r].Var()}, vars(box.RootLits[r]), "n=%d rank %d", n, r)
			if r < n-1 {
				require.Len(t, box.Groups[r], 1)
			} else {
				require.Empty(t, box.Groups[r])
			}
		}
		require.Equal(t, add.Sum[n-1].Var().Pos(), box.RootLits[n-1][0])
		require.Same(t, c, box.Network())
	}
}

func TestProduceRippleCarryCin(t *testing.T) {
	const n = 4
	c, add := ripple(n, true)
	box := acec.ProduceBox(c)
	require.Equal(t, n, box.NumRanks())
	require.ElementsMatch(t, []z.Var{add.Cin.Var(), add.A[0].Var(), add.B[0].Var()}, vars(box.LeafLits[0]))
	for r := 1; r < n; r++ {
		require.ElementsMatch(t, []z.Var{add.A[r].Var(), add.B[r].Var()}, vars(box.LeafLits[r]))
	}
}

func TestProduceDeterministic(t *testing.T) {
	c, _ := ripple(6, false)
	a := acec.ProduceBox(c)
	b := acec.ProduceBox(c)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Groups, b.Groups)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestProduceOrderIndependent(t *testing.T) {
	rip, _ := ripple(6, false)
	m4, _ := mult(4)
	m5, _ := mult(5)
	for _, tc := range []struct {
		name string
		net  *aig.Network
	}{
		{"ripple6", rip},
		{"mult4", m4},
		{"mult5", m5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.net
			adds, xors := cut.Compute(c)
			want := acec.ProduceBox(c, acec.WithCutEngine(&fixed{adds: adds, xors: xors}))
			require.NotZero(t, want.NumRanks())
			rnd := rand.New(rand.NewSource(3))
			for i := 0; i < 20; i++ {
				f := &fixed{
					adds: append([]cut.Adder(nil), adds...),
					xors: append([]cut.Xor(nil), xors...)}
				rnd.Shuffle(len(f.adds), func(i, j int) { f.adds[i], f.adds[j] = f.adds[j], f.adds[i] })
				rnd.Shuffle(len(f.xors), func(i, j int) { f.xors[i], f.xors[j] = f.xors[j], f.xors[i] })
				got := acec.ProduceBox(c, acec.WithCutEngine(f))
				if d := cmp.Diff(want.LeafLits, got.LeafLits); d != "" {
					t.Fatalf("shuffle %d: leaves differ (-want +got):\n%s", i, d)
				}
				if d := cmp.Diff(want.RootLits, got.RootLits); d != "" {
					t.Fatalf("shuffle %d: roots differ (-want +got):\n%s", i, d)
				}
			}
		})
	}
}

func TestProduceNoArithmetic(t *testing.T) {
	c := aig.New()
	a, b := c.NewIn(), c.NewIn()
	c.SetOutput(c.And(a, b))
	box := acec.ProduceBox(c)
	require.Equal(t, 0, box.NumRanks())

	// xors without adders
	d, e := c.NewIn(), c.NewIn()
	c.SetOutput(c.Xor(a, b))
	c.SetOutput(c.Xor(d, e))
	adds, xors := cut.Compute(c)
	require.Empty(t, adds)
	require.Len(t, xors, 2)
	box = acec.ProduceBox(c)
	require.Equal(t, 0, box.NumRanks())
	require.Empty(t, box.Groups)
}

func TestProduceHalfAdder(t *testing.T) {
	c := aig.New()
	s, co := gen.HalfAdder(c, c.NewIn(), c.NewIn())
	c.SetOutput(s)
	c.SetOutput(co)
	box := acec.ProduceBox(c)
	require.Equal(t, 1, box.NumRanks())
	require.Equal(t, []z.Lit{s.Var().Pos()}, box.RootLits[0])
}

func TestProduceVerbose(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c, _ := ripple(4, false)
	acec.ProduceBox(c, acec.WithLogger(zap.New(core)), acec.WithVerbose(true))
	require.Equal(t, 1, logs.FilterMessage("cuts").Len())
	entry := logs.FilterMessage("cuts").All()[0]
	require.Equal(t, int64(3), entry.ContextMap()["full"])
	require.Equal(t, int64(1), entry.ContextMap()["half"])
	require.Equal(t, 1, logs.FilterMessage("box produced").Len())
}

func TestProduceMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := acec.NewMetrics(reg)
	c, _ := ripple(4, false)
	acec.ProduceBox(c, acec.WithMetrics(m))
	acec.ProduceBox(c, acec.WithMetrics(m))
	exp := `
# HELP acec_box_adders_total Number of adders found by the cut engine.
# TYPE acec_box_adders_total counter
acec_box_adders_total{kind="full"} 6
acec_box_adders_total{kind="half"} 2
# HELP acec_box_boxes_total Number of boxes produced.
# TYPE acec_box_boxes_total counter
acec_box_boxes_total 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(exp),
		"acec_box_boxes_total", "acec_box_adders_total"))
}

func TestCheckXors(t *testing.T) {
	c, _ := ripple(4, true)
	_, xors := cut.Compute(c)
	require.True(t, acec.CheckXors(c, xors).Clean())

	g := aig.New()
	a, b := g.NewIn(), g.NewIn()
	x := g.And(a, b)
	bogus := []cut.Xor{
		{Out: x.Var(), Ins: v3(a.Var(), b.Var(), 0)},
	}
	r := acec.CheckXors(g, bogus)
	require.Equal(t, []z.Var{x.Var()}, r.Unrecognized)
	r = acec.CheckXors(g, append(bogus, bogus...))
	require.Equal(t, []z.Var{x.Var()}, r.Multiple)
	require.Empty(t, r.Unrecognized)
}
