// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/phase"
	"github.com/go-air/acec/z"
)

// Network is the read only view of an and-inverter graph used by
// reconstruction.  *aig.Network implements it.
type Network interface {
	cut.Graph
	Inputs() []z.Var
	Levels() []int
}

// CutEngine finds the raw adders and xors of a network.
type CutEngine interface {
	ComputeCuts(g cut.Graph) ([]cut.Adder, []cut.Xor)
}

// PhaseEngine assigns and checks adder signs.  Verify and VerifyAlt panic
// on failure.
type PhaseEngine interface {
	BuildCarryMap(n int, adds []cut.Adder, groups [][]int) []int
	Propagate(adds []cut.Adder, cmap []int, start int, phase bool, visited, phases []bool)
	Verify(adds []cut.Adder, cmap []int, groups [][]int, visited, phases []bool)
	VerifyAlt(adds []cut.Adder, groups [][]int)
	VerifyConnections(n int, adds []cut.Adder, groups [][]int) int
}

type options struct {
	log     *zap.Logger
	cuts    CutEngine
	phases  PhaseEngine
	verbose bool
	metrics *Metrics
}

// Option configures ProduceBox.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithCutEngine replaces the default cut engine.
func WithCutEngine(e CutEngine) Option {
	return func(o *options) {
		o.cuts = e
	}
}

// WithPhaseEngine replaces the default phase engine.
func WithPhaseEngine(e PhaseEngine) Option {
	return func(o *options) {
		o.phases = e
	}
}

// WithVerbose logs adder and xor counts and timing at info level.
func WithVerbose(v bool) Option {
	return func(o *options) {
		o.verbose = v
	}
}

// WithMetrics records pipeline metrics in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// ProduceBox finds the arithmetic box of net.  A network without adders or
// without xors gives a box with no ranks.
func ProduceBox(net Network, opts ...Option) *Box {
	o := &options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	if o.cuts == nil {
		o.cuts = &cut.Engine{}
	}
	if o.phases == nil {
		o.phases = phase.Engine{Logger: o.log}
	}
	start := time.Now()
	n := net.Len()

	adds, xors := o.cuts.ComputeCuts(net)
	nFull := cut.CountFull(adds)
	if o.verbose {
		o.log.Info("cuts",
			zap.Int("full", nFull),
			zap.Int("half", len(adds)-nFull),
			zap.Int("xors", len(xors)),
			zap.Duration("elapsed", time.Since(start)))
	}

	var box *Box
	conflicts := 0
	if len(adds) == 0 || len(xors) == 0 {
		box = AssembleBox(net, adds, nil, nil, nil, o.phases)
	} else {
		sortXors(xors)
		roots := FindXorRoots(n, xors)
		ranks := RankTrees(n, xors, roots)
		ordered := OrderRoots(adds, roots, ranks)
		if d := len(roots) - len(ordered); d > 0 {
			o.log.Debug("roots off chain dropped", zap.Int("dropped", d))
		}
		ranks = RankTrees(n, xors, ordered)
		conflicts = len(ranks.Conflicts())
		leaves, groups := FindXorLeaves(n, xors, adds, ordered, ranks)
		o.phases.VerifyConnections(n, adds, groups)
		box = AssembleBox(net, adds, groups, leaves, ordered, o.phases)
	}

	elapsed := time.Since(start)
	o.log.Debug("box",
		zap.Int("ranks", box.NumRanks()),
		zap.Int("adders", box.NumAdders()),
		zap.Int("conflicts", conflicts))
	if o.verbose {
		o.log.Info("box produced",
			zap.Int("ranks", box.NumRanks()),
			zap.Int("adders", box.NumAdders()),
			zap.Duration("elapsed", elapsed))
	}
	if o.metrics != nil {
		o.metrics.observe(nFull, len(adds)-nFull, len(xors), box.NumRanks(), conflicts, elapsed)
	}
	return box
}

// sortXors puts xors in node order, which is topological, so that
// RankTrees sees consumers before producers whatever order the cut engine
// reported them in.
func sortXors(xors []cut.Xor) {
	sort.Slice(xors, func(i, j int) bool {
		a, b := &xors[i], &xors[j]
		if a.Out != b.Out {
			return a.Out < b.Out
		}
		for k := range a.Ins {
			if a.Ins[k] != b.Ins[k] {
				return a.Ins[k] < b.Ins[k]
			}
		}
		return false
	})
}
