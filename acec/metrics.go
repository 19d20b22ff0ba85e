// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-air/acec/internal/metrics"
)

const subsystem = "box"

// Metrics counts what ProduceBox finds.
type Metrics struct {
	boxes     prometheus.Counter
	adders    *prometheus.CounterVec
	xors      prometheus.Counter
	ranks     prometheus.Observer
	conflicts prometheus.Counter
	duration  prometheus.Observer
}

// NewMetrics creates metrics registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		boxes:     metrics.NewCounter(reg, "boxes_total", subsystem, "Number of boxes produced.", nil).WithLabelValues(),
		adders:    metrics.NewCounter(reg, "adders_total", subsystem, "Number of adders found by the cut engine.", []string{"kind"}),
		xors:      metrics.NewCounter(reg, "xor_cuts_total", subsystem, "Number of xor cuts found by the cut engine.", nil).WithLabelValues(),
		ranks:     metrics.NewHistogramWithBuckets(reg, "ranks", subsystem, "Number of ranks per box.", nil, prometheus.ExponentialBuckets(1, 2, 10)).WithLabelValues(),
		conflicts: metrics.NewCounter(reg, "conflicts_total", subsystem, "Number of nodes shared between xor trees.", nil).WithLabelValues(),
		duration:  metrics.NewHistogram(reg, "duration_seconds", subsystem, "Time to produce a box.", nil).WithLabelValues(),
	}
}

func (m *Metrics) observe(full, half, xors, ranks, conflicts int, d time.Duration) {
	m.boxes.Inc()
	m.adders.WithLabelValues("full").Add(float64(full))
	m.adders.WithLabelValues("half").Add(float64(half))
	m.xors.Add(float64(xors))
	m.ranks.Observe(float64(ranks))
	m.conflicts.Add(float64(conflicts))
	m.duration.Observe(d.Seconds())
}
