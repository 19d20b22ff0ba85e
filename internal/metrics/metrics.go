// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package metrics holds prometheus helpers shared by the acec packages.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace is the namespace of all acec metrics.
const Namespace = "acec"

// NewCounter creates a counter vector registered with reg.  A nil reg
// registers nothing.
func NewCounter(reg prometheus.Registerer, name, subsystem, help string, labels []string) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(prometheus.CounterOpts{Namespace: Namespace, Subsystem: subsystem, Name: name, Help: help}, labels)
}

// NewGauge creates a gauge vector registered with reg.
func NewGauge(reg prometheus.Registerer, name, subsystem, help string, labels []string) *prometheus.GaugeVec {
	return promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{Namespace: Namespace, Subsystem: subsystem, Name: name, Help: help}, labels)
}

// NewHistogram creates a histogram vector with default buckets.
func NewHistogram(reg prometheus.Registerer, name, subsystem, help string, labels []string) *prometheus.HistogramVec {
	return NewHistogramWithBuckets(reg, name, subsystem, help, labels, prometheus.DefBuckets)
}

// NewHistogramWithBuckets creates a histogram vector with custom buckets.
func NewHistogramWithBuckets(reg prometheus.Registerer, name, subsystem, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{Namespace: Namespace, Subsystem: subsystem, Name: name, Help: help, Buckets: buckets}, labels)
}

// ObserveSince records the time elapsed since start in seconds.
func ObserveSince(o prometheus.Observer, start time.Time) time.Duration {
	d := time.Since(start)
	o.Observe(d.Seconds())
	return d
}
