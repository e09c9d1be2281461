// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package scapegoat

import (
	"cmp"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/scapegoat-go/scapegoat/internal/tree"
)

// Metrics wraps a Map or Set so its size, capacity, and rebuild count can
// be scraped as Prometheus gauges/counters. It is entirely optional: a
// container works fine without ever being wrapped in one.
type Metrics struct {
	id          uuid.UUID
	name        string
	lenFn       func() int
	capFn       func() int
	rebalCntFn  func() uint64

	lenDesc    *prometheus.Desc
	capDesc    *prometheus.Desc
	rebalDesc  *prometheus.Desc
}

// NewMapMetrics builds a Metrics collector for m, labeled with name and a
// freshly generated correlation UUID (useful for telling apart multiple
// instances of the same named container in aggregated dashboards).
func NewMapMetrics[K cmp.Ordered, V any, Ix tree.Index](name string, m *Map[K, V, Ix]) *Metrics {
	return newMetrics(name, m.Len, m.Capacity, m.RebalCount)
}

// NewSetMetrics builds a Metrics collector for s.
func NewSetMetrics[K cmp.Ordered, Ix tree.Index](name string, s *Set[K, Ix]) *Metrics {
	return newMetrics(name, s.Len, s.Capacity, func() uint64 { return s.m.RebalCount() })
}

func newMetrics(name string, lenFn, capFn func() int, rebalCntFn func() uint64) *Metrics {
	id := uuid.New()
	labels := prometheus.Labels{"name": name, "id": id.String()}
	return &Metrics{
		id:         id,
		name:       name,
		lenFn:      lenFn,
		capFn:      capFn,
		rebalCntFn: rebalCntFn,
		lenDesc: prometheus.NewDesc(
			"scapegoat_container_len", "Number of live entries.",
			nil, labels,
		),
		capDesc: prometheus.NewDesc(
			"scapegoat_container_capacity", "Fixed maximum entry count.",
			nil, labels,
		),
		rebalDesc: prometheus.NewDesc(
			"scapegoat_container_rebalance_total", "Number of subtree rebuilds performed.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	ch <- m.lenDesc
	ch <- m.capDesc
	ch <- m.rebalDesc
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(m.lenDesc, prometheus.GaugeValue, float64(m.lenFn()))
	ch <- prometheus.MustNewConstMetric(m.capDesc, prometheus.GaugeValue, float64(m.capFn()))
	ch <- prometheus.MustNewConstMetric(m.rebalDesc, prometheus.CounterValue, float64(m.rebalCntFn()))
}

// ID returns the collector's correlation UUID.
func (m *Metrics) ID() uuid.UUID { return m.id }
