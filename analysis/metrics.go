// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Config carries the optional diagnostics every public operation in this
// package accepts: a structured logger and a Prometheus registerer. Both
// are nil-safe; an analysis run with no Config behaves identically to one
// with zap.NewNop() and no metrics registered.
type Config struct {
	logger  *zap.Logger
	metrics *Metrics
}

// Option configures a Config.
type Option func(*Config)

// WithLogger attaches a structured logger, in the style of
// validator/logger.go. MinimalQuorums logs one Debug entry at its end with
// the candidate and minimal family sizes (the sieve reduction); nothing
// is logged inside the per-branch hot loop.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.logger = l }
}

// WithRegisterer registers this analysis run's counters and histograms
// against reg, mirroring metrics.NewMetrics(reg).Register(collector).
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Config) { c.metrics = NewMetrics(reg) }
}

func newConfig(opts ...Option) *Config {
	c := &Config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Metrics holds the optional Prometheus instrumentation for the
// enumerators.
type Metrics struct {
	enumerations   prometheus.Counter
	branches       prometheus.Counter
	prunes         prometheus.Counter
	minimalQuorums prometheus.Histogram
}

// NewMetrics constructs and registers the analyzer's collectors against
// reg. A nil reg yields unregistered, harmlessly-incrementable
// collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		enumerations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fbas",
			Subsystem: "analysis",
			Name:      "enumerations_total",
			Help:      "Number of minimal-set enumeration runs performed.",
		}),
		branches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fbas",
			Subsystem: "analysis",
			Name:      "dfs_branches_total",
			Help:      "Number of DFS branches explored across all enumerators.",
		}),
		prunes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fbas",
			Subsystem: "analysis",
			Name:      "dfs_prunes_total",
			Help:      "Number of search branches pruned across all enumerators.",
		}),
		minimalQuorums: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fbas",
			Subsystem: "analysis",
			Name:      "minimal_quorums_found",
			Help:      "Size of the minimal-set family returned per enumeration run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.enumerations, m.branches, m.prunes, m.minimalQuorums} {
			// A collector already registered under this name is fine: the
			// analyzer may be constructed more than once against a shared
			// registerer, and re-registration errors carry no information
			// the caller needs to act on.
			_ = reg.Register(c)
		}
	}
	return m
}

func (m *Metrics) observeEnumeration(resultSize int) {
	if m == nil {
		return
	}
	m.enumerations.Inc()
	m.minimalQuorums.Observe(float64(resultSize))
}

func (m *Metrics) observeBranch() {
	if m == nil {
		return
	}
	m.branches.Inc()
}

func (m *Metrics) observePrune() {
	if m == nil {
		return
	}
	m.prunes.Inc()
}
