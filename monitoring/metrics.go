// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of FREQGATE.
//
//  FREQGATE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  FREQGATE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with FREQGATE.  If not, see <https://www.gnu.org/licenses/>.

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "freqgate"
)

// CacheStatsProvider is anything able to report its hits and misses
type CacheStatsProvider interface {
	Stats() (hits, misses int64)
}

// Metrics holds Prometheus collectors related to the frequency
// database calls and the result cache.
type Metrics struct {
	UpstreamCalls    *prometheus.CounterVec
	UpstreamErrors   *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
}

func (m *Metrics) Observe(item CallLog) {
	if m == nil {
		return
	}
	m.UpstreamCalls.WithLabelValues(item.Func).Inc()
	if item.Err != nil {
		m.UpstreamErrors.WithLabelValues(item.Func).Inc()
	}
	m.UpstreamDuration.WithLabelValues(item.Func).Observe(item.TimeSpent().Seconds())
}

// NewMetrics creates all the collectors and registers them in reg.
// In case cache is not nil, its hit/miss counts are exported too.
func NewMetrics(reg prometheus.Registerer, cache CacheStatsProvider) *Metrics {
	m := &Metrics{
		UpstreamCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "upstream_calls_total",
				Help:      "Total number of frequency database API calls by function.",
			},
			[]string{"func"},
		),
		UpstreamErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "upstream_errors_total",
				Help:      "Total number of failed frequency database API calls by function.",
			},
			[]string{"func"},
		),
		UpstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "upstream_call_duration_seconds",
				Help:      "Frequency database API call latency in seconds.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"func"},
		),
	}
	reg.MustRegister(m.UpstreamCalls, m.UpstreamErrors, m.UpstreamDuration)
	if cache != nil {
		reg.MustRegister(
			prometheus.NewCounterFunc(
				prometheus.CounterOpts{
					Namespace: metricsNamespace,
					Name:      "cache_hits_total",
					Help:      "Total number of result cache hits.",
				},
				func() float64 {
					hits, _ := cache.Stats()
					return float64(hits)
				},
			),
			prometheus.NewCounterFunc(
				prometheus.CounterOpts{
					Namespace: metricsNamespace,
					Name:      "cache_misses_total",
					Help:      "Total number of result cache misses.",
				},
				func() float64 {
					_, misses := cache.Stats()
					return float64(misses)
				},
			),
		)
	}
	return m
}
