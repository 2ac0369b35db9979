// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package hoptrace

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics of the runs of a pipeline
type metrics struct {
	hops           prometheus.Counter
	lookupDuration prometheus.Histogram
	lookupErrors   prometheus.Counter
	runSuccess     prometheus.Gauge
	runTimestamp   prometheus.Gauge
}

// newMetrics initializes the metric collectors
func newMetrics() metrics {
	return metrics{
		hops: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hoptrace_hops_total",
				Help: "Number of hops read from the trace-route utility.",
			},
		),
		lookupDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "hoptrace_lookup_duration_seconds",
				Help:    "Duration of the metadata lookups of the hops.",
				Buckets: prometheus.DefBuckets,
			},
		),
		lookupErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hoptrace_lookup_errors_total",
				Help: "Number of failed metadata lookups.",
			},
		),
		runSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "hoptrace_last_run_success",
				Help: "Whether the last run produced a report (1) or failed (0).",
			},
		),
		runTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "hoptrace_last_run_timestamp_seconds",
				Help: "Unix time the last run finished.",
			},
		),
	}
}

// register registers the collectors on r
func (m metrics) register(r prometheus.Registerer) (err error) {
	for _, c := range []prometheus.Collector{m.hops, m.lookupDuration, m.lookupErrors, m.runSuccess, m.runTimestamp} {
		err = errors.Join(err, r.Register(c))
	}
	return err
}

// finish records the outcome of a run
func (m metrics) finish(err error) {
	if err != nil {
		m.runSuccess.Set(0)
	} else {
		m.runSuccess.Set(1)
	}
	m.runTimestamp.SetToCurrentTime()
}
