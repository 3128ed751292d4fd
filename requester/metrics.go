// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const methodLabel = "method"

type Metrics struct {
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewMetrics(namespace string, r prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests",
			Help:      "number of rpc requests sent",
		}, []string{methodLabel}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_failures",
			Help:      "number of rpc requests that returned an error",
		}, []string{methodLabel}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "time spent waiting for rpc responses",
			Buckets:   prometheus.DefBuckets,
		}, []string{methodLabel}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.requests),
		r.Register(m.failures),
		r.Register(m.latency),
	)
	return m, errs.Err
}

func (m *Metrics) observe(method string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method).Inc()
	m.latency.WithLabelValues(method).Observe(d.Seconds())
	if err != nil {
		m.failures.WithLabelValues(method).Inc()
	}
}
