// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the application and the
// handler exposing them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/fave-tweets/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fave_tweets"

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	syncRuns     *prometheus.CounterVec
	syncInserted prometheus.Counter
	syncFetched  prometheus.Counter
	syncDuration prometheus.Histogram

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		syncRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "runs_total",
			Help:      "Favorites synchronisation runs by outcome.",
		}, []string{"outcome"}),
		syncInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "inserted_tweets_total",
			Help:      "Tweets stored by synchronisation.",
		}),
		syncFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "fetched_tweets_total",
			Help:      "Posts returned by the favorites source.",
		}),
		syncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of synchronisation runs.",
			Buckets:   prometheus.DefBuckets,
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.syncRuns,
		m.syncInserted,
		m.syncFetched,
		m.syncDuration,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// ObserveSync records one synchronisation run.
func (m *Metrics) ObserveSync(outcome string, report models.SyncReport) {
	m.syncRuns.WithLabelValues(outcome).Inc()
	m.syncInserted.Add(float64(report.Inserted))
	m.syncFetched.Add(float64(report.Fetched))
	m.syncDuration.Observe(report.Duration.Seconds())
}

// ObserveHTTP records one served request. route is the chi route pattern,
// never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
