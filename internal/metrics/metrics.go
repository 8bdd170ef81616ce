// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, dashboard actions and
// authentication.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "content_dashboard"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Dashboard metrics - track dispatched view-state actions
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "actions_total",
			Help:      "Total number of dispatched dashboard actions by type",
		},
		[]string{"action"},
	)

	ArticleUpdateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "article_update_duration_seconds",
			Help:      "Article update duration in seconds, including the simulated commit delay",
			Buckets:   []float64{.25, .5, 1, 1.5, 2, 3, 5},
		},
	)

	// Auth metrics - track login outcomes
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Total number of login attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// ObserveLogin records a login attempt outcome.
func ObserveLogin(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	LoginsTotal.WithLabelValues(outcome).Inc()
}

// ObserveArticleUpdate records the duration of an article update.
func ObserveArticleUpdate(seconds float64) {
	ArticleUpdateDuration.Observe(seconds)
}
