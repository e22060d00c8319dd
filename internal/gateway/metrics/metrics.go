// Package metrics exposes the gateway's Prometheus collectors.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the gateway collectors. It satisfies upstream.Observer.
type Metrics struct {
	upstreamRequests *prometheus.CounterVec
	refreshes        *prometheus.CounterVec
	guardDecisions   *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "registra_upstream_requests_total",
			Help: "Requests sent to the remote registration API, by status code.",
		}, []string{"code"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "registra_token_refresh_total",
			Help: "Silent token refresh attempts, by outcome.",
		}, []string{"outcome"}),
		guardDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "registra_guard_decisions_total",
			Help: "Route guard decisions, by action.",
		}, []string{"action"}),
	}

	reg.MustRegister(m.upstreamRequests, m.refreshes, m.guardDecisions)
	return m
}

// UpstreamRequest implements upstream.Observer.
func (m *Metrics) UpstreamRequest(statusCode int) {
	m.upstreamRequests.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Refresh implements upstream.Observer.
func (m *Metrics) Refresh(ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	m.refreshes.WithLabelValues(outcome).Inc()
}

// GuardDecision records one route guard verdict.
func (m *Metrics) GuardDecision(action string) {
	m.guardDecisions.WithLabelValues(action).Inc()
}
