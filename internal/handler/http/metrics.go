// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "autosave"

// Save outcomes used as the "outcome" label.
const (
	outcomeSaved    = "saved"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

type metrics struct {
	registry *prom.Registry

	saves        *prom.CounterVec
	savedFields  prom.Counter
	saveDuration prom.Histogram
	csrfFailures *prom.CounterVec
}

func newMetrics(reg *prom.Registry) *metrics {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	m := &metrics{
		registry: reg,
		saves: prom.NewCounterVec(prom.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "saves_total",
			Help:      "Autosave requests by outcome",
		}, []string{"outcome"}),
		savedFields: prom.NewCounter(prom.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "saved_fields_total",
			Help:      "Form fields persisted by successful saves",
		}),
		saveDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "save_duration_seconds",
			Help:      "Duration of autosave requests",
			Buckets:   prom.DefBuckets,
		}),
		csrfFailures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "csrf_failures_total",
			Help:      "Requests refused by the CSRF check by reason",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.saves, m.savedFields, m.saveDuration, m.csrfFailures)

	return m
}

func (m *metrics) observeSave(outcome string, fields int, d time.Duration) {
	if m == nil {
		return
	}
	m.saves.WithLabelValues(outcome).Inc()
	m.saveDuration.Observe(d.Seconds())
	if outcome == outcomeSaved {
		m.savedFields.Add(float64(fields))
	}
}

func (m *metrics) observeCSRFFailure(reason string) {
	if m == nil {
		return
	}
	m.csrfFailures.WithLabelValues(reason).Inc()
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
