// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route patterns served by [Handler.Init].
const (
	routeCSRF    = "/api/csrf"
	routeForm    = "/api/forms/{formID}"
	routeVersion = "/api/version/"
	routeMetrics = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	if h.metrics == nil {
		h.metrics = newMetrics(nil)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZipRequest)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.Get(routeVersion, h.getServerVersion)
	router.Get(routeCSRF, h.issueCSRFToken)
	router.Get(routeForm, h.getForm)

	// state-changing routes
	router.Group(func(r chi.Router) {
		r.Use(h.csrf)
		r.Post(routeForm, h.saveForm)
	})

	router.Handle(routeMetrics, h.metrics.handler())

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
