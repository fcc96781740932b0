// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the reference autosave endpoint.
//
// It exposes the chi routes, request handlers and middleware of the server.
// Request tracing, access logging, body compression and the double-submit
// CSRF check run in this package before requests are delegated to the
// service layer. Save outcomes are exported as Prometheus metrics on
// /metrics.
package http
