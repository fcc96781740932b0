// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/service"
	"github.com/MKhiriev/go-autosave/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Mock: FormService ----

type mockFormSvc struct {
	saveFn func(ctx context.Context, formID string, fields models.Fields) (models.Fields, error)
	getFn  func(ctx context.Context, formID string) (models.Fields, error)
}

func (m *mockFormSvc) SaveFields(ctx context.Context, formID string, fields models.Fields) (models.Fields, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, formID, fields)
	}
	return fields, nil
}

func (m *mockFormSvc) GetFields(ctx context.Context, formID string) (models.Fields, error) {
	if m.getFn != nil {
		return m.getFn(ctx, formID)
	}
	return models.Fields{}, nil
}

// ---- Mock: CSRFService ----

// mockCSRFSvc accepts any pair whose header equals the cookie and equals
// token (when set).
type mockCSRFSvc struct {
	token    models.CSRFToken
	issueErr error
}

func (m *mockCSRFSvc) IssueToken(_ context.Context) (models.CSRFToken, error) {
	return m.token, m.issueErr
}

func (m *mockCSRFSvc) VerifyPair(_ context.Context, header, cookie string) error {
	switch {
	case header == "" || cookie == "":
		return service.ErrCSRFTokenMissing
	case header != cookie:
		return service.ErrCSRFTokenMismatch
	case m.token.SignedString != "" && header != m.token.SignedString:
		return service.ErrInvalidCSRFToken
	}
	return nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoSvc struct{}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return "test-version"
}

// ---- Helpers ----

const testToken = "tok-123"

func newTestServices(forms service.FormService) *service.Services {
	if forms == nil {
		forms = &mockFormSvc{}
	}
	return &service.Services{
		FormService:    forms,
		CSRFService:    &mockCSRFSvc{token: models.CSRFToken{SignedString: testToken}},
		AppInfoService: &mockAppInfoSvc{},
	}
}

func newTestRouter(t *testing.T, forms service.FormService) (http.Handler, *Handler) {
	t.Helper()
	h := NewHandler(newTestServices(forms), prometheus.NewRegistry(), logger.Nop())
	return h.Init(), h
}

func withCSRF(r *http.Request, token string) *http.Request {
	r.Header.Set(models.CSRFHeaderName, token)
	r.AddCookie(&http.Cookie{Name: models.CSRFCookieName, Value: token})
	return r
}

func newFormRequest(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ---- Tests ----

func TestInit_Routes(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	tests := []struct {
		name       string
		req        *http.Request
		wantStatus int
	}{
		{name: "version", req: httptest.NewRequest(http.MethodGet, "/api/version/", nil), wantStatus: http.StatusOK},
		{name: "csrf", req: httptest.NewRequest(http.MethodGet, "/api/csrf", nil), wantStatus: http.StatusOK},
		{name: "get form", req: httptest.NewRequest(http.MethodGet, "/api/forms/profile", nil), wantStatus: http.StatusOK},
		{name: "save form", req: withCSRF(newFormRequest("/api/forms/profile", "a=1"), testToken), wantStatus: http.StatusOK},
		{name: "save form without csrf", req: newFormRequest("/api/forms/profile", "a=1"), wantStatus: http.StatusForbidden},
		{name: "metrics", req: httptest.NewRequest(http.MethodGet, "/metrics", nil), wantStatus: http.StatusOK},
		{name: "unknown route", req: httptest.NewRequest(http.MethodGet, "/api/unknown", nil), wantStatus: http.StatusNotFound},
		{name: "wrong method", req: httptest.NewRequest(http.MethodDelete, "/api/forms/profile", nil), wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, tt.req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestInit_FallbacksUseEnvelope(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/nope", nil),
		httptest.NewRequest(http.MethodPut, "/api/forms/profile", nil),
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		var resp models.SaveResponse
		require.NoError(t, resp.UnmarshalJSON(rr.Body.Bytes()), req.URL.Path)
		assert.True(t, resp.Rejected())
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version/", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
}

func TestInit_WithoutConstructorStillServesMetrics(t *testing.T) {
	h := &Handler{services: newTestServices(nil), logger: logger.Nop()}
	router := h.Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
