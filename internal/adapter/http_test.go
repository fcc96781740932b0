// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-autosave/internal/config"
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpEndpointAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string, opts ...func(*config.ClientAdapter)) *httpEndpointAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
		Encoding:       config.EncodingForm,
	}
	for _, opt := range opts {
		opt(&adapterCfg)
	}

	a, err := NewHTTPEndpointAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpEndpointAdapter)
}

func withJSONEncoding(cfg *config.ClientAdapter) { cfg.Encoding = config.EncodingJSON }

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPEndpointAdapter_AddressResolution(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.ClientAdapter
		wantErr bool
	}{
		{name: "host and port", cfg: config.ClientAdapter{HTTPAddress: "localhost:8080"}},
		{name: "full url", cfg: config.ClientAdapter{HTTPAddress: "https://example.com/"}},
		{name: "absolute endpoint", cfg: config.ClientAdapter{Endpoint: "http://example.com/api/forms/profile"}},
		{name: "relative endpoint only", cfg: config.ClientAdapter{Endpoint: "/api/forms/profile"}, wantErr: true},
		{name: "nothing", cfg: config.ClientAdapter{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPEndpointAdapter(tt.cfg, logger.Nop())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptyAddress)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewHTTPEndpointAdapter_PresetToken(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1", func(cfg *config.ClientAdapter) {
		cfg.CSRFToken = "  preset  "
	})
	assert.Equal(t, "preset", a.CSRFToken())
}

// ── Save ────────────────────────────────────────────────────────────────────

func TestSave_FormEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/forms/profile", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		assert.Equal(t, "XMLHttpRequest", r.Header.Get("X-Requested-With"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Alice", r.PostForm.Get("name"))
		assert.Equal(t, "31", r.PostForm.Get("age"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "status": "okay", "name": "Alice", "age": 31}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Save(context.Background(), "/api/forms/profile", models.Fields{"name": "Alice", "age": "31"})

	require.NoError(t, err)
	assert.Equal(t, models.Fields{"name": "Alice", "age": "31"}, resp.Persisted)
	assert.False(t, resp.Rejected())
}

func TestSave_JSONEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "a@b.c"}, body)

		_, _ = w.Write([]byte(`{"success": true, "email": "a@b.c"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, withJSONEncoding)
	resp, err := a.Save(context.Background(), "/api/forms/profile", models.Fields{"email": "a@b.c"})

	require.NoError(t, err)
	assert.Equal(t, "a@b.c", resp.Persisted["email"])
}

func TestSave_EmptyEchoIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Save(context.Background(), "/save", models.Fields{"a": "1"})

	require.NoError(t, err)
	assert.Empty(t, resp.Persisted)
}

func TestSave_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "status": "error", "errors": {"email": "invalid"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Save(context.Background(), "/save", models.Fields{"email": "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSaveRejected)
	assert.Contains(t, err.Error(), "invalid")
}

func TestSave_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Save(context.Background(), "/save", models.Fields{"a": "1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestSave_HTTPErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "conflict", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "too large", status: http.StatusRequestEntityTooLarge, wantErr: ErrPayloadTooLarge},
		{name: "unsupported media type", status: http.StatusUnsupportedMediaType, wantErr: ErrUnsupportedMediaType},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.name))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Save(context.Background(), "/save", models.Fields{"a": "1"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSave_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Save(context.Background(), "/save", models.Fields{"a": "1"})

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "418")
}

func TestSave_ErrorEnvelopeMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"success": false, "status": "error", "errors": {"error": "no fields provided"}}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Save(context.Background(), "/save", models.Fields{"a": "1"})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.EqualError(t, err, "bad request: no fields provided")
}

func TestSave_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Save(context.Background(), "/save", models.Fields{"a": "1"})

	require.Error(t, err)
}

// ── Load ────────────────────────────────────────────────────────────────────

func TestLoad_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/forms/profile", r.URL.Path)
		assert.Empty(t, r.Header.Get(CSRFHeaderName))

		_, _ = w.Write([]byte(`{"form_id": "profile", "fields": {"name": "Alice"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetCSRFToken("tok")

	fields, err := a.Load(context.Background(), "/api/forms/profile")

	require.NoError(t, err)
	assert.Equal(t, models.Fields{"name": "Alice"}, fields)
}

func TestLoad_UnknownFormIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"form_id": "profile", "fields": null}`))
	}))
	defer srv.Close()

	fields, err := newTestAdapter(t, srv.URL).Load(context.Background(), "/api/forms/profile")

	require.NoError(t, err)
	assert.NotNil(t, fields)
	assert.Empty(t, fields)
}

func TestLoad_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			_, _ = w.Write([]byte(`not json`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.Load(context.Background(), "/missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = a.Load(context.Background(), "/broken")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── CSRF ────────────────────────────────────────────────────────────────────

func TestSave_AttachesCSRFHeaderAndCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok-123", r.Header.Get(CSRFHeaderName))

		cookie, err := r.Cookie(CSRFCookieName)
		require.NoError(t, err)
		assert.Equal(t, "tok-123", cookie.Value)

		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetCSRFToken("tok-123")

	_, err := a.Save(context.Background(), "/save", models.Fields{"a": "1"})
	require.NoError(t, err)
}

func TestSave_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(CSRFHeaderName))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Save(context.Background(), "/save", models.Fields{"a": "1"})
	require.NoError(t, err)
}

func TestFetchCSRFToken_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, CSRFTokenPath, r.URL.Path)
		// safe methods never carry the token
		assert.Empty(t, r.Header.Get(CSRFHeaderName))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"csrf_token": "fresh", "expires_at": "2030-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetCSRFToken("stale")

	token, err := a.FetchCSRFToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "fresh", token.SignedString)
	assert.Equal(t, 2030, token.ExpiresAt.Year())
	assert.Equal(t, "fresh", a.CSRFToken())
}

func TestFetchCSRFToken_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchCSRFToken(context.Background())

	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Empty(t, a.CSRFToken())
}

func TestFetchCSRFToken_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "boom")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchCSRFToken(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestCSRFSafeMethod(t *testing.T) {
	for _, m := range []string{http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace} {
		assert.True(t, csrfSafeMethod(m), m)
	}
	for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		assert.False(t, csrfSafeMethod(m), m)
	}
}
