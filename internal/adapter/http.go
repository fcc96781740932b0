// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-autosave/internal/config"
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/utils"
	"github.com/MKhiriev/go-autosave/models"
)

// CSRFTokenPath is the route serving fresh anti-forgery tokens.
const CSRFTokenPath = "/api/csrf"

type httpEndpointAdapter struct {
	client   *utils.HTTPClient
	encoding string

	mu        sync.RWMutex
	csrfToken string

	logger *logger.Logger
}

// NewHTTPEndpointAdapter constructs an HTTP implementation of
// [EndpointAdapter]. It resolves the base URL from adapterCfg.HTTPAddress
// (falling back to the origin of an absolute adapterCfg.Endpoint),
// configures the underlying HTTP client with the request timeout, and
// installs the CSRF request middleware. A host-supplied adapterCfg.CSRFToken
// is stored right away.
//
// Returns an error if no usable address is configured.
func NewHTTPEndpointAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (EndpointAdapter, error) {
	baseURL, err := resolveBaseURL(adapterCfg)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	encoding := adapterCfg.Encoding
	if encoding == "" {
		encoding = config.DefaultEncoding
	}

	h := &httpEndpointAdapter{
		client: utils.NewHTTPClient(utils.HTTPClientOptions{
			BaseURL: baseURL,
			Timeout: adapterCfg.RequestTimeout,
		}),
		encoding: encoding,
		logger:   logger.WithComponent("adapter"),
	}
	h.client.OnBeforeRequest(h.attachCSRF)

	h.SetCSRFToken(adapterCfg.CSRFToken)

	return h, nil
}

func resolveBaseURL(cfg config.ClientAdapter) (string, error) {
	if strings.TrimSpace(cfg.HTTPAddress) != "" {
		return normalizeBaseURL(cfg.HTTPAddress)
	}

	u, err := url.Parse(strings.TrimSpace(cfg.Endpoint))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", ErrEmptyAddress
	}

	return u.Scheme + "://" + u.Host, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetCSRFToken implements [EndpointAdapter].
func (h *httpEndpointAdapter) SetCSRFToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.csrfToken = strings.TrimSpace(token)
}

// CSRFToken implements [EndpointAdapter].
func (h *httpEndpointAdapter) CSRFToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.csrfToken
}

// Save implements [EndpointAdapter]. It POSTs fields to endpoint using the
// configured encoding (form-encoded or JSON) and decodes the flat response
// envelope.
func (h *httpEndpointAdapter) Save(ctx context.Context, endpoint string, fields models.Fields) (models.SaveResponse, error) {
	req := h.client.R().SetContext(ctx)

	switch h.encoding {
	case config.EncodingJSON:
		req.SetHeader("Content-Type", "application/json").SetBody(fields)
	default:
		req.SetFormDataFromValues(fields.URLValues())
	}

	resp, err := req.Post(endpoint)
	if err != nil {
		return models.SaveResponse{}, fmt.Errorf("save request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveResponse{}, err
	}

	var saveResp models.SaveResponse
	if err = json.Unmarshal(resp.Body(), &saveResp); err != nil {
		return models.SaveResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if saveResp.Rejected() {
		return saveResp, fmt.Errorf("%w: %s", ErrSaveRejected, string(saveResp.Errors))
	}

	h.logger.Debug().
		Str("endpoint", endpoint).
		Int("sent", len(fields)).
		Int("persisted", len(saveResp.Persisted)).
		Msg("save request completed")

	return saveResp, nil
}

// Load implements [EndpointAdapter]. It GETs endpoint and decodes a
// [models.FormSnapshot].
func (h *httpEndpointAdapter) Load(ctx context.Context, endpoint string) (models.Fields, error) {
	resp, err := h.client.R().SetContext(ctx).Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("load request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var snapshot models.FormSnapshot
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if snapshot.Fields == nil {
		snapshot.Fields = models.Fields{}
	}

	return snapshot.Fields, nil
}

// FetchCSRFToken implements [EndpointAdapter]. It GETs [CSRFTokenPath] and
// stores the returned token.
func (h *httpEndpointAdapter) FetchCSRFToken(ctx context.Context) (models.CSRFToken, error) {
	var token models.CSRFToken

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&token).
		Get(CSRFTokenPath)
	if err != nil {
		return models.CSRFToken{}, fmt.Errorf("csrf token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CSRFToken{}, err
	}
	if token.SignedString == "" {
		return models.CSRFToken{}, fmt.Errorf("%w: empty csrf token", ErrMalformedResponse)
	}

	h.SetCSRFToken(token.SignedString)
	return token, nil
}
