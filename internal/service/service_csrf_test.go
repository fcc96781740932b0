// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-autosave/internal/config"
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-autosave-test"
)

func newTestCSRFService() CSRFService {
	return NewCSRFService(config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
	}, logger.Nop())
}

// ── IssueToken ──────────────────────────────────────────────────────────────

func TestCSRFService_IssueToken(t *testing.T) {
	svc := newTestCSRFService()

	token, err := svc.IssueToken(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.NotEmpty(t, token.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)
}

func TestCSRFService_IssueToken_UniqueIDs(t *testing.T) {
	svc := newTestCSRFService()

	first, err := svc.IssueToken(context.Background())
	require.NoError(t, err)
	second, err := svc.IssueToken(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.SignedString, second.SignedString)
}

// ── VerifyPair ──────────────────────────────────────────────────────────────

func TestCSRFService_VerifyPair(t *testing.T) {
	svc := newTestCSRFService()
	token, err := svc.IssueToken(context.Background())
	require.NoError(t, err)

	other, err := svc.IssueToken(context.Background())
	require.NoError(t, err)

	foreign, err := utils.GenerateCSRFToken("someone-else", "id", time.Hour, testSignKey)
	require.NoError(t, err)

	expired, err := utils.GenerateCSRFToken(testIssuer, "id", -time.Minute, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		cookie  string
		wantErr error
	}{
		{name: "valid pair", header: token.SignedString, cookie: token.SignedString},
		{name: "missing header", header: "", cookie: token.SignedString, wantErr: ErrCSRFTokenMissing},
		{name: "missing cookie", header: token.SignedString, cookie: "", wantErr: ErrCSRFTokenMissing},
		{name: "mismatch", header: token.SignedString, cookie: other.SignedString, wantErr: ErrCSRFTokenMismatch},
		{name: "garbage", header: "garbage", cookie: "garbage", wantErr: ErrInvalidCSRFToken},
		{name: "foreign issuer", header: foreign.SignedString, cookie: foreign.SignedString, wantErr: ErrInvalidCSRFToken},
		{name: "expired", header: expired.SignedString, cookie: expired.SignedString, wantErr: ErrInvalidCSRFToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.VerifyPair(context.Background(), tt.header, tt.cookie)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCSRFService_VerifyPair_WrongKey(t *testing.T) {
	svc := newTestCSRFService()
	forged, err := utils.GenerateCSRFToken(testIssuer, "id", time.Hour, "another-key")
	require.NoError(t, err)

	err = svc.VerifyPair(context.Background(), forged.SignedString, forged.SignedString)
	assert.ErrorIs(t, err, ErrInvalidCSRFToken)
}
