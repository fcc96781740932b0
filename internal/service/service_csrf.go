// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-autosave/internal/config"
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/utils"
	"github.com/MKhiriev/go-autosave/models"
)

// csrfService is the concrete implementation of CSRFService. Tokens are
// HS256-signed JWTs carrying a UUIDv7 "jti"; the double-submit check compares
// the header copy with the cookie copy.
type csrfService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	ids *utils.UUIDGenerator

	logger *logger.Logger
}

// NewCSRFService constructs a CSRFService populated with the token
// parameters from cfg.
func NewCSRFService(cfg config.App, logger *logger.Logger) CSRFService {
	return &csrfService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		ids:           utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

func (c *csrfService) IssueToken(ctx context.Context) (models.CSRFToken, error) {
	token, err := utils.GenerateCSRFToken(c.tokenIssuer, c.ids.Generate(), c.tokenDuration, c.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*csrfService.IssueToken").Msg("error generating csrf token")
		return models.CSRFToken{}, fmt.Errorf("error generating csrf token: %w", err)
	}

	return token, nil
}

// VerifyPair returns:
//   - ErrCSRFTokenMissing if either copy is empty.
//   - ErrCSRFTokenMismatch if the copies differ.
//   - ErrInvalidCSRFToken if the token fails signature, issuer or expiry
//     validation.
func (c *csrfService) VerifyPair(ctx context.Context, headerToken, cookieToken string) error {
	log := logger.FromContext(ctx)

	if headerToken == "" || cookieToken == "" {
		return ErrCSRFTokenMissing
	}
	if subtle.ConstantTimeCompare([]byte(headerToken), []byte(cookieToken)) != 1 {
		return ErrCSRFTokenMismatch
	}

	token, err := utils.ValidateCSRFToken(headerToken, c.tokenSignKey, c.tokenIssuer)
	if err != nil {
		log.Err(err).Str("func", "*csrfService.VerifyPair").Msg("csrf token rejected")
		return fmt.Errorf("%w: %w", ErrInvalidCSRFToken, err)
	}

	log.Debug().Str("jti", token.ID).Msg("csrf token accepted")
	return nil
}
