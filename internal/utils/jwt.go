// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-autosave/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateCSRFToken creates a signed HMAC-SHA256 JWT used as an anti-forgery
// token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - ID        (jti): the unique token identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateCSRFToken("go-autosave", uuid.NewString(), time.Hour, "secret")
func GenerateCSRFToken(issuer, tokenID string, tokenDuration time.Duration, signKey string) (models.CSRFToken, error) {
	if issuer == "" || tokenID == "" || tokenDuration == 0 || signKey == "" {
		return models.CSRFToken{}, errors.New("invalid params for generating CSRF token")
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		ID:        tokenID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.CSRFToken{}, fmt.Errorf("error occurred during signing CSRF token: %w", err)
	}

	return models.CSRFToken{
		ID:           tokenID,
		SignedString: tokenString,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateCSRFToken validates the given token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - ID (jti) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateCSRFToken(raw, "secret", "go-autosave")
//	if err != nil {
//	    // reject the request
//	}
func ValidateCSRFToken(tokenString, tokenSignKey, tokenIssuer string) (models.CSRFToken, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.CSRFToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.ID == "" {
		return models.CSRFToken{}, errors.New("empty token ID error")
	}

	return models.CSRFToken{
		ID:           claims.ID,
		SignedString: tokenString,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}
