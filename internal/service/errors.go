// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyEndpoint = errors.New("autosave endpoint is empty")
	ErrNilAdapter    = errors.New("endpoint adapter is nil")
	ErrUnknownField  = errors.New("field is not registered in the form")
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrInvalidCSRFToken  = errors.New("invalid csrf token")
	ErrCSRFTokenMissing  = errors.New("csrf token missing")
	ErrCSRFTokenMismatch = errors.New("csrf header and cookie do not match")

	ErrValidationNoFormID = errors.New("no form ID was given")
	ErrValidationNoFields = errors.New("no fields provided")
)
