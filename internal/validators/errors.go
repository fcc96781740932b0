// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFormID       = errors.New("form ID is required")
	ErrFormIDTooLong     = errors.New("form ID is too long")
	ErrNoFields          = errors.New("fields list cannot be empty")
	ErrInvalidFieldName  = errors.New("invalid field name")
	ErrReservedFieldName = errors.New("field name is reserved by the response envelope")
	ErrFieldValueTooLong = errors.New("field value is too long")
)
