// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-autosave/internal/adapter"
)

// ErrNoFields is returned by New when the form registers no fields.
var ErrNoFields = errors.New("form has no fields")

func humanizeSaveError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrForbidden):
		return "Сервер отклонил запрос (CSRF)"
	case errors.Is(err, adapter.ErrSaveRejected):
		return "Сервер отклонил сохранение"
	case errors.Is(err, adapter.ErrMalformedResponse):
		return "Некорректный ответ сервера"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
