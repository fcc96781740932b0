// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSON is set on every response written by [WriteJSON].
const ContentTypeJSON = "application/json; charset=utf-8"

// WriteJSON encodes data and writes it with statusCode. Field values are
// echoed back to the client as typed, so HTML is not escaped.
//
// Nothing is written to w until encoding succeeds; on failure the client gets
// a bare 500 and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", ContentTypeJSON)
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}
