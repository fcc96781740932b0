// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Envelope keys and values shared by every autosave endpoint response.
const (
	EnvelopeKeySuccess = "success"
	EnvelopeKeyStatus  = "status"
	EnvelopeKeyErrors  = "errors"

	StatusOkay  = "okay"
	StatusError = "error"
)

var errNotAnObject = errors.New("response body is not a JSON object")

// IsEnvelopeKey reports whether name is reserved by the response envelope.
func IsEnvelopeKey(name string) bool {
	switch name {
	case EnvelopeKeySuccess, EnvelopeKeyStatus, EnvelopeKeyErrors:
		return true
	}
	return false
}

// SaveResponse is the JSON envelope returned by an autosave endpoint.
//
// On the wire the envelope keys and the persisted fields share one flat
// object:
//
//	{"success": true, "status": "okay", "name": "Alice", "age": 31}
//
// Persisted holds the field name/value pairs echoed by the server, with
// scalar values normalised to strings (numbers as written, booleans as
// "true"/"false"). Nested objects, arrays and nulls are not treated as field
// echoes.
//
// A field named like an envelope key can never be echoed and would stay
// pending forever. The client form, the client config and the reference
// endpoint all refuse such names; see [IsEnvelopeKey].
type SaveResponse struct {
	Success   *bool
	Status    string
	Errors    json.RawMessage
	Persisted Fields
}

// NewOkayResponse builds a successful envelope echoing persisted.
func NewOkayResponse(persisted Fields) SaveResponse {
	ok := true
	return SaveResponse{Success: &ok, Status: StatusOkay, Persisted: persisted}
}

// NewErrorResponse builds a failed envelope carrying an error message.
func NewErrorResponse(message string) SaveResponse {
	ok := false
	errs, _ := json.Marshal(map[string]string{"error": message})
	return SaveResponse{Success: &ok, Status: StatusError, Errors: errs}
}

// Rejected reports whether the envelope explicitly marks the save as failed.
// A response without a "success" key is not considered rejected.
func (r SaveResponse) Rejected() bool {
	if r.Success != nil && !*r.Success {
		return true
	}
	return r.Status == StatusError
}

// MarshalJSON implements [json.Marshaler] producing the flat envelope.
func (r SaveResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Persisted)+3)
	for k, v := range r.Persisted {
		out[k] = v
	}
	if r.Success != nil {
		out[EnvelopeKeySuccess] = *r.Success
	}
	if r.Status != "" {
		out[EnvelopeKeyStatus] = r.Status
	}
	if len(r.Errors) > 0 {
		out[EnvelopeKeyErrors] = r.Errors
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements [json.Unmarshaler] for the flat envelope.
func (r *SaveResponse) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode save response: %w", err)
	}
	if raw == nil {
		return errNotAnObject
	}

	resp := SaveResponse{Persisted: make(Fields, len(raw))}
	for k, v := range raw {
		switch k {
		case EnvelopeKeySuccess:
			if b, ok := v.(bool); ok {
				resp.Success = &b
			}
			continue
		case EnvelopeKeyStatus:
			if s, ok := v.(string); ok {
				resp.Status = s
			}
			continue
		case EnvelopeKeyErrors:
			resp.Errors, _ = json.Marshal(v)
			continue
		}

		if s, ok := scalarString(v); ok {
			resp.Persisted[k] = s
		}
	}

	*r = resp
	return nil
}

func scalarString(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case json.Number:
		return value.String(), true
	case bool:
		return strconv.FormatBool(value), true
	default:
		return "", false
	}
}
