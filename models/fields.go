// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
)

// ErrNonScalarField is returned by [FieldsFromJSON] for object, array or null
// values.
var ErrNonScalarField = errors.New("field value is not a scalar")

// Fields maps a form field name to its current value.
//
// Values are kept in their string form because that is how browsers and
// form-encoded requests carry them. JSON scalars received from the server are
// normalised to the same representation before they are compared (see
// [SaveResponse]).
type Fields map[string]string

// Clone returns an independent copy of f. A nil receiver yields an empty,
// non-nil map so callers can write to the result directly.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	maps.Copy(out, f)
	return out
}

// Merge copies every entry of other into f, overwriting existing keys
// (last writer wins).
func (f Fields) Merge(other Fields) {
	maps.Copy(f, other)
}

// Names returns the field names in sorted order.
func (f Fields) Names() []string {
	return slices.Sorted(maps.Keys(f))
}

// URLValues converts f into [url.Values] for form-encoded requests.
func (f Fields) URLValues() url.Values {
	values := make(url.Values, len(f))
	for k, v := range f {
		values.Set(k, v)
	}
	return values
}

// FieldsFromURLValues builds [Fields] from a parsed form. Only the first value
// of a repeated key is kept.
func FieldsFromURLValues(values url.Values) Fields {
	out := make(Fields, len(values))
	for k := range values {
		out[k] = values.Get(k)
	}
	return out
}

// FieldsFromJSON decodes a flat JSON object into [Fields]. Scalars are
// normalised the same way as in [SaveResponse]; nested values and nulls are
// rejected.
func FieldsFromJSON(b []byte) (Fields, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	if raw == nil {
		return nil, errNotAnObject
	}

	out := make(Fields, len(raw))
	for k, v := range raw {
		s, ok := scalarString(v)
		if !ok {
			return nil, fmt.Errorf("field %q: %w", k, ErrNonScalarField)
		}
		out[k] = s
	}
	return out, nil
}
