/*
Copyright 2026 the PetFriends QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package petfriends

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrServiceUnreachable is returned when no HTTP response arrived, either
	// because the transport failed or the request timed out.
	ErrServiceUnreachable = errors.New("service unreachable")

	// ErrNotJSON is returned when a typed accessor is used on a payload that
	// is not a JSON object.
	ErrNotJSON = errors.New("response body is not a JSON object")

	// ErrMissingField is returned when a typed accessor cannot find the
	// field it needs.
	ErrMissingField = errors.New("response body missing field")
)

// Response is the outcome of a call that reached the service.  Every HTTP
// status, 4xx included, is reported here as data.
type Response struct {
	// StatusCode is the HTTP status.
	StatusCode int

	// Header is the HTTP response header.
	Header http.Header

	// Raw is the undecoded body.
	Raw []byte

	// Body is the decoded JSON object, nil when the payload is not one.
	Body map[string]any

	// Text is the raw payload when it is not a JSON object.
	Text string

	// SchemaErr records a mismatch with the API description when schema
	// validation is enabled.  It never causes the call to fail.
	SchemaErr error

	// TraceID identifies the request in service logs.
	TraceID string
}

func newResponse(resp *http.Response, raw []byte, traceID string) *Response {
	r := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Raw:        raw,
		TraceID:    traceID,
	}

	var body map[string]any

	if len(bytes.TrimSpace(raw)) > 0 && json.Unmarshal(raw, &body) == nil {
		r.Body = body
	} else {
		r.Text = string(raw)
	}

	return r
}

// OK is true for a 200 response.
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Has reports whether the JSON body has a top level key.
func (r *Response) Has(key string) bool {
	if r.Body == nil {
		return false
	}

	_, ok := r.Body[key]

	return ok
}

// String returns a JSON body field as a string, empty when absent.
func (r *Response) String(key string) string {
	if r.Body == nil {
		return ""
	}

	if s, ok := r.Body[key].(string); ok {
		return s
	}

	return ""
}

// HasError reports whether the payload carries an error indicator, either an
// "error" or "message" key in a JSON body, or error text in a plain one.
func (r *Response) HasError() bool {
	if r.Body != nil {
		return r.Has("error") || r.Has("message")
	}

	return strings.Contains(strings.ToLower(r.Text), "error")
}

// Key decodes the key endpoint payload.
func (r *Response) Key() (AuthKey, error) {
	if r.Body == nil {
		return AuthKey{}, ErrNotJSON
	}

	key := r.String("key")
	if key == "" {
		return AuthKey{}, fmt.Errorf("%w: key", ErrMissingField)
	}

	return AuthKey{Key: key}, nil
}

// Pets decodes the list endpoint payload.
func (r *Response) Pets() (*PetList, error) {
	if r.Body == nil {
		return nil, ErrNotJSON
	}

	if !r.Has("pets") {
		return nil, fmt.Errorf("%w: pets", ErrMissingField)
	}

	var list PetList
	if err := json.Unmarshal(r.Raw, &list); err != nil {
		return nil, fmt.Errorf("decoding pet list: %w", err)
	}

	return &list, nil
}

// Pet decodes a single pet payload.
func (r *Response) Pet() (*Pet, error) {
	if r.Body == nil {
		return nil, ErrNotJSON
	}

	var pet Pet
	if err := json.Unmarshal(r.Raw, &pet); err != nil {
		return nil, fmt.Errorf("decoding pet: %w", err)
	}

	return &pet, nil
}
