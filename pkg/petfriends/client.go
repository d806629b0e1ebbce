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
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/petfriends-qa/conformance/pkg/constants"

	"k8s.io/apimachinery/pkg/util/wait"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	// DefaultTimeout bounds a single request when no timeout is configured.
	DefaultTimeout = 30 * time.Second

	// DefaultRetryInterval is the first backoff interval for transport retries.
	DefaultRetryInterval = 500 * time.Millisecond
)

//go:generate mockgen -source=client.go -destination=mock/interface.go -package=mock

// Interface is the PetFriends API surface exercised by the conformance
// scenarios.  Every method returns the HTTP outcome as data; the error is
// reserved for calls that never produced a response.
type Interface interface {
	// GetAPIKey exchanges credentials for an API key.
	GetAPIKey(ctx context.Context, email, password string) (*Response, error)
	// ListPets lists pets visible to, or owned by, the key holder.
	ListPets(ctx context.Context, key AuthKey, filter Filter) (*Response, error)
	// AddNewPet creates a pet, with a photo when photoPath is not empty.
	AddNewPet(ctx context.Context, key AuthKey, pet NewPet, photoPath string) (*Response, error)
	// CreatePetSimple creates a pet without a photo.
	CreatePetSimple(ctx context.Context, key AuthKey, pet NewPet) (*Response, error)
	// UpdatePetInfo replaces the writable fields of a pet.
	UpdatePetInfo(ctx context.Context, key AuthKey, petID string, pet NewPet) (*Response, error)
	// DeletePet deletes a pet.
	DeletePet(ctx context.Context, key AuthKey, petID string) (*Response, error)
	// AddPetPhoto sets the photo of a pet.
	AddPetPhoto(ctx context.Context, key AuthKey, petID, photoPath string) (*Response, error)
}

// ResponseValidator checks a successful response against an API description.
type ResponseValidator interface {
	ValidateResponse(ctx context.Context, req *http.Request, status int, header http.Header, body []byte) error
}

// Options tune client behaviour.
type Options struct {
	// Timeout bounds each request, defaults to DefaultTimeout.
	Timeout time.Duration

	// Retries is how many extra attempts are made after a transport
	// failure.  HTTP error statuses are never retried.
	Retries int

	// RetryInterval is the initial backoff, doubled on every retry.
	RetryInterval time.Duration

	// LogRequests logs every request outcome.
	LogRequests bool

	// LogResponses logs every response body.
	LogResponses bool

	// Validator, when set, validates 2xx payloads.
	Validator ResponseValidator

	// Transport overrides the HTTP transport, mostly for tests.
	Transport http.RoundTripper
}

// Client is an HTTP client for the PetFriends API.
type Client struct {
	baseURL   string
	client    *http.Client
	options   Options
	endpoints *Endpoints
}

var _ Interface = &Client{}

// New returns a client for the service rooted at baseURL.
func New(baseURL string, options *Options) *Client {
	var o Options

	if options != nil {
		o = *options
	}

	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}

	if o.RetryInterval <= 0 {
		o.RetryInterval = DefaultRetryInterval
	}

	if o.Retries < 0 {
		o.Retries = 0
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout:   o.Timeout,
			Transport: o.Transport,
		},
		options:   o,
		endpoints: NewEndpoints(),
	}
}

// BaseURL returns the service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request is everything needed to (re)issue a call.  The body is buffered
// so a retry can replay it.
type request struct {
	method      string
	path        string
	header      map[string]string
	body        []byte
	contentType string
}

func authHeader(key AuthKey) map[string]string {
	return map[string]string{
		constants.AuthKeyHeader: key.Key,
	}
}

func (c *Client) GetAPIKey(ctx context.Context, email, password string) (*Response, error) {
	return c.doRequest(ctx, &request{
		method: http.MethodGet,
		path:   c.endpoints.GetAPIKey(),
		header: map[string]string{
			"email":    email,
			"password": password,
		},
	})
}

func (c *Client) ListPets(ctx context.Context, key AuthKey, filter Filter) (*Response, error) {
	path, err := c.endpoints.ListPets(filter)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, &request{
		method: http.MethodGet,
		path:   path,
		header: authHeader(key),
	})
}

func (c *Client) AddNewPet(ctx context.Context, key AuthKey, pet NewPet, photoPath string) (*Response, error) {
	body, contentType, err := multipartBody(petFields(pet), photoPath)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, &request{
		method:      http.MethodPost,
		path:        c.endpoints.AddNewPet(),
		header:      authHeader(key),
		body:        body,
		contentType: contentType,
	})
}

func (c *Client) CreatePetSimple(ctx context.Context, key AuthKey, pet NewPet) (*Response, error) {
	return c.doRequest(ctx, &request{
		method:      http.MethodPost,
		path:        c.endpoints.CreatePetSimple(),
		header:      authHeader(key),
		body:        []byte(formValues(pet).Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
}

func (c *Client) UpdatePetInfo(ctx context.Context, key AuthKey, petID string, pet NewPet) (*Response, error) {
	path, err := c.endpoints.UpdatePet(petID)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, &request{
		method:      http.MethodPut,
		path:        path,
		header:      authHeader(key),
		body:        []byte(formValues(pet).Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
}

func (c *Client) DeletePet(ctx context.Context, key AuthKey, petID string) (*Response, error) {
	path, err := c.endpoints.DeletePet(petID)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, &request{
		method: http.MethodDelete,
		path:   path,
		header: authHeader(key),
	})
}

func (c *Client) AddPetPhoto(ctx context.Context, key AuthKey, petID, photoPath string) (*Response, error) {
	path, err := c.endpoints.SetPetPhoto(petID)
	if err != nil {
		return nil, err
	}

	body, contentType, err := multipartBody(nil, photoPath)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, &request{
		method:      http.MethodPost,
		path:        path,
		header:      authHeader(key),
		body:        body,
		contentType: contentType,
	})
}

// petFields returns the form fields in the order the service documents them.
func petFields(pet NewPet) [][2]string {
	return [][2]string{
		{"name", pet.Name},
		{"animal_type", pet.AnimalType},
		{"age", pet.Age},
	}
}

func formValues(pet NewPet) url.Values {
	values := url.Values{}

	for _, field := range petFields(pet) {
		values.Set(field[0], field[1])
	}

	return values
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// multipartBody encodes form fields and an optional pet_photo file.  The
// file part carries an image content type derived from the extension, which
// is what the service keys on.
func multipartBody(fields [][2]string, photoPath string) ([]byte, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("writing form field %s: %w", field[0], err)
		}
	}

	if photoPath != "" {
		data, err := os.ReadFile(photoPath)
		if err != nil {
			return nil, "", fmt.Errorf("reading photo: %w", err)
		}

		contentType := mime.TypeByExtension(filepath.Ext(photoPath))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pet_photo"; filename="%s"`, quoteEscaper.Replace(filepath.Base(photoPath))))
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("creating photo part: %w", err)
		}

		if _, err := part.Write(data); err != nil {
			return nil, "", fmt.Errorf("writing photo part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

// doRequest issues a request, retrying transport failures only.
func (c *Client) doRequest(ctx context.Context, r *request) (*Response, error) {
	var (
		result  *Response
		lastErr error
	)

	backoff := wait.Backoff{
		Duration: c.options.RetryInterval,
		Factor:   2,
		Steps:    c.options.Retries + 1,
	}

	attempt := 0

	err := wait.ExponentialBackoffWithContext(ctx, backoff, func(ctx context.Context) (bool, error) {
		attempt++

		result, lastErr = c.do(ctx, r)
		if lastErr == nil {
			return true, nil
		}

		if errors.Is(lastErr, ErrServiceUnreachable) && attempt <= c.options.Retries {
			log.FromContext(ctx).Info("retrying after transport failure", "method", r.method, "path", r.path, "attempt", attempt)

			return false, nil
		}

		return false, lastErr
	})

	if lastErr != nil {
		return nil, lastErr
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrServiceUnreachable, r.method, r.path, err)
	}

	return result, nil
}

//nolint:cyclop
func (c *Client) do(ctx context.Context, r *request) (*Response, error) {
	log := log.FromContext(ctx)

	var body io.Reader

	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	traceID := extractTraceID(traceParent)

	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=petfriends-conformance")
	req.Header.Set("User-Agent", constants.VersionString())
	req.Header.Set("Accept", "application/json")

	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	for k, v := range r.header {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "method", r.method, "path", r.path, "duration", duration, "traceID", traceID)

		return nil, fmt.Errorf("%w: %s %s: %w", ErrServiceUnreachable, r.method, r.path, err)
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err, "reading response body", "method", r.method, "path", r.path, "status", resp.StatusCode, "traceID", traceID)

		return nil, fmt.Errorf("%w: reading response body: %w", ErrServiceUnreachable, err)
	}

	if c.options.LogRequests {
		log.Info("request", "method", r.method, "path", r.path, "status", resp.StatusCode, "duration", duration, "traceID", traceID)
	}

	if c.options.LogResponses && len(raw) > 0 {
		log.Info("response body", "method", r.method, "path", r.path, "body", string(raw))
	}

	result := newResponse(resp, raw, traceID)

	if c.options.Validator != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := c.options.Validator.ValidateResponse(ctx, req, resp.StatusCode, resp.Header, raw); err != nil {
			log.Info("response does not match API description", "method", r.method, "path", r.path, "traceID", traceID, "error", err.Error())

			result.SchemaErr = err
		}
	}

	return result, nil
}
