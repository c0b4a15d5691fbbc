// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package api is the typed client for the barbershop backend REST API.
// Each resource lives in its own file and exposes Get/Create/Update/Delete
// functions. Responses are normalised into the models package at this
// boundary, so callers never handle raw backend field names.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is used when API_BASE_URL is not configured.
	DefaultBaseURL = "http://localhost:8000/api/v1"

	// DefaultLoginPath is the endpoint that exchanges credentials for a token.
	DefaultLoginPath = "/auth/login"

	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 10 << 20
)

// Client talks to the backend API. It is safe for concurrent use.
type Client struct {
	baseURL   string
	loginPath string
	http      *http.Client
}

// New creates a client for the given base URL. An empty baseURL falls back
// to DefaultBaseURL and a zero timeout to 15 seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		loginPath: DefaultLoginPath,
		http:      &http.Client{Timeout: timeout},
	}
}

// SetLoginPath overrides the credential exchange endpoint.
func (c *Client) SetLoginPath(path string) {
	if path != "" {
		c.loginPath = "/" + strings.TrimLeft(path, "/")
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// tokenKey is the context key for the admin bearer token.
type tokenKey struct{}

// WithToken returns a context that carries the admin bearer token.
// Admin-scoped calls made with this context send it as Authorization.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token stored by WithToken.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// ListOptions are the query parameters shared by paginated admin lists.
type ListOptions struct {
	Page    int
	PerPage int
	Status  string
	Search  string
}

// values encodes the options as query parameters, omitting zero values.
func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(o.PerPage))
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	return q
}

// request describes a single backend call.
type request struct {
	method string
	path   string
	query  url.Values
	form   *Form
	json   any
	auth   bool
}

// send performs the request and returns the raw response body. Non-2xx
// responses are logged and returned as *Error.
func (c *Client) send(ctx context.Context, req request) ([]byte, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	var contentType string
	switch {
	case req.form != nil:
		b, ct, err := req.form.Encode()
		if err != nil {
			return nil, fmt.Errorf("encode form for %s %s: %w", req.method, req.path, err)
		}
		body, contentType = b, ct
	case req.json != nil:
		b, err := json.Marshal(req.json)
		if err != nil {
			return nil, fmt.Errorf("encode json for %s %s: %w", req.method, req.path, err)
		}
		body, contentType = bytes.NewReader(b), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", req.method, req.path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if req.auth {
		token := TokenFromContext(ctx)
		if token == "" {
			return nil, &Error{Method: req.method, Path: req.path, Status: http.StatusUnauthorized, Message: "Not signed in."}
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		slog.Error("api request failed", "method", req.method, "path", req.path, "error", err)
		return nil, fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response %s %s: %w", req.method, req.path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := newError(req.method, req.path, resp.StatusCode, payload)
		slog.Error("api request failed",
			"method", req.method,
			"path", req.path,
			"status", resp.StatusCode,
			"error", apiErr.Message,
		)
		return nil, apiErr
	}

	return payload, nil
}

// fetch performs the request and decodes the response into a generic value.
func (c *Client) fetch(ctx context.Context, req request) (any, error) {
	payload, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	return decode(payload)
}

// decode parses a JSON body, keeping numbers as json.Number so ids are not
// mangled into floats. An empty body decodes to nil.
func decode(payload []byte) (any, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}

// resourcePath joins a collection path and an id, escaping the id.
func resourcePath(collection, id string, rest ...string) string {
	p := collection + "/" + url.PathEscape(id)
	for _, r := range rest {
		p += "/" + r
	}
	return p
}
