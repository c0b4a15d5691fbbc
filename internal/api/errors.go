// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Sentinel errors matched with errors.Is against *Error values.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// genericMessage is shown when the backend gives no usable explanation.
const genericMessage = "Something went wrong. Please try again."

// Error is a non-2xx response from the backend. Message holds the server's
// own explanation when it sent one.
type Error struct {
	Method  string
	Path    string
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

// Is maps status codes onto the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	}
	return false
}

// newError builds an *Error from a failed response, extracting the server
// message from "message", "error", or the first entry of "errors".
func newError(method, path string, status int, payload []byte) *Error {
	e := &Error{Method: method, Path: path, Status: status}

	var body struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		e.Message = body.Message
		if e.Message == "" && len(body.Error) > 0 {
			var s string
			if json.Unmarshal(body.Error, &s) == nil {
				e.Message = s
			}
		}
		if len(body.Errors) > 0 {
			var fields map[string][]string
			if json.Unmarshal(body.Errors, &fields) == nil && len(fields) > 0 {
				e.Fields = fields
				if e.Message == "" {
					e.Message = firstFieldMessage(fields)
				}
			}
		}
	}

	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

// firstFieldMessage picks a deterministic message from a field error map.
func firstFieldMessage(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, msg := range fields[k] {
			if strings.TrimSpace(msg) != "" {
				return msg
			}
		}
	}
	return ""
}

// Message returns text suitable for showing to an admin: the server message
// for backend errors, a generic sentence otherwise.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericMessage
}
