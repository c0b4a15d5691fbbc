// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package forms holds the admin edit-form state: drafts of each editable
// entity, upload checks and previews, local validation, and the multipart
// payload that is sent to the backend on save.
package forms

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by Submit when the saver cannot perform the
// requested mode.
var ErrUnsupported = errors.New("forms: operation not supported")

// FieldError is a local validation failure tied to one form field. It is
// shown inline next to the field and blocks submission.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func fieldError(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// AsFieldError unwraps err into a *FieldError if it is one.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	ok := errors.As(err, &fe)
	return fe, ok
}
