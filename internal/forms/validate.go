// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New()

// Maximum lengths accepted for free-text fields.
const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// required returns a *FieldError when value is blank.
func required(field, value, message string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: message}
	}
	return nil
}

// tooLong returns a *FieldError when value exceeds max characters.
func tooLong(field, label, value string, max int) *FieldError {
	if utf8.RuneCountInString(value) > max {
		return fieldError(field, "%s must be at most %d characters", label, max)
	}
	return nil
}

// IsURL reports whether s is an absolute http(s) URL or a site-relative
// path such as /booking.
func IsURL(s string) bool {
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		return !strings.ContainsAny(s, " \t\n")
	}
	return validate.Var(s, "required,http_url") == nil
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// firstError returns the first non-nil *FieldError. Typed nils are skipped
// so callers can list checks inline.
func firstError(checks ...*FieldError) error {
	for _, fe := range checks {
		if fe != nil {
			return fe
		}
	}
	return nil
}
