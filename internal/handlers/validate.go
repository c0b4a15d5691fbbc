// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"barbershop/internal/forms"
)

// Validation limits for the login form.
const (
	maxEmailLen    = 254
	maxPasswordLen = 1_000
)

// validateLogin checks the login form inputs and returns the first error found.
func validateLogin(email, password string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "Email is required."
	}
	if utf8.RuneCountInString(email) > maxEmailLen || !forms.IsEmail(email) {
		return "Enter a valid email address."
	}
	if password == "" {
		return "Password is required."
	}
	if len(password) > maxPasswordLen {
		return "Password is too long."
	}
	return ""
}
