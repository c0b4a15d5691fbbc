// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings,
// including Arabic names, which are transliterated.
package slug

import (
	gosimple "github.com/gosimple/slug"
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Fade & Beard" → "fade-and-beard"
func Generate(s string) string {
	return gosimple.Make(s)
}

// Anchor builds a stable HTML id for an entity: prefix plus the slug of
// name, or prefix plus id when name has no sluggable characters.
// Example: Anchor("member", "Omar Haddad", "12") → "member-omar-haddad"
func Anchor(prefix, name, id string) string {
	s := Generate(name)
	if s == "" {
		s = Generate(id)
	}
	if s == "" {
		return prefix
	}
	return prefix + "-" + s
}

// IsValid reports whether s is already a well-formed slug.
func IsValid(s string) bool {
	return gosimple.IsSlug(s)
}
