// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models holds the canonical barbershop entities. Backend DTOs are
// translated into these types once, by the api package; everything above
// the API boundary works with these shapes only.
package models

// Supported content languages.
const (
	LangEn = "en"
	LangAr = "ar"
)

// Text is a bilingual string. Every user-facing field on the site is
// maintained in English and Arabic.
type Text struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// In returns the text for the given language, falling back to the other
// language when the requested one is empty.
func (t Text) In(lang string) string {
	if lang == LangAr && t.Ar != "" {
		return t.Ar
	}
	if t.En != "" {
		return t.En
	}
	return t.Ar
}

// IsZero reports whether both languages are empty.
func (t Text) IsZero() bool {
	return t.En == "" && t.Ar == ""
}

// SocialLink is a platform/URL pair used by team members and the footer.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}
