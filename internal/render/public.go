// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"net/url"
	"time"

	"barbershop/internal/i18n"
	"barbershop/internal/models"
)

// PublicData holds all data passed to public templates. Templates reach
// the UI labels through its methods: {{.T "nav.home"}}, {{.Text .Title}}.
type PublicData struct {
	Lang    string               // "en" or "ar"
	Path    string               // Request path and query, used by the language switcher
	Title   string               // Page title; the site name is appended
	Section string               // Active nav item
	Footer  *models.FooterConfig // nil when the backend has no footer
	Data    map[string]any       // Page-specific data

	catalog *i18n.Catalog
}

// T returns the UI label for key in the page language.
func (d *PublicData) T(key string) string {
	if d.catalog == nil {
		return key
	}
	return d.catalog.T(d.Lang, key)
}

// TP is T with placeholders given as name/value pairs.
func (d *PublicData) TP(key string, pairs ...string) string {
	if d.catalog == nil {
		return key
	}
	params := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		params[pairs[i]] = pairs[i+1]
	}
	return d.catalog.TWithParams(d.Lang, key, params)
}

// Text picks the page language from a bilingual value.
func (d *PublicData) Text(t models.Text) string {
	return t.In(d.Lang)
}

// Dir is the text direction of the page.
func (d *PublicData) Dir() string {
	return i18n.Dir(d.Lang)
}

// OtherLang is the language offered by the switcher.
func (d *PublicData) OtherLang() string {
	return i18n.Other(d.Lang)
}

// SwitchURL is the current page in the other language.
func (d *PublicData) SwitchURL() string {
	return d.LangURL(d.OtherLang())
}

// LangURL is the current page with ?lang= set to lang.
func (d *PublicData) LangURL(lang string) string {
	u, err := url.Parse(d.Path)
	if err != nil || d.Path == "" {
		u = &url.URL{Path: "/"}
	}
	q := u.Query()
	q.Set("lang", lang)
	u.RawQuery = q.Encode()
	return u.String()
}

// Year is the copyright year shown in the footer.
func (d *PublicData) Year() int {
	return time.Now().Year()
}
