// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// normalize.go translates backend DTOs into canonical models. The backend
// has shipped camelCase, snake_case and legacy field names over time; every
// lookup goes through a record so the fallback chain lives in one place.
package api

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
	"unicode"

	"barbershop/internal/models"
)

// record is a decoded JSON object.
type record map[string]any

// asRecord converts a decoded value to a record, or nil if it is not an object.
func asRecord(v any) record {
	m, _ := v.(map[string]any)
	return record(m)
}

// str returns the first non-empty scalar value among keys, as a string.
func (r record) str(keys ...string) string {
	for _, k := range keys {
		if s := scalar(r[k]); s != "" {
			return s
		}
	}
	return ""
}

// scalar renders a JSON scalar as a string. Objects and arrays yield "".
func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// boolean reads the first present key as a flag. Backends send true/false,
// 1/0, "1"/"0" and status words interchangeably.
func (r record) boolean(keys ...string) bool {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		switch strings.ToLower(scalar(v)) {
		case "true", "1", "yes", "on", "active", "published":
			return true
		default:
			return false
		}
	}
	return false
}

// number returns the first numeric value among keys.
func (r record) number(keys ...string) float64 {
	for _, k := range keys {
		if s := scalar(r[k]); s != "" {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// integer returns the first numeric value among keys, truncated.
func (r record) integer(keys ...string) int {
	return int(r.number(keys...))
}

// time parses the first RFC 3339 or "2006-01-02 15:04:05" timestamp.
func (r record) time(keys ...string) time.Time {
	for _, k := range keys {
		s := r.str(k)
		if s == "" {
			continue
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// object returns the first nested object among keys.
func (r record) object(keys ...string) record {
	for _, k := range keys {
		if rec := asRecord(r[k]); rec != nil {
			return rec
		}
	}
	return nil
}

// list returns the first array among keys as records. Arrays encoded as
// JSON strings (some multipart backends store them that way) are decoded.
func (r record) list(keys ...string) []record {
	for _, k := range keys {
		items, ok := arrayValue(r[k])
		if !ok {
			continue
		}
		out := make([]record, 0, len(items))
		for _, item := range items {
			if rec := asRecord(item); rec != nil {
				out = append(out, rec)
			}
		}
		return out
	}
	return nil
}

// strings returns the first array of scalars among keys.
func (r record) strings(keys ...string) []string {
	for _, k := range keys {
		items, ok := arrayValue(r[k])
		if !ok {
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s := scalar(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// arrayValue returns v as a slice, decoding JSON-encoded string arrays.
func arrayValue(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if !strings.HasPrefix(s, "[") {
			return nil, false
		}
		decoded, err := decode([]byte(s))
		if err != nil {
			return nil, false
		}
		items, ok := decoded.([]any)
		return items, ok
	}
	return nil, false
}

// localized resolves a bilingual field. base is the snake_case stem; the
// chain tries baseEn, base_en, a nested {"en","ar"} object under base or
// its camelCase form, then the legacy keys (English only).
func (r record) localized(base string, legacy ...string) models.Text {
	camelBase := camel(base)
	t := models.Text{
		En: r.str(camelBase+"En", base+"_en"),
		Ar: r.str(camelBase+"Ar", base+"_ar"),
	}
	if nested := r.object(camelBase, base); nested != nil {
		if t.En == "" {
			t.En = nested.str("en", "english")
		}
		if t.Ar == "" {
			t.Ar = nested.str("ar", "arabic")
		}
	}
	if t.En == "" {
		t.En = r.str(legacy...)
	}
	return t
}

// id reads the identifier, which may be numeric or a UUID string.
func (r record) id() string {
	return r.str("id", "_id", "uuid")
}

// camel converts snake_case to camelCase.
func camel(snake string) string {
	parts := strings.Split(snake, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		runes := []rune(parts[i])
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, "")
}

// socialLinks reads social links from an array of {platform,url} objects
// or from a flat {"instagram": "..."} map.
func (r record) socialLinks() []models.SocialLink {
	var links []models.SocialLink
	for _, item := range r.list("socialLinks", "social_links", "socials") {
		link := models.SocialLink{
			Platform: item.str("platform", "name", "type"),
			URL:      item.str("url", "link", "href"),
		}
		if link.URL != "" {
			links = append(links, link)
		}
	}
	if links != nil {
		return links
	}
	if flat := r.object("socialLinks", "social_links", "socials"); flat != nil {
		for _, platform := range []string{"facebook", "instagram", "twitter", "x", "tiktok", "youtube", "snapchat", "whatsapp", "linkedin"} {
			if u := flat.str(platform); u != "" {
				links = append(links, models.SocialLink{Platform: platform, URL: u})
			}
		}
	}
	return links
}
