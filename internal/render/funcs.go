// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"barbershop/internal/api"
	"barbershop/internal/forms"
	"barbershop/internal/markdown"
	"barbershop/internal/pagination"
	"barbershop/internal/slug"
)

// funcMap returns the helpers available to every template.
func funcMap(devMode bool) template.FuncMap {
	return template.FuncMap{
		"activeClass": func(current, target string) string {
			if current == target {
				return "bg-gray-900 text-white"
			}
			return "text-gray-300 hover:bg-gray-700 hover:text-white"
		},
		// isDev returns true when the app runs in development mode.
		// Used by templates to conditionally load CDN vs local assets.
		"isDev": func() bool {
			return devMode
		},
		"humanBytes": func(n int64) string {
			return humanize.Bytes(uint64(max(n, 0)))
		},
		"timeAgo": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return humanize.Time(t)
		},
		"comma": func(n int) string {
			return humanize.Comma(int64(n))
		},
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("Jan 2, 2006 15:04")
		},
		"markdown": markdown.Render,
		"anchor":   slug.Anchor,
		"pageURL": func(base *url.URL, page int) string {
			return pagination.URL(base, page)
		},
		"add": func(a, b int) int {
			return a + b
		},
		"odd": func(n int) bool {
			return n%2 == 1
		},
		// seq returns n consecutive integers starting at start; forms use
		// it to number the blank rows after the existing ones.
		"seq": func(start, n int) []int {
			out := make([]int, 0, max(n, 0))
			for i := 0; i < n; i++ {
				out = append(out, start+i)
			}
			return out
		},
		"dict":       dict,
		"fieldError": fieldError,
		"statusClass": func(status any) string {
			switch strings.ToLower(fmt.Sprint(status)) {
			case "active", "published":
				return "bg-green-100 text-green-800"
			case "leave", "draft":
				return "bg-yellow-100 text-yellow-800"
			default:
				return "bg-gray-100 text-gray-700"
			}
		},
		"lower": strings.ToLower,
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
		"join": strings.Join,
	}
}

// dict builds a map from alternating keys and values so sub-templates can
// take several arguments.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// fieldError returns the message of err when it belongs to field.
func fieldError(err any, field string) string {
	e, ok := err.(error)
	if !ok || e == nil {
		return ""
	}
	if fe, ok := forms.AsFieldError(e); ok && fe.Field == field {
		return fe.Message
	}
	// Backend validation errors carry messages keyed by field name.
	var apiErr *api.Error
	if errors.As(e, &apiErr) && len(apiErr.Fields[field]) > 0 {
		return apiErr.Fields[field][0]
	}
	return ""
}
