// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package i18n holds the public site's UI labels in English and Arabic and
// resolves which language a request should be served in.
//
// The language is picked in this order:
//  1. the ?lang= query parameter (which also sets the lang cookie)
//  2. the lang cookie
//  3. the Accept-Language header, matched with golang.org/x/text/language
//  4. English
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

const (
	English = "en"
	Arabic  = "ar"

	// DefaultLanguage is served when nothing in the request matches.
	DefaultLanguage = English

	// CookieName remembers the visitor's explicit language choice.
	CookieName = "lang"
)

// SupportedLanguages lists the catalog languages, default first.
var SupportedLanguages = []string{English, Arabic}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Catalog maps language → flattened key → label.
type Catalog struct {
	messages map[string]map[string]string
}

// Load reads one <lang>.json file per supported language from fsys.
// Nested objects are flattened into dotted keys: {"nav": {"home": ".."}}
// becomes "nav.home".
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{messages: make(map[string]map[string]string)}
	for _, lang := range SupportedLanguages {
		name := lang + ".json"
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", name, err)
		}

		var nested map[string]any
		if err := json.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", name, err)
		}

		flat := make(map[string]string)
		flatten("", nested, flat)
		c.messages[lang] = flat
		slog.Debug("locale loaded", "lang", lang, "keys", len(flat))
	}
	return c, nil
}

var (
	defaultCatalog *Catalog
	defaultErr     error
	defaultOnce    sync.Once
)

// Default returns the catalog built from the embedded locale files.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embeddedLocales, "locales")
		if err != nil {
			defaultErr = err
			return
		}
		defaultCatalog, defaultErr = Load(sub)
	})
	return defaultCatalog, defaultErr
}

// T returns the label for key in lang, falling back to English and then
// to the key itself.
func (c *Catalog) T(lang, key string) string {
	if msg, ok := c.messages[lang][key]; ok {
		return msg
	}
	if msg, ok := c.messages[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// TWithParams is T with {{name}} placeholders substituted.
func (c *Catalog) TWithParams(lang, key string, params map[string]string) string {
	msg := c.T(lang, key)
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{{"+k+"}}", v)
	}
	return msg
}

// Keys returns the flattened keys defined for lang.
func (c *Catalog) Keys(lang string) []string {
	keys := make([]string, 0, len(c.messages[lang]))
	for k := range c.messages[lang] {
		keys = append(keys, k)
	}
	return keys
}

// Normalize maps a language tag such as "ar-SA" or "EN" to a supported
// language code. Unsupported tags return "".
func Normalize(tag string) string {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return ""
	}
	base, _ := t.Base()
	for _, lang := range SupportedLanguages {
		if base.String() == lang {
			return lang
		}
	}
	return ""
}

// Match picks the best supported language for an Accept-Language header.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return SupportedLanguages[idx]
}

// Resolve returns the language for r. explicit reports whether it came
// from the ?lang= parameter, in which case callers persist it with
// SetCookie.
func Resolve(r *http.Request) (lang string, explicit bool) {
	if lang := Normalize(r.URL.Query().Get("lang")); lang != "" {
		return lang, true
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if lang := Normalize(c.Value); lang != "" {
			return lang, false
		}
	}
	return Match(r.Header.Get("Accept-Language")), false
}

// SetCookie remembers lang for a year.
func SetCookie(w http.ResponseWriter, lang string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    lang,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})
}

// Dir returns the text direction for lang.
func Dir(lang string) string {
	if lang == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Other returns the language a switcher link should offer.
func Other(lang string) string {
	if lang == Arabic {
		return English
	}
	return Arabic
}

// flatten converts nested JSON objects into dotted keys.
func flatten(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			dst[key] = val
		case map[string]any:
			flatten(key, val, dst)
		}
	}
}
