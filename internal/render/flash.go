// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"net/http"
	"net/url"
	"strings"
)

// flashCookie carries one flash message across the redirect that follows
// a successful save.
const flashCookie = "bs_flash"

// SetFlash queues a message for the next admin page render.
func SetFlash(w http.ResponseWriter, typ, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(typ + "|" + message),
		Path:     "/admin",
		HttpOnly: true,
		MaxAge:   60,
		SameSite: http.SameSiteLaxMode,
	})
}

// TakeFlashes returns the queued flash, if any, and clears it.
func TakeFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:   flashCookie,
		Value:  "",
		Path:   "/admin",
		MaxAge: -1,
	})

	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	typ, msg, ok := strings.Cut(raw, "|")
	if !ok || msg == "" {
		return nil
	}
	switch typ {
	case "success", "error", "warning", "info":
	default:
		typ = "info"
	}
	return []Flash{{Type: typ, Message: msg}}
}
