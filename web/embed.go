// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package web provides embedded static assets (CSS, JS) for the admin panel
// and the public site. In development, templates load TailwindCSS and HTMX
// from a CDN; in production, the compiled and vendored files are embedded
// here and served at /static/.
package web

import (
	"embed"
	"io/fs"
)

// staticFS embeds the web/static/ directory tree. In Docker builds, this
// includes the compiled TailwindCSS and the vendored htmx.min.js. In local
// development it holds the hand-written admin.js and the CSS sources.
//
//go:embed all:static
var staticFS embed.FS

// Static returns the static tree rooted at web/static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
