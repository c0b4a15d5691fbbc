// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the admin interface
// and the public site. Admin pages support full-page and HTMX partial
// rendering, detecting the request type via the HX-Request header. Public
// pages render to bytes so they can be stored in the page cache.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"barbershop/internal/i18n"
	"barbershop/internal/middleware"
	"barbershop/internal/session"
)

//go:embed templates/admin/*.html templates/public/*.html
var templateFS embed.FS

// PageData holds all data passed to admin templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active sidebar section (e.g., "dashboard", "banners")
	Session   *session.Data  // Current user session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and HTMX headers
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// Renderer handles template parsing and execution.
type Renderer struct {
	admin   map[string]*template.Template
	public  map[string]*template.Template
	catalog *i18n.Catalog
	funcMap template.FuncMap
}

// standaloneTemplates lists admin templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login": true,
}

// sharedTemplates are parsed into every page next to the layout.
const sharedTemplates = "partials.html"

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each page template is paired with its base layout.
// When devMode is true, templates use CDN-hosted assets (TailwindCSS, HTMX);
// when false, they reference compiled local static files.
func New(devMode bool, catalog *i18n.Catalog) (*Renderer, error) {
	r := &Renderer{
		admin:   make(map[string]*template.Template),
		public:  make(map[string]*template.Template),
		catalog: catalog,
		funcMap: funcMap(devMode),
	}

	if err := r.parseDir("templates/admin", r.admin, true); err != nil {
		return nil, err
	}
	if err := r.parseDir("templates/public", r.public, false); err != nil {
		return nil, err
	}
	return r, nil
}

// parseDir parses every page in dir paired with dir/base.html.
func (rn *Renderer) parseDir(dir string, into map[string]*template.Template, admin bool) error {
	entries, err := fs.ReadDir(templateFS, dir)
	if err != nil {
		return fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" || name == sharedTemplates {
			continue
		}

		// Strip .html extension for the template name.
		tmplName := strings.TrimSuffix(name, ".html")

		var tmpl *template.Template
		var parseErr error

		switch {
		case admin && standaloneTemplates[tmplName]:
			tmpl, parseErr = template.New(name).Funcs(rn.funcMap).ParseFS(
				templateFS, dir+"/"+name,
			)
		case admin:
			tmpl, parseErr = template.New("base.html").Funcs(rn.funcMap).ParseFS(
				templateFS, dir+"/base.html", dir+"/"+sharedTemplates, dir+"/"+name,
			)
		default:
			tmpl, parseErr = template.New("base.html").Funcs(rn.funcMap).ParseFS(
				templateFS, dir+"/base.html", dir+"/"+sharedTemplates, dir+"/"+name,
			)
		}

		if parseErr != nil {
			return fmt.Errorf("parse template %s/%s: %w", dir, name, parseErr)
		}

		into[tmplName] = tmpl
	}
	return nil
}

// Page renders a full admin page or an HTMX partial, depending on the
// request headers. For HTMX requests, only the "content" block is sent.
// For full page loads, the entire base layout is rendered.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.PageStatus(w, r, http.StatusOK, name, data)
}

// PageStatus is Page with an explicit status code, used when re-rendering
// a form after a failed save.
func (rn *Renderer) PageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	// Inject CSRF token from context (set by CSRF middleware).
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())

	// Inject session from context.
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	data.Flashes = append(data.Flashes, TakeFlashes(w, r)...)

	execName := "base.html"
	switch {
	case isHTMX(r) && !standaloneTemplates[name]:
		// HTMX request: render only the content fragment. HTMX does not
		// swap error responses, so a re-rendered form goes out as 200.
		execName = "content"
		status = http.StatusOK
	case standaloneTemplates[name]:
		// Standalone pages use their own root template (not base.html).
		execName = name + ".html"
	}

	var buf bytes.Buffer
	if err := executeTemplate(&buf, tmpl, execName, data); err != nil {
		slog.Error("render admin page failed", "template", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// Public renders a public page in data.Lang and returns the HTML, ready to
// be cached.
func (rn *Renderer) Public(name string, data *PublicData) ([]byte, error) {
	tmpl, ok := rn.public[name]
	if !ok {
		return nil, fmt.Errorf("public template %q not found", name)
	}

	data.catalog = rn.catalog
	if data.Lang == "" {
		data.Lang = i18n.DefaultLanguage
	}

	var buf bytes.Buffer
	if err := executeTemplate(&buf, tmpl, "base.html", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
