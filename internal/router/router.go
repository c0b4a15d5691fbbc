// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// barbershop site. It organizes routes into the public marketing pages
// and the admin panel, each with its own middleware stack.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"barbershop/internal/handlers"
	"barbershop/internal/middleware"
	"barbershop/internal/session"
)

// Login attempts allowed per client address within LoginWindow.
const (
	LoginAttempts = 10
	LoginWindow   = 15 * time.Minute
)

// NewLoginLimiter returns the rate limiter used for Options.LoginLimiter.
// Callers must Stop it on shutdown.
func NewLoginLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(LoginAttempts, LoginWindow)
}

// Options carries everything the router needs besides the handlers.
type Options struct {
	Sessions *session.Store
	// Secure marks cookies Secure; set outside development.
	Secure bool
	// Static is served under /static/. Nil disables static serving.
	Static fs.FS
	// LoginLimiter throttles POST /admin/login. Nil disables throttling.
	LoginLimiter *middleware.RateLimiter
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(opts Options, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(opts.Static)))
	}

	// Admin panel: session + CSRF on everything, auth on all but login.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.LoadSession(opts.Sessions))
		r.Use(middleware.NewCSRF(opts.Secure))
		r.Use(middleware.NoStore)

		r.Get("/login", auth.LoginPage)
		r.Group(func(r chi.Router) {
			if opts.LoginLimiter != nil {
				r.Use(opts.LoginLimiter.Middleware)
			}
			r.Post("/login", auth.LoginSubmit)
		})
		r.Post("/logout", auth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.APIToken)

			r.Get("/", admin.Dashboard)

			r.Route("/banners", func(r chi.Router) {
				r.Get("/", admin.BannersList)
				r.Get("/new", admin.BannerNew)
				r.Post("/", admin.BannerCreate)
				r.Get("/{id}/edit", admin.BannerEdit)
				r.Post("/{id}", admin.BannerUpdate)
				r.Put("/{id}", admin.BannerUpdate)
				r.Post("/{id}/toggle", admin.BannerToggle)
				r.Post("/{id}/delete", admin.BannerDelete)
				r.Delete("/{id}", admin.BannerDelete)
			})

			r.Route("/team", func(r chi.Router) {
				r.Get("/", admin.TeamList)
				r.Get("/new", admin.TeamNew)
				r.Post("/", admin.TeamCreate)
				r.Get("/{id}", admin.TeamDetail)
				r.Get("/{id}/edit", admin.TeamEdit)
				r.Post("/{id}", admin.TeamUpdate)
				r.Put("/{id}", admin.TeamUpdate)
				r.Post("/{id}/delete", admin.TeamDelete)
				r.Delete("/{id}", admin.TeamDelete)
			})

			r.Route("/about", func(r chi.Router) {
				r.Get("/", admin.AboutList)
				r.Get("/new", admin.AboutNew)
				r.Post("/", admin.AboutCreate)
				r.Get("/{id}/edit", admin.AboutEdit)
				r.Post("/{id}", admin.AboutUpdate)
				r.Put("/{id}", admin.AboutUpdate)
				r.Post("/{id}/delete", admin.AboutDelete)
				r.Delete("/{id}", admin.AboutDelete)
			})

			// Sections are fixed by the backend; they can be edited only.
			r.Route("/sections", func(r chi.Router) {
				r.Get("/", admin.SectionsList)
				r.Get("/{id}/edit", admin.SectionEdit)
				r.Post("/{id}", admin.SectionUpdate)
				r.Put("/{id}", admin.SectionUpdate)
			})

			r.Get("/footer", admin.FooterEdit)
			r.Post("/footer", admin.FooterUpdate)

			r.Post("/uploads/preview", admin.UploadPreview)
		})
	})

	// Public marketing site.
	r.Get("/", public.Home)
	r.Get("/pricing", public.Pricing)
	r.Get("/pricing/{id}", public.PricingDetail)
	r.Get("/team", public.Team)

	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
