// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"barbershop/internal/api"
	"barbershop/internal/middleware"
	"barbershop/internal/render"
	"barbershop/internal/session"
)

// Auth groups all authentication-related HTTP handlers. Credentials are
// checked by the backend; the session only keeps the token it returns.
type Auth struct {
	renderer *render.Renderer
	sessions *session.Store
	api      *api.Client
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, client *api.Client) *Auth {
	return &Auth{
		renderer: renderer,
		sessions: sessions,
		api:      client,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil && sess.Token != "" {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Sign In",
		Data:  map[string]any{"Email": ""},
	})
}

// LoginSubmit exchanges the submitted credentials for a backend token and
// starts a session holding it.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	fail := func(status int, msg string) {
		a.renderer.PageStatus(w, r, status, "login", &render.PageData{
			Title: "Sign In",
			Data:  map[string]any{"Email": email, "Error": msg},
		})
	}

	if msg := validateLogin(email, password); msg != "" {
		fail(http.StatusUnprocessableEntity, msg)
		return
	}

	id, err := a.api.Login(r.Context(), api.Credentials{Email: email, Password: password})
	if err != nil {
		var apiErr *api.Error
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			fail(http.StatusUnauthorized, "Invalid email or password.")
		case errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError:
			fail(http.StatusUnauthorized, api.Message(err))
		default:
			slog.Error("login failed", "email", email, "error", err)
			fail(http.StatusBadGateway, "Sign-in is unavailable right now. Please try again.")
		}
		return
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		Token:       id.Token,
		Email:       id.Email,
		DisplayName: id.DisplayName,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("admin signed in", "email", id.Email)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout revokes the backend token, destroys the session and redirects to
// the login page. A failed revoke does not keep the admin signed in.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil && sess.Token != "" {
		if err := a.api.Logout(api.WithToken(r.Context(), sess.Token)); err != nil {
			slog.Warn("backend logout failed", "error", err)
		}
	}
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Warn("session destroy failed", "error", err)
	}
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}
