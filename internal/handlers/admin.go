// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the barbershop site.
// Handlers are grouped by concern (admin, public, auth) and receive
// their dependencies through the handler struct.
package handlers

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"barbershop/internal/api"
	"barbershop/internal/cache"
	"barbershop/internal/forms"
	"barbershop/internal/middleware"
	"barbershop/internal/pagination"
	"barbershop/internal/render"
	"barbershop/internal/session"
	"barbershop/internal/store"
)

// recentActivityLimit is how many activity entries the dashboard shows.
const recentActivityLimit = 10

// ActivityLog records admin mutations and lists the latest ones.
// *store.ActivityStore implements it.
type ActivityLog interface {
	Record(ctx context.Context, a store.Activity)
	Recent(ctx context.Context, limit int) ([]store.Activity, error)
}

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer  *render.Renderer
	api       *api.Client
	sessions  *session.Store
	pageCache *cache.PageCache
	activity  ActivityLog
	pageSize  int
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// sessions, pageCache and activity may be nil.
func NewAdmin(renderer *render.Renderer, client *api.Client, sessions *session.Store, pageCache *cache.PageCache, activity ActivityLog, pageSize int) *Admin {
	return &Admin{
		renderer:  renderer,
		api:       client,
		sessions:  sessions,
		pageCache: pageCache,
		activity:  activity,
		pageSize:  cmp.Or(pageSize, 10),
	}
}

// dashboardCount is one tile of the dashboard.
type dashboardCount struct {
	Label string
	Link  string
	Value int
	Known bool
}

// Dashboard renders the admin dashboard: entity counts fetched in parallel
// and the latest activity.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	counts := []dashboardCount{
		{Label: "Hero banners", Link: "/admin/banners"},
		{Label: "Team members", Link: "/admin/team"},
		{Label: "About sections", Link: "/admin/about"},
		{Label: "Informative sections", Link: "/admin/sections"},
	}
	one := api.ListOptions{Page: 1, PerPage: 1}
	loaders := []func() (int, error){
		func() (int, error) { return total(a.api.GetBanners(ctx, one)) },
		func() (int, error) { return total(a.api.GetTeamMembers(ctx, one)) },
		func() (int, error) { return total(a.api.GetAboutSections(ctx, one)) },
		func() (int, error) { return total(a.api.GetInformativeSections(ctx, one)) },
	}

	var g errgroup.Group
	errs := make([]error, len(loaders))
	for i, load := range loaders {
		g.Go(func() error {
			counts[i].Value, errs[i] = load()
			counts[i].Known = errs[i] == nil
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if errors.Is(err, api.ErrUnauthorized) {
			a.expireSession(w, r)
			return
		}
		if err != nil {
			slog.Warn("dashboard count failed", "tile", counts[i].Label, "error", err)
		}
	}

	var recent []store.Activity
	if a.activity != nil {
		var err error
		if recent, err = a.activity.Recent(ctx, recentActivityLimit); err != nil {
			slog.Error("load recent activity failed", "error", err)
		}
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"Counts":   counts,
			"Activity": recent,
		},
	})
}

// total reads the item count of a list response.
func total[T any](p *api.Page[T], err error) (int, error) {
	if err != nil {
		return 0, err
	}
	return max(p.Total, len(p.Items)), nil
}

// --- Shared helpers ---

// listOptions builds the backend query for an admin list from the request.
func (a *Admin) listOptions(r *http.Request) api.ListOptions {
	q := r.URL.Query()
	return api.ListOptions{
		Page:    pagination.PageParam(q),
		PerPage: a.pageSize,
		Status:  q.Get("status"),
	}
}

// pager converts a backend page into the paginator the list templates use.
func pager[T any](p *api.Page[T], perPage int) pagination.Paginator {
	return pagination.New(p.CurrentPage, p.LastPage, max(p.Total, len(p.Items)), cmp.Or(p.PerPage, perPage))
}

// expireSession ends a session the backend no longer accepts and sends the
// browser to the login page.
func (a *Admin) expireSession(w http.ResponseWriter, r *http.Request) {
	expireSession(a.sessions, w, r)
}

func expireSession(sessions *session.Store, w http.ResponseWriter, r *http.Request) {
	if sessions != nil {
		if err := sessions.Destroy(r.Context(), w, r); err != nil {
			slog.Warn("session destroy failed", "error", err)
		}
	}
	render.SetFlash(w, "info", "Your session has expired. Please sign in again.")
	middleware.RedirectToLogin(w, r)
}

// backendError renders the failure of a read call: 401 logs out, 404 shows
// a not-found page, anything else a generic error page.
func (a *Admin) backendError(w http.ResponseWriter, r *http.Request, section, back string, err error) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		a.expireSession(w, r)
	case errors.Is(err, api.ErrNotFound):
		a.renderer.PageStatus(w, r, http.StatusNotFound, "error", &render.PageData{
			Title:   "Not found",
			Section: section,
			Data: map[string]any{
				"Heading": "Not found",
				"Message": "This item does not exist or was already deleted.",
				"Back":    back,
			},
		})
	default:
		slog.Error("backend request failed", "path", r.URL.Path, "error", err)
		a.renderer.PageStatus(w, r, http.StatusBadGateway, "error", &render.PageData{
			Title:   "Error",
			Section: section,
			Data: map[string]any{
				"Message": api.Message(err),
				"Back":    back,
			},
		})
	}
}

// formView describes the page a draft is edited on.
type formView struct {
	template string
	title    string
	section  string
	extra    map[string]any
}

// renderForm shows the edit form for draft, with err as the inline error.
func (a *Admin) renderForm(w http.ResponseWriter, r *http.Request, status int, view formView, draft any, err error) {
	data := map[string]any{"Draft": draft}
	for k, v := range view.extra {
		data[k] = v
	}
	if err != nil {
		data["Error"] = err
		data["FormError"] = formErrorMessage(err)
	}
	a.renderer.PageStatus(w, r, status, view.template, &render.PageData{
		Title:   view.title,
		Section: view.section,
		Data:    data,
	})
}

// formFailed re-renders the form after a failed bind or submit. The draft
// is kept as entered so nothing typed is lost.
func (a *Admin) formFailed(w http.ResponseWriter, r *http.Request, view formView, draft any, err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		a.expireSession(w, r)
		return
	}

	status := http.StatusUnprocessableEntity
	var apiErr *api.Error
	_, invalid := forms.AsFieldError(err)
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Status != http.StatusUnprocessableEntity {
			slog.Error("save failed", "path", r.URL.Path, "status", apiErr.Status, "error", err)
			status = http.StatusBadGateway
		}
	case invalid, errors.Is(err, forms.ErrUnsupported):
	default:
		slog.Error("save failed", "path", r.URL.Path, "error", err)
		status = http.StatusBadGateway
	}
	a.renderForm(w, r, status, view, draft, err)
}

// formErrorMessage is the banner text shown above a failed form.
func formErrorMessage(err error) string {
	if fe, ok := forms.AsFieldError(err); ok {
		return fe.Message
	}
	if errors.Is(err, forms.ErrUnsupported) {
		return "This item cannot be created from the admin panel."
	}
	return api.Message(err)
}

// parseForm reads the posted form. On failure the form is re-rendered with
// the reason, and ok is false.
func (a *Admin) parseForm(w http.ResponseWriter, r *http.Request, view formView, draft any) (*forms.Submission, bool) {
	sub, err := forms.Parse(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		msg := "The form could not be read. Please try again."
		if errors.As(err, &tooLarge) {
			msg = "The upload is too large. Please choose smaller images."
		}
		a.renderForm(w, r, http.StatusRequestEntityTooLarge, view, draft, &forms.FieldError{Message: msg})
		return nil, false
	}
	return sub, true
}

// changed finishes a successful mutation: records it, drops the public
// pages that show the entity, and redirects to the list with a flash.
func (a *Admin) changed(w http.ResponseWriter, r *http.Request, change store.Activity, message, redirect string, paths ...string) {
	ctx := r.Context()
	if a.activity != nil {
		if sess := middleware.SessionFromCtx(ctx); sess != nil {
			change.Actor = sess.Email
		}
		a.activity.Record(ctx, change)
	}

	if len(paths) == 0 {
		a.pageCache.InvalidateAll(ctx)
	} else {
		a.pageCache.InvalidatePaths(ctx, paths...)
	}

	render.SetFlash(w, "success", message)
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// actionFailed reports a failed list action (delete, toggle) on the list
// page.
func (a *Admin) actionFailed(w http.ResponseWriter, r *http.Request, redirect string, err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		a.expireSession(w, r)
		return
	}
	slog.Error("list action failed", "path", r.URL.Path, "error", err)
	render.SetFlash(w, "error", formErrorMessage(err))
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}
