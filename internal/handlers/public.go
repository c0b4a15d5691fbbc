// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"barbershop/internal/api"
	"barbershop/internal/cache"
	"barbershop/internal/i18n"
	"barbershop/internal/models"
	"barbershop/internal/render"
	"barbershop/internal/slug"
)

// Public groups handlers for the public marketing site. Pages are built
// from the backend's public endpoints, rendered in the visitor's language
// and kept in the Valkey page cache per path and language.
type Public struct {
	renderer  *render.Renderer
	api       *api.Client
	pageCache *cache.PageCache
	catalog   *i18n.Catalog
}

// NewPublic creates a new Public handler group. pageCache may be nil.
func NewPublic(renderer *render.Renderer, client *api.Client, pageCache *cache.PageCache, catalog *i18n.Catalog) *Public {
	return &Public{
		renderer:  renderer,
		api:       client,
		pageCache: pageCache,
		catalog:   catalog,
	}
}

// pageBuilder fills d for one page and returns the template to render.
// complete is false when some block could not be loaded; such pages are
// served but not cached. An api.ErrNotFound error renders the 404 page.
type pageBuilder func(ctx context.Context, d *render.PublicData) (template string, complete bool, err error)

// serve resolves the language, answers from the page cache when possible,
// and otherwise builds, renders and caches the page.
func (p *Public) serve(w http.ResponseWriter, r *http.Request, section string, build pageBuilder) {
	ctx := r.Context()
	lang, explicit := i18n.Resolve(r)
	if explicit {
		i18n.SetCookie(w, lang)
	}
	w.Header().Set("Vary", "Accept-Language, Cookie")

	key := cache.PageKey(cachePath(r.URL), lang)
	if cached, ok := p.pageCache.Get(ctx, key); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	d := &render.PublicData{
		Lang:    lang,
		Path:    r.URL.RequestURI(),
		Section: section,
		Data:    map[string]any{},
	}

	var (
		footer   *models.FooterConfig
		name     string
		complete bool
		err      error
	)
	var g errgroup.Group
	g.Go(func() error {
		footer = p.footer(ctx)
		return nil
	})
	g.Go(func() error {
		name, complete, err = build(ctx, d)
		return nil
	})
	_ = g.Wait()
	d.Footer = footer

	if errors.Is(err, api.ErrNotFound) {
		p.renderNotFound(w, d)
		return
	}
	if err != nil {
		slog.Error("build public page failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	html, err := p.renderer.Public(name, d)
	if err != nil {
		slog.Error("render public page failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if complete && footer != nil {
		p.pageCache.Set(ctx, key, html)
	}
	writeHTML(w, http.StatusOK, html)
}

// footer loads the shared footer. It is best-effort: pages render without
// it when the backend cannot serve it.
func (p *Public) footer(ctx context.Context) *models.FooterConfig {
	f, err := p.api.GetPublicFooter(ctx)
	if err != nil {
		slog.Warn("footer unavailable", "error", err)
		return nil
	}
	return f
}

// Home renders the landing page. Every block is fetched concurrently and
// on its own: a block the backend cannot serve is left out of the page.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "home", func(ctx context.Context, d *render.PublicData) (string, bool, error) {
		var (
			banners    []models.Banner
			about      []models.AboutUsSection
			sections   []models.InformativeSection
			philosophy *models.Philosophy
			features   []models.PhilosophyFeature
			plans      []models.PricingPlan
			filters    []models.PricingFilter
			team       []models.TeamMember
		)

		blocks := []struct {
			name string
			load func() error
		}{
			{"banners", func() (err error) { banners, err = p.api.GetPublicBanners(ctx); return }},
			{"about", func() error {
				listing, err := p.api.GetPublicAboutUs(ctx)
				if err == nil {
					about = listing.Data
				}
				return err
			}},
			{"sections", func() (err error) { sections, err = p.api.GetPublicSections(ctx); return }},
			{"philosophy", func() (err error) { philosophy, err = p.api.GetPhilosophy(ctx); return }},
			{"philosophy_features", func() (err error) { features, err = p.api.GetPhilosophyFeatures(ctx); return }},
			{"pricing", func() (err error) { plans, err = p.api.GetPricingPlans(ctx, ""); return }},
			{"pricing_filters", func() (err error) { filters, err = p.api.GetPricingFilters(ctx); return }},
			{"team", func() (err error) { team, err = p.api.GetPublicTeam(ctx); return }},
		}

		var g errgroup.Group
		failed := make([]bool, len(blocks))
		for i, b := range blocks {
			g.Go(func() error {
				if err := b.load(); err != nil {
					slog.Warn("homepage block unavailable", "block", b.name, "error", err)
					failed[i] = true
				}
				return nil
			})
		}
		_ = g.Wait()

		complete := true
		for _, f := range failed {
			complete = complete && !f
		}

		d.Data["Banners"] = banners
		d.Data["About"] = about
		d.Data["Sections"] = sections
		if philosophy != nil && !philosophy.Title.IsZero() {
			d.Data["Philosophy"] = philosophy
		}
		d.Data["PhilosophyFeatures"] = features
		d.Data["Plans"] = plans
		d.Data["Tabs"] = p.pricingTabs(d.Lang, filters, "")
		d.Data["Team"] = team
		return "home", complete, nil
	})
}

// Pricing renders the pricing plans, optionally narrowed to one category
// with ?filter=<category>.
func (p *Public) Pricing(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "pricing", func(ctx context.Context, d *render.PublicData) (string, bool, error) {
		d.Title = p.catalog.T(d.Lang, "pricing.title")
		complete := true

		filters, err := p.api.GetPricingFilters(ctx)
		if err != nil {
			slog.Warn("pricing filters unavailable", "error", err)
			complete = false
		}

		selected := r.URL.Query().Get("filter")
		var filterID string
		for _, f := range filters {
			if filterKey(f) == selected {
				filterID = f.ID
			}
		}
		if filterID == "" {
			selected = ""
		}

		plans, err := p.api.GetPricingPlans(ctx, filterID)
		if err != nil && !errors.Is(err, api.ErrNotFound) {
			slog.Warn("pricing plans unavailable", "error", err)
			complete = false
		}

		d.Data["Plans"] = plans
		d.Data["Tabs"] = p.pricingTabs(d.Lang, filters, selected)
		return "pricing", complete, nil
	})
}

// PricingDetail renders a single pricing plan.
func (p *Public) PricingDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p.serve(w, r, "pricing", func(ctx context.Context, d *render.PublicData) (string, bool, error) {
		var (
			plan    *models.PricingPlan
			filters []models.PricingFilter
			planErr error
		)
		var g errgroup.Group
		g.Go(func() error {
			plan, planErr = p.api.GetPricingPlanByID(ctx, id)
			return nil
		})
		g.Go(func() error {
			var err error
			if filters, err = p.api.GetPricingFilters(ctx); err != nil {
				slog.Warn("pricing filters unavailable", "error", err)
			}
			return nil
		})
		_ = g.Wait()

		if planErr != nil {
			return "", false, planErr
		}

		d.Title = plan.Title.In(d.Lang)
		d.Data["Plan"] = plan
		for _, f := range filters {
			if f.ID != "" && f.ID == plan.FilterID {
				d.Data["Filter"] = f
			}
		}
		return "pricing_detail", true, nil
	})
}

// Team renders the team page. Each member has an anchor built from their
// name so other pages can link to them.
func (p *Public) Team(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "team", func(ctx context.Context, d *render.PublicData) (string, bool, error) {
		d.Title = p.catalog.T(d.Lang, "team.title")
		team, err := p.api.GetPublicTeam(ctx)
		if err != nil {
			slog.Warn("team unavailable", "error", err)
			return "team", false, nil
		}
		d.Data["Team"] = team
		return "team", true, nil
	})
}

// NotFound renders the public 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	lang, _ := i18n.Resolve(r)
	d := &render.PublicData{
		Lang:   lang,
		Path:   "/",
		Footer: p.footer(r.Context()),
		Data:   map[string]any{},
	}
	p.renderNotFound(w, d)
}

func (p *Public) renderNotFound(w http.ResponseWriter, d *render.PublicData) {
	d.Title = p.catalog.T(d.Lang, "error.not_found_title")
	html, err := p.renderer.Public("not_found", d)
	if err != nil {
		slog.Error("render not found page failed", "error", err)
		http.NotFound(w, nil)
		return
	}
	writeHTML(w, http.StatusNotFound, html)
}

// pricingTab is one category tab above the pricing grid.
type pricingTab struct {
	URL    string
	Name   models.Text
	Active bool
}

// pricingTabs builds the "All" tab plus one per category. selected is the
// active category key, empty for all.
func (p *Public) pricingTabs(lang string, filters []models.PricingFilter, selected string) []pricingTab {
	if len(filters) == 0 {
		return nil
	}
	tabURL := func(key string) string {
		q := url.Values{"lang": {lang}}
		if key != "" {
			q.Set("filter", key)
		}
		return "/pricing?" + q.Encode()
	}

	tabs := []pricingTab{{
		URL: tabURL(""),
		Name: models.Text{
			En: p.catalog.T(i18n.English, "pricing.all"),
			Ar: p.catalog.T(i18n.Arabic, "pricing.all"),
		},
		Active: selected == "",
	}}
	for _, f := range filters {
		key := filterKey(f)
		tabs = append(tabs, pricingTab{URL: tabURL(key), Name: f.Name, Active: key == selected})
	}
	return tabs
}

// filterKey is the ?filter= value of a pricing category.
func filterKey(f models.PricingFilter) string {
	if f.Slug != "" {
		return f.Slug
	}
	if s := slug.Generate(f.Name.En); s != "" {
		return s
	}
	return f.ID
}

// cachePath is the page cache path of u: its path and query without the
// lang parameter, which is part of the key already.
func cachePath(u *url.URL) string {
	q := u.Query()
	q.Del("lang")
	if len(q) == 0 {
		return u.Path
	}
	return u.Path + "?" + q.Encode()
}

func writeHTML(w http.ResponseWriter, status int, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(html)
}
