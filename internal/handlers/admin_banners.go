// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"barbershop/internal/forms"
	"barbershop/internal/render"
	"barbershop/internal/store"
)

const bannersPath = "/admin/banners"

func bannerForm(d *forms.BannerDraft) formView {
	title := "Edit banner"
	if d.IsNew() {
		title = "New banner"
	}
	return formView{template: "banner_form", title: title, section: "banners"}
}

// BannersList renders one page of hero banners.
func (a *Admin) BannersList(w http.ResponseWriter, r *http.Request) {
	page, err := a.api.GetBanners(r.Context(), a.listOptions(r))
	if err != nil {
		a.backendError(w, r, "banners", "/admin", err)
		return
	}

	a.renderer.Page(w, r, "banners_list", &render.PageData{
		Title:   "Hero banners",
		Section: "banners",
		Data: map[string]any{
			"Items": page.Items,
			"Pager": pager(page, a.pageSize),
			"Base":  r.URL,
		},
	})
}

// BannerNew renders an empty banner form.
func (a *Admin) BannerNew(w http.ResponseWriter, r *http.Request) {
	d := forms.NewBannerDraft(nil)
	a.renderForm(w, r, http.StatusOK, bannerForm(d), d, nil)
}

// BannerCreate handles the new banner form submission.
func (a *Admin) BannerCreate(w http.ResponseWriter, r *http.Request) {
	d := forms.NewBannerDraft(nil)
	a.saveBanner(w, r, d, store.ActionCreate)
}

// BannerEdit renders the form for an existing banner.
func (a *Admin) BannerEdit(w http.ResponseWriter, r *http.Request) {
	b, err := a.api.GetBannerByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.backendError(w, r, "banners", bannersPath, err)
		return
	}
	d := forms.NewBannerDraft(b)
	a.renderForm(w, r, http.StatusOK, bannerForm(d), d, nil)
}

// BannerUpdate handles the edit banner form submission. The stored banner
// is loaded first so its images remain when no new file is chosen.
func (a *Admin) BannerUpdate(w http.ResponseWriter, r *http.Request) {
	b, err := a.api.GetBannerByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.backendError(w, r, "banners", bannersPath, err)
		return
	}
	a.saveBanner(w, r, forms.NewBannerDraft(b), store.ActionUpdate)
}

func (a *Admin) saveBanner(w http.ResponseWriter, r *http.Request, d *forms.BannerDraft, action string) {
	view := bannerForm(d)
	sub, ok := a.parseForm(w, r, view, d)
	if !ok {
		return
	}
	if err := d.Bind(sub); err != nil {
		a.formFailed(w, r, view, d, err)
		return
	}

	saved, err := d.Submit(r.Context(), a.api)
	if err != nil {
		a.formFailed(w, r, view, d, err)
		return
	}

	a.changed(w, r, store.Activity{
		EntityType: "banner",
		EntityID:   saved.ID,
		Action:     action,
		Summary:    saved.Title,
	}, "Banner saved.", bannersPath, "/")
}

// BannerToggle flips a banner between active and inactive.
func (a *Admin) BannerToggle(w http.ResponseWriter, r *http.Request) {
	b, err := a.api.GetBannerByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.backendError(w, r, "banners", bannersPath, err)
		return
	}

	d := forms.NewBannerDraft(b)
	d.IsActive = !d.IsActive
	if _, err := d.Submit(r.Context(), a.api); err != nil {
		a.actionFailed(w, r, bannersPath, err)
		return
	}

	state := "deactivated"
	if d.IsActive {
		state = "activated"
	}
	a.changed(w, r, store.Activity{
		EntityType: "banner",
		EntityID:   b.ID,
		Action:     store.ActionToggle,
		Summary:    b.Title,
	}, "Banner "+state+".", bannersPath, "/")
}

// BannerDelete removes a banner.
func (a *Admin) BannerDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.api.DeleteBanner(r.Context(), id); err != nil {
		a.actionFailed(w, r, bannersPath, err)
		return
	}
	a.changed(w, r, store.Activity{
		EntityType: "banner",
		EntityID:   id,
		Action:     store.ActionDelete,
	}, "Banner deleted.", bannersPath, "/")
}
