// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"barbershop/internal/forms"
	"barbershop/internal/models"
	"barbershop/internal/render"
	"barbershop/internal/store"
)

const aboutPath = "/admin/about"

func aboutForm(d *forms.AboutSectionDraft) formView {
	title := "Edit about section"
	if d.IsNew() {
		title = "New about section"
	}
	return formView{
		template: "about_form",
		title:    title,
		section:  "about",
		extra: map[string]any{
			"Types":    models.AboutSectionTypes,
			"Statuses": forms.AboutSectionStatuses,
		},
	}
}

// AboutList renders the "About us" sections.
func (a *Admin) AboutList(w http.ResponseWriter, r *http.Request) {
	page, err := a.api.GetAboutSections(r.Context(), a.listOptions(r))
	if err != nil {
		a.backendError(w, r, "about", "/admin", err)
		return
	}

	a.renderer.Page(w, r, "about_list", &render.PageData{
		Title:   "About us",
		Section: "about",
		Data: map[string]any{
			"Items": page.Items,
			"Pager": pager(page, a.pageSize),
			"Base":  r.URL,
		},
	})
}

// AboutNew renders an empty about section form.
func (a *Admin) AboutNew(w http.ResponseWriter, r *http.Request) {
	d := forms.NewAboutSectionDraft(nil)
	a.renderForm(w, r, http.StatusOK, aboutForm(d), d, nil)
}

// AboutCreate handles the new section form submission.
func (a *Admin) AboutCreate(w http.ResponseWriter, r *http.Request) {
	a.saveAboutSection(w, r, forms.NewAboutSectionDraft(nil), store.ActionCreate)
}

// AboutEdit renders the form for an existing section.
func (a *Admin) AboutEdit(w http.ResponseWriter, r *http.Request) {
	s, err := a.api.GetAboutSectionByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.backendError(w, r, "about", aboutPath, err)
		return
	}
	d := forms.NewAboutSectionDraft(s)
	a.renderForm(w, r, http.StatusOK, aboutForm(d), d, nil)
}

// AboutUpdate handles the edit section form submission.
func (a *Admin) AboutUpdate(w http.ResponseWriter, r *http.Request) {
	s, err := a.api.GetAboutSectionByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.backendError(w, r, "about", aboutPath, err)
		return
	}
	a.saveAboutSection(w, r, forms.NewAboutSectionDraft(s), store.ActionUpdate)
}

func (a *Admin) saveAboutSection(w http.ResponseWriter, r *http.Request, d *forms.AboutSectionDraft, action string) {
	view := aboutForm(d)
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
		EntityType: "about_section",
		EntityID:   saved.ID,
		Action:     action,
		Summary:    saved.Title.En,
	}, "About section saved.", aboutPath, "/")
}

// AboutDelete removes an about section.
func (a *Admin) AboutDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.api.DeleteAboutSection(r.Context(), id); err != nil {
		a.actionFailed(w, r, aboutPath, err)
		return
	}
	a.changed(w, r, store.Activity{
		EntityType: "about_section",
		EntityID:   id,
		Action:     store.ActionDelete,
	}, "About section deleted.", aboutPath, "/")
}
