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

const sectionsPath = "/admin/sections"

func sectionForm() formView {
	return formView{
		template: "section_form",
		title:    "Edit section",
		section:  "sections",
		extra:    map[string]any{"Statuses": models.SectionStatuses},
	}
}

// SectionsList renders the informative sections. They are keyed by the
// backend, so the list offers editing only.
func (a *Admin) SectionsList(w http.ResponseWriter, r *http.Request) {
	page, err := a.api.GetInformativeSections(r.Context(), a.listOptions(r))
	if err != nil {
		a.backendError(w, r, "sections", "/admin", err)
		return
	}

	a.renderer.Page(w, r, "sections_list", &render.PageData{
		Title:   "Informative sections",
		Section: "sections",
		Data: map[string]any{
			"Items": page.Items,
			"Pager": pager(page, a.pageSize),
			"Base":  r.URL,
		},
	})
}

// SectionEdit renders the form for a section.
func (a *Admin) SectionEdit(w http.ResponseWriter, r *http.Request) {
	s, err := a.api.GetInformativeSectionByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.backendError(w, r, "sections", sectionsPath, err)
		return
	}
	a.renderForm(w, r, http.StatusOK, sectionForm(), forms.NewInformativeSectionDraft(s), nil)
}

// SectionUpdate handles the section form submission.
func (a *Admin) SectionUpdate(w http.ResponseWriter, r *http.Request) {
	s, err := a.api.GetInformativeSectionByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.backendError(w, r, "sections", sectionsPath, err)
		return
	}

	d := forms.NewInformativeSectionDraft(s)
	view := sectionForm()
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
		EntityType: "informative_section",
		EntityID:   saved.ID,
		Action:     store.ActionUpdate,
		Summary:    saved.Name,
	}, "Section saved.", sectionsPath, "/")
}
