// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"barbershop/internal/api"
	"barbershop/internal/forms"
	"barbershop/internal/models"
	"barbershop/internal/store"
)

const footerPath = "/admin/footer"

var footerView = formView{template: "footer_form", title: "Footer", section: "footer"}

// FooterEdit renders the footer form. A backend without a footer yet
// yields an empty form.
func (a *Admin) FooterEdit(w http.ResponseWriter, r *http.Request) {
	f, err := a.api.GetFooter(r.Context())
	if errors.Is(err, api.ErrNotFound) {
		f, err = &models.FooterConfig{}, nil
	}
	if err != nil {
		a.backendError(w, r, "footer", "/admin", err)
		return
	}
	a.renderForm(w, r, http.StatusOK, footerView, forms.NewFooterDraft(f), nil)
}

// FooterUpdate saves the footer. Every public page renders it, so the
// whole page cache is dropped.
func (a *Admin) FooterUpdate(w http.ResponseWriter, r *http.Request) {
	f, err := a.api.GetFooter(r.Context())
	if errors.Is(err, api.ErrNotFound) {
		f, err = &models.FooterConfig{}, nil
	}
	if err != nil {
		a.backendError(w, r, "footer", "/admin", err)
		return
	}

	d := forms.NewFooterDraft(f)
	sub, ok := a.parseForm(w, r, footerView, d)
	if !ok {
		return
	}
	if err := d.Bind(sub); err != nil {
		a.formFailed(w, r, footerView, d, err)
		return
	}
	if _, err := d.Submit(r.Context(), a.api); err != nil {
		a.formFailed(w, r, footerView, d, err)
		return
	}

	a.changed(w, r, store.Activity{
		EntityType: "footer",
		EntityID:   "footer",
		Action:     store.ActionUpdate,
	}, "Footer saved.", footerPath)
}
