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

const teamPath = "/admin/team"

// Public pages that show team members.
var teamPages = []string{"/", "/team"}

func teamForm(d *forms.TeamMemberDraft) formView {
	title := "Edit team member"
	if d.IsNew() {
		title = "New team member"
	}
	return formView{
		template: "team_form",
		title:    title,
		section:  "team",
		extra:    map[string]any{"Statuses": models.MemberStatuses},
	}
}

// TeamList renders one page of team members, optionally filtered by status.
func (a *Admin) TeamList(w http.ResponseWriter, r *http.Request) {
	opts := a.listOptions(r)
	if opts.Status != "" && !models.MemberStatus(opts.Status).Valid() {
		opts.Status = ""
	}

	page, err := a.api.GetTeamMembers(r.Context(), opts)
	if err != nil {
		a.backendError(w, r, "team", "/admin", err)
		return
	}

	a.renderer.Page(w, r, "team_list", &render.PageData{
		Title:   "Team",
		Section: "team",
		Data: map[string]any{
			"Items":    page.Items,
			"Pager":    pager(page, a.pageSize),
			"Base":     r.URL,
			"Statuses": models.MemberStatuses,
			"Status":   opts.Status,
		},
	})
}

// TeamDetail renders a member with their stats, appointments and
// availability. Sections the backend could not serve are reported on the
// page instead of failing it.
func (a *Admin) TeamDetail(w http.ResponseWriter, r *http.Request) {
	details, err := a.api.GetTeamMemberDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.backendError(w, r, "team", teamPath, err)
		return
	}

	a.renderer.Page(w, r, "team_detail", &render.PageData{
		Title:   details.Member.FullName(),
		Section: "team",
		Data:    map[string]any{"Details": details},
	})
}

// TeamNew renders an empty team member form.
func (a *Admin) TeamNew(w http.ResponseWriter, r *http.Request) {
	d := forms.NewTeamMemberDraft(nil)
	a.renderForm(w, r, http.StatusOK, teamForm(d), d, nil)
}

// TeamCreate handles the new member form submission.
func (a *Admin) TeamCreate(w http.ResponseWriter, r *http.Request) {
	a.saveTeamMember(w, r, forms.NewTeamMemberDraft(nil), store.ActionCreate)
}

// TeamEdit renders the form for an existing member.
func (a *Admin) TeamEdit(w http.ResponseWriter, r *http.Request) {
	m, err := a.api.GetTeamMemberByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.backendError(w, r, "team", teamPath, err)
		return
	}
	d := forms.NewTeamMemberDraft(m)
	a.renderForm(w, r, http.StatusOK, teamForm(d), d, nil)
}

// TeamUpdate handles the edit member form submission.
func (a *Admin) TeamUpdate(w http.ResponseWriter, r *http.Request) {
	m, err := a.api.GetTeamMemberByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.backendError(w, r, "team", teamPath, err)
		return
	}
	a.saveTeamMember(w, r, forms.NewTeamMemberDraft(m), store.ActionUpdate)
}

func (a *Admin) saveTeamMember(w http.ResponseWriter, r *http.Request, d *forms.TeamMemberDraft, action string) {
	view := teamForm(d)
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
		EntityType: "team_member",
		EntityID:   saved.ID,
		Action:     action,
		Summary:    saved.FullName(),
	}, "Team member saved.", teamPath, teamPages...)
}

// TeamDelete removes a team member.
func (a *Admin) TeamDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.api.DeleteTeamMember(r.Context(), id); err != nil {
		a.actionFailed(w, r, teamPath, err)
		return
	}
	a.changed(w, r, store.Activity{
		EntityType: "team_member",
		EntityID:   id,
		Action:     store.ActionDelete,
	}, "Team member deleted.", teamPath, teamPages...)
}
