// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

import (
	"context"
	"strings"

	"barbershop/internal/api"
	"barbershop/internal/models"
)

// TeamMemberSaver persists team members. *api.Client implements it.
type TeamMemberSaver interface {
	CreateTeamMember(ctx context.Context, form *api.Form) (*models.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, form *api.Form) (*models.TeamMember, error)
}

// TeamMemberDraft is the editable copy of a team member.
type TeamMemberDraft struct {
	ID           string
	FirstName    string
	LastName     string
	JobTitle     string
	Status       models.MemberStatus
	Email        string
	Phone        string
	Bio          string
	ProfilePhoto Image
	SocialLinks  []models.SocialLink
}

// NewTeamMemberDraft copies m into a draft, or returns defaults for a new
// member when m is nil.
func NewTeamMemberDraft(m *models.TeamMember) *TeamMemberDraft {
	if m == nil {
		return &TeamMemberDraft{Status: models.MemberActive}
	}
	d := &TeamMemberDraft{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		JobTitle:     m.JobTitle,
		Status:       m.Status,
		Email:        m.Email,
		Phone:        m.Phone,
		Bio:          m.Bio,
		ProfilePhoto: Image{URL: m.ProfilePhoto},
		SocialLinks:  append([]models.SocialLink(nil), m.SocialLinks...),
	}
	if d.Status == "" {
		d.Status = models.MemberActive
	}
	return d
}

// IsNew reports whether the draft will be created rather than updated.
func (d *TeamMemberDraft) IsNew() bool { return d.ID == "" }

// Bind copies submitted values into the draft.
func (d *TeamMemberDraft) Bind(s *Submission) error {
	d.FirstName = s.Get("first_name")
	d.LastName = s.Get("last_name")
	d.JobTitle = s.Get("job_title")
	d.Status = models.MemberStatus(strings.ToLower(s.Get("status")))
	d.Email = s.Get("email")
	d.Phone = s.Get("phone")
	d.Bio = s.Get("bio")

	d.SocialLinks = nil
	for _, row := range s.Rows("social_links", "platform", "url") {
		d.SocialLinks = append(d.SocialLinks, models.SocialLink{
			Platform: strings.ToLower(row.Get("platform")),
			URL:      row.Get("url"),
		})
	}

	return bindImage(s, &d.ProfilePhoto, "profile_photo", ProfilePhotoRule)
}

// Validate runs the save-time checks.
func (d *TeamMemberDraft) Validate() error {
	checks := []*FieldError{
		required("first_name", d.FirstName, "First name is required"),
		required("last_name", d.LastName, "Last name is required"),
		required("job_title", d.JobTitle, "Job title is required"),
		tooLong("bio", "Bio", d.Bio, maxDescriptionLength),
	}
	if !d.Status.Valid() {
		checks = append(checks, &FieldError{Field: "status", Message: "Choose a valid status"})
	}
	if d.Email != "" && !IsEmail(d.Email) {
		checks = append(checks, &FieldError{Field: "email", Message: "Email must be a valid email address"})
	}
	for i, link := range d.SocialLinks {
		if link.URL == "" || !IsURL(link.URL) {
			checks = append(checks, fieldError(api.IndexedName("social_links", i, "url"), "Social link URL must be a valid URL"))
			break
		}
	}
	return firstError(checks...)
}

// Payload builds the multipart body in the backend's field names.
func (d *TeamMemberDraft) Payload() *api.Form {
	form := api.NewForm().
		Set("first_name", d.FirstName).
		Set("last_name", d.LastName).
		Set("job_title", d.JobTitle).
		Set("status", string(d.Status)).
		Set("email", d.Email).
		Set("phone", d.Phone).
		Set("bio", d.Bio)
	for i, link := range d.SocialLinks {
		form.SetIndexed("social_links", i, "platform", link.Platform)
		form.SetIndexed("social_links", i, "url", link.URL)
	}
	d.ProfilePhoto.attach(form, "profile_photo")
	return form
}

// Submit validates the draft and creates or updates the member.
func (d *TeamMemberDraft) Submit(ctx context.Context, saver TeamMemberSaver) (*models.TeamMember, error) {
	return submit(ctx, d, d.ID, saver.CreateTeamMember, saver.UpdateTeamMember)
}
