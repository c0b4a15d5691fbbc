// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

import (
	"context"
	"slices"
	"strings"

	"barbershop/internal/api"
	"barbershop/internal/models"
)

// AboutSectionSaver persists About Us sections. *api.Client implements it.
type AboutSectionSaver interface {
	CreateAboutSection(ctx context.Context, form *api.Form) (*models.AboutUsSection, error)
	UpdateAboutSection(ctx context.Context, id string, form *api.Form) (*models.AboutUsSection, error)
}

// AboutSectionStatuses are the statuses offered in the editor.
var AboutSectionStatuses = []string{"active", "inactive"}

// AboutSectionDraft is the editable copy of an About Us section.
type AboutSectionDraft struct {
	ID            string
	TitleEn       string
	TitleAr       string
	DescriptionEn string
	DescriptionAr string
	Features      []models.Text
	Image         Image
	Type          string
	Status        string
	SortOrder     int
}

// NewAboutSectionDraft copies s into a draft, or returns defaults when s
// is nil.
func NewAboutSectionDraft(s *models.AboutUsSection) *AboutSectionDraft {
	if s == nil {
		return &AboutSectionDraft{Type: models.AboutSectionTypes[0], Status: "active"}
	}
	d := &AboutSectionDraft{
		ID:            s.ID,
		TitleEn:       s.Title.En,
		TitleAr:       s.Title.Ar,
		DescriptionEn: s.Description.En,
		DescriptionAr: s.Description.Ar,
		Image:         Image{URL: s.Image},
		Type:          s.Type,
		Status:        "inactive",
		SortOrder:     s.SortOrder,
	}
	if s.IsActive() {
		d.Status = "active"
	}
	for _, f := range s.Features {
		d.Features = append(d.Features, f.Text)
	}
	return d
}

// IsNew reports whether the draft will be created rather than updated.
func (d *AboutSectionDraft) IsNew() bool { return d.ID == "" }

// Bind copies submitted values into the draft.
func (d *AboutSectionDraft) Bind(s *Submission) error {
	d.TitleEn = s.Get("title_en")
	d.TitleAr = s.Get("title_ar")
	d.DescriptionEn = s.Get("description_en")
	d.DescriptionAr = s.Get("description_ar")
	d.Type = strings.ToLower(s.Get("type"))
	d.Status = strings.ToLower(s.Get("status"))
	d.SortOrder = s.Int("sort_order")

	d.Features = nil
	for _, row := range s.Rows("features", "text_en", "text_ar") {
		d.Features = append(d.Features, models.Text{En: row.Get("text_en"), Ar: row.Get("text_ar")})
	}

	return bindImage(s, &d.Image, "image", AboutImageRule)
}

// Validate runs the save-time checks.
func (d *AboutSectionDraft) Validate() error {
	checks := []*FieldError{
		required("title_en", d.TitleEn, "Title (English) is required"),
		tooLong("title_en", "Title (English)", d.TitleEn, maxTitleLength),
		tooLong("title_ar", "Title (Arabic)", d.TitleAr, maxTitleLength),
		required("description_en", d.DescriptionEn, "Description (English) is required"),
		tooLong("description_en", "Description (English)", d.DescriptionEn, maxDescriptionLength),
		tooLong("description_ar", "Description (Arabic)", d.DescriptionAr, maxDescriptionLength),
	}
	if d.Type != "" && !slices.Contains(models.AboutSectionTypes, d.Type) {
		checks = append(checks, &FieldError{Field: "type", Message: "Choose a valid section type"})
	}
	if !slices.Contains(AboutSectionStatuses, d.Status) {
		checks = append(checks, &FieldError{Field: "status", Message: "Choose a valid status"})
	}
	for i, f := range d.Features {
		if f.En == "" {
			checks = append(checks, fieldError(api.IndexedName("features", i, "text_en"), "Feature text (English) is required"))
			break
		}
	}
	return firstError(checks...)
}

// Payload builds the multipart body in the backend's field names.
func (d *AboutSectionDraft) Payload() *api.Form {
	form := api.NewForm().
		Set("title_en", d.TitleEn).
		Set("title_ar", d.TitleAr).
		Set("description_en", d.DescriptionEn).
		Set("description_ar", d.DescriptionAr).
		Set("type", d.Type).
		Set("status", d.Status).
		Set("sort_order", itoa(d.SortOrder))
	for i, f := range d.Features {
		form.SetIndexed("features", i, "text_en", f.En)
		form.SetIndexed("features", i, "text_ar", f.Ar)
	}
	d.Image.attach(form, "image")
	return form
}

// Submit validates the draft and creates or updates the section.
func (d *AboutSectionDraft) Submit(ctx context.Context, saver AboutSectionSaver) (*models.AboutUsSection, error) {
	return submit(ctx, d, d.ID, saver.CreateAboutSection, saver.UpdateAboutSection)
}
