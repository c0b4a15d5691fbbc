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

// InformativeSectionSaver updates informative sections. Sections are keyed
// by the backend, so only update is required; create is optional.
type InformativeSectionSaver interface {
	UpdateInformativeSection(ctx context.Context, id string, form *api.Form) (*models.InformativeSection, error)
}

type informativeSectionCreator interface {
	CreateInformativeSection(ctx context.Context, form *api.Form) (*models.InformativeSection, error)
}

// SectionFeatureDraft is one feature row of an informative section.
type SectionFeatureDraft struct {
	NameEn string
	NameAr string
	Icon   Image
}

// InformativeSectionDraft is the editable copy of an informative section.
// Name is the backend key and is never sent back.
type InformativeSectionDraft struct {
	ID            string
	Name          string
	TitleEn       string
	TitleAr       string
	DescriptionEn string
	DescriptionAr string
	Features      []SectionFeatureDraft
	Status        models.SectionStatus
}

// NewInformativeSectionDraft copies s into a draft, or returns defaults
// when s is nil.
func NewInformativeSectionDraft(s *models.InformativeSection) *InformativeSectionDraft {
	if s == nil {
		return &InformativeSectionDraft{Status: models.SectionDraft}
	}
	d := &InformativeSectionDraft{
		ID:            s.ID,
		Name:          s.Name,
		TitleEn:       s.Title.En,
		TitleAr:       s.Title.Ar,
		DescriptionEn: s.Description.En,
		DescriptionAr: s.Description.Ar,
		Status:        s.Status,
	}
	for _, f := range s.Features {
		d.Features = append(d.Features, SectionFeatureDraft{
			NameEn: f.Name.En,
			NameAr: f.Name.Ar,
			Icon:   Image{URL: f.Icon},
		})
	}
	return d
}

// IsNew reports whether the draft will be created rather than updated.
func (d *InformativeSectionDraft) IsNew() bool { return d.ID == "" }

// Bind copies submitted values into the draft. Each feature row carries
// its stored icon URL in icon_url and an optional new file in icon.
func (d *InformativeSectionDraft) Bind(s *Submission) error {
	d.TitleEn = s.Get("title_en")
	d.TitleAr = s.Get("title_ar")
	d.DescriptionEn = s.Get("description_en")
	d.DescriptionAr = s.Get("description_ar")
	d.Status = models.SectionStatus(strings.ToLower(s.Get("status")))

	var uploadErr error
	d.Features = nil
	// A row with only an icon chosen still counts, so a missing name is
	// reported instead of the icon being dropped.
	for _, row := range s.RowsWithUpload("features", "icon", "name_en", "name_ar", "icon_url") {
		f := SectionFeatureDraft{
			NameEn: row.Get("name_en"),
			NameAr: row.Get("name_ar"),
			Icon:   Image{URL: row.Get("icon_url")},
		}
		if err := bindImage(s, &f.Icon, api.IndexedName("features", row.Index, "icon"), SectionIconRule); err != nil && uploadErr == nil {
			uploadErr = err
		}
		d.Features = append(d.Features, f)
	}
	return uploadErr
}

// Validate runs the save-time checks.
func (d *InformativeSectionDraft) Validate() error {
	checks := []*FieldError{
		required("title_en", d.TitleEn, "Title (English) is required"),
		tooLong("title_en", "Title (English)", d.TitleEn, maxTitleLength),
		tooLong("description_en", "Description (English)", d.DescriptionEn, maxDescriptionLength),
	}
	if !d.Status.Valid() {
		checks = append(checks, &FieldError{Field: "status", Message: "Choose a valid status"})
	}
	for i, f := range d.Features {
		if f.NameEn == "" {
			checks = append(checks, fieldError(api.IndexedName("features", i, "name_en"), "Feature name (English) is required"))
			break
		}
	}
	return firstError(checks...)
}

// Payload builds the multipart body in the backend's field names.
func (d *InformativeSectionDraft) Payload() *api.Form {
	form := api.NewForm().
		Set("title_en", d.TitleEn).
		Set("title_ar", d.TitleAr).
		Set("description_en", d.DescriptionEn).
		Set("description_ar", d.DescriptionAr).
		Set("status", string(d.Status))
	for i, f := range d.Features {
		form.SetIndexed("features", i, "name_en", f.NameEn)
		form.SetIndexed("features", i, "name_ar", f.NameAr)
		if f.Icon.URL != "" {
			form.SetIndexed("features", i, "icon_url", f.Icon.URL)
		}
		f.Icon.attach(form, api.IndexedName("features", i, "icon"))
	}
	return form
}

// Submit validates the draft and updates the section. Creating requires a
// saver that can also create; otherwise ErrUnsupported is returned.
func (d *InformativeSectionDraft) Submit(ctx context.Context, saver InformativeSectionSaver) (*models.InformativeSection, error) {
	var create func(context.Context, *api.Form) (*models.InformativeSection, error)
	if c, ok := saver.(informativeSectionCreator); ok {
		create = c.CreateInformativeSection
	}
	return submit(ctx, d, d.ID, create, saver.UpdateInformativeSection)
}
