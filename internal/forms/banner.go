// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

import (
	"context"

	"barbershop/internal/api"
	"barbershop/internal/models"
)

// BannerSaver persists banners. *api.Client implements it.
type BannerSaver interface {
	CreateBanner(ctx context.Context, form *api.Form) (*models.Banner, error)
	UpdateBanner(ctx context.Context, id string, form *api.Form) (*models.Banner, error)
}

// BannerDraft is the editable copy of a banner.
type BannerDraft struct {
	ID           string
	Title        string
	DesktopImage Image
	MobileImage  Image
	ButtonTextEn string
	ButtonTextAr string
	ButtonURL    string
	IsActive     bool
	SortOrder    int
}

// NewBannerDraft copies b into a draft, or returns create-mode defaults
// when b is nil.
func NewBannerDraft(b *models.Banner) *BannerDraft {
	if b == nil {
		return &BannerDraft{IsActive: true}
	}
	return &BannerDraft{
		ID:           b.ID,
		Title:        b.Title,
		DesktopImage: Image{URL: b.DesktopImage},
		MobileImage:  Image{URL: b.MobileImage},
		ButtonTextEn: b.ButtonText.En,
		ButtonTextAr: b.ButtonText.Ar,
		ButtonURL:    b.ButtonURL,
		IsActive:     b.IsActive,
		SortOrder:    b.SortOrder,
	}
}

// IsNew reports whether the draft will be created rather than updated.
func (d *BannerDraft) IsNew() bool { return d.ID == "" }

// Bind copies submitted values into the draft. Text fields are always
// bound; the first rejected upload is returned.
func (d *BannerDraft) Bind(s *Submission) error {
	d.Title = s.Get("title")
	d.ButtonTextEn = s.Get("button_text_en")
	d.ButtonTextAr = s.Get("button_text_ar")
	d.ButtonURL = s.Get("button_url")
	d.IsActive = s.Bool("is_active")
	d.SortOrder = s.Int("sort_order")

	return firstErr(
		bindImage(s, &d.DesktopImage, "desktop_image", BannerImageRule),
		bindImage(s, &d.MobileImage, "mobile_image", BannerImageRule),
	)
}

// Validate runs the save-time checks.
func (d *BannerDraft) Validate() error {
	checks := []*FieldError{
		required("title", d.Title, "Banner title is required"),
		tooLong("title", "Banner title", d.Title, maxTitleLength),
	}
	if d.DesktopImage.IsZero() {
		checks = append(checks, &FieldError{Field: "desktop_image", Message: "Desktop image is required"})
	}
	if d.ButtonURL != "" && !IsURL(d.ButtonURL) {
		checks = append(checks, &FieldError{Field: "button_url", Message: "Button URL must be a valid URL"})
	}
	if d.ButtonURL != "" && d.ButtonTextEn == "" {
		checks = append(checks, &FieldError{Field: "button_text_en", Message: "Button text (English) is required when a button URL is set"})
	}
	return firstError(checks...)
}

// Payload builds the multipart body in the backend's field names.
func (d *BannerDraft) Payload() *api.Form {
	form := api.NewForm().
		Set("title", d.Title).
		Set("button_text_en", d.ButtonTextEn).
		Set("button_text_ar", d.ButtonTextAr).
		Set("button_url", d.ButtonURL).
		SetBool("is_active", d.IsActive).
		Set("sort_order", itoa(d.SortOrder))
	d.DesktopImage.attach(form, "desktop_image")
	d.MobileImage.attach(form, "mobile_image")
	return form
}

// Submit validates the draft and creates or updates the banner.
func (d *BannerDraft) Submit(ctx context.Context, saver BannerSaver) (*models.Banner, error) {
	return submit(ctx, d, d.ID, saver.CreateBanner, saver.UpdateBanner)
}
