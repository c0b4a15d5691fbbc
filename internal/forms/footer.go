// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"barbershop/internal/api"
	"barbershop/internal/models"
)

// FooterSaver persists the footer. *api.Client implements it.
type FooterSaver interface {
	UpdateFooter(ctx context.Context, form *api.Form) (*models.FooterConfig, error)
}

// iframeSrc extracts the src attribute from a pasted <iframe> embed.
var iframeSrc = regexp.MustCompile(`(?i)<iframe[^>]*\ssrc\s*=\s*["']([^"']+)["']`)

// FooterDraft is the editable copy of the footer configuration. Link
// columns hold their links; in the form each link row names its column.
type FooterDraft struct {
	Logo         Image
	AboutEn      string
	AboutAr      string
	SocialLinks  []models.SocialLink
	Phone        string
	Email        string
	AddressEn    string
	AddressAr    string
	WorkingHours []models.WorkingHours
	FooterLinks  []models.LinkColumn
	MapEmbed     string
}

// NewFooterDraft copies f into a draft, or returns an empty draft when the
// backend has no footer yet.
func NewFooterDraft(f *models.FooterConfig) *FooterDraft {
	if f == nil {
		return &FooterDraft{}
	}
	d := &FooterDraft{
		Logo:         Image{URL: f.Logo},
		AboutEn:      f.About.En,
		AboutAr:      f.About.Ar,
		SocialLinks:  append([]models.SocialLink(nil), f.SocialLinks...),
		Phone:        f.Phone,
		Email:        f.Email,
		AddressEn:    f.Address.En,
		AddressAr:    f.Address.Ar,
		WorkingHours: append([]models.WorkingHours(nil), f.WorkingHours...),
		MapEmbed:     f.MapEmbed,
	}
	for _, col := range f.FooterLinks {
		d.FooterLinks = append(d.FooterLinks, models.LinkColumn{
			Title: col.Title,
			Links: append([]models.FooterLink(nil), col.Links...),
		})
	}
	return d
}

// Bind copies submitted values into the draft.
func (d *FooterDraft) Bind(s *Submission) error {
	d.AboutEn = s.Get("about_en")
	d.AboutAr = s.Get("about_ar")
	d.Phone = s.Get("phone")
	d.Email = s.Get("email")
	d.AddressEn = s.Get("address_en")
	d.AddressAr = s.Get("address_ar")
	d.MapEmbed = NormalizeMapEmbed(s.Get("map_embed"))

	d.SocialLinks = nil
	for _, row := range s.Rows("social_links", "platform", "url") {
		d.SocialLinks = append(d.SocialLinks, models.SocialLink{
			Platform: strings.ToLower(row.Get("platform")),
			URL:      row.Get("url"),
		})
	}

	d.WorkingHours = nil
	for _, row := range s.Rows("working_hours", "day_en", "day_ar", "hours") {
		d.WorkingHours = append(d.WorkingHours, models.WorkingHours{
			Day:   models.Text{En: row.Get("day_en"), Ar: row.Get("day_ar")},
			Hours: row.Get("hours"),
		})
	}

	// Links first: a column whose title was left empty is still kept when a
	// link points at it, so validation reports the missing title.
	type boundLink struct {
		column int
		link   models.FooterLink
	}
	var links []boundLink
	referenced := map[int]bool{}
	for _, row := range s.Rows("links", "column", "label_en", "label_ar", "url") {
		// Blank rows still carry their hidden column number.
		if row.Get("label_en") == "" && row.Get("label_ar") == "" && row.Get("url") == "" {
			continue
		}
		col, err := strconv.Atoi(row.Get("column"))
		if err != nil || col < 0 {
			continue
		}
		referenced[col] = true
		links = append(links, boundLink{column: col, link: models.FooterLink{
			Label: models.Text{En: row.Get("label_en"), Ar: row.Get("label_ar")},
			URL:   row.Get("url"),
		}})
	}

	columnRows := s.Rows("columns", "title_en", "title_ar")
	for _, row := range columnRows {
		delete(referenced, row.Index)
	}
	for col := range referenced {
		columnRows = append(columnRows, Row{Index: col, Values: map[string]string{}})
	}
	sort.Slice(columnRows, func(i, j int) bool { return columnRows[i].Index < columnRows[j].Index })

	d.FooterLinks = nil
	columns := map[int]int{} // form index -> position in FooterLinks
	for _, row := range columnRows {
		columns[row.Index] = len(d.FooterLinks)
		d.FooterLinks = append(d.FooterLinks, models.LinkColumn{
			Title: models.Text{En: row.Get("title_en"), Ar: row.Get("title_ar")},
		})
	}
	for _, l := range links {
		pos := columns[l.column]
		d.FooterLinks[pos].Links = append(d.FooterLinks[pos].Links, l.link)
	}

	return bindImage(s, &d.Logo, "logo", FooterLogoRule)
}

// Validate runs the save-time checks.
func (d *FooterDraft) Validate() error {
	var checks []*FieldError
	if d.Email != "" && !IsEmail(d.Email) {
		checks = append(checks, &FieldError{Field: "email", Message: "Footer email must be a valid email address"})
	}
	if d.MapEmbed != "" && !IsURL(d.MapEmbed) {
		checks = append(checks, &FieldError{Field: "map_embed", Message: "Map embed must be a valid URL"})
	}
	checks = append(checks, tooLong("about_en", "About (English)", d.AboutEn, maxDescriptionLength))
	for i, link := range d.SocialLinks {
		if !IsURL(link.URL) {
			checks = append(checks, fieldError(api.IndexedName("social_links", i, "url"), "Social link URL must be a valid URL"))
			break
		}
	}
	for i, h := range d.WorkingHours {
		if h.Day.En == "" || h.Hours == "" {
			checks = append(checks, fieldError(api.IndexedName("working_hours", i, "day_en"), "Each working hours row needs a day and hours"))
			break
		}
	}
	for i, col := range d.FooterLinks {
		if col.Title.En == "" {
			checks = append(checks, fieldError(api.IndexedName("columns", i, "title_en"), "Link column title (English) is required"))
			break
		}
		for _, link := range col.Links {
			if link.Label.En == "" || !IsURL(link.URL) {
				checks = append(checks, fieldError("links", "Footer links need an English label and a valid URL"))
				break
			}
		}
	}
	return firstError(checks...)
}

// Payload builds the multipart body in the backend's field names. Links
// are nested under their column: footer_links[i][links][j][url].
func (d *FooterDraft) Payload() *api.Form {
	form := api.NewForm().
		Set("about_en", d.AboutEn).
		Set("about_ar", d.AboutAr).
		Set("phone", d.Phone).
		Set("email", d.Email).
		Set("address_en", d.AddressEn).
		Set("address_ar", d.AddressAr).
		Set("map_embed", d.MapEmbed)
	for i, link := range d.SocialLinks {
		form.SetIndexed("social_links", i, "platform", link.Platform)
		form.SetIndexed("social_links", i, "url", link.URL)
	}
	for i, h := range d.WorkingHours {
		form.SetIndexed("working_hours", i, "day_en", h.Day.En)
		form.SetIndexed("working_hours", i, "day_ar", h.Day.Ar)
		form.SetIndexed("working_hours", i, "hours", h.Hours)
	}
	for i, col := range d.FooterLinks {
		form.SetIndexed("footer_links", i, "title_en", col.Title.En)
		form.SetIndexed("footer_links", i, "title_ar", col.Title.Ar)
		for j, link := range col.Links {
			prefix := fmt.Sprintf("footer_links[%d][links]", i)
			form.SetIndexed(prefix, j, "label_en", link.Label.En)
			form.SetIndexed(prefix, j, "label_ar", link.Label.Ar)
			form.SetIndexed(prefix, j, "url", link.URL)
		}
	}
	d.Logo.attach(form, "logo")
	return form
}

// Submit validates the draft and saves the footer. The footer always
// exists on the backend, so there is no create mode.
func (d *FooterDraft) Submit(ctx context.Context, saver FooterSaver) (*models.FooterConfig, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return saver.UpdateFooter(ctx, d.Payload())
}

// NormalizeMapEmbed accepts either a URL or a pasted <iframe> snippet and
// returns the URL.
func NormalizeMapEmbed(s string) string {
	if m := iframeSrc.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(s)
}
