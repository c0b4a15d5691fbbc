// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"errors"
	"net/http"

	"barbershop/internal/models"
)

const adminFooterPath = "/admin/footer"

// GetFooter returns the footer configuration for editing.
func (c *Client) GetFooter(ctx context.Context) (*models.FooterConfig, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: adminFooterPath, auth: true})
	if err != nil {
		return nil, err
	}
	f := oneOf(v, footerFrom)
	return &f, nil
}

// GetPublicFooter returns the footer for the public site, or nil when the
// backend has none configured.
func (c *Client) GetPublicFooter(ctx context.Context) (*models.FooterConfig, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: "/footer"})
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	f := oneOf(v, footerFrom)
	return &f, nil
}

// UpdateFooter saves the footer. The backend treats the footer as a
// singleton, so this is a plain POST without a method override.
func (c *Client) UpdateFooter(ctx context.Context, form *Form) (*models.FooterConfig, error) {
	v, err := c.fetch(ctx, request{method: http.MethodPost, path: adminFooterPath, form: form, auth: true})
	if err != nil {
		return nil, err
	}
	f := oneOf(v, footerFrom)
	return &f, nil
}

func footerFrom(r record) models.FooterConfig {
	f := models.FooterConfig{
		Logo:        r.str("logo", "logo_url", "logoUrl"),
		About:       r.localized("about", "about", "description"),
		SocialLinks: r.socialLinks(),
		Phone:       r.str("phone", "phone_number", "phoneNumber"),
		Email:       r.str("email"),
		Address:     r.localized("address", "address", "location"),
		MapEmbed:    r.str("mapEmbed", "map_embed", "map_url", "mapUrl", "map"),
	}
	if contact := r.object("contact", "contact_info", "contactInfo"); contact != nil {
		if f.Phone == "" {
			f.Phone = contact.str("phone", "phone_number")
		}
		if f.Email == "" {
			f.Email = contact.str("email")
		}
		if f.Address.IsZero() {
			f.Address = contact.localized("address", "address")
		}
	}
	for _, h := range r.list("workingHours", "working_hours", "hours") {
		f.WorkingHours = append(f.WorkingHours, models.WorkingHours{
			Day:   h.localized("day", "day", "days", "label"),
			Hours: h.str("hours", "time", "value"),
		})
	}
	for _, col := range r.list("footerLinks", "footer_links", "links", "columns") {
		column := models.LinkColumn{Title: col.localized("title", "title", "heading")}
		for _, l := range col.list("links", "items") {
			column.Links = append(column.Links, models.FooterLink{
				Label: l.localized("label", "label", "title", "name", "text"),
				URL:   l.str("url", "href", "link"),
			})
		}
		f.FooterLinks = append(f.FooterLinks, column)
	}
	return f
}
