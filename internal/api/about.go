// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"barbershop/internal/models"
)

const adminAboutPath = "/admin/about-us"

// GetPublicAboutUs returns the published About Us sections. A 404 resolves
// to an unsuccessful listing with empty data rather than an error.
func (c *Client) GetPublicAboutUs(ctx context.Context) (*Listing[models.AboutUsSection], error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: "/about-us"})
	if errors.Is(err, ErrNotFound) {
		return &Listing[models.AboutUsSection]{Success: false, Data: []models.AboutUsSection{}}, nil
	}
	if err != nil {
		return nil, err
	}

	sections := []models.AboutUsSection{}
	for _, s := range listOf(v, aboutSectionFrom) {
		if s.IsActive() {
			sections = append(sections, s)
		}
	}
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].SortOrder < sections[j].SortOrder })
	return &Listing[models.AboutUsSection]{Success: true, Data: sections}, nil
}

// GetAboutSections returns one page of About Us sections for the admin.
func (c *Client) GetAboutSections(ctx context.Context, opts ListOptions) (*Page[models.AboutUsSection], error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: adminAboutPath, query: opts.values(), auth: true})
	if err != nil {
		return nil, err
	}
	return pageOf(v, aboutSectionFrom), nil
}

// GetAboutSectionByID returns a single About Us section.
func (c *Client) GetAboutSectionByID(ctx context.Context, id string) (*models.AboutUsSection, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: resourcePath(adminAboutPath, id), auth: true})
	if err != nil {
		return nil, err
	}
	s := oneOf(v, aboutSectionFrom)
	return &s, nil
}

// CreateAboutSection submits a new About Us section.
func (c *Client) CreateAboutSection(ctx context.Context, form *Form) (*models.AboutUsSection, error) {
	v, err := c.fetch(ctx, request{method: http.MethodPost, path: adminAboutPath, form: form, auth: true})
	if err != nil {
		return nil, err
	}
	s := oneOf(v, aboutSectionFrom)
	return &s, nil
}

// UpdateAboutSection replaces an About Us section via POST with _method=PUT.
func (c *Client) UpdateAboutSection(ctx context.Context, id string, form *Form) (*models.AboutUsSection, error) {
	form.Override(http.MethodPut)
	v, err := c.fetch(ctx, request{method: http.MethodPost, path: resourcePath(adminAboutPath, id), form: form, auth: true})
	if err != nil {
		return nil, err
	}
	s := oneOf(v, aboutSectionFrom)
	if s.ID == "" {
		s.ID = id
	}
	return &s, nil
}

// DeleteAboutSection removes an About Us section.
func (c *Client) DeleteAboutSection(ctx context.Context, id string) error {
	_, err := c.send(ctx, request{method: http.MethodDelete, path: resourcePath(adminAboutPath, id), auth: true})
	return err
}

func aboutSectionFrom(r record) models.AboutUsSection {
	s := models.AboutUsSection{
		ID:          r.id(),
		Title:       r.localized("title", "title", "heading"),
		Description: r.localized("description", "description", "content", "body"),
		Image:       r.str("image", "image_url", "imageUrl", "photo"),
		Type:        strings.ToLower(r.str("type", "section_type", "sectionType")),
		Status:      strings.ToLower(r.str("status")),
		SortOrder:   r.integer("sortOrder", "sort_order", "order"),
	}
	if s.Status == "" {
		if _, ok := r["is_active"]; ok {
			s.Status = "inactive"
			if r.boolean("is_active") {
				s.Status = "active"
			}
		}
	}
	for _, f := range r.list("features", "feature_list", "items") {
		feature := models.AboutFeature{Text: f.localized("text", "text", "name", "title")}
		if !feature.Text.IsZero() {
			s.Features = append(s.Features, feature)
		}
	}
	if s.Features == nil {
		for _, text := range r.strings("features") {
			s.Features = append(s.Features, models.AboutFeature{Text: models.Text{En: text}})
		}
	}
	return s
}
