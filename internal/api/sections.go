// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"barbershop/internal/models"
)

const adminSectionsPath = "/admin/informative-sections"

// GetInformativeSections returns one page of informative sections.
func (c *Client) GetInformativeSections(ctx context.Context, opts ListOptions) (*Page[models.InformativeSection], error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: adminSectionsPath, query: opts.values(), auth: true})
	if err != nil {
		return nil, err
	}
	return pageOf(v, informativeSectionFrom), nil
}

// GetInformativeSectionByID returns a single informative section.
func (c *Client) GetInformativeSectionByID(ctx context.Context, id string) (*models.InformativeSection, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: resourcePath(adminSectionsPath, id), auth: true})
	if err != nil {
		return nil, err
	}
	s := oneOf(v, informativeSectionFrom)
	return &s, nil
}

// CreateInformativeSection submits a new section. The admin UI does not
// expose it; sections are keyed by the backend.
func (c *Client) CreateInformativeSection(ctx context.Context, form *Form) (*models.InformativeSection, error) {
	v, err := c.fetch(ctx, request{method: http.MethodPost, path: adminSectionsPath, form: form, auth: true})
	if err != nil {
		return nil, err
	}
	s := oneOf(v, informativeSectionFrom)
	return &s, nil
}

// UpdateInformativeSection replaces a section via POST with _method=PUT.
func (c *Client) UpdateInformativeSection(ctx context.Context, id string, form *Form) (*models.InformativeSection, error) {
	form.Override(http.MethodPut)
	v, err := c.fetch(ctx, request{method: http.MethodPost, path: resourcePath(adminSectionsPath, id), form: form, auth: true})
	if err != nil {
		return nil, err
	}
	s := oneOf(v, informativeSectionFrom)
	if s.ID == "" {
		s.ID = id
	}
	return &s, nil
}

// DeleteInformativeSection removes a section. Like create, it is not
// reachable from the admin UI.
func (c *Client) DeleteInformativeSection(ctx context.Context, id string) error {
	_, err := c.send(ctx, request{method: http.MethodDelete, path: resourcePath(adminSectionsPath, id), auth: true})
	return err
}

// GetPublicSections returns the informative sections the backend serves
// publicly. Sections marked hidden are dropped. A 404 yields an empty slice.
func (c *Client) GetPublicSections(ctx context.Context) ([]models.InformativeSection, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: "/informative-sections"})
	if errors.Is(err, ErrNotFound) {
		return []models.InformativeSection{}, nil
	}
	if err != nil {
		return nil, err
	}
	visible := []models.InformativeSection{}
	for _, s := range listOf(v, informativeSectionFrom) {
		if s.Status != models.SectionHidden {
			visible = append(visible, s)
		}
	}
	return visible, nil
}

func informativeSectionFrom(r record) models.InformativeSection {
	s := models.InformativeSection{
		ID:          r.id(),
		Name:        r.str("name", "key", "slug", "section_name"),
		Title:       r.localized("title", "title", "heading"),
		Description: r.localized("description", "description", "content"),
		Status:      models.SectionStatus(strings.ToLower(r.str("status"))),
	}
	if s.Status == "" {
		s.Status = models.SectionDraft
		if _, ok := r["is_published"]; ok && r.boolean("is_published") {
			s.Status = models.SectionPublished
		}
	}
	for _, f := range r.list("features", "items") {
		s.Features = append(s.Features, models.SectionFeature{
			Name: f.localized("name", "name", "title", "text"),
			Icon: f.str("icon", "icon_url", "iconUrl", "image"),
		})
	}
	return s
}
