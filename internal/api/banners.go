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

const adminBannersPath = "/admin/banners"

// GetBanners returns one page of banners for the admin list.
func (c *Client) GetBanners(ctx context.Context, opts ListOptions) (*Page[models.Banner], error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: adminBannersPath, query: opts.values(), auth: true})
	if err != nil {
		return nil, err
	}
	return pageOf(v, bannerFrom), nil
}

// GetBannerByID returns a single banner.
func (c *Client) GetBannerByID(ctx context.Context, id string) (*models.Banner, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: resourcePath(adminBannersPath, id), auth: true})
	if err != nil {
		return nil, err
	}
	b := oneOf(v, bannerFrom)
	return &b, nil
}

// CreateBanner submits a new banner.
func (c *Client) CreateBanner(ctx context.Context, form *Form) (*models.Banner, error) {
	v, err := c.fetch(ctx, request{method: http.MethodPost, path: adminBannersPath, form: form, auth: true})
	if err != nil {
		return nil, err
	}
	b := oneOf(v, bannerFrom)
	return &b, nil
}

// UpdateBanner replaces a banner. The request is a POST carrying _method=PUT.
func (c *Client) UpdateBanner(ctx context.Context, id string, form *Form) (*models.Banner, error) {
	form.Override(http.MethodPut)
	v, err := c.fetch(ctx, request{method: http.MethodPost, path: resourcePath(adminBannersPath, id), form: form, auth: true})
	if err != nil {
		return nil, err
	}
	b := oneOf(v, bannerFrom)
	if b.ID == "" {
		b.ID = id
	}
	return &b, nil
}

// DeleteBanner removes a banner.
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	_, err := c.send(ctx, request{method: http.MethodDelete, path: resourcePath(adminBannersPath, id), auth: true})
	return err
}

// GetPublicBanners returns the active banners for the homepage hero. It is
// best-effort: a 404 yields an empty slice instead of an error.
func (c *Client) GetPublicBanners(ctx context.Context) ([]models.Banner, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: "/banners"})
	if errors.Is(err, ErrNotFound) {
		return []models.Banner{}, nil
	}
	if err != nil {
		return nil, err
	}
	var active []models.Banner
	for _, b := range listOf(v, bannerFrom) {
		if b.IsActive {
			active = append(active, b)
		}
	}
	if active == nil {
		active = []models.Banner{}
	}
	return active, nil
}

func bannerFrom(r record) models.Banner {
	b := models.Banner{
		ID:           r.id(),
		Title:        r.str("title", "name", "banner_title"),
		DesktopImage: r.str("desktopImage", "desktop_image", "desktopImageUrl", "desktop_image_url", "image", "image_url"),
		MobileImage:  r.str("mobileImage", "mobile_image", "mobileImageUrl", "mobile_image_url"),
		ButtonText:   r.localized("button_text", "buttonText", "button_text", "button_label"),
		ButtonURL:    r.str("buttonUrl", "button_url", "buttonLink", "button_link", "link", "url"),
		SortOrder:    r.integer("sortOrder", "sort_order", "order"),
	}
	if _, ok := r["isActive"]; ok {
		b.IsActive = r.boolean("isActive")
	} else if _, ok := r["is_active"]; ok {
		b.IsActive = r.boolean("is_active")
	} else {
		b.IsActive = r.boolean("status", "active")
	}
	if b.MobileImage == "" {
		b.MobileImage = b.DesktopImage
	}
	return b
}
