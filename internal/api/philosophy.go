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

// GetPhilosophy returns the philosophy block, or nil if none is configured.
func (c *Client) GetPhilosophy(ctx context.Context) (*models.Philosophy, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: "/philosophy"})
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// Some backends return the block as a single-element list.
	if items, ok := unwrap(v).([]any); ok {
		if len(items) == 0 {
			return nil, nil
		}
		v = items[0]
	}
	p := oneOf(v, philosophyFrom)
	return &p, nil
}

// GetPhilosophyFeatures returns the feature cards shown beside the block.
func (c *Client) GetPhilosophyFeatures(ctx context.Context) ([]models.PhilosophyFeature, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: "/philosophy/features"})
	if errors.Is(err, ErrNotFound) {
		return []models.PhilosophyFeature{}, nil
	}
	if err != nil {
		return nil, err
	}
	return listOf(v, philosophyFeatureFrom), nil
}

func philosophyFrom(r record) models.Philosophy {
	return models.Philosophy{
		Title:       r.localized("title", "title", "heading"),
		Description: r.localized("description", "description", "content"),
		Image:       r.str("image", "image_url", "imageUrl"),
	}
}

func philosophyFeatureFrom(r record) models.PhilosophyFeature {
	return models.PhilosophyFeature{
		Title:       r.localized("title", "title", "name"),
		Description: r.localized("description", "description", "text"),
		Icon:        r.str("icon", "icon_url", "iconUrl", "image"),
	}
}
