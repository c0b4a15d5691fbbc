// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"net/http"
	"net/url"

	"barbershop/internal/models"
)

// GetPricingPlans returns the public pricing plans, optionally restricted
// to one filter category.
func (c *Client) GetPricingPlans(ctx context.Context, filterID string) ([]models.PricingPlan, error) {
	var q url.Values
	if filterID != "" {
		q = url.Values{"filter_id": {filterID}}
	}
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: "/pricing", query: q})
	if err != nil {
		return nil, err
	}
	return listOf(v, pricingPlanFrom), nil
}

// GetPricingPlanByID returns a single pricing plan.
func (c *Client) GetPricingPlanByID(ctx context.Context, id string) (*models.PricingPlan, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: resourcePath("/pricing", id)})
	if err != nil {
		return nil, err
	}
	p := oneOf(v, pricingPlanFrom)
	return &p, nil
}

// GetPricingFilters returns the pricing categories used as filter tabs.
func (c *Client) GetPricingFilters(ctx context.Context) ([]models.PricingFilter, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: "/pricing/filters"})
	if err != nil {
		return nil, err
	}
	return listOf(v, pricingFilterFrom), nil
}

func pricingPlanFrom(r record) models.PricingPlan {
	p := models.PricingPlan{
		ID:         r.id(),
		Title:      r.localized("title", "title", "name"),
		Price:      r.number("price", "amount"),
		Currency:   r.str("currency"),
		Duration:   r.str("duration", "duration_label", "period"),
		FilterID:   r.str("filterId", "filter_id", "category_id", "categoryId", "category"),
		IsFeatured: r.boolean("isFeatured", "is_featured", "featured"),
	}
	if filter := r.object("filter", "category"); filter != nil && p.FilterID == "" {
		p.FilterID = filter.id()
	}
	if rows := r.list("features"); len(rows) > 0 {
		for _, f := range rows {
			p.Features = append(p.Features, f.localized("text", "text", "name", "title"))
		}
	} else {
		for _, text := range r.strings("features") {
			p.Features = append(p.Features, models.Text{En: text})
		}
	}
	return p
}

func pricingFilterFrom(r record) models.PricingFilter {
	return models.PricingFilter{
		ID:   r.id(),
		Name: r.localized("name", "name", "title", "label"),
		Slug: r.str("slug", "key"),
	}
}
