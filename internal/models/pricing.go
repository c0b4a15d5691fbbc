// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strconv"
	"strings"
)

// PricingPlan is a service or package on the pricing page.
type PricingPlan struct {
	ID         string  `json:"id"`
	Title      Text    `json:"title"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	Duration   string  `json:"duration"`
	Features   []Text  `json:"features"`
	FilterID   string  `json:"filter_id"`
	IsFeatured bool    `json:"is_featured"`
}

// FormattedPrice renders the price without trailing zeros, followed by the
// currency code when one is set.
func (p *PricingPlan) FormattedPrice() string {
	s := strconv.FormatFloat(p.Price, 'f', 2, 64)
	s = strings.TrimSuffix(s, ".00")
	if p.Currency == "" {
		return s
	}
	return s + " " + p.Currency
}

// PricingFilter is a category tab on the pricing page.
type PricingFilter struct {
	ID   string `json:"id"`
	Name Text   `json:"name"`
	Slug string `json:"slug"`
}
