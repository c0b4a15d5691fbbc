// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// AboutFeature is a bullet point inside an About Us section.
type AboutFeature struct {
	Text Text `json:"text"`
}

// AboutUsSection is one block of the About Us page.
type AboutUsSection struct {
	ID          string         `json:"id"`
	Title       Text           `json:"title"`
	Description Text           `json:"description"`
	Features    []AboutFeature `json:"features"`
	Image       string         `json:"image"`
	Type        string         `json:"type"`
	Status      string         `json:"status"`
	SortOrder   int            `json:"sort_order"`
}

// AboutSectionTypes are the layouts the public About page knows how to render.
var AboutSectionTypes = []string{"story", "mission", "vision", "values"}

// IsActive reports whether the section should be shown publicly.
func (s *AboutUsSection) IsActive() bool {
	return s.Status == "" || s.Status == "active" || s.Status == "published"
}
