// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Banner is a hero banner shown at the top of the public homepage.
type Banner struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	DesktopImage string `json:"desktop_image"`
	MobileImage  string `json:"mobile_image"`
	ButtonText   Text   `json:"button_text"`
	ButtonURL    string `json:"button_url"`
	IsActive     bool   `json:"is_active"`
	SortOrder    int    `json:"sort_order"`
}

// HasButton reports whether the banner renders a call-to-action button.
func (b *Banner) HasButton() bool {
	return b.ButtonURL != "" && !b.ButtonText.IsZero()
}
