// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// WorkingHours is one line of the opening-hours table.
type WorkingHours struct {
	Day   Text   `json:"day"`
	Hours string `json:"hours"`
}

// FooterLink is a single link inside a footer column.
type FooterLink struct {
	Label Text   `json:"label"`
	URL   string `json:"url"`
}

// LinkColumn is a titled column of footer links.
type LinkColumn struct {
	Title Text         `json:"title"`
	Links []FooterLink `json:"links"`
}

// FooterConfig is the site-wide footer. There is exactly one.
type FooterConfig struct {
	Logo         string         `json:"logo"`
	About        Text           `json:"about"`
	SocialLinks  []SocialLink   `json:"social_links"`
	Phone        string         `json:"phone"`
	Email        string         `json:"email"`
	Address      Text           `json:"address"`
	WorkingHours []WorkingHours `json:"working_hours"`
	FooterLinks  []LinkColumn   `json:"footer_links"`
	MapEmbed     string         `json:"map_embed"`
}
