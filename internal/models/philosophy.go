// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Philosophy is the "our philosophy" block on the homepage.
type Philosophy struct {
	Title       Text   `json:"title"`
	Description Text   `json:"description"`
	Image       string `json:"image"`
}

// PhilosophyFeature is one pillar listed under the philosophy block.
type PhilosophyFeature struct {
	Title       Text   `json:"title"`
	Description Text   `json:"description"`
	Icon        string `json:"icon"`
}
