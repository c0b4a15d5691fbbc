// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// SectionStatus controls the visibility of an informative section.
type SectionStatus string

const (
	SectionPublished SectionStatus = "published"
	SectionDraft     SectionStatus = "draft"
	SectionHidden    SectionStatus = "hidden"
)

// SectionStatuses lists every valid status in display order.
var SectionStatuses = []SectionStatus{SectionPublished, SectionDraft, SectionHidden}

// Valid reports whether s is a known status.
func (s SectionStatus) Valid() bool {
	switch s {
	case SectionPublished, SectionDraft, SectionHidden:
		return true
	}
	return false
}

// SectionFeature is an icon + label entry inside an informative section.
type SectionFeature struct {
	Name Text   `json:"name"`
	Icon string `json:"icon"`
}

// InformativeSection is a fixed, named marketing block. Name is the
// backend key and never changes after creation.
type InformativeSection struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Title       Text             `json:"title"`
	Description Text             `json:"description"`
	Features    []SectionFeature `json:"features"`
	Status      SectionStatus    `json:"status"`
}
