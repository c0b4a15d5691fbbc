// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"
)

// MemberStatus is the employment state of a team member.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
	MemberLeave    MemberStatus = "leave"
)

// MemberStatuses lists every valid status in display order.
var MemberStatuses = []MemberStatus{MemberActive, MemberInactive, MemberLeave}

// Valid reports whether s is a known status.
func (s MemberStatus) Valid() bool {
	switch s {
	case MemberActive, MemberInactive, MemberLeave:
		return true
	}
	return false
}

// TeamMember is a barber or staff member shown on the Team page.
type TeamMember struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	JobTitle     string       `json:"job_title"`
	Status       MemberStatus `json:"status"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Bio          string       `json:"bio"`
	ProfilePhoto string       `json:"profile_photo"`
	SocialLinks  []SocialLink `json:"social_links"`
}

// FullName joins the first and last name, skipping empty parts.
func (m *TeamMember) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// Initials returns up to two uppercase initials for avatar placeholders.
func (m *TeamMember) Initials() string {
	var b strings.Builder
	for _, part := range []string{m.FirstName, m.LastName} {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(string([]rune(part)[:1])))
	}
	return b.String()
}

// TeamStats summarises a member's booking history.
type TeamStats struct {
	TotalAppointments     int     `json:"total_appointments"`
	CompletedAppointments int     `json:"completed_appointments"`
	CancelledAppointments int     `json:"cancelled_appointments"`
	Rating                float64 `json:"rating"`
	Reviews               int     `json:"reviews"`
}

// Appointment is a booking assigned to a team member.
type Appointment struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Service      string    `json:"service"`
	StartsAt     time.Time `json:"starts_at"`
	Status       string    `json:"status"`
}

// AvailabilitySlot is one weekday's working window.
type AvailabilitySlot struct {
	Day       string `json:"day"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// TeamMemberDetails aggregates the member record with its sub-resources.
// Sections that failed to load are listed in Unavailable and hold their
// zero values.
type TeamMemberDetails struct {
	Member       TeamMember
	Stats        TeamStats
	Appointments []Appointment
	Availability []AvailabilitySlot
	Unavailable  []string
}
