// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"barbershop/internal/models"
)

const adminTeamPath = "/admin/team"

// Sub-resource names reported in TeamMemberDetails.Unavailable.
const (
	DetailsSection      = "details"
	StatsSection        = "stats"
	AppointmentsSection = "appointments"
	AvailabilitySection = "availability"
)

// GetTeamMembers returns one page of team members. opts.Status filters by
// employment status.
func (c *Client) GetTeamMembers(ctx context.Context, opts ListOptions) (*Page[models.TeamMember], error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: adminTeamPath, query: opts.values(), auth: true})
	if err != nil {
		return nil, err
	}
	return pageOf(v, teamMemberFrom), nil
}

// GetTeamMemberByID returns a single team member.
func (c *Client) GetTeamMemberByID(ctx context.Context, id string) (*models.TeamMember, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: resourcePath(adminTeamPath, id), auth: true})
	if err != nil {
		return nil, err
	}
	m := oneOf(v, teamMemberFrom)
	return &m, nil
}

// CreateTeamMember submits a new team member.
func (c *Client) CreateTeamMember(ctx context.Context, form *Form) (*models.TeamMember, error) {
	v, err := c.fetch(ctx, request{method: http.MethodPost, path: adminTeamPath, form: form, auth: true})
	if err != nil {
		return nil, err
	}
	m := oneOf(v, teamMemberFrom)
	return &m, nil
}

// UpdateTeamMember replaces a team member via POST with _method=PUT.
func (c *Client) UpdateTeamMember(ctx context.Context, id string, form *Form) (*models.TeamMember, error) {
	form.Override(http.MethodPut)
	v, err := c.fetch(ctx, request{method: http.MethodPost, path: resourcePath(adminTeamPath, id), form: form, auth: true})
	if err != nil {
		return nil, err
	}
	m := oneOf(v, teamMemberFrom)
	if m.ID == "" {
		m.ID = id
	}
	return &m, nil
}

// DeleteTeamMember removes a team member.
func (c *Client) DeleteTeamMember(ctx context.Context, id string) error {
	_, err := c.send(ctx, request{method: http.MethodDelete, path: resourcePath(adminTeamPath, id), auth: true})
	return err
}

// GetPublicTeam returns the active team for the public Team page.
// A 404 yields an empty slice.
func (c *Client) GetPublicTeam(ctx context.Context) ([]models.TeamMember, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: "/team"})
	if errors.Is(err, ErrNotFound) {
		return []models.TeamMember{}, nil
	}
	if err != nil {
		return nil, err
	}
	members := []models.TeamMember{}
	for _, m := range listOf(v, teamMemberFrom) {
		if m.Status == "" || m.Status == models.MemberActive {
			members = append(members, m)
		}
	}
	return members, nil
}

// GetTeamMemberStats returns booking statistics for a member.
func (c *Client) GetTeamMemberStats(ctx context.Context, id string) (models.TeamStats, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: resourcePath(adminTeamPath, id, StatsSection), auth: true})
	if err != nil {
		return models.TeamStats{}, err
	}
	return oneOf(v, teamStatsFrom), nil
}

// GetTeamMemberAppointments returns the member's appointments.
func (c *Client) GetTeamMemberAppointments(ctx context.Context, id string) ([]models.Appointment, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: resourcePath(adminTeamPath, id, AppointmentsSection), auth: true})
	if err != nil {
		return nil, err
	}
	return listOf(v, appointmentFrom), nil
}

// GetTeamMemberAvailability returns the member's weekly schedule.
func (c *Client) GetTeamMemberAvailability(ctx context.Context, id string) ([]models.AvailabilitySlot, error) {
	v, err := c.fetch(ctx, request{method: http.MethodGet, path: resourcePath(adminTeamPath, id, AvailabilitySection), auth: true})
	if err != nil {
		return nil, err
	}
	return listOf(v, availabilityFrom), nil
}

// GetTeamMemberDetails loads the member's details, stats, appointments and
// availability concurrently. Each request succeeds or fails on its own: a
// failed section keeps its default value and is listed in Unavailable.
// Only an unauthorized response is returned as an error, since nothing
// else on the page can load either.
func (c *Client) GetTeamMemberDetails(ctx context.Context, id string) (*models.TeamMemberDetails, error) {
	var (
		details      models.TeamMember
		stats        models.TeamStats
		appointments []models.Appointment
		availability []models.AvailabilitySlot
		errs         [4]error
	)

	var g errgroup.Group
	g.Go(func() error {
		v, err := c.fetch(ctx, request{method: http.MethodGet, path: resourcePath(adminTeamPath, id, DetailsSection), auth: true})
		if err == nil {
			details = oneOf(v, teamMemberFrom)
		}
		errs[0] = err
		return nil
	})
	g.Go(func() error {
		stats, errs[1] = c.GetTeamMemberStats(ctx, id)
		return nil
	})
	g.Go(func() error {
		appointments, errs[2] = c.GetTeamMemberAppointments(ctx, id)
		return nil
	})
	g.Go(func() error {
		availability, errs[3] = c.GetTeamMemberAvailability(ctx, id)
		return nil
	})
	_ = g.Wait()

	result := &models.TeamMemberDetails{
		Member:       details,
		Stats:        stats,
		Appointments: appointments,
		Availability: availability,
	}
	if result.Appointments == nil {
		result.Appointments = []models.Appointment{}
	}
	if result.Availability == nil {
		result.Availability = []models.AvailabilitySlot{}
	}

	sections := [4]string{DetailsSection, StatsSection, AppointmentsSection, AvailabilitySection}
	for i, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, ErrUnauthorized) {
			return nil, err
		}
		slog.Warn("team member section unavailable", "id", id, "section", sections[i], "error", err)
		result.Unavailable = append(result.Unavailable, sections[i])
	}
	if result.Member.ID == "" {
		result.Member.ID = id
	}
	return result, nil
}

func teamMemberFrom(r record) models.TeamMember {
	m := models.TeamMember{
		ID:           r.id(),
		FirstName:    r.str("firstName", "first_name", "fname"),
		LastName:     r.str("lastName", "last_name", "lname"),
		JobTitle:     r.str("jobTitle", "job_title", "position", "title", "role"),
		Status:       models.MemberStatus(strings.ToLower(r.str("status", "employment_status"))),
		Email:        r.str("email"),
		Phone:        r.str("phone", "phone_number", "phoneNumber", "mobile"),
		Bio:          r.str("bio", "biography", "about", "description"),
		ProfilePhoto: r.str("profilePhoto", "profile_photo", "profilePhotoUrl", "profile_photo_url", "photo", "avatar", "image"),
		SocialLinks:  r.socialLinks(),
	}
	if m.FirstName == "" && m.LastName == "" {
		if name := r.str("name", "full_name", "fullName"); name != "" {
			first, last, _ := strings.Cut(name, " ")
			m.FirstName, m.LastName = first, strings.TrimSpace(last)
		}
	}
	if m.Status == "" {
		if _, ok := r["is_active"]; ok {
			if r.boolean("is_active") {
				m.Status = models.MemberActive
			} else {
				m.Status = models.MemberInactive
			}
		}
	}
	return m
}

func teamStatsFrom(r record) models.TeamStats {
	return models.TeamStats{
		TotalAppointments:     r.integer("totalAppointments", "total_appointments", "appointments_count"),
		CompletedAppointments: r.integer("completedAppointments", "completed_appointments", "completed"),
		CancelledAppointments: r.integer("cancelledAppointments", "cancelled_appointments", "cancelled"),
		Rating:                r.number("rating", "average_rating", "averageRating"),
		Reviews:               r.integer("reviews", "reviews_count", "reviewsCount"),
	}
}

func appointmentFrom(r record) models.Appointment {
	a := models.Appointment{
		ID:           r.id(),
		CustomerName: r.str("customerName", "customer_name", "client_name", "customer"),
		Service:      r.str("service", "service_name", "serviceName"),
		StartsAt:     r.time("startsAt", "starts_at", "start_time", "date"),
		Status:       r.str("status"),
	}
	if customer := r.object("customer", "client"); customer != nil && a.CustomerName == "" {
		a.CustomerName = customer.str("name", "full_name")
	}
	if service := r.object("service"); service != nil && a.Service == "" {
		a.Service = service.str("name", "name_en", "title")
	}
	return a
}

func availabilityFrom(r record) models.AvailabilitySlot {
	slot := models.AvailabilitySlot{
		Day:   r.str("day", "day_of_week", "dayOfWeek", "weekday"),
		Start: r.str("start", "start_time", "startTime", "from"),
		End:   r.str("end", "end_time", "endTime", "to"),
	}
	if _, ok := r["available"]; ok {
		slot.Available = r.boolean("available")
	} else if _, ok := r["is_available"]; ok {
		slot.Available = r.boolean("is_available")
	} else {
		slot.Available = slot.Start != "" && slot.End != ""
	}
	return slot
}
