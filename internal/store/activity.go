// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// activity.go records admin mutations in the database for the dashboard
// feed and for auditing. Each entry captures what changed, who changed it,
// and when.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Actions recorded in the activity log.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionToggle = "toggle"
)

// Activity is a single admin mutation.
type Activity struct {
	ID         uuid.UUID
	EntityType string
	EntityID   string
	Action     string
	Actor      string
	Summary    string
	CreatedAt  time.Time
}

// ActivityStore handles activity log operations.
type ActivityStore struct {
	db *sql.DB
}

// NewActivityStore creates a new ActivityStore.
func NewActivityStore(db *sql.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

// Record stores an activity entry. Recording is best-effort: failures are
// logged and never reach the caller.
func (s *ActivityStore) Record(ctx context.Context, a Activity) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activity_log (id, entity_type, entity_id, action, actor, summary)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID, a.EntityType, a.EntityID, a.Action, a.Actor, truncate(a.Summary, 255))
	if err != nil {
		slog.Warn("failed to record activity",
			"entity_type", a.EntityType,
			"entity_id", a.EntityID,
			"action", a.Action,
			"error", err,
		)
		return
	}
	slog.Debug("activity recorded",
		"entity_type", a.EntityType,
		"entity_id", a.EntityID,
		"action", a.Action,
	)
}

// Recent returns the most recent activity entries, newest first.
func (s *ActivityStore) Recent(ctx context.Context, limit int) ([]Activity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entity_type, entity_id, action, actor, summary, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query activity log: %w", err)
	}
	defer rows.Close()

	var entries []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.EntityType, &a.EntityID, &a.Action, &a.Actor, &a.Summary, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		entries = append(entries, a)
	}
	return entries, rows.Err()
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
