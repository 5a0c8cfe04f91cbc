// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eventdeck/eventdeck/internal/auth"
	"github.com/eventdeck/eventdeck/internal/model"
)

// Default demo credentials
const (
	DefaultDemoUsername = "demo"
	DefaultDemoPassword = "changeme"
	DefaultDemoOrgName  = "Demo Events Co."
)

// Seed creates a demo organizer account with a handful of events so a fresh
// install has something to show. It is a no-op when the demo user exists.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	_, err := queries.GetUserByUsername(ctx, DefaultDemoUsername)
	if err == nil {
		slog.Info("demo user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for demo user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultDemoPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := queries.CreateUser(ctx, CreateUserParams{
		Username:     DefaultDemoUsername,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return fmt.Errorf("creating demo user: %w", err)
	}

	if _, err := queries.CreateOrganizer(ctx, model.Organizer{
		ID:   user.ID,
		Name: DefaultDemoOrgName,
	}); err != nil {
		return fmt.Errorf("creating demo organizer: %w", err)
	}

	desc := "Seeded demo event."
	demoEvents := []CreateEventParams{
		{
			Title:       "Spring Product Summit",
			Description: &desc,
			EventDate:   "2026-03-14",
			StartTime:   "09:00",
			Status:      model.StatusComplete,
			OrganizerID: user.ID,
			Price:       49.99,
			TicketsSold: 120,
			Attendees:   104,
		},
		{
			Title:       "Community Meetup",
			Description: &desc,
			EventDate:   "2026-06-02",
			StartTime:   "18:30",
			Status:      model.StatusUpcoming,
			OrganizerID: user.ID,
			Price:       0,
			TicketsSold: 45,
			IsVirtual:   true,
		},
		{
			Title:       "Winter Workshop",
			Description: &desc,
			EventDate:   "2026-11-20",
			StartTime:   "10:00",
			Status:      model.StatusUpcoming,
			OrganizerID: user.ID,
			Price:       15,
			TicketsSold: 12,
		},
	}
	for _, ev := range demoEvents {
		if _, err := queries.CreateEvent(ctx, ev); err != nil {
			return fmt.Errorf("creating demo event %q: %w", ev.Title, err)
		}
	}

	slog.Info("created demo organizer account",
		"id", user.ID,
		"username", DefaultDemoUsername,
		"password", DefaultDemoPassword,
	)

	return nil
}
