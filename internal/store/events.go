// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"

	"github.com/eventdeck/eventdeck/internal/model"
)

const eventColumns = `id, title, description, event_date, start_time, end_time, location, category_id,
	status, organizer_id, price, tickets_sold, attendees, max_attendees, contact_email, contact_phone,
	registration_deadline, is_virtual, image, map_embed, accessibility_info, safety_guidelines,
	created_at, updated_at`

// rowScanner abstracts *sql.Row and *sql.Rows for the shared event scanner.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (model.Event, error) {
	var (
		e         model.Event
		date      string
		deadline  *string
		createdAt string
		updatedAt string
	)

	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &date, &e.StartTime, &e.EndTime, &e.Location, &e.CategoryID,
		&e.Status, &e.OrganizerID, &e.Price, &e.TicketsSold, &e.Attendees, &e.MaxAttendees,
		&e.ContactEmail, &e.ContactPhone, &deadline, &e.IsVirtual, &e.Image, &e.MapEmbed,
		&e.AccessibilityInfo, &e.SafetyGuidelines, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Event{}, err
	}

	if e.EventDate, err = parseDate(date); err != nil {
		return model.Event{}, fmt.Errorf("parsing event_date: %w", err)
	}
	if e.RegistrationDeadline, err = parseNullDate(deadline); err != nil {
		return model.Event{}, fmt.Errorf("parsing registration_deadline: %w", err)
	}
	if e.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return model.Event{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return model.Event{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return e, nil
}

func scanEvents(ctx context.Context, q *Queries, query string, args ...any) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// yearArg formats a year for comparison against strftime('%Y', event_date).
func yearArg(year int) string {
	return fmt.Sprintf("%04d", year)
}

// ListEventsByYearParams scopes an event listing to one organizer and year.
type ListEventsByYearParams struct {
	OrganizerID int64
	Year        int
}

// ListEventsByYear returns an organizer's events for a year, ordered by
// event date ascending.
func (q *Queries) ListEventsByYear(ctx context.Context, arg ListEventsByYearParams) ([]model.Event, error) {
	return scanEvents(ctx, q,
		`SELECT `+eventColumns+`
		 FROM events
		 WHERE strftime('%Y', event_date) = ? AND organizer_id = ?
		 ORDER BY event_date ASC`,
		yearArg(arg.Year), arg.OrganizerID,
	)
}

// GetEventParams identifies one event within an organizer's scope.
type GetEventParams struct {
	ID          int64
	OrganizerID int64
}

// GetEvent fetches a single event, verifying both ID and organizer scope so
// one organizer cannot read another's event by guessing an ID. Returns
// sql.ErrNoRows on a scope mismatch just like on a missing row.
func (q *Queries) GetEvent(ctx context.Context, arg GetEventParams) (model.Event, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+`
		 FROM events
		 WHERE id = ? AND organizer_id = ?`,
		arg.ID, arg.OrganizerID,
	)
	return scanEvent(row)
}

// CreateEventParams holds the client-settable fields of a new event.
// CreatedAt and UpdatedAt are server-computed.
type CreateEventParams struct {
	Title                string
	Description          *string
	EventDate            string // YYYY-MM-DD
	StartTime            string
	EndTime              *string
	Location             *string
	CategoryID           *int64
	Status               string
	OrganizerID          int64
	Price                float64
	TicketsSold          int64
	Attendees            int64
	MaxAttendees         *int64
	ContactEmail         *string
	ContactPhone         *string
	RegistrationDeadline *string // YYYY-MM-DD
	IsVirtual            bool
	Image                *string
	MapEmbed             *string
	AccessibilityInfo    *string
	SafetyGuidelines     *string
}

// CreateEvent inserts an event and returns the stored row including the
// generated ID and timestamps.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (model.Event, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO events (title, description, event_date, start_time, end_time, location, category_id,
			status, organizer_id, price, tickets_sold, attendees, max_attendees, contact_email,
			contact_phone, registration_deadline, is_virtual, image, map_embed, accessibility_info,
			safety_guidelines)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING `+eventColumns,
		arg.Title, arg.Description, arg.EventDate, arg.StartTime, arg.EndTime, arg.Location,
		arg.CategoryID, arg.Status, arg.OrganizerID, arg.Price, arg.TicketsSold, arg.Attendees,
		arg.MaxAttendees, arg.ContactEmail, arg.ContactPhone, arg.RegistrationDeadline, arg.IsVirtual,
		arg.Image, arg.MapEmbed, arg.AccessibilityInfo, arg.SafetyGuidelines,
	)
	return scanEvent(row)
}

// UpdateEvent replaces an event row by ID within the organizer's scope and
// refreshes updated_at server-side.
func (q *Queries) UpdateEvent(ctx context.Context, arg model.Event) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE events
		 SET title = ?, description = ?, event_date = ?, start_time = ?, end_time = ?, location = ?,
			category_id = ?, status = ?, price = ?, tickets_sold = ?, attendees = ?, max_attendees = ?,
			contact_email = ?, contact_phone = ?, registration_deadline = ?, is_virtual = ?, image = ?,
			map_embed = ?, accessibility_info = ?, safety_guidelines = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND organizer_id = ?`,
		arg.Title, arg.Description, formatDate(arg.EventDate), arg.StartTime, arg.EndTime,
		arg.Location, arg.CategoryID, arg.Status, arg.Price, arg.TicketsSold, arg.Attendees,
		arg.MaxAttendees, arg.ContactEmail, arg.ContactPhone, formatNullDate(arg.RegistrationDeadline),
		arg.IsVirtual, arg.Image, arg.MapEmbed, arg.AccessibilityInfo, arg.SafetyGuidelines,
		arg.ID, arg.OrganizerID,
	)
	return err
}

// DeleteEventParams identifies one event within an organizer's scope.
type DeleteEventParams struct {
	ID          int64
	OrganizerID int64
}

// DeleteEvent removes an event within the organizer's scope.
func (q *Queries) DeleteEvent(ctx context.Context, arg DeleteEventParams) error {
	_, err := q.db.ExecContext(ctx,
		`DELETE FROM events WHERE id = ? AND organizer_id = ?`,
		arg.ID, arg.OrganizerID,
	)
	return err
}
