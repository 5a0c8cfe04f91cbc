// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/eventdeck/eventdeck/internal/model"
)

func scanAttendee(row rowScanner) (model.Attendee, error) {
	var a model.Attendee
	err := row.Scan(&a.ID, &a.EventID, &a.Name, &a.Email, &a.TicketType, &a.RegistrationDate)
	return a, err
}

// ListAttendeesByEvent returns an event's registered attendees ordered by
// registration date.
func (q *Queries) ListAttendeesByEvent(ctx context.Context, eventID int64) ([]model.Attendee, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, event_id, name, email, ticket_type, registration_date
		 FROM attendees
		 WHERE event_id = ?
		 ORDER BY registration_date ASC, id ASC`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendees []model.Attendee
	for rows.Next() {
		a, err := scanAttendee(rows)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

// CreateAttendeeParams holds the fields for CreateAttendee.
type CreateAttendeeParams struct {
	EventID          int64
	Name             string
	Email            string
	TicketType       string
	RegistrationDate string // YYYY-MM-DD
}

// CreateAttendee records a registration and returns the stored row.
func (q *Queries) CreateAttendee(ctx context.Context, arg CreateAttendeeParams) (model.Attendee, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO attendees (event_id, name, email, ticket_type, registration_date)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING id, event_id, name, email, ticket_type, registration_date`,
		arg.EventID, arg.Name, arg.Email, arg.TicketType, arg.RegistrationDate,
	)
	return scanAttendee(row)
}
