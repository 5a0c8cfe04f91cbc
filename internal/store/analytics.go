// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/eventdeck/eventdeck/internal/model"
)

// Analytics queries. Monthly rollups are computed in Go from ListEventsByYear
// results; the queries here cover the shapes SQLite handles better directly:
// sparse per-day grouping and attendance ranking.

// DailyCountsParams scopes a per-day aggregation to one organizer and year.
type DailyCountsParams struct {
	OrganizerID int64
	Year        int
}

// DailyEventCounts returns one row per calendar day that has at least one
// event, ordered by date. Days without events are absent.
func (q *Queries) DailyEventCounts(ctx context.Context, arg DailyCountsParams) ([]model.CountByDate, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT strftime('%Y-%m-%d', event_date) AS day, COUNT(*)
		 FROM events
		 WHERE strftime('%Y', event_date) = ? AND organizer_id = ?
		 GROUP BY day
		 ORDER BY day ASC`,
		yearArg(arg.Year), arg.OrganizerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []model.CountByDate
	for rows.Next() {
		var c model.CountByDate
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// DailyAttendeeCounts returns registration counts per day across all of an
// organizer's events in a year, keyed by registration date. Days without
// registrations are absent.
func (q *Queries) DailyAttendeeCounts(ctx context.Context, arg DailyCountsParams) ([]model.CountByDate, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT strftime('%Y-%m-%d', a.registration_date) AS day, COUNT(*)
		 FROM attendees a
		 JOIN events e ON e.id = a.event_id
		 WHERE strftime('%Y', a.registration_date) = ? AND e.organizer_id = ?
		 GROUP BY day
		 ORDER BY day ASC`,
		yearArg(arg.Year), arg.OrganizerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []model.CountByDate
	for rows.Next() {
		var c model.CountByDate
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// attendanceRankLimit caps the most/least attended listings.
const attendanceRankLimit = 5

// AttendanceRankParams scopes an attendance ranking to one organizer and year.
type AttendanceRankParams struct {
	OrganizerID int64
	Year        int
}

// MostAttendedEvents returns up to five completed past events of the year
// with the highest attendance. Ties break by lower ID first so repeated calls
// return the same rows.
func (q *Queries) MostAttendedEvents(ctx context.Context, arg AttendanceRankParams) ([]model.Event, error) {
	return scanEvents(ctx, q,
		`SELECT `+eventColumns+`
		 FROM events
		 WHERE event_date < date('now')
		   AND strftime('%Y', event_date) = ?
		   AND status = ?
		   AND organizer_id = ?
		 ORDER BY attendees DESC, id ASC
		 LIMIT ?`,
		yearArg(arg.Year), model.StatusComplete, arg.OrganizerID, attendanceRankLimit,
	)
}

// LeastAttendedEvents returns up to five completed past events of the year
// with the lowest attendance, with the same tie-break as MostAttendedEvents.
func (q *Queries) LeastAttendedEvents(ctx context.Context, arg AttendanceRankParams) ([]model.Event, error) {
	return scanEvents(ctx, q,
		`SELECT `+eventColumns+`
		 FROM events
		 WHERE event_date < date('now')
		   AND strftime('%Y', event_date) = ?
		   AND status = ?
		   AND organizer_id = ?
		 ORDER BY attendees ASC, id ASC
		 LIMIT ?`,
		yearArg(arg.Year), model.StatusComplete, arg.OrganizerID, attendanceRankLimit,
	)
}
