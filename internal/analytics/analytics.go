// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package analytics turns an organizer's raw event rows into the monthly and
// daily report shapes served by the dashboard endpoints.
package analytics

import (
	"context"
	"time"

	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/internal/store"
)

// monthIndex buckets a date into a 0-based month slot. January is 0.
func monthIndex(t time.Time) int {
	return int(t.Month()) - 1
}

// MonthlyEventTotals rolls a year's events into fixed 12-slot counters.
func MonthlyEventTotals(events []model.Event) model.MonthlyTotals {
	totals := model.MonthlyTotals{
		Events:    make([]int64, model.MonthsPerYear),
		Upcoming:  make([]int64, model.MonthsPerYear),
		Canceled:  make([]int64, model.MonthsPerYear),
		Tickets:   make([]int64, model.MonthsPerYear),
		Attendees: make([]int64, model.MonthsPerYear),
	}
	for _, e := range events {
		m := monthIndex(e.EventDate)
		totals.Events[m]++
		switch e.Status {
		case model.StatusUpcoming:
			totals.Upcoming[m]++
		case model.StatusCanceled:
			totals.Canceled[m]++
		}
		totals.Tickets[m] += e.TicketsSold
		totals.Attendees[m] += e.Attendees
	}
	return totals
}

// MonthlyTicketTotals sums ticket revenue per month plus a grand total.
// Revenue accumulates in float64, same as the stored price.
func MonthlyTicketTotals(events []model.Event) model.TicketTotals {
	totals := model.TicketTotals{
		Tickets: make([]float64, model.MonthsPerYear),
	}
	for _, e := range events {
		revenue := e.Price * float64(e.TicketsSold)
		totals.Tickets[monthIndex(e.EventDate)] += revenue
		totals.Profit += revenue
	}
	return totals
}

// MonthlyAttendeeTotals sums redeemed attendance per month plus the total.
func MonthlyAttendeeTotals(events []model.Event) model.AttendeeTotals {
	totals := model.AttendeeTotals{
		Attendees: make([]int64, model.MonthsPerYear),
	}
	for _, e := range events {
		totals.Attendees[monthIndex(e.EventDate)] += e.Attendees
		totals.Total += e.Attendees
	}
	return totals
}

// MonthlyNoShowTotals computes monthly no-show counts and average no-shows
// per event over events that already took place (dated before now). A rate is
// computed only when the month saw at least one no-show, so zero-no-show
// months and empty months are indistinguishable in the output. Same rule for
// the overall rate.
func MonthlyNoShowTotals(events []model.Event, now time.Time) model.NoShowTotals {
	totals := model.NoShowTotals{
		NoShowCounts: make([]int64, model.MonthsPerYear),
		NoShowRates:  make([]float64, model.MonthsPerYear),
	}

	eventCounts := make([]int64, model.MonthsPerYear)
	var pastEvents int64
	today := now.Truncate(24 * time.Hour)

	for i := range events {
		e := &events[i]
		if !e.EventDate.Before(today) {
			continue
		}
		m := monthIndex(e.EventDate)
		totals.NoShowCounts[m] += e.NoShows()
		totals.TotalCount += e.NoShows()
		eventCounts[m]++
		pastEvents++
	}

	for m := range totals.NoShowCounts {
		if totals.NoShowCounts[m] > 0 {
			totals.NoShowRates[m] = float64(totals.NoShowCounts[m]) / float64(eventCounts[m])
		}
	}
	if totals.TotalCount > 0 {
		totals.TotalRate = float64(totals.TotalCount) / float64(pastEvents)
	}
	return totals
}

// Service runs the dashboard reports against the store.
type Service struct {
	queries *store.Queries
}

// NewService creates a Service bound to the given queries.
func NewService(queries *store.Queries) *Service {
	return &Service{queries: queries}
}

func (s *Service) yearEvents(ctx context.Context, organizerID int64, year int) ([]model.Event, error) {
	return s.queries.ListEventsByYear(ctx, store.ListEventsByYearParams{
		OrganizerID: organizerID,
		Year:        year,
	})
}

// MonthlyTotals reports per-month event, status, ticket, and attendee counts.
func (s *Service) MonthlyTotals(ctx context.Context, organizerID int64, year int) (model.MonthlyTotals, error) {
	events, err := s.yearEvents(ctx, organizerID, year)
	if err != nil {
		return model.MonthlyTotals{}, err
	}
	return MonthlyEventTotals(events), nil
}

// TicketTotals reports per-month revenue and the year's total.
func (s *Service) TicketTotals(ctx context.Context, organizerID int64, year int) (model.TicketTotals, error) {
	events, err := s.yearEvents(ctx, organizerID, year)
	if err != nil {
		return model.TicketTotals{}, err
	}
	return MonthlyTicketTotals(events), nil
}

// AttendeeTotals reports per-month attendance and the year's total.
func (s *Service) AttendeeTotals(ctx context.Context, organizerID int64, year int) (model.AttendeeTotals, error) {
	events, err := s.yearEvents(ctx, organizerID, year)
	if err != nil {
		return model.AttendeeTotals{}, err
	}
	return MonthlyAttendeeTotals(events), nil
}

// NoShowTotals reports per-month no-show counts and rates for past completed
// events.
func (s *Service) NoShowTotals(ctx context.Context, organizerID int64, year int) (model.NoShowTotals, error) {
	events, err := s.yearEvents(ctx, organizerID, year)
	if err != nil {
		return model.NoShowTotals{}, err
	}
	return MonthlyNoShowTotals(events, time.Now()), nil
}

// EventCounts reports the sparse per-day event counts for a year.
func (s *Service) EventCounts(ctx context.Context, organizerID int64, year int) (model.EventCounts, error) {
	counts, err := s.queries.DailyEventCounts(ctx, store.DailyCountsParams{
		OrganizerID: organizerID,
		Year:        year,
	})
	if err != nil {
		return model.EventCounts{}, err
	}
	return model.EventCounts{EventCounts: counts}, nil
}

// AttendeeCounts reports the sparse per-day registration counts for a year.
func (s *Service) AttendeeCounts(ctx context.Context, organizerID int64, year int) (model.AttendeeCounts, error) {
	counts, err := s.queries.DailyAttendeeCounts(ctx, store.DailyCountsParams{
		OrganizerID: organizerID,
		Year:        year,
	})
	if err != nil {
		return model.AttendeeCounts{}, err
	}
	return model.AttendeeCounts{AttendeeCounts: counts}, nil
}

// AttendanceExtremes reports the five most and five least attended completed
// past events of a year.
func (s *Service) AttendanceExtremes(ctx context.Context, organizerID int64, year int) (model.AttendanceExtremes, error) {
	arg := store.AttendanceRankParams{OrganizerID: organizerID, Year: year}
	most, err := s.queries.MostAttendedEvents(ctx, arg)
	if err != nil {
		return model.AttendanceExtremes{}, err
	}
	least, err := s.queries.LeastAttendedEvents(ctx, arg)
	if err != nil {
		return model.AttendanceExtremes{}, err
	}
	return model.AttendanceExtremes{Most: most, Least: least}, nil
}
