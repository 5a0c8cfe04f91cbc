// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// MonthsPerYear is the fixed size of every per-month bucket slice.
const MonthsPerYear = 12

// MonthlyTotals holds 12-slot monthly counters for an organizer's year.
// Index 0 is January.
type MonthlyTotals struct {
	Events    []int64 `json:"events"`
	Upcoming  []int64 `json:"upcoming"`
	Canceled  []int64 `json:"canceled"`
	Tickets   []int64 `json:"tickets"`
	Attendees []int64 `json:"attendees"`
}

// TicketTotals holds monthly ticket revenue and the running total.
// Revenue accumulates in float64; this matches the stored price type and is a
// documented precision caveat, not currency-safe arithmetic.
type TicketTotals struct {
	Tickets []float64 `json:"tickets"`
	Profit  float64   `json:"profit"`
}

// CountByDate is one day's count in a sparse daily series. Days without any
// events do not appear.
type CountByDate struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// EventCounts holds the sparse daily event counts for a year.
type EventCounts struct {
	EventCounts []CountByDate `json:"event_counts"`
}

// AttendeeCounts holds the sparse daily attendee counts for a year.
type AttendeeCounts struct {
	AttendeeCounts []CountByDate `json:"attendee_counts"`
}

// AttendeeTotals holds monthly attendee counts and their sum.
type AttendeeTotals struct {
	Attendees []int64 `json:"attendees"`
	Total     int64   `json:"total"`
}

// AttendanceExtremes lists the most and least attended completed events of a
// year, at most five of each.
type AttendanceExtremes struct {
	Most  []Event `json:"most"`
	Least []Event `json:"least"`
}

// NoShowTotals holds monthly no-show counts and rates for events that already
// took place. A month's rate stays 0 both when the month had no events and
// when it had no no-shows.
type NoShowTotals struct {
	NoShowCounts []int64   `json:"no_show_counts"`
	NoShowRates  []float64 `json:"no_show_rates"`
	TotalCount   int64     `json:"total_count"`
	TotalRate    float64   `json:"total_rate"`
}
