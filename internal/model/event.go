// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Event statuses.
const (
	StatusUpcoming = "upcoming"
	StatusCanceled = "canceled"
	StatusComplete = "complete"
)

// Event represents an event owned by exactly one organizer.
//
// TicketsSold counts sold tickets; Attendees counts redeemed ones, so
// TicketsSold - Attendees is the no-show count and is assumed non-negative.
type Event struct {
	ID                   int64      `json:"id"`
	Title                string     `json:"title"`
	Description          *string    `json:"description"`
	EventDate            time.Time  `json:"event_date"`
	StartTime            string     `json:"start_time"`
	EndTime              *string    `json:"end_time"`
	Location             *string    `json:"location"`
	CategoryID           *int64     `json:"category_id"`
	Status               string     `json:"status"`
	OrganizerID          int64      `json:"organizer_id"`
	Price                float64    `json:"price"`
	TicketsSold          int64      `json:"tickets_sold"`
	Attendees            int64      `json:"attendees"`
	MaxAttendees         *int64     `json:"max_attendees"`
	ContactEmail         *string    `json:"contact_email"`
	ContactPhone         *string    `json:"contact_phone"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	IsVirtual            bool       `json:"is_virtual"`
	Image                *string    `json:"image"`
	MapEmbed             *string    `json:"map_embed"`
	AccessibilityInfo    *string    `json:"accessibility_info"`
	SafetyGuidelines     *string    `json:"safety_guidelines"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// NoShows returns the number of sold tickets that were not redeemed.
func (e *Event) NoShows() int64 {
	return e.TicketsSold - e.Attendees
}

// EventDetails bundles an event with its organizer and sub-resources for the
// event detail editing flow.
type EventDetails struct {
	Event       Event        `json:"event"`
	Organizer   Organizer    `json:"organizer"`
	Agenda      []Agenda     `json:"agenda"`
	Speakers    []Speaker    `json:"speakers"`
	Faqs        []Faq        `json:"faqs"`
	Attachments []Attachment `json:"attachments"`
	Comments    []Comment    `json:"comments"`
}
