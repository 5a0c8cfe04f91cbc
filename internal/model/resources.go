// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Agenda is a single agenda item of an event.
type Agenda struct {
	ID        int64  `json:"id"`
	EventID   int64  `json:"event_id"`
	StartTime string `json:"start_time"`
	Title     string `json:"title"`
	Speaker   string `json:"speaker"`
}

// Speaker is a person presenting at an event.
type Speaker struct {
	ID      int64   `json:"id"`
	EventID int64   `json:"event_id"`
	Name    string  `json:"name"`
	Bio     *string `json:"bio"`
	Photo   *string `json:"photo"`
}

// Faq is a frequently asked question attached to an event.
type Faq struct {
	ID       int64   `json:"id"`
	EventID  int64   `json:"event_id"`
	Question string  `json:"question"`
	Answer   *string `json:"answer"`
}

// Attachment is a downloadable file linked to an event.
type Attachment struct {
	ID      int64  `json:"id"`
	EventID int64  `json:"event_id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}

// Comment is a free-form note on an event.
type Comment struct {
	ID      int64  `json:"id"`
	EventID int64  `json:"event_id"`
	Message string `json:"message"`
}

// Attendee is a registered participant of an event. RegistrationDate travels
// as a YYYY-MM-DD string, matching how it is stored.
type Attendee struct {
	ID               int64  `json:"id"`
	EventID          int64  `json:"event_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	TicketType       string `json:"ticket_type"`
	RegistrationDate string `json:"registration_date"`
}
