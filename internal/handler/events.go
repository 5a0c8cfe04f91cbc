// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/eventdeck/eventdeck/internal/middleware"
	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/internal/store"
)

const dateLayout = "2006-01-02"

// EventRequest is the create/update payload for an event. Dates travel as
// YYYY-MM-DD strings.
type EventRequest struct {
	Title                string  `json:"title"`
	Description          *string `json:"description"`
	EventDate            string  `json:"event_date"`
	StartTime            string  `json:"start_time"`
	EndTime              *string `json:"end_time"`
	Location             *string `json:"location"`
	CategoryID           *int64  `json:"category_id"`
	Status               string  `json:"status"`
	Price                float64 `json:"price"`
	TicketsSold          int64   `json:"tickets_sold"`
	Attendees            int64   `json:"attendees"`
	MaxAttendees         *int64  `json:"max_attendees"`
	ContactEmail         *string `json:"contact_email"`
	ContactPhone         *string `json:"contact_phone"`
	RegistrationDeadline *string `json:"registration_deadline"`
	IsVirtual            bool    `json:"is_virtual"`
	Image                *string `json:"image"`
	MapEmbed             *string `json:"map_embed"`
	AccessibilityInfo    *string `json:"accessibility_info"`
	SafetyGuidelines     *string `json:"safety_guidelines"`
}

func (req *EventRequest) validate() map[string]string {
	fieldErrors := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		fieldErrors["title"] = "Title is required"
	}
	if _, err := time.Parse(dateLayout, req.EventDate); err != nil {
		fieldErrors["event_date"] = "Must be a YYYY-MM-DD date"
	}
	if req.StartTime == "" {
		fieldErrors["start_time"] = "Start time is required"
	}
	switch req.Status {
	case model.StatusUpcoming, model.StatusCanceled, model.StatusComplete:
	default:
		fieldErrors["status"] = "Must be upcoming, canceled or complete"
	}
	if req.RegistrationDeadline != nil {
		if _, err := time.Parse(dateLayout, *req.RegistrationDeadline); err != nil {
			fieldErrors["registration_deadline"] = "Must be a YYYY-MM-DD date"
		}
	}
	if req.TicketsSold < 0 || req.Attendees < 0 {
		fieldErrors["attendees"] = "Counters must not be negative"
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// requireEvent parses the event ID from the URL and loads the event within
// the authenticated organizer's scope. On failure the response is written and
// false returned.
func (h *Handler) requireEvent(w http.ResponseWriter, r *http.Request, param string) (model.Event, bool) {
	id, err := parseIDParam(r, param)
	if err != nil {
		WriteBadRequest(w, "Invalid event ID", nil)
		return model.Event{}, false
	}

	event, err := h.queries.GetEvent(r.Context(), store.GetEventParams{
		ID:          id,
		OrganizerID: middleware.GetUserID(r),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Event not found")
		} else {
			slog.Error("failed to load event", "error", err, "event_id", id)
			WriteInternalError(w, "Failed to load event")
		}
		return model.Event{}, false
	}
	return event, true
}

// ListEvents handles GET /api/events?year=.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	year, ok := requireYear(w, r)
	if !ok {
		return
	}

	events, err := h.queries.ListEventsByYear(r.Context(), store.ListEventsByYearParams{
		OrganizerID: middleware.GetUserID(r),
		Year:        year,
	})
	if err != nil {
		slog.Error("failed to list events", "error", err)
		WriteInternalError(w, "Failed to list events")
		return
	}

	WriteSuccess(w, events, &Meta{Total: int64(len(events))})
}

// GetEvent handles GET /api/events/{id}.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, ok := h.requireEvent(w, r, "id")
	if !ok {
		return
	}
	WriteSuccess(w, event, nil)
}

// CreateEvent handles POST /api/events. The organizer always comes from the
// session, never from the payload.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	event, err := h.queries.CreateEvent(r.Context(), store.CreateEventParams{
		Title:                req.Title,
		Description:          req.Description,
		EventDate:            req.EventDate,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Location:             req.Location,
		CategoryID:           req.CategoryID,
		Status:               req.Status,
		OrganizerID:          middleware.GetUserID(r),
		Price:                req.Price,
		TicketsSold:          req.TicketsSold,
		Attendees:            req.Attendees,
		MaxAttendees:         req.MaxAttendees,
		ContactEmail:         req.ContactEmail,
		ContactPhone:         req.ContactPhone,
		RegistrationDeadline: req.RegistrationDeadline,
		IsVirtual:            req.IsVirtual,
		Image:                req.Image,
		MapEmbed:             req.MapEmbed,
		AccessibilityInfo:    req.AccessibilityInfo,
		SafetyGuidelines:     req.SafetyGuidelines,
	})
	if err != nil {
		slog.Error("failed to create event", "error", err)
		WriteInternalError(w, "Failed to create event")
		return
	}

	slog.Info("event created", "category", "event", "event_id", event.ID, "title", event.Title)
	WriteCreated(w, event)
}

// UpdateEvent handles PUT /api/events/{id}.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.requireEvent(w, r, "id")
	if !ok {
		return
	}

	var req EventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	eventDate, _ := time.Parse(dateLayout, req.EventDate)
	var deadline *time.Time
	if req.RegistrationDeadline != nil {
		d, _ := time.Parse(dateLayout, *req.RegistrationDeadline)
		deadline = &d
	}

	event := model.Event{
		ID:                   existing.ID,
		Title:                req.Title,
		Description:          req.Description,
		EventDate:            eventDate,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Location:             req.Location,
		CategoryID:           req.CategoryID,
		Status:               req.Status,
		OrganizerID:          existing.OrganizerID,
		Price:                req.Price,
		TicketsSold:          req.TicketsSold,
		Attendees:            req.Attendees,
		MaxAttendees:         req.MaxAttendees,
		ContactEmail:         req.ContactEmail,
		ContactPhone:         req.ContactPhone,
		RegistrationDeadline: deadline,
		IsVirtual:            req.IsVirtual,
		Image:                req.Image,
		MapEmbed:             req.MapEmbed,
		AccessibilityInfo:    req.AccessibilityInfo,
		SafetyGuidelines:     req.SafetyGuidelines,
	}
	if err := h.queries.UpdateEvent(r.Context(), event); err != nil {
		slog.Error("failed to update event", "error", err, "event_id", existing.ID)
		WriteInternalError(w, "Failed to update event")
		return
	}

	updated, err := h.queries.GetEvent(r.Context(), store.GetEventParams{
		ID:          existing.ID,
		OrganizerID: existing.OrganizerID,
	})
	if err != nil {
		slog.Error("failed to reload event", "error", err, "event_id", existing.ID)
		WriteInternalError(w, "Failed to update event")
		return
	}

	WriteSuccess(w, updated, nil)
}

// DeleteEvent handles DELETE /api/events/{id}. Sub-resources cascade with the
// event row.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	event, ok := h.requireEvent(w, r, "id")
	if !ok {
		return
	}

	if err := h.queries.DeleteEvent(r.Context(), store.DeleteEventParams{
		ID:          event.ID,
		OrganizerID: event.OrganizerID,
	}); err != nil {
		slog.Error("failed to delete event", "error", err, "event_id", event.ID)
		WriteInternalError(w, "Failed to delete event")
		return
	}

	slog.Info("event deleted", "category", "event", "event_id", event.ID, "title", event.Title)
	WriteSuccess(w, map[string]string{"message": "Event deleted"}, nil)
}
