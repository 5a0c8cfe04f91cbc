// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/internal/store"
)

// loadEventDetails assembles the full detail bundle for an event the caller
// already owns.
func (h *Handler) loadEventDetails(ctx context.Context, event model.Event) (model.EventDetails, error) {
	details := model.EventDetails{Event: event}

	organizer, err := h.queries.GetOrganizer(ctx, event.OrganizerID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return model.EventDetails{}, fmt.Errorf("loading organizer: %w", err)
	}
	details.Organizer = organizer

	if details.Agenda, err = h.queries.ListAgenda(ctx, event.ID); err != nil {
		return model.EventDetails{}, fmt.Errorf("loading agenda: %w", err)
	}
	if details.Speakers, err = h.queries.ListSpeakers(ctx, event.ID); err != nil {
		return model.EventDetails{}, fmt.Errorf("loading speakers: %w", err)
	}
	if details.Faqs, err = h.queries.ListFaqs(ctx, event.ID); err != nil {
		return model.EventDetails{}, fmt.Errorf("loading faqs: %w", err)
	}
	if details.Attachments, err = h.queries.ListAttachments(ctx, event.ID); err != nil {
		return model.EventDetails{}, fmt.Errorf("loading attachments: %w", err)
	}
	if details.Comments, err = h.queries.ListComments(ctx, event.ID); err != nil {
		return model.EventDetails{}, fmt.Errorf("loading comments: %w", err)
	}
	return details, nil
}

// GetEventDetails handles GET /api/events/{id}/details.
func (h *Handler) GetEventDetails(w http.ResponseWriter, r *http.Request) {
	event, ok := h.requireEvent(w, r, "id")
	if !ok {
		return
	}

	details, err := h.loadEventDetails(r.Context(), event)
	if err != nil {
		slog.Error("failed to load event details", "error", err, "event_id", event.ID)
		WriteInternalError(w, "Failed to load event details")
		return
	}

	WriteSuccess(w, details, nil)
}

// EventDetailsRequest is the bulk sub-resource payload. Items with a zero ID
// are created, the rest updated in place.
type EventDetailsRequest struct {
	Agenda      []model.Agenda     `json:"agenda"`
	Speakers    []model.Speaker    `json:"speakers"`
	Faqs        []model.Faq        `json:"faqs"`
	Attachments []model.Attachment `json:"attachments"`
	Comments    []model.Comment    `json:"comments"`
}

// applyDetailUpdates runs the bulk creates and updates against qtx. Every
// item is pinned to eventID regardless of what the payload claims.
func applyDetailUpdates(ctx context.Context, qtx *store.Queries, eventID int64, req *EventDetailsRequest) error {
	var createAgenda, updateAgenda []model.Agenda
	for _, item := range req.Agenda {
		item.EventID = eventID
		if item.ID == 0 {
			createAgenda = append(createAgenda, item)
		} else {
			updateAgenda = append(updateAgenda, item)
		}
	}
	if _, err := qtx.CreateAgendaItems(ctx, createAgenda); err != nil {
		return fmt.Errorf("creating agenda items: %w", err)
	}
	if err := qtx.UpdateAgendaItems(ctx, updateAgenda); err != nil {
		return fmt.Errorf("updating agenda items: %w", err)
	}

	var createSpeakers, updateSpeakers []model.Speaker
	for _, item := range req.Speakers {
		item.EventID = eventID
		if item.ID == 0 {
			createSpeakers = append(createSpeakers, item)
		} else {
			updateSpeakers = append(updateSpeakers, item)
		}
	}
	if _, err := qtx.CreateSpeakers(ctx, createSpeakers); err != nil {
		return fmt.Errorf("creating speakers: %w", err)
	}
	if err := qtx.UpdateSpeakers(ctx, updateSpeakers); err != nil {
		return fmt.Errorf("updating speakers: %w", err)
	}

	var createFaqs, updateFaqs []model.Faq
	for _, item := range req.Faqs {
		item.EventID = eventID
		if item.ID == 0 {
			createFaqs = append(createFaqs, item)
		} else {
			updateFaqs = append(updateFaqs, item)
		}
	}
	if _, err := qtx.CreateFaqs(ctx, createFaqs); err != nil {
		return fmt.Errorf("creating faqs: %w", err)
	}
	if err := qtx.UpdateFaqs(ctx, updateFaqs); err != nil {
		return fmt.Errorf("updating faqs: %w", err)
	}

	var createAttachments, updateAttachments []model.Attachment
	for _, item := range req.Attachments {
		item.EventID = eventID
		if item.ID == 0 {
			createAttachments = append(createAttachments, item)
		} else {
			updateAttachments = append(updateAttachments, item)
		}
	}
	if _, err := qtx.CreateAttachments(ctx, createAttachments); err != nil {
		return fmt.Errorf("creating attachments: %w", err)
	}
	if err := qtx.UpdateAttachments(ctx, updateAttachments); err != nil {
		return fmt.Errorf("updating attachments: %w", err)
	}

	var createComments, updateComments []model.Comment
	for _, item := range req.Comments {
		item.EventID = eventID
		if item.ID == 0 {
			createComments = append(createComments, item)
		} else {
			updateComments = append(updateComments, item)
		}
	}
	if _, err := qtx.CreateComments(ctx, createComments); err != nil {
		return fmt.Errorf("creating comments: %w", err)
	}
	if err := qtx.UpdateComments(ctx, updateComments); err != nil {
		return fmt.Errorf("updating comments: %w", err)
	}

	return nil
}

// UpdateEventDetails handles PUT /api/events/{id}/details. All sub-resource
// writes run in one transaction; a failure rolls everything back.
func (h *Handler) UpdateEventDetails(w http.ResponseWriter, r *http.Request) {
	event, ok := h.requireEvent(w, r, "id")
	if !ok {
		return
	}

	var req EventDetailsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		WriteInternalError(w, "Failed to update event details")
		return
	}
	defer func() { _ = tx.Rollback() }()

	if err := applyDetailUpdates(r.Context(), h.queries.WithTx(tx), event.ID, &req); err != nil {
		slog.Error("failed to update event details", "error", err, "event_id", event.ID)
		WriteInternalError(w, "Failed to update event details")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit event details", "error", err, "event_id", event.ID)
		WriteInternalError(w, "Failed to update event details")
		return
	}

	details, err := h.loadEventDetails(r.Context(), event)
	if err != nil {
		slog.Error("failed to reload event details", "error", err, "event_id", event.ID)
		WriteInternalError(w, "Failed to load event details")
		return
	}

	WriteSuccess(w, details, nil)
}
