// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/eventdeck/eventdeck/internal/middleware"
	"github.com/eventdeck/eventdeck/internal/model"
)

// OrganizerRequest is the create/update payload for the organizer profile.
type OrganizerRequest struct {
	Name    string  `json:"name"`
	Logo    *string `json:"logo"`
	Website *string `json:"website"`
}

func (req *OrganizerRequest) validate() map[string]string {
	if strings.TrimSpace(req.Name) == "" {
		return map[string]string{"name": "Name is required"}
	}
	return nil
}

// GetOrganizer handles GET /api/organizer.
func (h *Handler) GetOrganizer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	organizer, err := h.queries.GetOrganizer(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Organizer profile not found")
			return
		}
		slog.Error("failed to load organizer", "error", err, "user_id", userID)
		WriteInternalError(w, "Failed to load organizer")
		return
	}

	WriteSuccess(w, organizer, nil)
}

// CreateOrganizer handles POST /api/organizer. The profile shares its ID with
// the authenticated user.
func (h *Handler) CreateOrganizer(w http.ResponseWriter, r *http.Request) {
	var req OrganizerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	userID := middleware.GetUserID(r)
	if _, err := h.queries.GetOrganizer(r.Context(), userID); err == nil {
		WriteValidationError(w, map[string]string{"name": "Organizer profile already exists"})
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to check organizer", "error", err, "user_id", userID)
		WriteInternalError(w, "Failed to create organizer")
		return
	}

	organizer, err := h.queries.CreateOrganizer(r.Context(), model.Organizer{
		ID:      userID,
		Name:    req.Name,
		Logo:    req.Logo,
		Website: req.Website,
	})
	if err != nil {
		slog.Error("failed to create organizer", "error", err, "user_id", userID)
		WriteInternalError(w, "Failed to create organizer")
		return
	}

	WriteCreated(w, organizer)
}

// UpdateOrganizer handles PUT /api/organizer.
func (h *Handler) UpdateOrganizer(w http.ResponseWriter, r *http.Request) {
	var req OrganizerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	userID := middleware.GetUserID(r)
	if _, err := h.queries.GetOrganizer(r.Context(), userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Organizer profile not found")
			return
		}
		slog.Error("failed to load organizer", "error", err, "user_id", userID)
		WriteInternalError(w, "Failed to update organizer")
		return
	}

	organizer := model.Organizer{
		ID:      userID,
		Name:    req.Name,
		Logo:    req.Logo,
		Website: req.Website,
	}
	if err := h.queries.UpdateOrganizer(r.Context(), organizer); err != nil {
		slog.Error("failed to update organizer", "error", err, "user_id", userID)
		WriteInternalError(w, "Failed to update organizer")
		return
	}

	WriteSuccess(w, organizer, nil)
}
