// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
)

// ListAttendees handles GET /api/attendees/{event_id}. Ownership is checked
// through the parent event before the list is released.
func (h *Handler) ListAttendees(w http.ResponseWriter, r *http.Request) {
	event, ok := h.requireEvent(w, r, "event_id")
	if !ok {
		return
	}

	attendees, err := h.queries.ListAttendeesByEvent(r.Context(), event.ID)
	if err != nil {
		slog.Error("failed to list attendees", "error", err, "event_id", event.ID)
		WriteInternalError(w, "Failed to list attendees")
		return
	}

	WriteSuccess(w, attendees, &Meta{Total: int64(len(attendees))})
}
