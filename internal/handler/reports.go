// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/eventdeck/eventdeck/internal/middleware"
)

// Report handlers. Every report is scoped to the authenticated organizer and
// a mandatory year query parameter; results are computed fresh per request.

// OverviewTotals handles GET /api/overview/totals?year=.
func (h *Handler) OverviewTotals(w http.ResponseWriter, r *http.Request) {
	year, ok := requireYear(w, r)
	if !ok {
		return
	}

	totals, err := h.reports.MonthlyTotals(r.Context(), middleware.GetUserID(r), year)
	if err != nil {
		slog.Error("failed to compute monthly totals", "error", err)
		WriteInternalError(w, "Failed to compute monthly totals")
		return
	}
	WriteSuccess(w, totals, nil)
}

// TicketTotals handles GET /api/events/tickets/monthly?year=.
func (h *Handler) TicketTotals(w http.ResponseWriter, r *http.Request) {
	year, ok := requireYear(w, r)
	if !ok {
		return
	}

	totals, err := h.reports.TicketTotals(r.Context(), middleware.GetUserID(r), year)
	if err != nil {
		slog.Error("failed to compute ticket totals", "error", err)
		WriteInternalError(w, "Failed to compute ticket totals")
		return
	}
	WriteSuccess(w, totals, nil)
}

// EventCounts handles GET /api/events/counts/daily?year=.
func (h *Handler) EventCounts(w http.ResponseWriter, r *http.Request) {
	year, ok := requireYear(w, r)
	if !ok {
		return
	}

	counts, err := h.reports.EventCounts(r.Context(), middleware.GetUserID(r), year)
	if err != nil {
		slog.Error("failed to compute daily event counts", "error", err)
		WriteInternalError(w, "Failed to compute daily event counts")
		return
	}
	WriteSuccess(w, counts, nil)
}

// AttendeeTotals handles GET /api/attendees/counts/monthly?year=.
func (h *Handler) AttendeeTotals(w http.ResponseWriter, r *http.Request) {
	year, ok := requireYear(w, r)
	if !ok {
		return
	}

	totals, err := h.reports.AttendeeTotals(r.Context(), middleware.GetUserID(r), year)
	if err != nil {
		slog.Error("failed to compute attendee totals", "error", err)
		WriteInternalError(w, "Failed to compute attendee totals")
		return
	}
	WriteSuccess(w, totals, nil)
}

// AttendeeCounts handles GET /api/attendees/counts/daily?year=.
func (h *Handler) AttendeeCounts(w http.ResponseWriter, r *http.Request) {
	year, ok := requireYear(w, r)
	if !ok {
		return
	}

	counts, err := h.reports.AttendeeCounts(r.Context(), middleware.GetUserID(r), year)
	if err != nil {
		slog.Error("failed to compute daily attendee counts", "error", err)
		WriteInternalError(w, "Failed to compute daily attendee counts")
		return
	}
	WriteSuccess(w, counts, nil)
}

// AttendanceExtremes handles GET /api/attendees/extremes?year=.
func (h *Handler) AttendanceExtremes(w http.ResponseWriter, r *http.Request) {
	year, ok := requireYear(w, r)
	if !ok {
		return
	}

	extremes, err := h.reports.AttendanceExtremes(r.Context(), middleware.GetUserID(r), year)
	if err != nil {
		slog.Error("failed to compute attendance extremes", "error", err)
		WriteInternalError(w, "Failed to compute attendance extremes")
		return
	}
	WriteSuccess(w, extremes, nil)
}

// NoShowTotals handles GET /api/attendees/no-shows/monthly?year=.
func (h *Handler) NoShowTotals(w http.ResponseWriter, r *http.Request) {
	year, ok := requireYear(w, r)
	if !ok {
		return
	}

	totals, err := h.reports.NoShowTotals(r.Context(), middleware.GetUserID(r), year)
	if err != nil {
		slog.Error("failed to compute no-show totals", "error", err)
		WriteInternalError(w, "Failed to compute no-show totals")
		return
	}
	WriteSuccess(w, totals, nil)
}
