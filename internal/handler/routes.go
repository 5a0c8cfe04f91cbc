// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventdeck/eventdeck/internal/middleware"
)

// Routes mounts all API routes. authLimiter guards the credential endpoints;
// CORS and the rest of the global middleware stack are layered on top by the
// caller.
func (h *Handler) Routes(db *sql.DB, authLimiter func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/health", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(authLimiter)
		r.Post("/api/register", h.Register)
		r.Post("/api/login", h.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(db))

		r.Post("/api/logout", h.Logout)
		r.Get("/api/auth/status", h.AuthStatus)
		r.Put("/api/auth/password", h.ChangePassword)
		r.Delete("/api/auth/account", h.DeleteAccount)

		r.Get("/api/organizer", h.GetOrganizer)
		r.Post("/api/organizer", h.CreateOrganizer)
		r.Put("/api/organizer", h.UpdateOrganizer)

		r.Get("/api/events", h.ListEvents)
		r.Post("/api/events", h.CreateEvent)
		r.Get("/api/events/tickets/monthly", h.TicketTotals)
		r.Get("/api/events/counts/daily", h.EventCounts)
		r.Get("/api/events/{id}", h.GetEvent)
		r.Put("/api/events/{id}", h.UpdateEvent)
		r.Delete("/api/events/{id}", h.DeleteEvent)
		r.Get("/api/events/{id}/details", h.GetEventDetails)
		r.Put("/api/events/{id}/details", h.UpdateEventDetails)

		r.Get("/api/categories", h.ListCategories)

		r.Get("/api/overview/totals", h.OverviewTotals)
		r.Get("/api/attendees/counts/monthly", h.AttendeeTotals)
		r.Get("/api/attendees/counts/daily", h.AttendeeCounts)
		r.Get("/api/attendees/extremes", h.AttendanceExtremes)
		r.Get("/api/attendees/no-shows/monthly", h.NoShowTotals)
		r.Get("/api/attendees/{event_id}", h.ListAttendees)
	})

	return r
}
