// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for session authentication,
// CORS, and rate limiting.
package middleware

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/internal/store"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session_token"

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeySession is the context key for the authenticated session.
const ContextKeySession ContextKey = "session"

// RequireSession creates middleware that requires a valid session cookie.
// The session row is loaded from the database on every request and stored in
// the request context; requests without a valid token get 401.
func RequireSession(db *sql.DB) func(http.Handler) http.Handler {
	queries := store.New(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			session, err := queries.GetSessionByToken(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, sql.ErrNoRows) {
					slog.Error("failed to look up session", "error", err)
				}
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession retrieves the authenticated session from the request context.
// Returns nil if the request did not pass RequireSession.
func GetSession(r *http.Request) *model.Session {
	session, ok := r.Context().Value(ContextKeySession).(model.Session)
	if !ok {
		return nil
	}
	return &session
}

// GetUserID returns the authenticated user's ID from context, or 0 if the
// request is unauthenticated.
func GetUserID(r *http.Request) int64 {
	if session := GetSession(r); session != nil {
		return session.UserID
	}
	return 0
}
