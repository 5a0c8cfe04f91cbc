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

	"github.com/eventdeck/eventdeck/internal/auth"
	"github.com/eventdeck/eventdeck/internal/middleware"
	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/internal/store"
)

const minPasswordLength = 8

// setSessionCookie attaches the session token cookie. SameSite=None with
// Secure lets the browser dashboard run on a different origin.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearSessionCookie expires the session token cookie.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

// CredentialsRequest is the login and registration payload.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *CredentialsRequest) validate() map[string]string {
	fieldErrors := make(map[string]string)
	if strings.TrimSpace(req.Username) == "" {
		fieldErrors["username"] = "Username is required"
	}
	if len(req.Password) < minPasswordLength {
		fieldErrors["password"] = "Password must be at least 8 characters"
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// Register handles POST /api/register. The organizer profile is created
// separately via POST /api/organizer.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	if _, err := h.queries.GetUserByUsername(r.Context(), req.Username); err == nil {
		WriteValidationError(w, map[string]string{"username": "Username is already taken"})
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to check username", "error", err)
		WriteInternalError(w, "Failed to register user")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		WriteInternalError(w, "Failed to register user")
		return
	}

	user, err := h.queries.CreateUser(r.Context(), store.CreateUserParams{
		Username:     req.Username,
		PasswordHash: hash,
	})
	if err != nil {
		slog.Error("failed to create user", "error", err)
		WriteInternalError(w, "Failed to register user")
		return
	}

	slog.Info("user registered", "username", user.Username)
	WriteCreated(w, user)
}

// Login handles POST /api/login. A wrong username and a wrong password are
// indistinguishable to the client.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.queries.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to look up user", "error", err)
		}
		slog.Warn("failed login attempt", "category", "auth", "username", req.Username)
		WriteUnauthorized(w, "Invalid credentials")
		return
	}

	if err := auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		slog.Warn("failed login attempt", "category", "auth", "username", req.Username)
		WriteUnauthorized(w, "Invalid credentials")
		return
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		WriteInternalError(w, "Failed to log in")
		return
	}

	if _, err := h.queries.CreateSession(r.Context(), store.CreateSessionParams{
		UserID: user.ID,
		Token:  token,
	}); err != nil {
		slog.Error("failed to create session", "error", err)
		WriteInternalError(w, "Failed to log in")
		return
	}

	setSessionCookie(w, token)
	WriteSuccess(w, map[string]string{"username": user.Username}, nil)
}

// Logout handles POST /api/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r)
	if session == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}

	if err := h.queries.DeleteSession(r.Context(), session.Token); err != nil {
		slog.Error("failed to delete session", "error", err)
		WriteInternalError(w, "Failed to log out")
		return
	}

	clearSessionCookie(w)
	WriteSuccess(w, map[string]string{"message": "Logged out"}, nil)
}

// AuthStatusResponse is the authenticated profile summary.
type AuthStatusResponse struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Logo     *string `json:"logo"`
	Website  *string `json:"website"`
}

// AuthStatus handles GET /api/auth/status. Accounts without an organizer
// profile yet get zero-value profile fields.
func (h *Handler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	user, err := h.queries.GetUserByID(r.Context(), userID)
	if err != nil {
		slog.Error("failed to load user", "error", err, "user_id", userID)
		WriteUnauthorized(w, "Not authenticated")
		return
	}

	organizer, err := h.queries.GetOrganizer(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to load organizer", "error", err, "user_id", userID)
			WriteInternalError(w, "Failed to load profile")
			return
		}
		organizer = model.Organizer{}
	}

	WriteSuccess(w, AuthStatusResponse{
		Username: user.Username,
		Name:     organizer.Name,
		Logo:     organizer.Logo,
		Website:  organizer.Website,
	}, nil)
}

// ChangePasswordRequest carries the replacement password.
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ChangePassword handles PUT /api/auth/password for the authenticated user.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		WriteValidationError(w, map[string]string{"new_password": "Password must be at least 8 characters"})
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		WriteInternalError(w, "Failed to update password")
		return
	}

	userID := middleware.GetUserID(r)
	if err := h.queries.UpdateUserPassword(r.Context(), store.UpdateUserPasswordParams{
		ID:           userID,
		PasswordHash: hash,
	}); err != nil {
		slog.Error("failed to update password", "error", err, "user_id", userID)
		WriteInternalError(w, "Failed to update password")
		return
	}

	slog.Info("user password updated", "category", "auth", "user_id", userID)
	WriteSuccess(w, map[string]string{"message": "Password updated"}, nil)
}

// DeleteAccount handles DELETE /api/auth/account. The user row goes first,
// then the organizer profile; sessions cascade with the user.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	if err := h.queries.DeleteUser(r.Context(), userID); err != nil {
		slog.Error("failed to delete user", "error", err, "user_id", userID)
		WriteInternalError(w, "Failed to delete account")
		return
	}
	if err := h.queries.DeleteOrganizer(r.Context(), userID); err != nil {
		slog.Error("failed to delete organizer", "error", err, "user_id", userID)
		WriteInternalError(w, "Failed to delete account")
		return
	}

	slog.Warn("account deleted", "category", "user", "user_id", userID)
	clearSessionCookie(w)
	WriteSuccess(w, map[string]string{"message": "Account deleted"}, nil)
}
