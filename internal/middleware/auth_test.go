package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventdeck/eventdeck/internal/store"
	"github.com/eventdeck/eventdeck/internal/testutil"
)

func TestRequireSession_NoCookie(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	handler := RequireSession(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called without a session cookie")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/events/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireSession_UnknownToken(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	handler := RequireSession(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called with an unknown token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/events/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-real-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireSession_ValidToken(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	q := store.New(db)

	user, err := q.CreateUser(ctx, store.CreateUserParams{Username: "alice", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	_, err = q.CreateSession(ctx, store.CreateSessionParams{UserID: user.ID, Token: "good-token"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	var gotUserID int64
	handler := RequireSession(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/events/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotUserID != user.ID {
		t.Errorf("GetUserID = %d, want %d", gotUserID, user.ID)
	}
}

func TestGetSession_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if GetSession(req) != nil {
		t.Error("GetSession should be nil without RequireSession")
	}
	if GetUserID(req) != 0 {
		t.Error("GetUserID should be 0 without RequireSession")
	}
}
