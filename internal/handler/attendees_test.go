package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/internal/store"
)

func TestListAttendees(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin("alice", "correct horse battery")

	event := ts.createEvent(testEventRequest())

	ctx := context.Background()
	for i, name := range []string{"Carol", "Dave"} {
		if _, err := ts.queries.CreateAttendee(ctx, store.CreateAttendeeParams{
			EventID:          event.ID,
			Name:             name,
			Email:            fmt.Sprintf("%s@example.com", name),
			TicketType:       "standard",
			RegistrationDate: fmt.Sprintf("2026-04-0%d", i+1),
		}); err != nil {
			t.Fatalf("CreateAttendee: %v", err)
		}
	}

	resp := ts.request(http.MethodGet, fmt.Sprintf("/api/attendees/%d", event.ID), nil)
	ts.mustStatus(resp, http.StatusOK)
	attendees := decodeData[[]model.Attendee](t, resp)

	if len(attendees) != 2 {
		t.Fatalf("attendees = %d, want 2", len(attendees))
	}
	if attendees[0].Name != "Carol" {
		t.Errorf("first attendee = %q, want Carol (registration order)", attendees[0].Name)
	}
	if attendees[0].RegistrationDate != "2026-04-01" {
		t.Errorf("registration_date = %q, want the stored YYYY-MM-DD value", attendees[0].RegistrationDate)
	}
}

func TestListAttendees_ForeignEvent(t *testing.T) {
	ts := newTestServer(t)

	ts.registerAndLogin("alice", "correct horse battery")
	event := ts.createEvent(testEventRequest())

	ts.registerAndLogin("bob", "another long password")
	resp := ts.request(http.MethodGet, fmt.Sprintf("/api/attendees/%d", event.ID), nil)
	ts.mustStatus(resp, http.StatusNotFound)
	resp.Body.Close()
}
