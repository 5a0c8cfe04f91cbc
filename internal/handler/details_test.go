package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/eventdeck/eventdeck/internal/model"
)

func TestEventDetails_RoundTrip(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin("alice", "correct horse battery")

	resp := ts.request(http.MethodPost, "/api/organizer", OrganizerRequest{Name: "Alice Events"})
	ts.mustStatus(resp, http.StatusCreated)
	resp.Body.Close()

	event := ts.createEvent(testEventRequest())
	detailsPath := fmt.Sprintf("/api/events/%d/details", event.ID)

	bio := "Keynote speaker"
	answer := "Doors open at 17:30"
	resp = ts.request(http.MethodPut, detailsPath, EventDetailsRequest{
		Agenda: []model.Agenda{
			{StartTime: "18:00", Title: "Opening", Speaker: "Jane Doe"},
			{StartTime: "19:00", Title: "Workshop", Speaker: "John Roe"},
		},
		Speakers: []model.Speaker{{Name: "Jane Doe", Bio: &bio}},
		Faqs:     []model.Faq{{Question: "When do doors open?", Answer: &answer}},
		Comments: []model.Comment{{Message: "Remember badges"}},
	})
	ts.mustStatus(resp, http.StatusOK)
	details := decodeData[model.EventDetails](t, resp)

	if len(details.Agenda) != 2 || len(details.Speakers) != 1 || len(details.Faqs) != 1 {
		t.Fatalf("unexpected details counts: %d agenda, %d speakers, %d faqs",
			len(details.Agenda), len(details.Speakers), len(details.Faqs))
	}
	if details.Organizer.Name != "Alice Events" {
		t.Errorf("organizer name = %q, want Alice Events", details.Organizer.Name)
	}
	if details.Event.ID != event.ID {
		t.Errorf("event ID = %d, want %d", details.Event.ID, event.ID)
	}

	// Update one agenda item in place and add a new one.
	updatedItem := details.Agenda[0]
	updatedItem.Title = "Opening Keynote"
	resp = ts.request(http.MethodPut, detailsPath, EventDetailsRequest{
		Agenda: []model.Agenda{
			updatedItem,
			{StartTime: "20:00", Title: "Networking", Speaker: ""},
		},
	})
	ts.mustStatus(resp, http.StatusOK)
	details = decodeData[model.EventDetails](t, resp)

	if len(details.Agenda) != 3 {
		t.Fatalf("agenda length = %d, want 3", len(details.Agenda))
	}
	found := false
	for _, item := range details.Agenda {
		if item.ID == updatedItem.ID && item.Title == "Opening Keynote" {
			found = true
		}
	}
	if !found {
		t.Error("in-place agenda update not applied")
	}

	// Sub-resources survive a plain GET too.
	resp = ts.request(http.MethodGet, detailsPath, nil)
	ts.mustStatus(resp, http.StatusOK)
	details = decodeData[model.EventDetails](t, resp)
	if len(details.Comments) != 1 || details.Comments[0].Message != "Remember badges" {
		t.Errorf("comments = %+v, want the one created earlier", details.Comments)
	}
}

func TestUpdateEventDetails_UnknownEvent(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin("alice", "correct horse battery")

	resp := ts.request(http.MethodPut, "/api/events/9999/details", EventDetailsRequest{})
	ts.mustStatus(resp, http.StatusNotFound)
	resp.Body.Close()
}

func TestUpdateEventDetails_ForeignItemIDUntouched(t *testing.T) {
	ts := newTestServer(t)

	ts.registerAndLogin("alice", "correct horse battery")
	aliceEvent := ts.createEvent(testEventRequest())
	alicePath := fmt.Sprintf("/api/events/%d/details", aliceEvent.ID)

	resp := ts.request(http.MethodPut, alicePath, EventDetailsRequest{
		Agenda: []model.Agenda{{StartTime: "18:00", Title: "Opening", Speaker: "Jane Doe"}},
	})
	ts.mustStatus(resp, http.StatusOK)
	aliceAgendaID := decodeData[model.EventDetails](t, resp).Agenda[0].ID

	// Bob names Alice's agenda ID in an update on his own event. The row
	// belongs to another event, so the write must not land.
	ts.registerAndLogin("bob", "another long password")
	bobEvent := ts.createEvent(testEventRequest())
	resp = ts.request(http.MethodPut, fmt.Sprintf("/api/events/%d/details", bobEvent.ID), EventDetailsRequest{
		Agenda: []model.Agenda{{ID: aliceAgendaID, StartTime: "18:00", Title: "Hijacked", Speaker: ""}},
	})
	ts.mustStatus(resp, http.StatusOK)
	resp.Body.Close()

	ts.login("alice", "correct horse battery")
	resp = ts.request(http.MethodGet, alicePath, nil)
	ts.mustStatus(resp, http.StatusOK)
	details := decodeData[model.EventDetails](t, resp)
	if details.Agenda[0].Title != "Opening" {
		t.Errorf("agenda title = %q, want Opening (cross-event update must not apply)", details.Agenda[0].Title)
	}
}

func TestUpdateEventDetails_ForeignEventWritesNothing(t *testing.T) {
	ts := newTestServer(t)

	ts.registerAndLogin("alice", "correct horse battery")
	event := ts.createEvent(testEventRequest())
	detailsPath := fmt.Sprintf("/api/events/%d/details", event.ID)

	// Bob cannot attach sub-resources to Alice's event.
	ts.registerAndLogin("bob", "another long password")
	resp := ts.request(http.MethodPut, detailsPath, EventDetailsRequest{
		Agenda: []model.Agenda{{StartTime: "18:00", Title: "Ghost", Speaker: ""}},
	})
	ts.mustStatus(resp, http.StatusNotFound)
	resp.Body.Close()

	ts.login("alice", "correct horse battery")
	resp = ts.request(http.MethodGet, detailsPath, nil)
	ts.mustStatus(resp, http.StatusOK)
	details := decodeData[model.EventDetails](t, resp)
	if len(details.Agenda) != 0 {
		t.Errorf("agenda length = %d, want 0 after rejected write", len(details.Agenda))
	}
}
