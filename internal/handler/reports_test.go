package handler

import (
	"net/http"
	"testing"

	"github.com/eventdeck/eventdeck/internal/model"
)

// seedReportEvents creates a small 2020 portfolio for the logged-in user:
// two complete events in March, one canceled in June, one still marked
// upcoming in December. The year lies safely in the past so the no-show
// filter sees every event regardless of when the tests run.
func seedReportEvents(ts *testServer) {
	ts.t.Helper()

	march1 := testEventRequest()
	march1.EventDate = "2020-03-10"
	march1.Status = model.StatusComplete
	march1.Price = 10.0
	march1.TicketsSold = 20
	march1.Attendees = 16
	ts.createEvent(march1)

	march2 := testEventRequest()
	march2.EventDate = "2020-03-21"
	march2.Status = model.StatusComplete
	march2.Price = 50.0
	march2.TicketsSold = 10
	march2.Attendees = 8
	ts.createEvent(march2)

	june := testEventRequest()
	june.EventDate = "2020-06-05"
	june.Status = model.StatusCanceled
	june.Price = 30.0
	june.TicketsSold = 0
	june.Attendees = 0
	ts.createEvent(june)

	december := testEventRequest()
	december.EventDate = "2020-12-31"
	december.Status = model.StatusUpcoming
	december.Price = 15.0
	december.TicketsSold = 5
	december.Attendees = 5
	ts.createEvent(december)
}

func TestOverviewTotals(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin("alice", "correct horse battery")
	seedReportEvents(ts)

	resp := ts.request(http.MethodGet, "/api/overview/totals?year=2020", nil)
	ts.mustStatus(resp, http.StatusOK)
	totals := decodeData[model.MonthlyTotals](t, resp)

	if totals.Events[2] != 2 {
		t.Errorf("March events = %d, want 2", totals.Events[2])
	}
	if totals.Canceled[5] != 1 {
		t.Errorf("June canceled = %d, want 1", totals.Canceled[5])
	}
	if totals.Upcoming[11] != 1 {
		t.Errorf("December upcoming = %d, want 1", totals.Upcoming[11])
	}
	if totals.Tickets[2] != 30 || totals.Attendees[2] != 24 {
		t.Errorf("March tickets/attendees = %d/%d, want 30/24", totals.Tickets[2], totals.Attendees[2])
	}
}

func TestTicketTotals(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin("alice", "correct horse battery")
	seedReportEvents(ts)

	resp := ts.request(http.MethodGet, "/api/events/tickets/monthly?year=2020", nil)
	ts.mustStatus(resp, http.StatusOK)
	totals := decodeData[model.TicketTotals](t, resp)

	// March: 10*20 + 50*10 = 700; December: 15*5 = 75.
	if totals.Tickets[2] != 700 {
		t.Errorf("March revenue = %v, want 700", totals.Tickets[2])
	}
	if totals.Profit != 775 {
		t.Errorf("profit = %v, want 775", totals.Profit)
	}
}

func TestEventCounts_Daily(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin("alice", "correct horse battery")
	seedReportEvents(ts)

	resp := ts.request(http.MethodGet, "/api/events/counts/daily?year=2020", nil)
	ts.mustStatus(resp, http.StatusOK)
	counts := decodeData[model.EventCounts](t, resp)

	if len(counts.EventCounts) != 4 {
		t.Fatalf("daily buckets = %d, want 4", len(counts.EventCounts))
	}
	if counts.EventCounts[0].Date != "2020-03-10" || counts.EventCounts[0].Count != 1 {
		t.Errorf("first bucket = %+v, want 2020-03-10 x1", counts.EventCounts[0])
	}
}

func TestAttendeeTotals_Monthly(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin("alice", "correct horse battery")
	seedReportEvents(ts)

	resp := ts.request(http.MethodGet, "/api/attendees/counts/monthly?year=2020", nil)
	ts.mustStatus(resp, http.StatusOK)
	totals := decodeData[model.AttendeeTotals](t, resp)

	if totals.Attendees[2] != 24 {
		t.Errorf("March attendees = %d, want 24", totals.Attendees[2])
	}
	if totals.Total != 29 {
		t.Errorf("total = %d, want 29", totals.Total)
	}
}

func TestAttendanceExtremes(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin("alice", "correct horse battery")
	seedReportEvents(ts)

	resp := ts.request(http.MethodGet, "/api/attendees/extremes?year=2020", nil)
	ts.mustStatus(resp, http.StatusOK)
	extremes := decodeData[model.AttendanceExtremes](t, resp)

	// Only the two past complete events qualify.
	if len(extremes.Most) != 2 || len(extremes.Least) != 2 {
		t.Fatalf("extremes = %d most / %d least, want 2/2", len(extremes.Most), len(extremes.Least))
	}
	if extremes.Most[0].Attendees != 16 {
		t.Errorf("most attended = %d, want 16", extremes.Most[0].Attendees)
	}
	if extremes.Least[0].Attendees != 8 {
		t.Errorf("least attended = %d, want 8", extremes.Least[0].Attendees)
	}
}

func TestNoShowTotals(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin("alice", "correct horse battery")
	seedReportEvents(ts)

	resp := ts.request(http.MethodGet, "/api/attendees/no-shows/monthly?year=2020", nil)
	ts.mustStatus(resp, http.StatusOK)
	totals := decodeData[model.NoShowTotals](t, resp)

	// March no-shows: (20-16) + (10-8) = 6 across 2 events. June and
	// December are also in the past and count as events with zero no-shows,
	// so the overall rate averages 6 over 4 events.
	if totals.NoShowCounts[2] != 6 {
		t.Errorf("March no-shows = %d, want 6", totals.NoShowCounts[2])
	}
	if totals.NoShowRates[2] != 3.0 {
		t.Errorf("March rate = %v, want 3.0", totals.NoShowRates[2])
	}
	if totals.TotalCount != 6 {
		t.Errorf("total count = %d, want 6", totals.TotalCount)
	}
	if totals.TotalRate != 1.5 {
		t.Errorf("total rate = %v, want 1.5", totals.TotalRate)
	}
}

func TestReports_MissingYear(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin("alice", "correct horse battery")

	paths := []string{
		"/api/overview/totals",
		"/api/events/tickets/monthly",
		"/api/events/counts/daily",
		"/api/attendees/counts/monthly",
		"/api/attendees/counts/daily",
		"/api/attendees/extremes",
		"/api/attendees/no-shows/monthly",
	}
	for _, path := range paths {
		resp := ts.request(http.MethodGet, path, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("GET %s: status = %d, want 400", path, resp.StatusCode)
		}
		resp.Body.Close()
	}
}
