package analytics

import (
	"testing"
	"time"

	"github.com/eventdeck/eventdeck/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMonthlyEventTotals(t *testing.T) {
	events := []model.Event{
		{EventDate: date("2026-03-05"), Status: model.StatusComplete, TicketsSold: 10, Attendees: 8},
		{EventDate: date("2026-03-20"), Status: model.StatusUpcoming, TicketsSold: 20, Attendees: 15},
		{EventDate: date("2026-03-28"), Status: model.StatusCanceled, TicketsSold: 5, Attendees: 5},
		{EventDate: date("2026-11-01"), Status: model.StatusUpcoming, TicketsSold: 7, Attendees: 0},
	}

	totals := MonthlyEventTotals(events)

	if len(totals.Events) != model.MonthsPerYear {
		t.Fatalf("len(Events) = %d, want %d", len(totals.Events), model.MonthsPerYear)
	}
	// March is index 2.
	if totals.Events[2] != 3 {
		t.Errorf("Events[2] = %d, want 3", totals.Events[2])
	}
	if totals.Upcoming[2] != 1 {
		t.Errorf("Upcoming[2] = %d, want 1", totals.Upcoming[2])
	}
	if totals.Canceled[2] != 1 {
		t.Errorf("Canceled[2] = %d, want 1", totals.Canceled[2])
	}
	if totals.Tickets[2] != 35 {
		t.Errorf("Tickets[2] = %d, want 35", totals.Tickets[2])
	}
	if totals.Attendees[2] != 28 {
		t.Errorf("Attendees[2] = %d, want 28", totals.Attendees[2])
	}
	if totals.Events[10] != 1 {
		t.Errorf("Events[10] = %d, want 1", totals.Events[10])
	}
	// Untouched months stay zero.
	if totals.Events[0] != 0 || totals.Tickets[0] != 0 {
		t.Errorf("January should be empty, got events=%d tickets=%d", totals.Events[0], totals.Tickets[0])
	}
}

func TestMonthlyEventTotals_Empty(t *testing.T) {
	totals := MonthlyEventTotals(nil)

	if len(totals.Events) != model.MonthsPerYear {
		t.Fatalf("len(Events) = %d, want %d", len(totals.Events), model.MonthsPerYear)
	}
	for m, n := range totals.Events {
		if n != 0 {
			t.Errorf("Events[%d] = %d, want 0", m, n)
		}
	}
}

func TestMonthlyTicketTotals(t *testing.T) {
	events := []model.Event{
		{EventDate: date("2026-01-10"), Price: 25.50, TicketsSold: 4},
		{EventDate: date("2026-01-20"), Price: 10, TicketsSold: 3},
		{EventDate: date("2026-08-01"), Price: 0, TicketsSold: 100},
	}

	totals := MonthlyTicketTotals(events)

	if got, want := totals.Tickets[0], 132.0; got != want {
		t.Errorf("Tickets[0] = %v, want %v", got, want)
	}
	if totals.Tickets[7] != 0 {
		t.Errorf("Tickets[7] = %v, want 0 (free event)", totals.Tickets[7])
	}
	if totals.Profit != 132.0 {
		t.Errorf("Profit = %v, want 132", totals.Profit)
	}
}

func TestMonthlyAttendeeTotals(t *testing.T) {
	events := []model.Event{
		{EventDate: date("2026-03-05"), Attendees: 8},
		{EventDate: date("2026-03-20"), Attendees: 15},
		{EventDate: date("2026-03-28"), Attendees: 5},
		{EventDate: date("2026-09-01"), Attendees: 2},
	}

	totals := MonthlyAttendeeTotals(events)

	if totals.Attendees[2] != 28 {
		t.Errorf("Attendees[2] = %d, want 28", totals.Attendees[2])
	}
	if totals.Attendees[8] != 2 {
		t.Errorf("Attendees[8] = %d, want 2", totals.Attendees[8])
	}
	if totals.Total != 30 {
		t.Errorf("Total = %d, want 30", totals.Total)
	}
}

func TestMonthlyNoShowTotals(t *testing.T) {
	now := date("2026-12-01")
	events := []model.Event{
		// March: 10-8=2 and 20-15=5 no-shows over two past events.
		{EventDate: date("2026-03-05"), TicketsSold: 10, Attendees: 8},
		{EventDate: date("2026-03-20"), TicketsSold: 20, Attendees: 15},
		// May: sold out and fully attended, no no-shows.
		{EventDate: date("2026-05-10"), TicketsSold: 5, Attendees: 5},
		// Future event must be ignored even with tickets outstanding.
		{EventDate: date("2026-12-25"), TicketsSold: 50, Attendees: 0},
	}

	totals := MonthlyNoShowTotals(events, now)

	if totals.NoShowCounts[2] != 7 {
		t.Errorf("NoShowCounts[2] = %d, want 7", totals.NoShowCounts[2])
	}
	if got, want := totals.NoShowRates[2], 3.5; got != want {
		t.Errorf("NoShowRates[2] = %v, want %v", got, want)
	}
	if totals.NoShowCounts[11] != 0 {
		t.Errorf("NoShowCounts[11] = %d, want 0 (future event)", totals.NoShowCounts[11])
	}
	if totals.TotalCount != 7 {
		t.Errorf("TotalCount = %d, want 7", totals.TotalCount)
	}
	// Three past events, seven no-shows.
	if got, want := totals.TotalRate, 7.0/3.0; got != want {
		t.Errorf("TotalRate = %v, want %v", got, want)
	}
}

func TestMonthlyNoShowTotals_ZeroAmbiguity(t *testing.T) {
	now := date("2026-12-01")
	events := []model.Event{
		// May has one past event with zero no-shows. April has no events.
		{EventDate: date("2026-05-10"), TicketsSold: 5, Attendees: 5},
	}

	totals := MonthlyNoShowTotals(events, now)

	// Both read as zero; the output does not distinguish the two cases.
	if totals.NoShowRates[3] != 0 {
		t.Errorf("NoShowRates[3] = %v, want 0 (no events)", totals.NoShowRates[3])
	}
	if totals.NoShowRates[4] != 0 {
		t.Errorf("NoShowRates[4] = %v, want 0 (no no-shows)", totals.NoShowRates[4])
	}
	if totals.TotalRate != 0 {
		t.Errorf("TotalRate = %v, want 0", totals.TotalRate)
	}
}

func TestMonthlyNoShowTotals_AllFuture(t *testing.T) {
	now := date("2026-01-01")
	events := []model.Event{
		{EventDate: date("2026-06-10"), TicketsSold: 30, Attendees: 0},
	}

	totals := MonthlyNoShowTotals(events, now)

	if totals.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", totals.TotalCount)
	}
	for m, r := range totals.NoShowRates {
		if r != 0 {
			t.Errorf("NoShowRates[%d] = %v, want 0", m, r)
		}
	}
}
