package allsportdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDecodePageAcceptsBothShapes(t *testing.T) {
	t.Parallel()

	direct, err := decodePage[competitionModel]([]byte(`[{"id": 7, "name": "FIFA World Cup"}]`))
	if err != nil {
		t.Fatalf("decode bare array: %v", err)
	}
	if len(direct) != 1 || direct[0].ID != 7 {
		t.Fatalf("unexpected bare array result: %+v", direct)
	}

	wrapped, err := decodePage[competitionModel]([]byte(`{"data": [{"id": 9, "name": "Copa America"}]}`))
	if err != nil {
		t.Fatalf("decode wrapped array: %v", err)
	}
	if len(wrapped) != 1 || wrapped[0].ID != 9 {
		t.Fatalf("unexpected wrapped result: %+v", wrapped)
	}
}

func TestParseISODay(t *testing.T) {
	t.Parallel()

	if got, ok := parseISODay("2026-09-12T00:00:00"); !ok || got != "2026-09-12" {
		t.Fatalf("unexpected parse result: got=%q ok=%v", got, ok)
	}
	if _, ok := parseISODay(""); ok {
		t.Fatal("expected parse failure for empty value")
	}
}

func TestFetchCalendarJoinsAgeGroups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		switch r.URL.Path {
		case "/competitions":
			if r.URL.Query().Get("page") != "1" {
				fmt.Fprint(w, `[]`)
				return
			}
			fmt.Fprint(w, `[
				{"id": 11, "name": "FIFA World Cup", "sport": "Football", "ageGroup": "Senior"},
				{"id": 12, "name": "FIFA U-20 World Cup", "sport": "Football", "ageGroup": "U20"}
			]`)
		case "/calendar":
			if r.URL.Query().Get("page") != "1" {
				fmt.Fprint(w, `[]`)
				return
			}
			if r.URL.Query().Get("dateFrom") != "2026-09-01" {
				t.Fatalf("unexpected dateFrom: %q", r.URL.Query().Get("dateFrom"))
			}
			fmt.Fprint(w, `{"data": [
				{
					"id": 501, "name": "FIFA U-20 World Cup 2026", "dateFrom": "2026-09-12",
					"dateTo": "2026-10-03", "sport": "Football",
					"competition": "FIFA U-20 World Cup", "competitionId": 12,
					"location": [{"name": "Chile", "locations": [{"name": "Santiago"}]}]
				},
				{
					"id": 502, "name": "World Grand Prix 2026", "dateFrom": "2026-10-06",
					"sport": "Darts", "competition": "World Grand Prix", "competitionId": 99
				}
			]}`)
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Token:   "test-token",
		Sports:  []string{"Football"},
	})

	events, err := client.FetchCalendar(context.Background(), "2026-09-01", "2027-09-01")
	if err != nil {
		t.Fatalf("fetch calendar: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("unexpected event count: got=%d want=2", len(events))
	}

	youth := events[0]
	if youth.ID != 501 || youth.AgeGroup != "U20" {
		t.Fatalf("expected age group joined from competitions: got=%+v", youth)
	}
	if len(youth.Locations) != 1 || youth.Locations[0].Country != "Chile" || youth.Locations[0].City != "Santiago" {
		t.Fatalf("unexpected locations: %+v", youth.Locations)
	}

	unknown := events[1]
	if unknown.AgeGroup != "" {
		t.Fatalf("competition outside the prefetch must stay unlabeled: got=%q", unknown.AgeGroup)
	}
	if unknown.DateTo != "2026-10-06" {
		t.Fatalf("missing dateTo must fall back to the start day: got=%q", unknown.DateTo)
	}
}

func TestFetchCalendarRetriesRateLimit(t *testing.T) {
	var calendarHits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/competitions":
			fmt.Fprint(w, `[]`)
		case "/calendar":
			calendarHits++
			if calendarHits == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			fmt.Fprint(w, `[{"id": 601, "name": "Tour de France 2026", "dateFrom": "2026-07-04", "sport": "Cycling"}]`)
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		MaxRetries: 1,
		Sports:     []string{"Cycling"},
	})
	client.backoff = func(int) time.Duration { return 0 }

	events, err := client.FetchCalendar(context.Background(), "2026-07-01", "2026-08-01")
	if err != nil {
		t.Fatalf("fetch calendar: %v", err)
	}
	if len(events) != 1 || events[0].ID != 601 {
		t.Fatalf("unexpected events: %+v", events)
	}
	if calendarHits != 2 {
		t.Fatalf("expected one retry after 429: hits=%d", calendarHits)
	}
}
