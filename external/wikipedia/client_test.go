package wikipedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	client.now = func() time.Time {
		return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	}

	return client
}

func TestFetchMonthlyViewsAveragesItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/metrics/pageviews/per-article/en.wikipedia/all-access/all-agents/Premier_League/monthly/") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"items": [
			{"views": 900000},
			{"views": 1000000},
			{"views": 1100000}
		]}`))
	})

	views, ok, err := client.FetchMonthlyViews(context.Background(), "Premier_League")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected pageview data")
	}
	if views != 1000000 {
		t.Fatalf("unexpected monthly average: got=%d want=1000000", views)
	}
}

func TestFetchMonthlyViewsNotFoundIsAMiss(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, ok, err := client.FetchMonthlyViews(context.Background(), "No_Such_Article")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a miss for unknown article")
	}
}

func TestFetchMonthlyViewsEmptyItemsIsAMiss(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	})

	_, ok, err := client.FetchMonthlyViews(context.Background(), "Premier_League")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a miss for empty pageview series")
	}
}

func TestFetchMonthlyViewsServerErrorFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, _, err := client.FetchMonthlyViews(context.Background(), "Premier_League"); err == nil {
		t.Fatal("expected error for server failure")
	}
}

func TestFetchMonthlyViewsRequiresArticle(t *testing.T) {
	client := NewClient(ClientConfig{})

	if _, _, err := client.FetchMonthlyViews(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty article")
	}
}
