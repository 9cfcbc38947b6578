package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sportatlas/catalog/internal/domain/event"
	"github.com/sportatlas/catalog/internal/domain/signal"
)

type syncStoreFake struct {
	mu        sync.Mutex
	pageViews map[string]signal.PageViews
	seasons   map[string]signal.SeasonInfo
	events    []event.Event
}

func (f *syncStoreFake) SavePageViews(_ context.Context, records map[string]signal.PageViews) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pageViews = records
	return nil
}

func (f *syncStoreFake) SaveSeasons(_ context.Context, records map[string]signal.SeasonInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seasons = records
	return nil
}

func (f *syncStoreFake) SaveScheduledEvents(_ context.Context, records []event.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = records
	return nil
}

type pageViewsFake struct {
	views map[string]int64
	err   error
}

func (f *pageViewsFake) FetchMonthlyViews(_ context.Context, article string) (int64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	views, ok := f.views[article]
	return views, ok, nil
}

type leagueDataFake struct {
	leagues  map[string]ExternalLeague
	windows  map[string]ExternalSeasonWindow
	round    int
	fixtures []event.Event
}

func (f *leagueDataFake) SearchLeague(_ context.Context, term string) (ExternalLeague, bool, error) {
	info, ok := f.leagues[term]
	return info, ok, nil
}

func (f *leagueDataFake) SeasonWindow(_ context.Context, leagueID, _ string) (ExternalSeasonWindow, bool, error) {
	window, ok := f.windows[leagueID]
	return window, ok, nil
}

func (f *leagueDataFake) CurrentRound(_ context.Context, _, _ string) (int, error) {
	return f.round, nil
}

func (f *leagueDataFake) RoundEvents(_ context.Context, _ string, round int, _ string) ([]event.Event, error) {
	if round != f.round {
		return nil, fmt.Errorf("unexpected round %d", round)
	}
	return f.fixtures, nil
}

type combatFake struct {
	cards []event.Event
	err   error
}

func (f *combatFake) FetchUFCEvents(_ context.Context, _ int) ([]event.Event, error) {
	return f.cards, f.err
}

type calendarFake struct {
	entries []event.Event
	from    string
	to      string
	err     error
}

func (f *calendarFake) FetchCalendar(_ context.Context, from, to string) ([]event.Event, error) {
	f.from, f.to = from, to
	return f.entries, f.err
}

func TestSyncSourcesRatesPageViewsAgainstMax(t *testing.T) {
	store := &syncStoreFake{}
	pageviews := &pageViewsFake{views: map[string]int64{
		"Premier_League": 985000,
		"Allsvenskan":    12000,
	}}

	svc, err := NewSourceSyncService(store, pageviews, nil, nil, nil, SourceSyncConfig{
		Articles: map[string]string{
			"Premier League": "Premier_League",
			"Allsvenskan":    "Allsvenskan",
			"Ghost League":   "No_Such_Article",
		},
		Workers: 2,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.SyncSources(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PageViews != 2 {
		t.Fatalf("unexpected pageview count: got=%d want=2", result.PageViews)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected provider errors: %v", result.Errors)
	}

	top := store.pageViews["Premier League"]
	if top.Score != 100 || top.Tier != "A" {
		t.Fatalf("max-views league should rate 100/A: got=%d/%s", top.Score, top.Tier)
	}
	if _, ok := store.pageViews["Ghost League"]; ok {
		t.Fatal("article misses must not produce records")
	}
	low := store.pageViews["Allsvenskan"]
	if low.Score <= 0 || low.Score >= 100 {
		t.Fatalf("lower league score out of range: got=%d", low.Score)
	}
}

func TestSyncSourcesBuildsSeasonRecords(t *testing.T) {
	store := &syncStoreFake{}
	leagues := &leagueDataFake{
		leagues: map[string]ExternalLeague{
			"English Premier League": {
				ExternalID:    "4328",
				Name:          "English Premier League",
				Sport:         "Soccer",
				Country:       "England",
				CurrentSeason: "2025-2026",
			},
			"Unknown League": {},
		},
		windows: map[string]ExternalSeasonWindow{
			"4328": {StartDate: "2025-08-16", EndDate: "2026-05-24", EventsCount: 380},
		},
		round: 1,
		fixtures: []event.Event{
			{ID: 1, Name: "Arsenal vs Liverpool", Date: "2026-03-07", Sport: "Soccer"},
		},
	}

	svc, err := NewSourceSyncService(store, nil, leagues, nil, nil, SourceSyncConfig{
		SeasonSearchTerms: map[string]string{
			"English Premier League": "English Premier League",
			"Missing League":         "Unknown League",
		},
		TrackedLeagues: []ExternalTrackedLeague{{ExternalID: "4328", Name: "English Premier League", Season: "2025-2026"}},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.SyncSources(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Seasons != 1 {
		t.Fatalf("unexpected season count: got=%d want=1", result.Seasons)
	}
	if result.ScheduledEvents != 1 {
		t.Fatalf("unexpected event count: got=%d want=1", result.ScheduledEvents)
	}

	record := store.seasons["English Premier League"]
	if record.CurrentSeason != "2025-2026" || record.StartDate != "2025-08-16" || record.EventsCount != 380 {
		t.Fatalf("unexpected season record: %+v", record)
	}
	if _, ok := store.seasons["Missing League"]; ok {
		t.Fatal("unmatched league must not produce a season record")
	}
}

func TestSyncSourcesProviderFailureDegrades(t *testing.T) {
	store := &syncStoreFake{}
	pageviews := &pageViewsFake{err: fmt.Errorf("upstream down")}
	combat := &combatFake{cards: []event.Event{
		{Name: "2026 UFC 317: Topuria vs. Oliveira", Date: "2026-06-27", Sport: "MMA", Level: event.LevelWorld},
	}}

	svc, err := NewSourceSyncService(store, pageviews, nil, combat, nil, SourceSyncConfig{
		Articles:  map[string]string{"Premier League": "Premier_League"},
		EventYear: 2026,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.SyncSources(context.Background())
	if err != nil {
		t.Fatalf("degraded run must not fail outright: %v", err)
	}
	if result.PageViews != 0 {
		t.Fatalf("unexpected pageview count: got=%d", result.PageViews)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected one provider error, got %v", result.Errors)
	}
	if result.ScheduledEvents != 1 {
		t.Fatalf("healthy providers must still persist: got=%d events", result.ScheduledEvents)
	}
}

func TestSyncSourcesMergesCalendarWithOtherProviders(t *testing.T) {
	store := &syncStoreFake{}
	calendar := &calendarFake{entries: []event.Event{
		{ID: 501, Name: "Tour de France 2026", Date: "2026-07-04", Sport: "Cycling", Source: "allsportdb"},
		{ID: 502, Name: "FIFA U-20 World Cup 2026", Date: "2026-09-12", Sport: "Football", AgeGroup: "U20", Source: "allsportdb"},
	}}
	combat := &combatFake{cards: []event.Event{
		{Name: "2026 UFC 320", Date: "2026-03-14", Sport: "MMA", Level: event.LevelWorld},
	}}

	svc, err := NewSourceSyncService(store, nil, nil, combat, calendar, SourceSyncConfig{
		EventYear:          2026,
		CalendarWindowDays: 30,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	}

	result, err := svc.SyncSources(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ScheduledEvents != 3 {
		t.Fatalf("unexpected event count: got=%d want=3", result.ScheduledEvents)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected provider errors: %v", result.Errors)
	}

	if calendar.from != "2026-03-01" || calendar.to != "2026-03-31" {
		t.Fatalf("unexpected calendar window: from=%s to=%s", calendar.from, calendar.to)
	}
	if store.events[0].ID != 501 || store.events[1].AgeGroup != "U20" {
		t.Fatalf("calendar entries must persist untouched: %+v", store.events[:2])
	}
}

func TestSyncSourcesCalendarFailureDegrades(t *testing.T) {
	store := &syncStoreFake{}
	calendar := &calendarFake{err: fmt.Errorf("rate limited")}
	combat := &combatFake{cards: []event.Event{
		{Name: "2026 UFC 320", Date: "2026-03-14", Sport: "MMA", Level: event.LevelWorld},
	}}

	svc, err := NewSourceSyncService(store, nil, nil, combat, calendar, SourceSyncConfig{EventYear: 2026}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.SyncSources(context.Background())
	if err != nil {
		t.Fatalf("degraded run must not fail outright: %v", err)
	}
	if result.ScheduledEvents != 1 {
		t.Fatalf("healthy providers must still persist: got=%d events", result.ScheduledEvents)
	}
}

func TestNewSourceSyncServiceRequiresStore(t *testing.T) {
	if _, err := NewSourceSyncService(nil, nil, nil, nil, nil, SourceSyncConfig{}, nil); err == nil {
		t.Fatal("expected error for nil store")
	}
}
