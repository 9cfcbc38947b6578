package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sportatlas/catalog/internal/config"
	"github.com/sportatlas/catalog/internal/infrastructure/store"
	"github.com/sportatlas/catalog/internal/matching"
	"github.com/sportatlas/catalog/internal/platform/logging"
)

func testConfig(dir string) config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "sports-catalog-pipeline",
		DataDir:            dir,
		WikipediaWeight:    0.55,
		GoogleTrendsWeight: 0.45,
		MatchSuffixes:      matching.DefaultSuffixes(),
		SyncWorkers:        1,
	}
}

func writeDataFile(t *testing.T, dir, name, payload string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(payload), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestRunFromDataDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDataFile(t, dir, store.FileLeagues, `{
		"England": [
			{"name": "Premier League", "sport": "Soccer"},
			{"name": "Super League", "sport": "Rugby"}
		],
		"Spain": [
			{"name": "La Liga", "sport": "Soccer"}
		]
	}`)
	writeDataFile(t, dir, store.FileReference, `{
		"United Kingdom": {"code": "GB", "major_sports": ["Football", "Rugby", "Cricket"]},
		"Spain": {"code": "ES", "major_sports": ["Football", "Basketball"]}
	}`)
	writeDataFile(t, dir, store.FilePageViews, `{
		"Premier League": {"wikipedia_monthly_views": 985000},
		"La Liga": {"wikipedia_monthly_views": 310000}
	}`)
	writeDataFile(t, dir, store.FileSeasons, `{
		"English Premier League": {"current_season": "2025-2026", "start_date": "2025-08-16"}
	}`)

	a, err := New(testConfig(dir), logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer a.Close()

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run pipeline: %v", err)
	}

	for _, name := range []string{store.FileCatalog, store.FileEventCatalog} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected output file %s: %v", name, err)
		}
	}

	snap, found, err := a.Snapshots.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest snapshot: %v", err)
	}
	if !found {
		t.Fatal("expected a snapshot after the run")
	}
	if snap.TotalLeagues != 3 {
		t.Fatalf("snapshot TotalLeagues = %d, want 3", snap.TotalLeagues)
	}
	if snap.LeaguesWithPopularity != 2 {
		t.Fatalf("snapshot LeaguesWithPopularity = %d, want 2", snap.LeaguesWithPopularity)
	}
	if snap.EventsTotal == 0 {
		t.Fatal("expected curated calendars in the event count")
	}
}

func TestBuildCatalogIncludesSupplementalLeagues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDataFile(t, dir, store.FileLeagues, `{"Italy": [{"name": "Serie A", "sport": "Soccer"}]}`)
	writeDataFile(t, dir, store.FileReference, `{"Italy": {"code": "IT", "major_sports": ["Football"]}}`)

	a, err := New(testConfig(dir), logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer a.Close()

	c, err := a.BuildCatalog(context.Background())
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	names := make(map[string]int)
	for _, l := range c.Countries["Italy"].LeaguesBySport["Football"] {
		names[l.Name]++
	}
	if names["Serie A"] != 1 {
		t.Fatalf("synced league must survive unduplicated: got=%d", names["Serie A"])
	}
	if names["Serie B"] != 1 {
		t.Fatal("coverage-gap league must be filled in")
	}
}

func TestBuildEventsWithoutSyncedFile(t *testing.T) {
	t.Parallel()

	a, err := New(testConfig(t.TempDir()), logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer a.Close()

	ec, err := a.BuildEvents(context.Background())
	if err != nil {
		t.Fatalf("build events: %v", err)
	}
	if ec.Summary.TotalCount == 0 {
		t.Fatal("curated calendars alone must produce events")
	}
	seen := make(map[int64]bool, len(ec.Events))
	for _, e := range ec.Events {
		if e.ID == 0 {
			t.Fatalf("event %q kept a zero id", e.Name)
		}
		if seen[e.ID] {
			t.Fatalf("duplicate id %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestEnrichCatalogMissingSignals(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDataFile(t, dir, store.FileLeagues, `{"Spain": [{"name": "La Liga", "sport": "Soccer"}]}`)
	writeDataFile(t, dir, store.FileReference, `{"Spain": {"code": "ES", "major_sports": ["Football"]}}`)

	a, err := New(testConfig(dir), logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer a.Close()

	c, result, err := a.EnrichCatalog(context.Background())
	if err != nil {
		t.Fatalf("enrich without signal files: %v", err)
	}
	if result.Enriched != 0 {
		t.Fatalf("no signals means no enrichment, got %d", result.Enriched)
	}
	if c.Countries["Spain"] == nil {
		t.Fatal("catalog must still contain the reference countries")
	}
}
