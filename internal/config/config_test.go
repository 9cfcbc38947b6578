package config

import (
	"testing"

	"github.com/sportatlas/catalog/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected app env: got=%s want=%s", cfg.AppEnv, EnvDev)
	}
	if cfg.WikipediaWeight != 0.55 || cfg.GoogleTrendsWeight != 0.45 {
		t.Fatalf("unexpected weights: wikipedia=%v trends=%v", cfg.WikipediaWeight, cfg.GoogleTrendsWeight)
	}
	if cfg.DataDir != "data" {
		t.Fatalf("unexpected data dir: got=%s", cfg.DataDir)
	}
	if cfg.SnapshotsEnabled {
		t.Fatal("snapshots should be disabled by default")
	}
	want := []string{" league", " division", " liga", " tour"}
	if len(cfg.MatchSuffixes) != len(want) {
		t.Fatalf("unexpected suffix count: got=%d want=%d", len(cfg.MatchSuffixes), len(want))
	}
	for i, suffix := range want {
		if cfg.MatchSuffixes[i] != suffix {
			t.Fatalf("suffix %d: got=%q want=%q", i, cfg.MatchSuffixes[i], suffix)
		}
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: got=%v", cfg.LogLevel)
	}
}

func TestLoadInvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid APP_ENV")
	}
}

func TestLoadSnapshotsRequireDBURL(t *testing.T) {
	t.Setenv("SNAPSHOTS_ENABLED", "true")
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when snapshots are enabled without DB_URL")
	}
}

func TestLoadCalendarRequiresToken(t *testing.T) {
	t.Setenv("ALLSPORTDB_ENABLED", "true")
	t.Setenv("ALLSPORTDB_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when the calendar provider is enabled without ALLSPORTDB_TOKEN")
	}
}

func TestLoadCalendarSettings(t *testing.T) {
	t.Setenv("ALLSPORTDB_ENABLED", "true")
	t.Setenv("ALLSPORTDB_TOKEN", "abc123")
	t.Setenv("ALLSPORTDB_CALENDAR_WINDOW_DAYS", "90")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.AllSportDBEnabled || cfg.AllSportDBToken != "abc123" {
		t.Fatalf("unexpected calendar settings: %+v", cfg)
	}
	if cfg.AllSportDBCalendarWindowDays != 90 {
		t.Fatalf("unexpected calendar window: got=%d want=90", cfg.AllSportDBCalendarWindowDays)
	}
}

func TestLoadCustomWeights(t *testing.T) {
	t.Setenv("POPULARITY_WIKIPEDIA_WEIGHT", "0.7")
	t.Setenv("POPULARITY_TRENDS_WEIGHT", "0.3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WikipediaWeight != 0.7 || cfg.GoogleTrendsWeight != 0.3 {
		t.Fatalf("unexpected weights: wikipedia=%v trends=%v", cfg.WikipediaWeight, cfg.GoogleTrendsWeight)
	}
}

func TestLoadRejectsAllZeroWeights(t *testing.T) {
	t.Setenv("POPULARITY_WIKIPEDIA_WEIGHT", "0")
	t.Setenv("POPULARITY_TRENDS_WEIGHT", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when both weights are zero")
	}
}

func TestLoadCustomSuffixes(t *testing.T) {
	t.Setenv("MATCH_SUFFIXES", " cup, series")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.MatchSuffixes) != 2 {
		t.Fatalf("unexpected suffix count: got=%d", len(cfg.MatchSuffixes))
	}
	if cfg.MatchSuffixes[0] != " cup" || cfg.MatchSuffixes[1] != " series" {
		t.Fatalf("unexpected suffixes: %q", cfg.MatchSuffixes)
	}
}
