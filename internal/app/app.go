package app

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sportatlas/catalog/external/allsportdb"
	"github.com/sportatlas/catalog/external/espn"
	"github.com/sportatlas/catalog/external/sportsdb"
	"github.com/sportatlas/catalog/external/wikipedia"
	"github.com/sportatlas/catalog/internal/config"
	"github.com/sportatlas/catalog/internal/domain/snapshot"
	"github.com/sportatlas/catalog/internal/domain/taxonomy"
	"github.com/sportatlas/catalog/internal/infrastructure/repository/memory"
	"github.com/sportatlas/catalog/internal/infrastructure/repository/postgres"
	"github.com/sportatlas/catalog/internal/infrastructure/store"
	"github.com/sportatlas/catalog/internal/matching"
	"github.com/sportatlas/catalog/internal/platform/logging"
	"github.com/sportatlas/catalog/internal/platform/resilience"
	"github.com/sportatlas/catalog/internal/usecase"
)

// Application wires the data store, provider clients and services together.
// Construct it once per process with New and release it with Close.
type Application struct {
	Config config.Config
	Logger *logging.Logger

	Store     *store.Store
	Sync      *usecase.SourceSyncService
	Catalog   *usecase.CatalogService
	Enrich    *usecase.EnrichService
	Events    *usecase.EventService
	Snapshots *usecase.SnapshotService

	db *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Default()
	}

	st, err := store.NewStore(cfg.DataDir, logger)
	if err != nil {
		return nil, err
	}

	var pageviews usecase.PageViewsProvider
	if cfg.WikipediaEnabled {
		pageviews = wikipedia.NewClient(wikipedia.ClientConfig{
			BaseURL: cfg.WikipediaBaseURL,
			Timeout: cfg.WikipediaTimeout,
			Logger:  logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.WikipediaCircuitEnabled,
				FailureThreshold: cfg.WikipediaCircuitFailureCount,
				OpenTimeout:      cfg.WikipediaCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.WikipediaCircuitHalfOpenMax,
			},
		})
	}

	var leagues usecase.LeagueDataProvider
	if cfg.SportsDBEnabled {
		leagues = sportsdb.NewClient(sportsdb.ClientConfig{
			BaseURL:    cfg.SportsDBBaseURL,
			Timeout:    cfg.SportsDBTimeout,
			MaxRetries: cfg.SportsDBMaxRetries,
			CacheTTL:   cfg.SportsDBCacheTTL,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SportsDBCircuitEnabled,
				FailureThreshold: cfg.SportsDBCircuitFailureCount,
				OpenTimeout:      cfg.SportsDBCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SportsDBCircuitHalfOpenMax,
			},
		})
	}

	var combat usecase.CombatSportsProvider
	if cfg.ESPNEnabled {
		combat = espn.NewClient(espn.ClientConfig{
			BaseURL: cfg.ESPNBaseURL,
			Timeout: cfg.ESPNTimeout,
			Logger:  logger,
		})
	}

	var calendar usecase.CalendarProvider
	if cfg.AllSportDBEnabled {
		calendar = allsportdb.NewClient(allsportdb.ClientConfig{
			BaseURL:    cfg.AllSportDBBaseURL,
			Token:      cfg.AllSportDBToken,
			Timeout:    cfg.AllSportDBTimeout,
			MaxRetries: cfg.AllSportDBMaxRetries,
			Logger:     logger,
		})
	}

	syncSvc, err := usecase.NewSourceSyncService(st, pageviews, leagues, combat, calendar, usecase.SourceSyncConfig{
		Articles:           wikipedia.DefaultArticles(),
		SeasonSearchTerms:  sportsdb.DefaultSeasonSearchTerms(),
		TrackedLeagues:     sportsdb.DefaultTrackedLeagues(),
		EventYear:          time.Now().Year(),
		CalendarWindowDays: cfg.AllSportDBCalendarWindowDays,
		Workers:            cfg.SyncWorkers,
	}, logger)
	if err != nil {
		return nil, err
	}

	var db *sqlx.DB
	var snapshotRepo snapshot.Repository
	if cfg.SnapshotsEnabled {
		db, err = openDB(cfg)
		if err != nil {
			return nil, err
		}
		snapshotRepo = postgres.NewSnapshotRepository(db)
	} else {
		snapshotRepo = memory.NewSnapshotRepository()
	}

	snapshotSvc, err := usecase.NewSnapshotService(snapshotRepo, logger)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	weights := usecase.SourceWeights{
		Wikipedia:    cfg.WikipediaWeight,
		GoogleTrends: cfg.GoogleTrendsWeight,
	}

	return &Application{
		Config:    cfg,
		Logger:    logger,
		Store:     st,
		Sync:      syncSvc,
		Catalog:   usecase.NewCatalogService(taxonomy.DefaultSportMapping(), logger),
		Enrich:    usecase.NewEnrichService(weights, cfg.MatchSuffixes, logger),
		Events:    usecase.NewEventService(matching.NewLevelClassifier(matching.DefaultKeywordSets()), logger),
		Snapshots: snapshotSvc,
		db:        db,
	}, nil
}

// Close releases held resources. Safe to call on a partially built value.
func (a *Application) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
