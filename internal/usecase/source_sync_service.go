package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/sportatlas/catalog/internal/domain/event"
	"github.com/sportatlas/catalog/internal/domain/signal"
	"github.com/sportatlas/catalog/internal/platform/logging"
	"github.com/sportatlas/catalog/internal/scoring"
)

// ExternalLeague is the league data provider's league record.
type ExternalLeague struct {
	ExternalID    string
	Name          string
	Sport         string
	Country       string
	CurrentSeason string
}

// ExternalSeasonWindow bounds a season by its first and last fixture dates.
type ExternalSeasonWindow struct {
	StartDate   string
	EndDate     string
	EventsCount int
}

// ExternalTrackedLeague identifies one league whose fixtures are synced.
type ExternalTrackedLeague struct {
	ExternalID string
	Name       string
	Season     string
}

type PageViewsProvider interface {
	FetchMonthlyViews(ctx context.Context, article string) (int64, bool, error)
}

type LeagueDataProvider interface {
	SearchLeague(ctx context.Context, term string) (ExternalLeague, bool, error)
	SeasonWindow(ctx context.Context, leagueID, season string) (ExternalSeasonWindow, bool, error)
	CurrentRound(ctx context.Context, leagueID, season string) (int, error)
	RoundEvents(ctx context.Context, leagueID string, round int, season string) ([]event.Event, error)
}

type CombatSportsProvider interface {
	FetchUFCEvents(ctx context.Context, year int) ([]event.Event, error)
}

// CalendarProvider serves the broad multi-sport event calendar for a date
// window, in the provider's own id space.
type CalendarProvider interface {
	FetchCalendar(ctx context.Context, from, to string) ([]event.Event, error)
}

// SyncStore persists the fetched provider payloads for the offline passes.
type SyncStore interface {
	SavePageViews(ctx context.Context, records map[string]signal.PageViews) error
	SaveSeasons(ctx context.Context, records map[string]signal.SeasonInfo) error
	SaveScheduledEvents(ctx context.Context, records []event.Event) error
}

type SourceSyncConfig struct {
	// Articles maps league names to Wikipedia article titles.
	Articles map[string]string
	// SeasonSearchTerms maps league names to the league provider's spelling.
	SeasonSearchTerms map[string]string
	// TrackedLeagues are the leagues whose round fixtures are pulled.
	TrackedLeagues []ExternalTrackedLeague
	// EventYear prefixes combat sport event names.
	EventYear int
	// CalendarWindowDays bounds the calendar fetch, starting today.
	CalendarWindowDays int
	// Workers bounds the per-article fetch pool.
	Workers int
}

// SyncResult reports what each provider contributed. A provider failure
// degrades the run instead of aborting it; Errors carries what went wrong.
type SyncResult struct {
	PageViews       int
	Seasons         int
	ScheduledEvents int
	Errors          []string
}

// SourceSyncService pulls the remote popularity and schedule sources and
// writes their payloads to the data store. Providers are optional; a nil
// provider is skipped.
type SourceSyncService struct {
	store     SyncStore
	pageviews PageViewsProvider
	leagues   LeagueDataProvider
	combat    CombatSportsProvider
	calendar  CalendarProvider
	cfg       SourceSyncConfig
	logger    *logging.Logger
	now       func() time.Time
}

func NewSourceSyncService(
	store SyncStore,
	pageviews PageViewsProvider,
	leagues LeagueDataProvider,
	combat CombatSportsProvider,
	calendar CalendarProvider,
	cfg SourceSyncConfig,
	logger *logging.Logger,
) (*SourceSyncService, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: sync store is required", ErrInvalidInput)
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 4
	}
	if cfg.CalendarWindowDays < 1 {
		cfg.CalendarWindowDays = 365
	}

	return &SourceSyncService{
		store:     store,
		pageviews: pageviews,
		leagues:   leagues,
		combat:    combat,
		calendar:  calendar,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// SyncSources fetches all configured providers concurrently. Each provider
// failure is recorded and the rest of the run continues.
func (s *SourceSyncService) SyncSources(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "SourceSyncService.SyncSources")
	defer span.End()

	var (
		mu     sync.Mutex
		result SyncResult
	)
	record := func(apply func(*SyncResult)) {
		mu.Lock()
		defer mu.Unlock()
		apply(&result)
	}

	var wg conc.WaitGroup
	if s.pageviews != nil {
		wg.Go(func() {
			count, err := s.syncPageViews(ctx)
			record(func(r *SyncResult) {
				r.PageViews = count
				if err != nil {
					r.Errors = append(r.Errors, fmt.Sprintf("pageviews: %v", err))
				}
			})
		})
	}
	if s.leagues != nil {
		wg.Go(func() {
			count, err := s.syncSeasons(ctx)
			record(func(r *SyncResult) {
				r.Seasons = count
				if err != nil {
					r.Errors = append(r.Errors, fmt.Sprintf("seasons: %v", err))
				}
			})
		})
	}
	if s.leagues != nil || s.combat != nil || s.calendar != nil {
		wg.Go(func() {
			count, err := s.syncScheduledEvents(ctx)
			record(func(r *SyncResult) {
				r.ScheduledEvents = count
				if err != nil {
					r.Errors = append(r.Errors, fmt.Sprintf("events: %v", err))
				}
			})
		})
	}
	wg.Wait()

	sort.Strings(result.Errors)
	s.logger.InfoContext(ctx, "source sync finished",
		"pageviews", result.PageViews,
		"seasons", result.Seasons,
		"scheduled_events", result.ScheduledEvents,
		"provider_errors", len(result.Errors),
	)

	return result, nil
}

// syncPageViews fetches every tracked article through a bounded worker pool,
// then rates each record against the observed maximum.
func (s *SourceSyncService) syncPageViews(ctx context.Context) (int, error) {
	if len(s.cfg.Articles) == 0 {
		return 0, nil
	}

	pool, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		records = make(map[string]signal.PageViews, len(s.cfg.Articles))
		misses  int
	)

	var workers sync.WaitGroup
	for name, article := range s.cfg.Articles {
		name, article := name, article
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			views, ok, fetchErr := s.pageviews.FetchMonthlyViews(ctx, article)
			if fetchErr != nil {
				s.logger.WarnContext(ctx, "pageviews fetch failed", "league", name, "error", fetchErr)
				return
			}
			if !ok || views <= 0 {
				mu.Lock()
				misses++
				mu.Unlock()
				return
			}

			mu.Lock()
			records[name] = signal.PageViews{MonthlyViews: views, Article: article}
			mu.Unlock()
		}); err != nil {
			workers.Done()
			return 0, fmt.Errorf("submit pageviews task: %w", err)
		}
	}
	workers.Wait()

	if len(records) == 0 {
		return 0, fmt.Errorf("no pageview data fetched")
	}

	var maxViews int64
	for _, record := range records {
		if record.MonthlyViews > maxViews {
			maxViews = record.MonthlyViews
		}
	}
	for name, record := range records {
		record.Score = scoring.LogScale(float64(record.MonthlyViews), float64(maxViews))
		record.Tier = string(scoring.SingleSourceTier(record.Score))
		records[name] = record
	}

	if err := s.store.SavePageViews(ctx, records); err != nil {
		return 0, err
	}
	s.logger.DebugContext(ctx, "pageviews synced", "records", len(records), "misses", misses)

	return len(records), nil
}

func (s *SourceSyncService) syncSeasons(ctx context.Context) (int, error) {
	if len(s.cfg.SeasonSearchTerms) == 0 {
		return 0, nil
	}

	names := make([]string, 0, len(s.cfg.SeasonSearchTerms))
	for name := range s.cfg.SeasonSearchTerms {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make(map[string]signal.SeasonInfo, len(names))
	for _, name := range names {
		info, ok, err := s.leagues.SearchLeague(ctx, s.cfg.SeasonSearchTerms[name])
		if err != nil {
			s.logger.WarnContext(ctx, "league search failed", "league", name, "error", err)
			continue
		}
		if !ok || info.ExternalID == "" || info.CurrentSeason == "" {
			continue
		}

		record := signal.SeasonInfo{
			LeagueID:      info.ExternalID,
			LeagueName:    info.Name,
			Sport:         info.Sport,
			Country:       info.Country,
			CurrentSeason: info.CurrentSeason,
		}
		window, found, err := s.leagues.SeasonWindow(ctx, info.ExternalID, info.CurrentSeason)
		if err != nil {
			s.logger.WarnContext(ctx, "season window fetch failed", "league", name, "error", err)
		} else if found {
			record.StartDate = window.StartDate
			record.EndDate = window.EndDate
			record.EventsCount = window.EventsCount
		}
		records[name] = record
	}

	if len(records) == 0 {
		return 0, fmt.Errorf("no season data fetched")
	}
	if err := s.store.SaveSeasons(ctx, records); err != nil {
		return 0, err
	}

	return len(records), nil
}

func (s *SourceSyncService) syncScheduledEvents(ctx context.Context) (int, error) {
	events := make([]event.Event, 0, 128)

	if s.calendar != nil {
		from := s.now().Format("2006-01-02")
		to := s.now().AddDate(0, 0, s.cfg.CalendarWindowDays).Format("2006-01-02")
		entries, err := s.calendar.FetchCalendar(ctx, from, to)
		if err != nil {
			s.logger.WarnContext(ctx, "calendar fetch failed", "from", from, "to", to, "error", err)
		} else {
			events = append(events, entries...)
		}
	}

	if s.leagues != nil {
		for _, tracked := range s.cfg.TrackedLeagues {
			round, err := s.leagues.CurrentRound(ctx, tracked.ExternalID, tracked.Season)
			if err != nil {
				s.logger.WarnContext(ctx, "current round lookup failed", "league", tracked.Name, "error", err)
				continue
			}
			fixtures, err := s.leagues.RoundEvents(ctx, tracked.ExternalID, round, tracked.Season)
			if err != nil {
				s.logger.WarnContext(ctx, "round fixtures fetch failed", "league", tracked.Name, "round", round, "error", err)
				continue
			}
			events = append(events, fixtures...)
		}
	}

	if s.combat != nil {
		cards, err := s.combat.FetchUFCEvents(ctx, s.cfg.EventYear)
		if err != nil {
			s.logger.WarnContext(ctx, "ufc calendar fetch failed", "error", err)
		} else {
			events = append(events, cards...)
		}
	}

	if len(events) == 0 {
		return 0, fmt.Errorf("no scheduled events fetched")
	}
	if err := s.store.SaveScheduledEvents(ctx, events); err != nil {
		return 0, err
	}

	return len(events), nil
}
