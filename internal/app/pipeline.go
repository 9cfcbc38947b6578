package app

import (
	"context"
	"errors"
	"io/fs"

	"github.com/sportatlas/catalog/internal/domain/catalog"
	"github.com/sportatlas/catalog/internal/domain/event"
	"github.com/sportatlas/catalog/internal/domain/league"
	"github.com/sportatlas/catalog/internal/infrastructure/repository/memory"
	"github.com/sportatlas/catalog/internal/usecase"
)

// SyncSources pulls the remote providers and refreshes the raw data files.
func (a *Application) SyncSources(ctx context.Context) (usecase.SyncResult, error) {
	ctx, span := startStageSpan(ctx, "pipeline.sync")
	defer span.End()

	return a.Sync.SyncSources(ctx)
}

// BuildCatalog merges the league inventory with the country reference table
// and writes the unenriched catalog file.
func (a *Application) BuildCatalog(ctx context.Context) (*catalog.Catalog, error) {
	ctx, span := startStageSpan(ctx, "pipeline.build")
	defer span.End()

	c, err := a.buildCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if err := a.Store.SaveCatalog(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// EnrichCatalog rebuilds the catalog from its inputs, attaches popularity and
// season blocks from whatever signal files are present, and writes the
// result. A missing signal file shrinks the source set instead of failing.
func (a *Application) EnrichCatalog(ctx context.Context) (*catalog.Catalog, usecase.EnrichResult, error) {
	ctx, span := startStageSpan(ctx, "pipeline.enrich")
	defer span.End()

	c, err := a.buildCatalog(ctx)
	if err != nil {
		return nil, usecase.EnrichResult{}, err
	}

	pageviews, err := ignoreMissing(a.Store.LoadPageViews(ctx))
	if err != nil {
		return nil, usecase.EnrichResult{}, err
	}
	trends, err := ignoreMissing(a.Store.LoadTrends(ctx))
	if err != nil {
		return nil, usecase.EnrichResult{}, err
	}
	seasons, err := ignoreMissing(a.Store.LoadSeasons(ctx))
	if err != nil {
		return nil, usecase.EnrichResult{}, err
	}

	result, err := a.Enrich.EnrichCatalog(ctx, usecase.EnrichInput{
		Catalog:   c,
		Wikipedia: pageviews,
		Trends:    trends,
		Seasons:   seasons,
	})
	if err != nil {
		return nil, usecase.EnrichResult{}, err
	}
	if err := a.Store.SaveCatalog(ctx, c); err != nil {
		return nil, usecase.EnrichResult{}, err
	}

	return c, result, nil
}

// BuildEvents merges the synced fixture file with the curated calendars into
// the unified event catalog. Synced events without a provider id (combat
// cards carry none) get surrogate ids from the merger.
func (a *Application) BuildEvents(ctx context.Context) (*catalog.EventCatalog, error) {
	ctx, span := startStageSpan(ctx, "pipeline.events")
	defer span.End()

	synced, err := ignoreMissing(a.Store.LoadScheduledEvents(ctx))
	if err != nil {
		return nil, err
	}

	ec, err := a.Events.BuildEventCatalog(ctx, usecase.EventInput{
		Scheduled: synced,
		Curated: [][]event.Event{
			memory.CuratedDartsEvents(),
			memory.CuratedHorseRacingEvents(),
		},
	})
	if err != nil {
		return nil, err
	}
	if err := a.Store.SaveEventCatalog(ctx, ec); err != nil {
		return nil, err
	}

	return ec, nil
}

// Run executes the build, enrich and event stages and records a snapshot of
// the outcome.
func (a *Application) Run(ctx context.Context) error {
	ctx, span := startStageSpan(ctx, "pipeline.run")
	defer span.End()

	c, enriched, err := a.EnrichCatalog(ctx)
	if err != nil {
		return err
	}

	ec, err := a.BuildEvents(ctx)
	if err != nil {
		return err
	}

	payload, err := a.Store.EncodeCatalog(c)
	if err != nil {
		return err
	}
	id, err := a.Snapshots.RecordRun(ctx, c, ec, payload)
	if err != nil {
		return err
	}

	a.Logger.InfoContext(ctx, "pipeline run complete",
		"snapshot_id", id,
		"leagues_enriched", enriched.Enriched,
		"leagues_with_season", enriched.WithSeason,
		"events", ec.Summary.TotalCount,
	)

	return nil
}

func (a *Application) buildCatalog(ctx context.Context) (*catalog.Catalog, error) {
	leagues, err := a.Store.LoadLeagues(ctx)
	if err != nil {
		return nil, err
	}
	mergeSupplementalLeagues(leagues, memory.SupplementalLeagues())

	reference, err := a.Store.LoadCountryReference(ctx)
	if err != nil {
		return nil, err
	}

	return a.Catalog.BuildCatalog(ctx, leagues, reference)
}

// mergeSupplementalLeagues adds the curated coverage gaps to the synced
// inventory. Synced records win; a supplement never replaces one.
func mergeSupplementalLeagues(leagues map[string][]league.League, extra map[string][]league.League) {
	for country, supplements := range extra {
		existing := make(map[string]bool, len(leagues[country]))
		for _, l := range leagues[country] {
			existing[l.Name] = true
		}
		for _, l := range supplements {
			if !existing[l.Name] {
				leagues[country] = append(leagues[country], l)
			}
		}
	}
}

// ignoreMissing turns a missing data file into an empty load.
func ignoreMissing[T any](value T, err error) (T, error) {
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return value, nil
	}
	var zero T
	return zero, err
}
