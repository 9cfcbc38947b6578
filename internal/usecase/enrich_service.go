package usecase

import (
	"context"
	"fmt"

	"github.com/sportatlas/catalog/internal/domain/catalog"
	"github.com/sportatlas/catalog/internal/domain/league"
	"github.com/sportatlas/catalog/internal/domain/signal"
	"github.com/sportatlas/catalog/internal/matching"
	"github.com/sportatlas/catalog/internal/platform/logging"
	"github.com/sportatlas/catalog/internal/scoring"
)

// SourceWeights configures each signal source's share of the fused score.
// Missing sources redistribute their share among those present.
type SourceWeights struct {
	Wikipedia    float64
	GoogleTrends float64
}

func DefaultSourceWeights() SourceWeights {
	return SourceWeights{Wikipedia: 0.55, GoogleTrends: 0.45}
}

// EnrichInput carries the catalog to enrich plus the raw signal payloads,
// each keyed by the provider's own name spelling.
type EnrichInput struct {
	Catalog   *catalog.Catalog
	Wikipedia map[string]signal.PageViews
	Trends    map[string]signal.TrendsIndex
	Seasons   map[string]signal.SeasonInfo
}

// EnrichResult is the explicit accumulator returned by one enrichment pass.
type EnrichResult struct {
	Enriched   int
	WithSeason int
	TierCounts map[league.Tier]int
}

// EnrichService attaches popularity and season blocks to catalog leagues by
// matching each league name against per-source indices and fusing whatever
// signals are present.
type EnrichService struct {
	weights  SourceWeights
	suffixes []string
	logger   *logging.Logger
}

func NewEnrichService(weights SourceWeights, suffixes []string, logger *logging.Logger) *EnrichService {
	if suffixes == nil {
		suffixes = matching.DefaultSuffixes()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &EnrichService{weights: weights, suffixes: suffixes, logger: logger}
}

// EnrichCatalog mutates the catalog in place. Any popularity or season block
// from a previous pass is overwritten (or removed when no source matches
// anymore), never stacked, so re-running on the same inputs is idempotent.
// Per-league misses are not errors; they only shrink the contributing
// source set.
func (s *EnrichService) EnrichCatalog(ctx context.Context, input EnrichInput) (EnrichResult, error) {
	ctx, span := startUsecaseSpan(ctx, "EnrichService.EnrichCatalog")
	defer span.End()

	if input.Catalog == nil {
		return EnrichResult{}, fmt.Errorf("%w: catalog is required", ErrInvalidInput)
	}

	wikiIndex := matching.NewIndex(input.Wikipedia, s.suffixes)
	trendsIndex := matching.NewIndex(input.Trends, s.suffixes)
	seasonsIndex := matching.NewIndex(input.Seasons, s.suffixes)

	wikiMax := maxWikipediaViews(input.Wikipedia)
	trendsMax := maxTrendsIndex(input.Trends)

	result := EnrichResult{TierCounts: make(map[league.Tier]int, 4)}
	input.Catalog.Leagues(func(_, _ string, l *league.League) {
		target := matching.Normalize(l.Name)

		l.Popularity = nil
		l.Season = nil

		inputs := make([]scoring.Input, 0, 2)
		if views, ok := matching.Match(wikiIndex, target); ok {
			inputs = append(inputs, scoring.Input{
				Source: signal.SourceWikipedia,
				Metric: signal.MetricWikipediaViews,
				Raw:    float64(views.MonthlyViews),
				Max:    wikiMax,
				Weight: s.weights.Wikipedia,
				Scale:  scoring.ScaleLog,
			})
		}
		if trends, ok := matching.Match(trendsIndex, target); ok {
			inputs = append(inputs, scoring.Input{
				Source: signal.SourceGoogleTrends,
				Metric: signal.MetricGoogleTrendsIndex,
				Raw:    float64(trends.Index),
				Max:    trendsMax,
				Weight: s.weights.GoogleTrends,
				Scale:  scoring.ScaleLinear,
			})
		}

		if popularity, ok := scoring.Fuse(inputs); ok {
			l.Popularity = &popularity
			result.Enriched++
			result.TierCounts[popularity.Tier]++
		}

		if info, ok := matching.Match(seasonsIndex, target); ok {
			l.Season = &league.Season{
				Current:     info.CurrentSeason,
				StartDate:   info.StartDate,
				EndDate:     info.EndDate,
				EventsCount: info.EventsCount,
			}
			result.WithSeason++
		}
	})

	meta := &input.Catalog.Meta
	meta.EnrichedWithPopularity = true
	meta.LeaguesWithPopularity = result.Enriched
	meta.LeaguesWithSeason = result.WithSeason
	meta.PopularitySources = []string{signal.SourceWikipedia, signal.SourceGoogleTrends}
	meta.PopularityWeights = map[string]float64{
		signal.SourceWikipedia:    s.weights.Wikipedia,
		signal.SourceGoogleTrends: s.weights.GoogleTrends,
	}

	s.logger.InfoContext(ctx, "catalog enriched",
		"leagues_with_popularity", result.Enriched,
		"leagues_with_season", result.WithSeason,
		"wikipedia_max_views", int64(wikiMax),
		"trends_max_index", int(trendsMax),
	)

	return result, nil
}

func maxWikipediaViews(records map[string]signal.PageViews) float64 {
	max := 0.0
	for _, record := range records {
		if v := float64(record.MonthlyViews); v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}

func maxTrendsIndex(records map[string]signal.TrendsIndex) float64 {
	max := 0.0
	for _, record := range records {
		if v := float64(record.Index); v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}
