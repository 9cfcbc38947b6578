package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/sportatlas/catalog/internal/domain/catalog"
	"github.com/sportatlas/catalog/internal/domain/league"
	"github.com/sportatlas/catalog/internal/domain/taxonomy"
	"github.com/sportatlas/catalog/internal/platform/logging"
)

// CatalogService merges the raw per-country league lists with the curated
// country reference table into the canonical catalog.
type CatalogService struct {
	mapping taxonomy.SportMapping
	logger  *logging.Logger
}

func NewCatalogService(mapping taxonomy.SportMapping, logger *logging.Logger) *CatalogService {
	if mapping == nil {
		mapping = taxonomy.DefaultSportMapping()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CatalogService{mapping: mapping, logger: logger}
}

// BuildCatalog groups every country's leagues by canonical sport and scores
// coverage against the reference's major sports. The UK home nations are
// collapsed into one United Kingdom entry first. Inputs are not mutated;
// the returned catalog is freshly built, so repeat runs are idempotent.
func (s *CatalogService) BuildCatalog(
	ctx context.Context,
	leaguesByCountry map[string][]league.League,
	reference map[string]taxonomy.CountryReference,
) (*catalog.Catalog, error) {
	ctx, span := startUsecaseSpan(ctx, "CatalogService.BuildCatalog")
	defer span.End()

	if len(reference) == 0 {
		return nil, fmt.Errorf("%w: country reference table is required", ErrInvalidInput)
	}

	grouped := aggregateUK(leaguesByCountry)

	missingInLeagues := 0
	unreferenced := make([]string, 0)
	for country := range grouped {
		if _, ok := reference[country]; !ok {
			unreferenced = append(unreferenced, country)
		}
	}
	sort.Strings(unreferenced)

	countries := make(map[string]*catalog.Country, len(reference))
	for country, ref := range reference {
		entry := s.buildCountry(ref, grouped[country])
		countries[country] = entry
		if _, ok := grouped[country]; !ok {
			missingInLeagues++
		}
	}

	out := &catalog.Catalog{
		Meta: catalog.Meta{
			CountriesInReference:  len(reference),
			CountriesWithData:     len(reference) - missingInLeagues,
			UnreferencedCountries: unreferenced,
		},
		Countries: countries,
	}

	s.logger.InfoContext(ctx, "catalog built",
		"countries", len(countries),
		"unreferenced", len(unreferenced),
	)

	return out, nil
}

func (s *CatalogService) buildCountry(ref taxonomy.CountryReference, leagues []league.League) *catalog.Country {
	majorSet := make(map[string]bool, len(ref.MajorSports))
	for _, sport := range ref.MajorSports {
		majorSet[sport] = true
	}

	bySport := make(map[string][]*league.League)
	for _, l := range leagues {
		sport, ok := s.canonicalSport(l.Sport, majorSet)
		if !ok {
			continue
		}
		entry := &league.League{Name: l.Name, Sport: sport}
		bySport[sport] = append(bySport[sport], entry)
	}

	matched := make([]string, 0, len(bySport))
	extra := make([]string, 0)
	for sport := range bySport {
		if majorSet[sport] {
			matched = append(matched, sport)
		} else {
			extra = append(extra, sport)
		}
	}
	missing := make([]string, 0)
	for _, sport := range ref.MajorSports {
		if _, ok := bySport[sport]; !ok {
			missing = append(missing, sport)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	sort.Strings(extra)

	matchedLeagues := 0
	for _, sport := range matched {
		matchedLeagues += len(bySport[sport])
	}
	coveragePercent := 0
	if len(ref.MajorSports) > 0 {
		coveragePercent = int(math.Round(float64(len(matched)) / float64(len(ref.MajorSports)) * 100))
	}

	return &catalog.Country{
		Code:           ref.Code,
		MajorSports:    ref.MajorSports,
		LeaguesBySport: bySport,
		Coverage: catalog.Coverage{
			Matched:     matched,
			Missing:     missing,
			ExtraSports: extra,
		},
		Stats: catalog.Stats{
			TotalLeagues:    len(leagues),
			MatchedLeagues:  matchedLeagues,
			CoveragePercent: coveragePercent,
		},
		Notes: ref.Notes,
	}
}

// canonicalSport resolves a provider sport label. One-to-many mappings pick
// the first target that is a major sport for the country, falling back to
// the first target.
func (s *CatalogService) canonicalSport(sport string, majorSet map[string]bool) (string, bool) {
	targets, drop, ok := s.mapping.Resolve(sport)
	if !ok {
		return sport, true
	}
	if drop {
		return "", false
	}
	for _, target := range targets {
		if majorSet[target] {
			return target, true
		}
	}
	return targets[0], true
}

func aggregateUK(leaguesByCountry map[string][]league.League) map[string][]league.League {
	out := make(map[string][]league.League, len(leaguesByCountry))
	var uk []league.League
	homeNations := make(map[string]bool)
	for _, nation := range taxonomy.UKHomeNations() {
		homeNations[nation] = true
	}

	for country, leagues := range leaguesByCountry {
		if homeNations[country] {
			uk = append(uk, leagues...)
			continue
		}
		out[country] = leagues
	}
	if len(uk) > 0 {
		out[taxonomy.UKAggregateName] = append(out[taxonomy.UKAggregateName], uk...)
	}

	return out
}
