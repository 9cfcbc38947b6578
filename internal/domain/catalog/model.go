// Package catalog defines the merged output records the pipeline produces:
// the per-country league catalog and the unified event calendar.
package catalog

import (
	"github.com/sportatlas/catalog/internal/domain/event"
	"github.com/sportatlas/catalog/internal/domain/league"
)

// Meta summarizes a catalog build and any enrichment applied on top of it.
type Meta struct {
	CountriesInReference   int                `json:"countries_in_reference"`
	CountriesWithData      int                `json:"countries_with_data"`
	UnreferencedCountries  []string           `json:"unreferenced_countries,omitempty"`
	EnrichedWithPopularity bool               `json:"enriched_with_popularity"`
	LeaguesWithPopularity  int                `json:"leagues_with_popularity,omitempty"`
	LeaguesWithSeason      int                `json:"leagues_with_season,omitempty"`
	PopularitySources      []string           `json:"popularity_sources,omitempty"`
	PopularityWeights      map[string]float64 `json:"popularity_weights,omitempty"`
}

// Coverage reports how a country's observed sports line up with its major
// sports from the reference table.
type Coverage struct {
	Matched     []string `json:"matched"`
	Missing     []string `json:"missing"`
	ExtraSports []string `json:"extra_sports"`
}

// Stats carries per-country league counts.
type Stats struct {
	TotalLeagues    int `json:"total_leagues"`
	MatchedLeagues  int `json:"matched_leagues"`
	CoveragePercent int `json:"coverage_percent"`
}

// Country is one country's slice of the merged catalog. LeaguesBySport holds
// pointers so the enrichment pass can attach blocks in place.
type Country struct {
	Code           string
	MajorSports    []string
	LeaguesBySport map[string][]*league.League
	Coverage       Coverage
	Stats          Stats
	Notes          string
}

// Catalog is the full merged league catalog for one run.
type Catalog struct {
	Meta      Meta
	Countries map[string]*Country
}

// Leagues walks every league in the catalog in unspecified order.
func (c *Catalog) Leagues(visit func(country, sport string, l *league.League)) {
	if c == nil {
		return
	}
	for name, country := range c.Countries {
		for sport, leagues := range country.LeaguesBySport {
			for _, l := range leagues {
				visit(name, sport, l)
			}
		}
	}
}

// EventSummary carries the counts reported next to a merged event calendar.
// ByLevel is keyed by level name so the serialized form reads as prose.
type EventSummary struct {
	TotalCount int            `json:"total_count"`
	BySport    map[string]int `json:"by_sport"`
	ByLevel    map[string]int `json:"by_level"`
}

// EventCatalog is the unified, date-sorted event calendar with globally
// unique ids.
type EventCatalog struct {
	Events  []event.Event `json:"events"`
	Summary EventSummary  `json:"summary"`
}
