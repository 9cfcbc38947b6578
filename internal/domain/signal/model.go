// Package signal holds the raw per-source observations consumed by the
// enrichment pass. Records are keyed by the provider's own name spelling and
// are never mutated once loaded.
package signal

// Canonical source names as they appear in popularity blocks.
const (
	SourceWikipedia    = "wikipedia"
	SourceGoogleTrends = "google_trends"
)

// Metric field names carried through to enriched output.
const (
	MetricWikipediaViews    = "wikipedia_monthly_views"
	MetricGoogleTrendsIndex = "google_trends_index"
)

// PageViews is one league's Wikipedia pageview observation. Score and Tier
// are the provider-local single-source rating, not the fused one.
type PageViews struct {
	MonthlyViews int64  `json:"wikipedia_monthly_views" validate:"gte=0"`
	Article      string `json:"wikipedia_article,omitempty"`
	Score        int    `json:"score,omitempty"`
	Tier         string `json:"tier,omitempty"`
}

// TrendsIndex is one league's Google Trends interest observation, already a
// bounded 0-100 index.
type TrendsIndex struct {
	Index      int    `json:"google_trends_index" validate:"gte=0"`
	SearchTerm string `json:"search_term,omitempty"`
}

// SeasonInfo is one league's current-season metadata from the seasons
// provider.
type SeasonInfo struct {
	LeagueID      string `json:"league_id,omitempty"`
	LeagueName    string `json:"league_name,omitempty"`
	Sport         string `json:"sport,omitempty"`
	Country       string `json:"country,omitempty"`
	CurrentSeason string `json:"current_season" validate:"required"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	EventsCount   int    `json:"events_count,omitempty"`
}
