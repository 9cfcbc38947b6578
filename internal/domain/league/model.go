package league

import "fmt"

// Tier is a discrete popularity band derived from a 0-100 score.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
)

// League is one competition as reported by the league provider, grouped
// under a country and canonical sport by the catalog builder.
type League struct {
	Name  string `json:"name"`
	Sport string `json:"sport,omitempty"`

	// Popularity and Season are attached by the enrichment pass. Nil means
	// no signal source matched this league; a zero-score block is never
	// produced.
	Popularity *Popularity `json:"popularity,omitempty"`
	Season     *Season     `json:"season,omitempty"`
}

// SourceMetric is one signal source's contribution to a fused score, kept
// for auditability next to the combined result.
type SourceMetric struct {
	Source string
	Metric string
	Raw    float64
	Score  int
}

// Popularity is the fused popularity block for a league.
type Popularity struct {
	Score   int
	Tier    Tier
	Sources []string
	Metrics []SourceMetric
}

// Season is the current-season block matched from the seasons provider.
type Season struct {
	Current     string `json:"current"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	EventsCount int    `json:"events_count,omitempty"`
}

func (l League) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Sport == "" {
		return fmt.Errorf("league sport is required")
	}

	return nil
}

func (p Popularity) Validate() error {
	if p.Score < 0 || p.Score > 100 {
		return fmt.Errorf("popularity score %d outside [0,100]", p.Score)
	}
	switch p.Tier {
	case TierA, TierB, TierC, TierD:
	default:
		return fmt.Errorf("unknown popularity tier %q", p.Tier)
	}
	if len(p.Sources) == 0 {
		return fmt.Errorf("popularity block requires at least one source")
	}

	return nil
}
