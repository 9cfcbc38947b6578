package scoring

import "github.com/sportatlas/catalog/internal/domain/league"

// Input is one signal source's observation for a single entity. Max is the
// largest raw value the source produced this run and anchors normalization.
type Input struct {
	Source string
	Metric string
	Raw    float64
	Max    float64
	Weight float64
	Scale  Scale
}

// Fuse combines zero or more source observations into a popularity block.
// Each source is normalized onto 0-100 by its own policy, then scaled by
// weight/totalWeight where totalWeight sums only the weights of sources that
// are actually present, so missing sources redistribute their share
// proportionally. The weighted sum is truncated to an integer.
//
// ok is false when no source is present: the entity gets no popularity block
// at all, which keeps "no data" distinguishable from a genuine zero score.
func Fuse(inputs []Input) (league.Popularity, bool) {
	if len(inputs) == 0 {
		return league.Popularity{}, false
	}

	totalWeight := 0.0
	for _, in := range inputs {
		totalWeight += in.Weight
	}

	sources := make([]string, 0, len(inputs))
	metrics := make([]league.SourceMetric, 0, len(inputs))
	weighted := 0.0
	for _, in := range inputs {
		norm := normalize(in.Scale, in.Raw, in.Max)
		if totalWeight > 0 {
			weighted += float64(norm) * in.Weight / totalWeight
		}
		sources = append(sources, in.Source)
		metrics = append(metrics, league.SourceMetric{
			Source: in.Source,
			Metric: in.Metric,
			Raw:    in.Raw,
			Score:  norm,
		})
	}

	score := int(weighted)
	return league.Popularity{
		Score:   score,
		Tier:    FusedTier(score),
		Sources: sources,
		Metrics: metrics,
	}, true
}
