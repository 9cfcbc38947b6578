// Package taxonomy holds the hand-curated reference tables the pipeline
// consumes: provider-sport mapping, country aggregation, and the
// country-to-major-sport reference. The tables are inputs, not behavior;
// callers may substitute their own.
package taxonomy

// CountryReference is one row of the major-sports-by-country table.
type CountryReference struct {
	Code        string
	MajorSports []string
	Notes       string
}

// SportMapping translates a provider's sport label into one or more
// canonical sports. A nil target drops the sport entirely; multiple targets
// (the provider's catch-all "Fighting") are tried against a country's major
// sports in order.
type SportMapping map[string][]string

// Resolve maps a provider sport label. ok is false when the label is
// unmapped, in which case the label itself is the canonical name.
func (m SportMapping) Resolve(sport string) (targets []string, drop bool, ok bool) {
	targets, ok = m[sport]
	if !ok {
		return nil, false, false
	}
	return targets, len(targets) == 0, true
}

// DefaultSportMapping mirrors the provider-to-reference sport table used by
// the catalog build.
func DefaultSportMapping() SportMapping {
	return SportMapping{
		"Soccer":            {"Football"},
		"Fighting":          {"MMA", "Boxing", "Wrestling", "Lucha Libre"},
		"American Football": {"American Football"},
		"Ice Hockey":        {"Ice Hockey"},
		"Motorsport":        {"Motorsport"},
		"Rugby":             {"Rugby"},
		"Basketball":        {"Basketball"},
		"Baseball":          {"Baseball"},
		"Cricket":           {"Cricket"},
		"Tennis":            {"Tennis"},
		"Golf":              {"Golf"},
		"Cycling":           {"Cycling"},
		"Volleyball":        {"Volleyball"},
		"Handball":          {"Handball"},
		"Australian Rules":  {"Australian Rules Football"},
		"Esports":           {},
	}
}

// UKHomeNations are aggregated into a single United Kingdom entry before the
// catalog build.
func UKHomeNations() []string {
	return []string{"England", "Scotland", "Wales", "Northern Ireland"}
}

// UKAggregateName is the country key the home nations collapse into.
const UKAggregateName = "United Kingdom"

// MajorSports is the set of sports treated as headline sports in event
// summaries.
func MajorSports() map[string]bool {
	return map[string]bool{
		"Football": true, "Tennis": true, "Rugby": true, "Basketball": true,
		"Ice Hockey": true, "Cycling": true, "Athletics": true, "Swimming": true,
		"Handball": true, "Volleyball": true, "Baseball": true, "Cricket": true,
		"Golf": true, "Motorsport": true, "Boxing": true, "MMA": true,
		"Skiing": true, "Figure Skating": true, "Gymnastics": true, "Water Polo": true,
	}
}
