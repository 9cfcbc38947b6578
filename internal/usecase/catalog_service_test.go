package usecase

import (
	"context"
	"testing"

	"github.com/sportatlas/catalog/internal/domain/league"
	"github.com/sportatlas/catalog/internal/domain/taxonomy"
)

func TestBuildCatalogGroupsAndScoresCoverage(t *testing.T) {
	svc := NewCatalogService(nil, nil)

	leagues := map[string][]league.League{
		"Spain": {
			{Name: "La Liga", Sport: "Soccer"},
			{Name: "Liga ACB", Sport: "Basketball"},
			{Name: "ESL Masters", Sport: "Esports"},
		},
	}
	reference := map[string]taxonomy.CountryReference{
		"Spain": {Code: "ES", MajorSports: []string{"Football", "Basketball", "Tennis", "Motorsport"}},
	}

	got, err := svc.BuildCatalog(context.Background(), leagues, reference)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	spain := got.Countries["Spain"]
	if spain == nil {
		t.Fatalf("expected Spain entry")
	}
	if len(spain.LeaguesBySport["Football"]) != 1 {
		t.Fatalf("Soccer must map to Football: %v", spain.LeaguesBySport)
	}
	if _, ok := spain.LeaguesBySport["Esports"]; ok {
		t.Fatalf("Esports must be dropped")
	}
	if spain.Stats.TotalLeagues != 3 || spain.Stats.MatchedLeagues != 2 {
		t.Fatalf("unexpected stats: %+v", spain.Stats)
	}
	if spain.Stats.CoveragePercent != 50 {
		t.Fatalf("unexpected coverage: got=%d want=50", spain.Stats.CoveragePercent)
	}
	if len(spain.Coverage.Missing) != 2 {
		t.Fatalf("unexpected missing sports: %v", spain.Coverage.Missing)
	}
}

func TestBuildCatalogAggregatesUK(t *testing.T) {
	svc := NewCatalogService(nil, nil)

	leagues := map[string][]league.League{
		"England":  {{Name: "Premier League", Sport: "Soccer"}},
		"Scotland": {{Name: "Scottish Premiership", Sport: "Soccer"}},
	}
	reference := map[string]taxonomy.CountryReference{
		"United Kingdom": {Code: "GB", MajorSports: []string{"Football"}},
	}

	got, err := svc.BuildCatalog(context.Background(), leagues, reference)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	uk := got.Countries["United Kingdom"]
	if uk == nil {
		t.Fatalf("expected aggregated United Kingdom entry")
	}
	if got := len(uk.LeaguesBySport["Football"]); got != 2 {
		t.Fatalf("home nation leagues must aggregate: got=%d want=2", got)
	}
	if len(got.Meta.UnreferencedCountries) != 0 {
		t.Fatalf("unexpected unreferenced countries: %v", got.Meta.UnreferencedCountries)
	}
}

func TestBuildCatalogFightingPrefersCountryMajorSport(t *testing.T) {
	svc := NewCatalogService(nil, nil)

	leagues := map[string][]league.League{
		"United States": {{Name: "UFC", Sport: "Fighting"}},
		"Mexico":        {{Name: "CMLL", Sport: "Fighting"}},
	}
	reference := map[string]taxonomy.CountryReference{
		"United States": {Code: "US", MajorSports: []string{"Boxing"}},
		"Mexico":        {Code: "MX", MajorSports: []string{"Football"}},
	}

	got, err := svc.BuildCatalog(context.Background(), leagues, reference)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	if len(got.Countries["United States"].LeaguesBySport["Boxing"]) != 1 {
		t.Fatalf("fighting must land on the country's major combat sport")
	}
	// no major combat sport: fall back to the mapping's first target
	if len(got.Countries["Mexico"].LeaguesBySport["MMA"]) != 1 {
		t.Fatalf("fighting must fall back to the first mapped sport")
	}
}

func TestBuildCatalogRequiresReference(t *testing.T) {
	svc := NewCatalogService(nil, nil)

	if _, err := svc.BuildCatalog(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected invalid input error")
	}
}
