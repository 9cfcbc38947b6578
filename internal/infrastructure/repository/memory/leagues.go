package memory

import "github.com/sportatlas/catalog/internal/domain/league"

// SupplementalLeagues fills the countries the league provider covers poorly.
// Sourced from football-data.org's coverage list plus known top-flight
// competitions for the countries outside it.
func SupplementalLeagues() map[string][]league.League {
	return map[string][]league.League{
		"Italy": {
			{Name: "Serie A", Sport: "Soccer"},
			{Name: "Serie B", Sport: "Soccer"},
		},
		"Netherlands": {
			{Name: "Eredivisie", Sport: "Soccer"},
		},
		"Denmark": {
			{Name: "Superligaen", Sport: "Soccer"},
		},
		"Austria": {
			{Name: "Austrian Bundesliga", Sport: "Soccer"},
		},
		"Greece": {
			{Name: "Super League Greece", Sport: "Soccer"},
		},
		"Ireland": {
			{Name: "League of Ireland Premier Division", Sport: "Soccer"},
			{Name: "League of Ireland First Division", Sport: "Soccer"},
		},
		"Norway": {
			{Name: "Eliteserien", Sport: "Soccer"},
			{Name: "Norwegian First Division", Sport: "Soccer"},
		},
		"China": {
			{Name: "Chinese Super League", Sport: "Soccer"},
			{Name: "Chinese League One", Sport: "Soccer"},
			{Name: "Chinese Basketball Association", Sport: "Basketball"},
		},
		"South Korea": {
			{Name: "K League 1", Sport: "Soccer"},
			{Name: "K League 2", Sport: "Soccer"},
			{Name: "Korean Basketball League", Sport: "Basketball"},
		},
	}
}
