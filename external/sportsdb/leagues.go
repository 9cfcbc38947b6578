package sportsdb

import "github.com/sportatlas/catalog/internal/usecase"

// DefaultTrackedLeagues lists the football leagues with reliable round data.
func DefaultTrackedLeagues() []usecase.ExternalTrackedLeague {
	return []usecase.ExternalTrackedLeague{
		{ExternalID: "4328", Name: "English Premier League", Season: "2025-2026"},
		{ExternalID: "4331", Name: "German Bundesliga", Season: "2025-2026"},
		{ExternalID: "4332", Name: "Italian Serie A", Season: "2025-2026"},
		{ExternalID: "4334", Name: "French Ligue 1", Season: "2025-2026"},
		{ExternalID: "4335", Name: "Spanish La Liga", Season: "2025-2026"},
		{ExternalID: "4337", Name: "Dutch Eredivisie", Season: "2025-2026"},
		{ExternalID: "4339", Name: "Turkish Super Lig", Season: "2025-2026"},
		{ExternalID: "4344", Name: "Portuguese Primeira Liga", Season: "2025-2026"},
		{ExternalID: "4346", Name: "Major League Soccer", Season: "2026"},
		{ExternalID: "4347", Name: "Swedish Allsvenskan", Season: "2026"},
		{ExternalID: "4350", Name: "Liga MX", Season: "2025-2026"},
		{ExternalID: "4351", Name: "Brazilian Serie A", Season: "2026"},
		{ExternalID: "4358", Name: "Norwegian Eliteserien", Season: "2026"},
		{ExternalID: "4359", Name: "English Championship", Season: "2025-2026"},
		{ExternalID: "4380", Name: "Russian Premier League", Season: "2025-2026"},
		{ExternalID: "4422", Name: "Polish Ekstraklasa", Season: "2025-2026"},
		{ExternalID: "4675", Name: "Swiss Super League", Season: "2025-2026"},
	}
}

// DefaultSeasonSearchTerms maps tracked league display names to the
// provider's search spelling for season metadata lookups.
func DefaultSeasonSearchTerms() map[string]string {
	return map[string]string{
		// Football, Europe
		"French Ligue 1":           "French Ligue 1",
		"English Premier League":   "English Premier League",
		"German Bundesliga":        "German Bundesliga",
		"Spanish La Liga":          "Spanish La Liga",
		"Italian Serie A":          "Italian Serie A",
		"Dutch Eredivisie":         "Dutch Eredivisie",
		"Portuguese Primeira Liga": "Portuguese Primeira Liga",
		"Belgian First Division A": "Belgian First Division A",
		"Swiss Super League":       "Swiss Super League",
		"Austrian Bundesliga":      "Austrian Football Bundesliga",
		"Danish Superliga":         "Danish Superliga",
		"Norwegian Eliteserien":    "Norwegian Eliteserien",
		"Swedish Allsvenskan":      "Swedish Allsvenskan",
		"Greek Super League":       "Greek Super League",
		"Turkish Super Lig":        "Turkish Super Lig",
		"Russian Premier League":   "Russian Premier League",
		"Polish Ekstraklasa":       "Polish Ekstraklasa",
		"League of Ireland":        "League of Ireland Premier Division",

		// Football, Americas
		"American Major League Soccer": "American Major League Soccer",
		"Mexican Liga MX":              "Mexican Primera League",
		"Brazilian Serie A":            "Brazilian Serie A",
		"Argentine Primera Division":   "Argentine Primera Division",

		// Football, Asia and Oceania
		"Chinese Super League": "Chinese Super League",
		"Japanese J League":    "Japanese J League",
		"Korean K League":      "Korean K League",
		"Indian Super League":  "Indian Super League",
		"Australian A-League":  "Australian A-League",

		// American football
		"NFL": "NFL",
		"CFL": "CFL",

		// Basketball
		"NBA":        "NBA",
		"EuroLeague": "EuroLeague Basketball",

		// Ice hockey
		"NHL": "NHL",
		"KHL": "KHL",

		// Baseball
		"MLB":          "MLB",
		"Japanese NPB": "NPB",
		"Korean KBO":   "KBO League",

		// Rugby
		"French Top 14":             "French Top 14",
		"English Premiership Rugby": "English Premiership Rugby",

		// Cricket
		"Indian Premier League": "Indian Premier League",
		"Big Bash League":       "Big Bash League",

		// MMA
		"UFC": "UFC",

		// Motorsport
		"Formula 1":         "Formula 1",
		"NASCAR Cup Series": "NASCAR Cup Series",
		"MotoGP":            "MotoGP",

		// Cycling
		"Tour de France": "Tour de France",

		// Australian rules
		"AFL": "AFL",
	}
}
