package wikipedia

// DefaultArticles maps tracked league names to their English Wikipedia
// article titles. Titles must be pre-encoded the way the pageviews API
// expects them.
func DefaultArticles() map[string]string {
	return map[string]string{
		// Football, Europe
		"Ligue 1":                            "Ligue_1",
		"Premier League":                     "Premier_League",
		"Bundesliga":                         "Bundesliga",
		"La Liga":                            "La_Liga",
		"Serie A":                            "Serie_A",
		"Eredivisie":                         "Eredivisie",
		"Primeira Liga":                      "Primeira_Liga",
		"Belgian Pro League":                 "Belgian_First_Division_A",
		"Super League Switzerland":           "Swiss_Super_League",
		"Austrian Bundesliga":                "Austrian_Football_Bundesliga",
		"Superligaen":                        "Danish_Superliga",
		"Eliteserien":                        "Eliteserien",
		"Allsvenskan":                        "Allsvenskan",
		"Super League Greece":                "Super_League_Greece",
		"Super Lig":                          "Süper_Lig",
		"Russian Premier League":             "Russian_Premier_League",
		"Ekstraklasa":                        "Ekstraklasa",
		"League of Ireland Premier Division": "League_of_Ireland_Premier_Division",

		// Football, Americas
		"Major League Soccer":        "Major_League_Soccer",
		"Liga MX":                    "Liga_MX",
		"Brasileirao":                "Campeonato_Brasileiro_Série_A",
		"Argentine Primera Division": "Argentine_Primera_División",

		// Football, Asia and Oceania
		"Chinese Super League": "Chinese_Super_League",
		"K League 1":           "K_League_1",
		"J1 League":            "J1_League",
		"Indian Super League":  "Indian_Super_League",
		"A-League Men":         "A-League_Men",

		// American football
		"NFL": "National_Football_League",
		"CFL": "Canadian_Football_League",

		// Basketball
		"NBA":                            "National_Basketball_Association",
		"EuroLeague":                     "EuroLeague",
		"Chinese Basketball Association": "Chinese_Basketball_Association",
		"Korean Basketball League":       "Korean_Basketball_League",

		// Ice hockey
		"NHL": "National_Hockey_League",
		"KHL": "Kontinental_Hockey_League",
		"SHL": "Swedish_Hockey_League",

		// Baseball
		"MLB":                          "Major_League_Baseball",
		"Nippon Professional Baseball": "Nippon_Professional_Baseball",
		"KBO League":                   "KBO_League",

		// Rugby
		"Top 14":            "Top_14",
		"Premiership Rugby": "Premiership_Rugby",
		"Super Rugby":       "Super_Rugby",

		// Cricket
		"Indian Premier League": "Indian_Premier_League",
		"The Ashes":             "The_Ashes",
		"Big Bash League":       "Big_Bash_League",

		// MMA
		"UFC": "Ultimate_Fighting_Championship",

		// Tennis
		"ATP Tour": "ATP_Tour",
		"WTA Tour": "WTA_Tour",

		// Motorsport
		"Formula One": "Formula_One",
		"NASCAR":      "NASCAR",
		"MotoGP":      "MotoGP",

		// Golf
		"PGA Tour": "PGA_Tour",

		// Cycling
		"Tour de France": "Tour_de_France",
		"Giro d'Italia":  "Giro_d%27Italia",

		// Australian rules
		"AFL": "Australian_Football_League",

		// Handball
		"Handball-Bundesliga": "Handball-Bundesliga",
		"LNH Division 1":      "LNH_Division_1_(handball)",

		// Volleyball
		"CEV Champions League": "CEV_Champions_League_Volley",
	}
}
