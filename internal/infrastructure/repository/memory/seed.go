package memory

import "github.com/sportatlas/catalog/internal/domain/event"

const (
	SourcePDC    = "pdc"
	SourceWDF    = "wdf"
	SourceStatic = "static"
)

// CuratedDartsEvents returns the PDC and WDF 2026 calendars. These providers
// publish no machine-readable schedule, so the calendar is maintained by hand.
// Entries carry no provider IDs; identifiers are assigned during event catalog
// assembly.
func CuratedDartsEvents() []event.Event {
	return []event.Event{
		{Name: "2026 PDC World Darts Championship", Date: "2025-12-15", DateTo: "2026-01-03", Sport: "Darts", Competition: "World Championship", Level: event.LevelWorld, Source: SourcePDC, Locations: []event.Location{{Country: "United Kingdom", City: "London"}}},
		{Name: "2026 WDF World Championship", Date: "2026-01-04", DateTo: "2026-01-12", Sport: "Darts", Competition: "WDF World Championship", Level: event.LevelWorld, Source: SourceWDF, Locations: []event.Location{{Country: "United Kingdom", City: "Lakeside"}}},
		{Name: "2026 Masters", Date: "2026-01-30", DateTo: "2026-02-02", Sport: "Darts", Competition: "Masters", Level: event.LevelWorld, Source: SourcePDC, Locations: []event.Location{{Country: "United Kingdom", City: "Milton Keynes"}}},
		{Name: "2026 Premier League Darts", Date: "2026-02-05", DateTo: "2026-05-28", Sport: "Darts", Competition: "Premier League", Level: event.LevelWorld, Source: SourcePDC, Locations: []event.Location{{Country: "United Kingdom", City: "Various"}}},
		{Name: "2026 UK Open", Date: "2026-02-28", DateTo: "2026-03-01", Sport: "Darts", Competition: "UK Open", Level: event.LevelWorld, Source: SourcePDC, Locations: []event.Location{{Country: "United Kingdom", City: "Minehead"}}},
		{Name: "2026 European Darts Open", Date: "2026-03-21", DateTo: "2026-03-23", Sport: "Darts", Competition: "European Tour", Level: event.LevelContinental, Source: SourcePDC, Locations: []event.Location{{Country: "Germany", City: "Leverkusen"}}},
		{Name: "2026 Belgian Darts Open", Date: "2026-04-11", DateTo: "2026-04-13", Sport: "Darts", Competition: "European Tour", Level: event.LevelContinental, Source: SourcePDC, Locations: []event.Location{{Country: "Belgium", City: "Wieze"}}},
		{Name: "2026 German Darts Masters", Date: "2026-05-02", DateTo: "2026-05-04", Sport: "Darts", Competition: "European Tour", Level: event.LevelContinental, Source: SourcePDC, Locations: []event.Location{{Country: "Germany", City: "Hildesheim"}}},
		{Name: "2026 Dutch Darts Masters", Date: "2026-05-30", DateTo: "2026-06-01", Sport: "Darts", Competition: "European Tour", Level: event.LevelContinental, Source: SourcePDC, Locations: []event.Location{{Country: "Netherlands", City: "Zwolle"}}},
		{Name: "2026 US Darts Masters", Date: "2026-06-06", DateTo: "2026-06-07", Sport: "Darts", Competition: "World Series", Level: event.LevelWorld, Source: SourcePDC, Locations: []event.Location{{Country: "United States", City: "New York"}}},
		{Name: "2026 World Cup of Darts", Date: "2026-06-11", DateTo: "2026-06-14", Sport: "Darts", Competition: "World Cup", Level: event.LevelWorld, Source: SourcePDC, Locations: []event.Location{{Country: "Germany", City: "Frankfurt"}}},
		{Name: "2026 Czech Darts Open", Date: "2026-06-20", DateTo: "2026-06-22", Sport: "Darts", Competition: "European Tour", Level: event.LevelContinental, Source: SourcePDC, Locations: []event.Location{{Country: "Czech Republic", City: "Prague"}}},
		{Name: "2026 World Matchplay", Date: "2026-07-18", DateTo: "2026-07-26", Sport: "Darts", Competition: "World Matchplay", Level: event.LevelWorld, Source: SourcePDC, Locations: []event.Location{{Country: "United Kingdom", City: "Blackpool"}}},
		{Name: "2026 Nordic Darts Masters", Date: "2026-09-05", DateTo: "2026-09-06", Sport: "Darts", Competition: "World Series", Level: event.LevelContinental, Source: SourcePDC, Locations: []event.Location{{Country: "Denmark", City: "Copenhagen"}}},
		{Name: "2026 Austrian Darts Open", Date: "2026-09-12", DateTo: "2026-09-14", Sport: "Darts", Competition: "European Tour", Level: event.LevelContinental, Source: SourcePDC, Locations: []event.Location{{Country: "Austria", City: "Graz"}}},
		{Name: "2026 World Series of Darts Finals", Date: "2026-09-19", DateTo: "2026-09-20", Sport: "Darts", Competition: "World Series", Level: event.LevelWorld, Source: SourcePDC, Locations: []event.Location{{Country: "Netherlands", City: "Amsterdam"}}},
		{Name: "2026 World Grand Prix", Date: "2026-10-05", DateTo: "2026-10-11", Sport: "Darts", Competition: "World Grand Prix", Level: event.LevelWorld, Source: SourcePDC, Locations: []event.Location{{Country: "Ireland", City: "Dublin"}}},
		{Name: "2026 European Championship", Date: "2026-10-29", DateTo: "2026-11-01", Sport: "Darts", Competition: "European Championship", Level: event.LevelWorld, Source: SourcePDC, Locations: []event.Location{{Country: "Germany", City: "Dortmund"}}},
		{Name: "2026 Grand Slam of Darts", Date: "2026-11-08", DateTo: "2026-11-16", Sport: "Darts", Competition: "Grand Slam", Level: event.LevelWorld, Source: SourcePDC, Locations: []event.Location{{Country: "United Kingdom", City: "Wolverhampton"}}},
		{Name: "2026 Players Championship Finals", Date: "2026-11-27", DateTo: "2026-11-29", Sport: "Darts", Competition: "Players Championship Finals", Level: event.LevelWorld, Source: SourcePDC, Locations: []event.Location{{Country: "United Kingdom", City: "Minehead"}}},
	}
}

// CuratedHorseRacingEvents returns the major flat and jump racing calendar
// for 2026.
func CuratedHorseRacingEvents() []event.Event {
	racing := func(name, date, dateTo, country, city string, level event.Level) event.Event {
		return event.Event{
			Name:        name,
			Date:        date,
			DateTo:      dateTo,
			Sport:       "Horse Racing",
			Competition: "Major Racing",
			Level:       level,
			Source:      SourceStatic,
			Locations:   []event.Location{{Country: country, City: city}},
		}
	}

	return []event.Event{
		racing("2026 Pegasus World Cup", "2026-01-24", "", "United States", "Hallandale Beach", event.LevelWorld),
		racing("2026 Cheltenham Festival", "2026-03-10", "2026-03-13", "United Kingdom", "Cheltenham", event.LevelWorld),
		racing("2026 Dubai World Cup", "2026-03-28", "", "United Arab Emirates", "Dubai", event.LevelWorld),
		racing("2026 Grand National", "2026-04-04", "", "United Kingdom", "Liverpool", event.LevelWorld),
		racing("2026 Kentucky Derby", "2026-05-02", "", "United States", "Louisville", event.LevelWorld),
		racing("2026 Preakness Stakes", "2026-05-16", "", "United States", "Baltimore", event.LevelWorld),
		racing("2026 Epsom Derby", "2026-06-06", "", "United Kingdom", "Epsom", event.LevelWorld),
		racing("2026 Belmont Stakes", "2026-06-06", "", "United States", "Elmont", event.LevelWorld),
		racing("2026 Prix du Jockey Club", "2026-06-07", "", "France", "Chantilly", event.LevelWorld),
		racing("2026 Royal Ascot", "2026-06-16", "2026-06-20", "United Kingdom", "Ascot", event.LevelWorld),
		racing("2026 Irish Derby", "2026-06-28", "", "Ireland", "Curragh", event.LevelWorld),
		racing("2026 King George VI and Queen Elizabeth Stakes", "2026-07-25", "", "United Kingdom", "Ascot", event.LevelWorld),
		racing("2026 Galway Races", "2026-07-27", "2026-08-02", "Ireland", "Galway", event.LevelContinental),
		racing("2026 Glorious Goodwood", "2026-07-28", "2026-08-01", "United Kingdom", "Goodwood", event.LevelContinental),
		racing("2026 St Leger", "2026-09-12", "", "United Kingdom", "Doncaster", event.LevelWorld),
		racing("2026 Prix de l'Arc de Triomphe", "2026-10-04", "", "France", "Paris", event.LevelWorld),
		racing("2026 Champions Day", "2026-10-17", "", "United Kingdom", "Ascot", event.LevelWorld),
		racing("2026 The Everest", "2026-10-17", "", "Australia", "Sydney", event.LevelWorld),
		racing("2026 Cox Plate", "2026-10-24", "", "Australia", "Melbourne", event.LevelWorld),
		racing("2026 Melbourne Cup", "2026-11-03", "", "Australia", "Melbourne", event.LevelWorld),
		racing("2026 Breeders' Cup", "2026-11-06", "2026-11-07", "United States", "TBD", event.LevelWorld),
		racing("2026 Japan Cup", "2026-11-29", "", "Japan", "Tokyo", event.LevelWorld),
		racing("2026 Hong Kong International Races", "2026-12-13", "", "Hong Kong", "Sha Tin", event.LevelWorld),
		racing("2026 Leopardstown Christmas Festival", "2026-12-26", "2026-12-29", "Ireland", "Dublin", event.LevelContinental),
	}
}
