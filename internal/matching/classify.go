package matching

import (
	"strings"

	"github.com/sportatlas/catalog/internal/domain/event"
)

// KeywordSets configures the level classifier. The competition lists name
// specific known competitions; the keyword lists are generic fragments. All
// entries are matched as lower-case substrings.
type KeywordSets struct {
	WorldCompetitions       []string
	ContinentalCompetitions []string
	WorldKeywords           []string
	ContinentalKeywords     []string
	NationalKeywords        []string
}

// DefaultKeywordSets mirrors the curated fragments used by the event build.
func DefaultKeywordSets() KeywordSets {
	return KeywordSets{
		WorldCompetitions: []string{
			"fifa world cup", "world championship", "olympic games",
			"world cup of darts",
		},
		ContinentalCompetitions: []string{
			"uefa champions league", "copa america", "africa cup of nations",
			"european tour", "asian games",
		},
		WorldKeywords:       []string{"world", "mondial", "olympics", "olympic", "global"},
		ContinentalKeywords: []string{"european", "euro ", "asian", "african", "continental", "champions league"},
		NationalKeywords:    []string{"national", "championship", "cup", "league"},
	}
}

// LevelClassifier assigns an ordinal competition level from name and
// competition text using a fixed precision hierarchy: the known-competition
// lists outrank the generic keyword scans, which outrank the catch-all.
type LevelClassifier struct {
	sets KeywordSets
}

func NewLevelClassifier(sets KeywordSets) *LevelClassifier {
	return &LevelClassifier{sets: sets}
}

// Classify returns the first level whose fragment set matches; later checks
// are skipped once one fires. "2026 UEFA European Championship" is
// Continental even though "championship" is also a National keyword.
func (c *LevelClassifier) Classify(name, competition string) event.Level {
	text := strings.ToLower(name + " " + competition)

	switch {
	case containsAny(text, c.sets.WorldCompetitions):
		return event.LevelWorld
	case containsAny(text, c.sets.ContinentalCompetitions):
		return event.LevelContinental
	case containsAny(text, c.sets.WorldKeywords):
		return event.LevelWorld
	case containsAny(text, c.sets.ContinentalKeywords):
		return event.LevelContinental
	case containsAny(text, c.sets.NationalKeywords):
		return event.LevelNational
	default:
		return event.LevelOther
	}
}

func containsAny(text string, fragments []string) bool {
	for _, fragment := range fragments {
		if fragment != "" && strings.Contains(text, fragment) {
			return true
		}
	}
	return false
}
