package event

import "fmt"

// Level is the ordinal competition level of an event. Lower is bigger.
type Level int

const (
	LevelWorld       Level = 1
	LevelContinental Level = 2
	LevelNational    Level = 3
	LevelOther       Level = 4
)

func (l Level) String() string {
	switch l {
	case LevelWorld:
		return "World"
	case LevelContinental:
		return "Continental"
	case LevelNational:
		return "National"
	case LevelOther:
		return "Other"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

func (l Level) Valid() bool {
	return l >= LevelWorld && l <= LevelOther
}

// Location is one stop of an event, ordered as reported by the provider.
type Location struct {
	Country string `json:"country"`
	City    string `json:"city,omitempty"`
}

// Event is a single scheduled competition or tournament. ID is scoped to the
// originating provider until the merger assigns a globally unique one.
type Event struct {
	ID          int64      `json:"id,omitempty"`
	Name        string     `json:"name"`
	Date        string     `json:"date"`
	DateTo      string     `json:"dateTo,omitempty"`
	Sport       string     `json:"sport"`
	Competition string     `json:"competition,omitempty"`
	AgeGroup    string     `json:"ageGroup,omitempty"`
	Level       Level      `json:"level"`
	Source      string     `json:"source,omitempty"`
	Locations   []Location `json:"locations"`
}

func (e Event) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("event name is required")
	}
	if e.Date == "" {
		return fmt.Errorf("event date is required")
	}
	if e.Level != 0 && !e.Level.Valid() {
		return fmt.Errorf("event level %d outside 1-4", e.Level)
	}

	return nil
}
