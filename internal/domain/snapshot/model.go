package snapshot

import (
	"fmt"
	"time"
)

// Snapshot is the persisted record of one completed pipeline run.
type Snapshot struct {
	ID                    int64
	RunAt                 time.Time
	Countries             int
	TotalLeagues          int
	LeaguesWithPopularity int
	LeaguesWithSeason     int
	EventsTotal           int
	Payload               []byte
}

func (s Snapshot) Validate() error {
	if s.RunAt.IsZero() {
		return fmt.Errorf("snapshot run time is required")
	}
	if s.Countries < 0 || s.TotalLeagues < 0 {
		return fmt.Errorf("snapshot counts cannot be negative")
	}

	return nil
}
