package postgres

import (
	"time"

	"github.com/sportatlas/catalog/internal/domain/snapshot"
)

type snapshotModel struct {
	ID                    int64     `db:"id"`
	RunAt                 time.Time `db:"run_at"`
	Countries             int       `db:"countries"`
	TotalLeagues          int       `db:"total_leagues"`
	LeaguesWithPopularity int       `db:"leagues_with_popularity"`
	LeaguesWithSeason     int       `db:"leagues_with_season"`
	EventsTotal           int       `db:"events_total"`
	Payload               []byte    `db:"payload"`
}

func (m snapshotModel) toDomain() snapshot.Snapshot {
	return snapshot.Snapshot{
		ID:                    m.ID,
		RunAt:                 m.RunAt,
		Countries:             m.Countries,
		TotalLeagues:          m.TotalLeagues,
		LeaguesWithPopularity: m.LeaguesWithPopularity,
		LeaguesWithSeason:     m.LeaguesWithSeason,
		EventsTotal:           m.EventsTotal,
		Payload:               m.Payload,
	}
}
