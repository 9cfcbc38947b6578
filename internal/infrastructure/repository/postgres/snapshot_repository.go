package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sportatlas/catalog/internal/domain/snapshot"
)

type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Save(ctx context.Context, s snapshot.Snapshot) (int64, error) {
	if err := s.Validate(); err != nil {
		return 0, fmt.Errorf("validate snapshot: %w", err)
	}

	const query = `INSERT INTO catalog_snapshots
(run_at, countries, total_leagues, leagues_with_popularity, leagues_with_season, events_total, payload)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		s.RunAt.UTC(),
		s.Countries,
		s.TotalLeagues,
		s.LeaguesWithPopularity,
		s.LeaguesWithSeason,
		s.EventsTotal,
		s.Payload,
	)
	if err != nil {
		return 0, fmt.Errorf("insert snapshot: %w", err)
	}

	return id, nil
}

func (r *SnapshotRepository) Latest(ctx context.Context) (snapshot.Snapshot, bool, error) {
	const query = `SELECT id, run_at, countries, total_leagues, leagues_with_popularity, leagues_with_season, events_total, payload
FROM catalog_snapshots
ORDER BY run_at DESC, id DESC
LIMIT 1`

	var model snapshotModel
	err := r.db.GetContext(ctx, &model, query)
	if errors.Is(err, sql.ErrNoRows) {
		return snapshot.Snapshot{}, false, nil
	}
	if err != nil {
		return snapshot.Snapshot{}, false, fmt.Errorf("select latest snapshot: %w", err)
	}

	return model.toDomain(), true, nil
}
