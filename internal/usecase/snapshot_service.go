package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sportatlas/catalog/internal/domain/catalog"
	"github.com/sportatlas/catalog/internal/domain/league"
	"github.com/sportatlas/catalog/internal/domain/snapshot"
	"github.com/sportatlas/catalog/internal/platform/logging"
)

// SnapshotService records the outcome of completed pipeline runs.
type SnapshotService struct {
	repo   snapshot.Repository
	logger *logging.Logger
	now    func() time.Time
}

func NewSnapshotService(repo snapshot.Repository, logger *logging.Logger) (*SnapshotService, error) {
	if repo == nil {
		return nil, fmt.Errorf("%w: snapshot repository is required", ErrInvalidInput)
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &SnapshotService{repo: repo, logger: logger, now: time.Now}, nil
}

// RecordRun persists a summary of one finished run. The payload is the
// serialized catalog document, kept so a run can be inspected later.
func (s *SnapshotService) RecordRun(ctx context.Context, c *catalog.Catalog, events *catalog.EventCatalog, payload []byte) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "SnapshotService.RecordRun")
	defer span.End()

	if c == nil {
		return 0, fmt.Errorf("%w: catalog is required", ErrInvalidInput)
	}

	totalLeagues := 0
	c.Leagues(func(_, _ string, _ *league.League) { totalLeagues++ })

	record := snapshot.Snapshot{
		RunAt:                 s.now().UTC(),
		Countries:             len(c.Countries),
		TotalLeagues:          totalLeagues,
		LeaguesWithPopularity: c.Meta.LeaguesWithPopularity,
		LeaguesWithSeason:     c.Meta.LeaguesWithSeason,
		Payload:               payload,
	}
	if events != nil {
		record.EventsTotal = events.Summary.TotalCount
	}

	id, err := s.repo.Save(ctx, record)
	if err != nil {
		return 0, fmt.Errorf("save snapshot: %w", err)
	}

	s.logger.InfoContext(ctx, "run snapshot recorded",
		"snapshot_id", id,
		"countries", record.Countries,
		"total_leagues", record.TotalLeagues,
		"events_total", record.EventsTotal,
	)

	return id, nil
}

// Latest returns the most recent snapshot, if any.
func (s *SnapshotService) Latest(ctx context.Context) (snapshot.Snapshot, bool, error) {
	return s.repo.Latest(ctx)
}
