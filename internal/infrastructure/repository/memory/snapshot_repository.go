package memory

import (
	"context"
	"sync"

	"github.com/sportatlas/catalog/internal/domain/snapshot"
)

// SnapshotRepository keeps snapshots in memory, for runs without a database.
type SnapshotRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  []snapshot.Snapshot
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{nextID: 1}
}

func (r *SnapshotRepository) Save(_ context.Context, s snapshot.Snapshot) (int64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.items = append(r.items, s)

	return s.ID, nil
}

func (r *SnapshotRepository) Latest(_ context.Context) (snapshot.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.items) == 0 {
		return snapshot.Snapshot{}, false, nil
	}

	latest := r.items[0]
	for _, s := range r.items[1:] {
		if s.RunAt.After(latest.RunAt) || (s.RunAt.Equal(latest.RunAt) && s.ID > latest.ID) {
			latest = s
		}
	}

	return latest, true, nil
}
