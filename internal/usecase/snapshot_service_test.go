package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sportatlas/catalog/internal/domain/catalog"
	"github.com/sportatlas/catalog/internal/domain/league"
	"github.com/sportatlas/catalog/internal/domain/snapshot"
)

type snapshotRepoMock struct {
	mock.Mock
}

func (m *snapshotRepoMock) Save(ctx context.Context, s snapshot.Snapshot) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *snapshotRepoMock) Latest(ctx context.Context) (snapshot.Snapshot, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(snapshot.Snapshot), args.Bool(1), args.Error(2)
}

func testSnapshotCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Meta: catalog.Meta{LeaguesWithPopularity: 2, LeaguesWithSeason: 1},
		Countries: map[string]*catalog.Country{
			"England": {
				Code: "England",
				LeaguesBySport: map[string][]*league.League{
					"Football": {{Name: "Premier League"}, {Name: "Championship"}},
				},
			},
			"Germany": {
				Code: "Germany",
				LeaguesBySport: map[string][]*league.League{
					"Football": {{Name: "Bundesliga"}},
				},
			},
		},
	}
}

func TestRecordRunCountsCatalog(t *testing.T) {
	t.Parallel()

	repo := &snapshotRepoMock{}
	svc, err := NewSnapshotService(repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	runAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return runAt }

	events := &catalog.EventCatalog{Summary: catalog.EventSummary{TotalCount: 44}}

	repo.
		On("Save", mock.Anything, mock.MatchedBy(func(s snapshot.Snapshot) bool {
			return s.RunAt.Equal(runAt) &&
				s.Countries == 2 &&
				s.TotalLeagues == 3 &&
				s.LeaguesWithPopularity == 2 &&
				s.LeaguesWithSeason == 1 &&
				s.EventsTotal == 44 &&
				string(s.Payload) == `{"countries":{}}`
		})).
		Return(int64(7), nil).
		Once()

	id, err := svc.RecordRun(context.Background(), testSnapshotCatalog(), events, []byte(`{"countries":{}}`))
	if err != nil {
		t.Fatalf("record run: %v", err)
	}
	if id != 7 {
		t.Fatalf("unexpected snapshot id: got=%d want=7", id)
	}
	repo.AssertExpectations(t)
}

func TestRecordRunRequiresCatalog(t *testing.T) {
	t.Parallel()

	repo := &snapshotRepoMock{}
	svc, err := NewSnapshotService(repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.RecordRun(context.Background(), nil, nil, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecordRunPropagatesRepositoryError(t *testing.T) {
	t.Parallel()

	repo := &snapshotRepoMock{}
	svc, err := NewSnapshotService(repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.
		On("Save", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("connection refused")).
		Once()

	if _, err := svc.RecordRun(context.Background(), testSnapshotCatalog(), nil, nil); err == nil {
		t.Fatal("expected repository error to propagate")
	}
	repo.AssertExpectations(t)
}

func TestLatestDelegates(t *testing.T) {
	t.Parallel()

	repo := &snapshotRepoMock{}
	svc, err := NewSnapshotService(repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := snapshot.Snapshot{ID: 3, RunAt: time.Now(), Countries: 5}
	repo.On("Latest", mock.Anything).Return(want, true, nil).Once()

	got, ok, err := svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if !ok || got.ID != 3 {
		t.Fatalf("unexpected snapshot: ok=%v id=%d", ok, got.ID)
	}
	repo.AssertExpectations(t)
}
