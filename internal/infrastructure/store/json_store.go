package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/valyala/bytebufferpool"

	"github.com/sportatlas/catalog/internal/domain/catalog"
	"github.com/sportatlas/catalog/internal/domain/event"
	"github.com/sportatlas/catalog/internal/domain/league"
	"github.com/sportatlas/catalog/internal/domain/signal"
	"github.com/sportatlas/catalog/internal/domain/taxonomy"
	"github.com/sportatlas/catalog/internal/platform/logging"
)

const (
	FilePageViews       = "wikipedia_popularity.json"
	FileTrends          = "google_trends.json"
	FileSeasons         = "league_seasons.json"
	FileScheduledEvents = "scheduled_events.json"
	FileLeagues         = "leagues_by_country.json"
	FileReference       = "major_sports_by_country.json"
	FileCatalog         = "sports_catalog.json"
	FileEventCatalog    = "sports_events.json"
)

// Store reads provider payloads from and writes pipeline outputs to a flat
// directory of JSON files. Records failing validation are skipped with a
// warning rather than failing the whole load.
type Store struct {
	dir      string
	validate *validator.Validate
	logger   *logging.Logger
}

func NewStore(dir string, logger *logging.Logger) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, crerr.New("store: data dir cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Store{
		dir:      dir,
		validate: validator.New(),
		logger:   logger,
	}, nil
}

// Dir reports the directory the store reads from and writes to.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) LoadPageViews(ctx context.Context) (map[string]signal.PageViews, error) {
	raw := make(map[string]signal.PageViews)
	if err := s.readJSON(FilePageViews, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]signal.PageViews, len(raw))
	for name, record := range raw {
		if err := s.validate.StructCtx(ctx, record); err != nil {
			s.logger.WarnContext(ctx, "skipping invalid pageviews record", "league", name, "error", err)
			continue
		}
		out[name] = record
	}

	return out, nil
}

func (s *Store) LoadTrends(ctx context.Context) (map[string]signal.TrendsIndex, error) {
	raw := make(map[string]signal.TrendsIndex)
	if err := s.readJSON(FileTrends, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]signal.TrendsIndex, len(raw))
	for name, record := range raw {
		if err := s.validate.StructCtx(ctx, record); err != nil {
			s.logger.WarnContext(ctx, "skipping invalid trends record", "league", name, "error", err)
			continue
		}
		out[name] = record
	}

	return out, nil
}

func (s *Store) LoadSeasons(ctx context.Context) (map[string]signal.SeasonInfo, error) {
	raw := make(map[string]signal.SeasonInfo)
	if err := s.readJSON(FileSeasons, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]signal.SeasonInfo, len(raw))
	for name, record := range raw {
		if err := s.validate.StructCtx(ctx, record); err != nil {
			s.logger.WarnContext(ctx, "skipping invalid season record", "league", name, "error", err)
			continue
		}
		out[name] = record
	}

	return out, nil
}

func (s *Store) LoadScheduledEvents(ctx context.Context) ([]event.Event, error) {
	var raw []event.Event
	if err := s.readJSON(FileScheduledEvents, &raw); err != nil {
		return nil, err
	}

	out := make([]event.Event, 0, len(raw))
	for _, record := range raw {
		if err := record.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skipping invalid scheduled event", "event", record.Name, "error", err)
			continue
		}
		out = append(out, record)
	}

	return out, nil
}

func (s *Store) LoadLeagues(ctx context.Context) (map[string][]league.League, error) {
	out := make(map[string][]league.League)
	if err := s.readJSON(FileLeagues, &out); err != nil {
		return nil, err
	}

	total := 0
	for _, leagues := range out {
		total += len(leagues)
	}
	s.logger.DebugContext(ctx, "loaded league inventory", "countries", len(out), "leagues", total)

	return out, nil
}

// countryReferenceModel is the on-disk row of the reference table.
type countryReferenceModel struct {
	Code        string   `json:"code"`
	MajorSports []string `json:"major_sports" validate:"required,min=1"`
	Notes       string   `json:"notes"`
}

func (s *Store) LoadCountryReference(ctx context.Context) (map[string]taxonomy.CountryReference, error) {
	raw := make(map[string]countryReferenceModel)
	if err := s.readJSON(FileReference, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]taxonomy.CountryReference, len(raw))
	for country, record := range raw {
		if err := s.validate.StructCtx(ctx, record); err != nil {
			s.logger.WarnContext(ctx, "skipping invalid reference row", "country", country, "error", err)
			continue
		}
		out[country] = taxonomy.CountryReference{
			Code:        record.Code,
			MajorSports: record.MajorSports,
			Notes:       record.Notes,
		}
	}

	return out, nil
}

func (s *Store) SavePageViews(ctx context.Context, records map[string]signal.PageViews) error {
	return s.writeJSON(ctx, FilePageViews, records)
}

func (s *Store) SaveTrends(ctx context.Context, records map[string]signal.TrendsIndex) error {
	return s.writeJSON(ctx, FileTrends, records)
}

func (s *Store) SaveSeasons(ctx context.Context, records map[string]signal.SeasonInfo) error {
	return s.writeJSON(ctx, FileSeasons, records)
}

func (s *Store) SaveScheduledEvents(ctx context.Context, records []event.Event) error {
	return s.writeJSON(ctx, FileScheduledEvents, records)
}

func (s *Store) SaveCatalog(ctx context.Context, c *catalog.Catalog) error {
	if c == nil {
		return crerr.New("store: catalog cannot be nil")
	}
	return s.writeJSON(ctx, FileCatalog, catalogDocument(c))
}

func (s *Store) SaveEventCatalog(ctx context.Context, c *catalog.EventCatalog) error {
	if c == nil {
		return crerr.New("store: event catalog cannot be nil")
	}
	return s.writeJSON(ctx, FileEventCatalog, c)
}

// EncodeCatalog serializes the catalog in the same document shape SaveCatalog
// writes, for callers persisting it elsewhere.
func (s *Store) EncodeCatalog(c *catalog.Catalog) ([]byte, error) {
	if c == nil {
		return nil, crerr.New("store: catalog cannot be nil")
	}
	out, err := sonic.Marshal(catalogDocument(c))
	if err != nil {
		return nil, crerr.Wrap(err, "encode catalog")
	}
	return out, nil
}

func (s *Store) readJSON(name string, target any) error {
	path := filepath.Join(s.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return crerr.Wrapf(err, "read %s", name)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s", name)
	}

	return nil
}

func (s *Store) writeJSON(ctx context.Context, name string, payload any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return crerr.Wrapf(err, "encode %s", name)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return crerr.Wrapf(err, "create data dir %s", s.dir)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return crerr.Wrapf(err, "write %s", name)
	}
	if err := os.Rename(tmp, path); err != nil {
		return crerr.Wrapf(err, "replace %s", name)
	}

	s.logger.DebugContext(ctx, "wrote data file", "file", name, "bytes", buf.Len())

	return nil
}

func catalogDocument(c *catalog.Catalog) map[string]any {
	countries := make(map[string]any, len(c.Countries))
	for code, country := range c.Countries {
		countries[code] = countryDocument(country)
	}

	return map[string]any{
		"_meta":     c.Meta,
		"countries": countries,
	}
}

func countryDocument(c *catalog.Country) map[string]any {
	bySport := make(map[string]any, len(c.LeaguesBySport))
	for sport, leagues := range c.LeaguesBySport {
		docs := make([]map[string]any, 0, len(leagues))
		for _, l := range leagues {
			docs = append(docs, leagueDocument(l))
		}
		bySport[sport] = docs
	}

	doc := map[string]any{
		"code":             c.Code,
		"major_sports":     c.MajorSports,
		"leagues_by_sport": bySport,
		"coverage":         c.Coverage,
		"stats":            c.Stats,
	}
	if c.Notes != "" {
		doc["notes"] = c.Notes
	}

	return doc
}

// leagueDocument nests the fused result under a "popularity" block, with
// per-source sub-scores as "<source>_score" keys and the raw signal values
// under their metric names, next to the fused score and tier.
func leagueDocument(l *league.League) map[string]any {
	doc := map[string]any{"name": l.Name}
	if l.Popularity != nil {
		pop := map[string]any{
			"score":   l.Popularity.Score,
			"tier":    string(l.Popularity.Tier),
			"sources": l.Popularity.Sources,
		}
		for _, metric := range l.Popularity.Metrics {
			pop[metric.Source+"_score"] = metric.Score
			pop[metric.Metric] = metric.Raw
		}
		doc["popularity"] = pop
	}
	if l.Season != nil {
		doc["season"] = l.Season
	}

	return doc
}
