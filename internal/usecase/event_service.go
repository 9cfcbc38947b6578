package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sportatlas/catalog/internal/domain/catalog"
	"github.com/sportatlas/catalog/internal/domain/event"
	"github.com/sportatlas/catalog/internal/matching"
	"github.com/sportatlas/catalog/internal/platform/logging"
)

// surrogateIDOffset keeps freshly allocated ids clear of every provider
// assigned id as long as the offset exceeds the largest pre-existing id.
// This is the invariant that prevents identity collisions, not an accident
// of the constant's value.
const surrogateIDOffset = 1000

const isoDateLen = len("2006-01-02")

// EventInput carries the provider sequences to merge. Scheduled events come
// from providers that assign their own ids; curated sequences are freshly
// constructed (static calendars, scraped sources) and carry no stable id.
type EventInput struct {
	Scheduled []event.Event
	Curated   [][]event.Event
}

// EventService merges independently numbered event lists into one unified,
// date-sorted calendar with globally unique ids.
type EventService struct {
	classifier *matching.LevelClassifier
	logger     *logging.Logger
}

func NewEventService(classifier *matching.LevelClassifier, logger *logging.Logger) *EventService {
	if classifier == nil {
		classifier = matching.NewLevelClassifier(matching.DefaultKeywordSets())
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &EventService{classifier: classifier, logger: logger}
}

// BuildEventCatalog drops non-senior age groups, deduplicates by exact
// display name (first seen wins, richer locations backfill), allocates
// surrogate ids for curated records
// starting at max scheduled id + surrogateIDOffset, classifies missing
// levels, truncates dates to their ISO day prefix, and stable-sorts the
// result ascending by start date.
func (s *EventService) BuildEventCatalog(ctx context.Context, input EventInput) (*catalog.EventCatalog, error) {
	ctx, span := startUsecaseSpan(ctx, "EventService.BuildEventCatalog")
	defer span.End()

	merged := make([]event.Event, 0, len(input.Scheduled))
	byName := make(map[string]int, len(input.Scheduled))
	seenIDs := make(map[int64]bool, len(input.Scheduled))
	maxID := int64(0)

	// Scheduled records without a provider id fall through to surrogate
	// allocation; emitting them with id 0 would collide with each other.
	unnumbered := make([]event.Event, 0)

	for _, e := range input.Scheduled {
		if e.Name == "" || e.Date == "" || !seniorAgeGroup(e.AgeGroup) {
			continue
		}
		if e.ID == 0 {
			unnumbered = append(unnumbered, e)
			continue
		}
		if seenIDs[e.ID] {
			continue
		}
		e = s.shape(e)
		if idx, ok := byName[e.Name]; ok {
			backfillLocations(&merged[idx], e)
			continue
		}
		seenIDs[e.ID] = true
		if e.ID > maxID {
			maxID = e.ID
		}
		byName[e.Name] = len(merged)
		merged = append(merged, e)
	}

	nextID := maxID + surrogateIDOffset
	sequences := make([][]event.Event, 0, len(input.Curated)+1)
	if len(unnumbered) > 0 {
		sequences = append(sequences, unnumbered)
	}
	sequences = append(sequences, input.Curated...)
	for _, sequence := range sequences {
		for _, e := range sequence {
			if e.Name == "" || e.Date == "" || !seniorAgeGroup(e.AgeGroup) {
				continue
			}
			e = s.shape(e)
			if idx, ok := byName[e.Name]; ok {
				backfillLocations(&merged[idx], e)
				continue
			}
			if seenIDs[nextID] {
				return nil, fmt.Errorf("%w: id %d already assigned (max provider id %d)",
					ErrIdentityCollision, nextID, maxID)
			}
			e.ID = nextID
			seenIDs[nextID] = true
			nextID++
			byName[e.Name] = len(merged)
			merged = append(merged, e)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date < merged[j].Date
	})

	summary := catalog.EventSummary{
		TotalCount: len(merged),
		BySport:    make(map[string]int),
		ByLevel:    make(map[string]int),
	}
	for _, e := range merged {
		summary.BySport[e.Sport]++
		summary.ByLevel[e.Level.String()]++
	}

	s.logger.InfoContext(ctx, "event catalog built",
		"total", summary.TotalCount,
		"scheduled", len(input.Scheduled),
		"curated_sequences", len(input.Curated),
	)

	return &catalog.EventCatalog{Events: merged, Summary: summary}, nil
}

// shape normalizes the per-record fields every provider must agree on:
// ISO day prefix dates, a classified level, and a non-nil locations slice.
func (s *EventService) shape(e event.Event) event.Event {
	if len(e.Date) > isoDateLen {
		e.Date = e.Date[:isoDateLen]
	}
	if len(e.DateTo) > isoDateLen {
		e.DateTo = e.DateTo[:isoDateLen]
	}
	if !e.Level.Valid() {
		e.Level = s.classifier.Classify(e.Name, e.Competition)
	}
	if e.Locations == nil {
		e.Locations = []event.Location{}
	}
	return e
}

// seniorAgeGroup reports whether an event belongs in the senior calendar.
// Unlabeled records pass; youth and junior age groups are dropped.
func seniorAgeGroup(label string) bool {
	return label == "" || label == "Senior"
}

func backfillLocations(kept *event.Event, dup event.Event) {
	if len(kept.Locations) == 0 && len(dup.Locations) > 0 {
		kept.Locations = append([]event.Location(nil), dup.Locations...)
	}
}
