// Package sportsdb talks to TheSportsDB's JSON API for league metadata,
// current-season windows, and round fixtures.
package sportsdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sportatlas/catalog/internal/domain/event"
	"github.com/sportatlas/catalog/internal/platform/cache"
	"github.com/sportatlas/catalog/internal/platform/logging"
	"github.com/sportatlas/catalog/internal/platform/resilience"
	"github.com/sportatlas/catalog/internal/usecase"
)

const (
	defaultBaseURL   = "https://www.thesportsdb.com/api/v1/json/3"
	maxResponseBytes = 6 << 20
)

var errSportsDBTransient = crerr.New("sportsdb transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	CacheTTL       time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	cache          *cache.Store
	now            func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		cache:          cache.NewStore(cacheTTL),
		now:            time.Now,
	}
}

type leagueModel struct {
	ID            string `json:"idLeague"`
	Name          string `json:"strLeague"`
	Sport         string `json:"strSport"`
	Country       string `json:"strCountry"`
	CurrentSeason string `json:"strCurrentSeason"`
}

type searchEnvelope struct {
	Countries []leagueModel `json:"countries"`
	Leagues   []leagueModel `json:"leagues"`
}

type eventModel struct {
	ID       string `json:"idEvent"`
	Date     string `json:"dateEvent"`
	HomeTeam string `json:"strHomeTeam"`
	AwayTeam string `json:"strAwayTeam"`
	League   string `json:"strLeague"`
	Sport    string `json:"strSport"`
	Venue    string `json:"strVenue"`
	Country  string `json:"strCountry"`
}

type eventsEnvelope struct {
	Events []eventModel `json:"events"`
}

type tableEnvelope struct {
	Table []struct {
		Played string `json:"intPlayed"`
	} `json:"table"`
}

// SearchLeague finds one league by the provider's search term. A miss is not
// an error.
func (c *Client) SearchLeague(ctx context.Context, term string) (usecase.ExternalLeague, bool, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return usecase.ExternalLeague{}, false, fmt.Errorf("search term is required")
	}

	var envelope searchEnvelope
	if err := c.getJSON(ctx, "/search_all_leagues.php", map[string]string{"l": term}, &envelope); err != nil {
		return usecase.ExternalLeague{}, false, fmt.Errorf("search league term=%q: %w", term, err)
	}

	candidates := envelope.Leagues
	if len(candidates) == 0 {
		// The search endpoint historically keyed its results "countries".
		for _, model := range envelope.Countries {
			if strings.Contains(strings.ToLower(model.Name), strings.ToLower(term)) {
				candidates = append(candidates, model)
			}
		}
	}
	if len(candidates) == 0 || candidates[0].ID == "" {
		return usecase.ExternalLeague{}, false, nil
	}

	model := candidates[0]
	return usecase.ExternalLeague{
		ExternalID:    model.ID,
		Name:          model.Name,
		Sport:         model.Sport,
		Country:       model.Country,
		CurrentSeason: model.CurrentSeason,
	}, true, nil
}

// SeasonWindow derives the season's date window from its fixture list.
func (c *Client) SeasonWindow(ctx context.Context, leagueID, season string) (usecase.ExternalSeasonWindow, bool, error) {
	if leagueID == "" || season == "" {
		return usecase.ExternalSeasonWindow{}, false, fmt.Errorf("league id and season are required")
	}

	var envelope eventsEnvelope
	if err := c.getJSON(ctx, "/eventsseason.php", map[string]string{"id": leagueID, "s": season}, &envelope); err != nil {
		return usecase.ExternalSeasonWindow{}, false, fmt.Errorf("fetch season events league_id=%s season=%s: %w", leagueID, season, err)
	}
	if len(envelope.Events) == 0 {
		return usecase.ExternalSeasonWindow{}, false, nil
	}

	var first, last string
	for _, e := range envelope.Events {
		if e.Date == "" {
			continue
		}
		if first == "" || e.Date < first {
			first = e.Date
		}
		if e.Date > last {
			last = e.Date
		}
	}
	if first == "" {
		return usecase.ExternalSeasonWindow{}, false, nil
	}

	return usecase.ExternalSeasonWindow{StartDate: first, EndDate: last, EventsCount: len(envelope.Events)}, true, nil
}

// CurrentRound estimates the upcoming round from games played in the
// standings table. Falls back to round 1 when the table is empty.
func (c *Client) CurrentRound(ctx context.Context, leagueID, season string) (int, error) {
	if leagueID == "" || season == "" {
		return 0, fmt.Errorf("league id and season are required")
	}

	var envelope tableEnvelope
	if err := c.getJSON(ctx, "/lookuptable.php", map[string]string{"l": leagueID, "s": season}, &envelope); err != nil {
		return 0, fmt.Errorf("fetch standings league_id=%s season=%s: %w", leagueID, season, err)
	}
	if len(envelope.Table) == 0 {
		return 1, nil
	}

	played, err := strconv.Atoi(strings.TrimSpace(envelope.Table[0].Played))
	if err != nil || played < 0 {
		return 1, nil
	}

	return played + 1, nil
}

// RoundEvents returns the round's fixtures dated today or later as events.
func (c *Client) RoundEvents(ctx context.Context, leagueID string, round int, season string) ([]event.Event, error) {
	if leagueID == "" || season == "" {
		return nil, fmt.Errorf("league id and season are required")
	}
	if round < 1 {
		return nil, fmt.Errorf("round must be >= 1")
	}

	var envelope eventsEnvelope
	params := map[string]string{"id": leagueID, "r": strconv.Itoa(round), "s": season}
	if err := c.getJSON(ctx, "/eventsround.php", params, &envelope); err != nil {
		return nil, fmt.Errorf("fetch round events league_id=%s round=%d: %w", leagueID, round, err)
	}

	today := c.now().Format("2006-01-02")
	out := make([]event.Event, 0, len(envelope.Events))
	for _, model := range envelope.Events {
		if model.Date == "" || model.Date < today {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(model.ID), 10, 64)
		if err != nil || id <= 0 {
			continue
		}

		e := event.Event{
			ID:          id,
			Name:        fmt.Sprintf("%s vs %s", model.HomeTeam, model.AwayTeam),
			Date:        model.Date,
			Sport:       model.Sport,
			Competition: model.League,
			Level:       event.LevelNational,
			Source:      "thesportsdb",
		}
		if model.Country != "" || model.Venue != "" {
			e.Locations = []event.Location{{Country: model.Country, City: model.Venue}}
		}
		out = append(out, e)
	}

	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params map[string]string, target any) error {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	cached, err := c.cache.GetOrLoad(ctx, fullURL, func(ctx context.Context) (any, error) {
		out, loadErr, _ := c.flight.Do(fullURL, func() (any, error) {
			return c.execute(ctx, fullURL)
		})
		return out, loadErr
	})
	if err != nil {
		return err
	}

	raw, ok := cached.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", cached)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sportsdb circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: sports data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	raw, err := c.doWithRetries(ctx, fullURL)
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, errSportsDBTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}

	return raw, err
}

func (c *Client) doWithRetries(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errSportsDBTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errSportsDBTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d", errSportsDBTransient, resp.StatusCode)
			default:
				return nil, fmt.Errorf("provider status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
