// Package allsportdb pulls the multi-sport event calendar from the
// AllSportDB API. Competitions carry the age-group labels the merger
// filters on, so the calendar fetch joins them in.
package allsportdb

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
	"github.com/sportatlas/catalog/internal/platform/logging"
)

const (
	defaultBaseURL   = "https://api.allsportdb.com/v3"
	maxResponseBytes = 6 << 20
	pageSize         = 100
	maxPages         = 200
)

var errAllSportDBTransient = crerr.New("allsportdb transient failure")

// DefaultCalendarSports are the sports whose competitions are prefetched
// for age-group labeling. The calendar itself is fetched unfiltered.
func DefaultCalendarSports() []string {
	return []string{
		"Football", "Basketball", "Ice Hockey", "Baseball", "Tennis",
		"Rugby", "Cricket", "Motorsport", "Cycling", "MMA",
	}
}

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Timeout    time.Duration
	MaxRetries int
	Sports     []string
	Logger     *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	maxRetries int
	sports     []string
	logger     *logging.Logger
	backoff    func(attempt int) time.Duration
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
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	sports := cfg.Sports
	if len(sports) == 0 {
		sports = DefaultCalendarSports()
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		maxRetries: maxRetries,
		sports:     sports,
		logger:     logger,
		// The API rate-limits aggressively; back off in growing steps.
		backoff: func(attempt int) time.Duration {
			return time.Duration(1<<attempt) * 2 * time.Second
		},
	}
}

type competitionModel struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Sport    string `json:"sport"`
	AgeGroup string `json:"ageGroup"`
}

type calendarItemModel struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	DateFrom      string `json:"dateFrom"`
	DateTo        string `json:"dateTo"`
	Sport         string `json:"sport"`
	Competition   string `json:"competition"`
	CompetitionID int64  `json:"competitionId"`
	Location      []struct {
		Name      string `json:"name"`
		Locations []struct {
			Name string `json:"name"`
		} `json:"locations"`
	} `json:"location"`
}

// FetchCalendar returns every calendar entry between from and to (ISO days,
// inclusive) as events keyed by the provider's own id space. Age-group
// labels come from the competitions endpoint; a competition the prefetch
// missed leaves the label empty, which the merger treats as senior.
func (c *Client) FetchCalendar(ctx context.Context, from, to string) ([]event.Event, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("calendar window is required")
	}

	ageGroups, err := c.competitionAgeGroups(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "competition prefetch failed, age groups unlabeled", "error", err)
		ageGroups = map[int64]string{}
	}

	items, err := fetchPages[calendarItemModel](ctx, c, "calendar", map[string]string{
		"dateFrom": from,
		"dateTo":   to,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch calendar from=%s to=%s: %w", from, to, err)
	}

	events := make([]event.Event, 0, len(items))
	for _, item := range items {
		if item.ID <= 0 || item.Name == "" {
			continue
		}
		start, ok := parseISODay(item.DateFrom)
		if !ok {
			continue
		}
		end := start
		if parsed, ok := parseISODay(item.DateTo); ok {
			end = parsed
		}

		locations := make([]event.Location, 0, len(item.Location))
		for _, loc := range item.Location {
			if loc.Name == "" {
				continue
			}
			city := ""
			if len(loc.Locations) > 0 {
				city = loc.Locations[0].Name
			}
			locations = append(locations, event.Location{Country: loc.Name, City: city})
		}

		events = append(events, event.Event{
			ID:          item.ID,
			Name:        item.Name,
			Date:        start,
			DateTo:      end,
			Sport:       item.Sport,
			Competition: item.Competition,
			AgeGroup:    ageGroups[item.CompetitionID],
			Source:      "allsportdb",
			Locations:   locations,
		})
	}

	c.logger.DebugContext(ctx, "fetched calendar", "events", len(events), "from", from, "to", to)

	return events, nil
}

// competitionAgeGroups prefetches the tracked sports' competitions and
// indexes their age-group labels by competition id.
func (c *Client) competitionAgeGroups(ctx context.Context) (map[int64]string, error) {
	out := make(map[int64]string, 256)
	for _, sport := range c.sports {
		competitions, err := fetchPages[competitionModel](ctx, c, "competitions", map[string]string{"sport": sport})
		if err != nil {
			return nil, fmt.Errorf("fetch competitions sport=%s: %w", sport, err)
		}
		for _, comp := range competitions {
			if comp.ID > 0 && comp.AgeGroup != "" {
				out[comp.ID] = comp.AgeGroup
			}
		}
	}
	return out, nil
}

// fetchPages walks a paginated endpoint until a short page ends the walk.
func fetchPages[T any](ctx context.Context, c *Client, endpoint string, params map[string]string) ([]T, error) {
	all := make([]T, 0, pageSize)
	for page := 1; page <= maxPages; page++ {
		values := url.Values{}
		for key, value := range params {
			values.Set(key, value)
		}
		values.Set("page", strconv.Itoa(page))
		fullURL := c.baseURL + "/" + endpoint + "?" + values.Encode()

		raw, err := c.doWithRetries(ctx, fullURL)
		if err != nil {
			return nil, err
		}
		items, err := decodePage[T](raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s page %d: %w", endpoint, page, err)
		}
		if len(items) == 0 {
			break
		}
		all = append(all, items...)
		if len(items) < pageSize {
			break
		}
	}
	return all, nil
}

// decodePage accepts both response shapes the API serves: a bare array and
// an object wrapping the array under "data" or "items".
func decodePage[T any](raw []byte) ([]T, error) {
	var direct []T
	if err := sonic.Unmarshal(raw, &direct); err == nil {
		return direct, nil
	}

	var wrapped struct {
		Data  []T `json:"data"`
		Items []T `json:"items"`
	}
	if err := sonic.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	if len(wrapped.Data) > 0 {
		return wrapped.Data, nil
	}
	return wrapped.Items, nil
}

func (c *Client) doWithRetries(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errAllSportDBTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errAllSportDBTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d", errAllSportDBTransient, resp.StatusCode)
			default:
				return nil, fmt.Errorf("provider status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(c.backoff(attempt))
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

func parseISODay(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
