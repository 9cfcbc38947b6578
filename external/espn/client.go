// Package espn pulls the UFC calendar from ESPN's public scoreboard API.
package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sportatlas/catalog/internal/domain/event"
	"github.com/sportatlas/catalog/internal/platform/logging"
)

const (
	defaultBaseURL   = "https://site.api.espn.com/apis/site/v2/sports"
	maxResponseBytes = 6 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
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

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

type scoreboardEnvelope struct {
	Leagues []struct {
		Calendar []struct {
			Label     string `json:"label"`
			StartDate string `json:"startDate"`
			EndDate   string `json:"endDate"`
		} `json:"calendar"`
	} `json:"leagues"`
	Events []struct {
		Name   string `json:"name"`
		Date   string `json:"date"`
		Venues []struct {
			Address struct {
				City    string `json:"city"`
				Country string `json:"country"`
			} `json:"address"`
		} `json:"venues"`
	} `json:"events"`
}

// FetchUFCEvents returns the season's UFC calendar, year-prefixed and
// deduplicated by name. Numbered cards rank World, Fight Nights Continental.
func (c *Client) FetchUFCEvents(ctx context.Context, year int) ([]event.Event, error) {
	fullURL := c.baseURL + "/mma/ufc/scoreboard"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch ufc scoreboard: %w", err)
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, fmt.Errorf("read ufc scoreboard: %w", readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch ufc scoreboard: provider status=%d", resp.StatusCode)
	}

	var envelope scoreboardEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode ufc scoreboard: %w", err)
	}

	byName := make(map[string]int)
	events := make([]event.Event, 0, 32)

	if len(envelope.Leagues) > 0 {
		for _, entry := range envelope.Leagues[0].Calendar {
			if entry.Label == "" || entry.StartDate == "" {
				continue
			}
			start, ok := parseISODay(entry.StartDate)
			if !ok {
				continue
			}
			end := start
			if parsed, ok := parseISODay(entry.EndDate); ok {
				end = parsed
			}

			name := fmt.Sprintf("%d %s", year, entry.Label)
			if _, exists := byName[name]; exists {
				continue
			}
			byName[name] = len(events)
			events = append(events, event.Event{
				Name:        name,
				Date:        start,
				DateTo:      end,
				Sport:       "MMA",
				Competition: "UFC",
				Level:       cardLevel(entry.Label),
				Source:      "espn",
			})
		}
	}

	for _, entry := range envelope.Events {
		if entry.Name == "" || entry.Date == "" {
			continue
		}

		locations := make([]event.Location, 0, len(entry.Venues))
		for _, venue := range entry.Venues {
			if venue.Address.City == "" {
				continue
			}
			country := venue.Address.Country
			if country == "" {
				country = "USA"
			}
			locations = append(locations, event.Location{Country: country, City: venue.Address.City})
		}

		name := fmt.Sprintf("%d %s", year, entry.Name)
		if i, exists := byName[name]; exists {
			if len(locations) > 0 && len(events[i].Locations) == 0 {
				events[i].Locations = locations
			}
			continue
		}

		start, ok := parseISODay(entry.Date)
		if !ok {
			continue
		}
		byName[name] = len(events)
		events = append(events, event.Event{
			Name:        name,
			Date:        start,
			DateTo:      start,
			Sport:       "MMA",
			Competition: "UFC",
			Level:       cardLevel(entry.Name),
			Source:      "espn",
			Locations:   locations,
		})
	}

	c.logger.DebugContext(ctx, "fetched ufc calendar", "events", len(events))

	return events, nil
}

// cardLevel ranks numbered UFC cards ("UFC 317: ...") above Fight Nights.
func cardLevel(label string) event.Level {
	head, _, _ := strings.Cut(label, ":")
	if !strings.Contains(head, "UFC ") {
		return event.LevelContinental
	}
	for _, r := range head {
		if r >= '0' && r <= '9' {
			return event.LevelWorld
		}
	}
	return event.LevelContinental
}

func parseISODay(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
