// Package wikipedia fetches monthly pageview averages from the Wikimedia
// REST API, the heaviest of the popularity signals.
package wikipedia

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/sportatlas/catalog/internal/platform/logging"
	"github.com/sportatlas/catalog/internal/platform/resilience"
	"github.com/sportatlas/catalog/internal/usecase"
)

const (
	defaultBaseURL   = "https://wikimedia.org/api/rest_v1"
	defaultUserAgent = "sportatlas-catalog/1.0 (ops@sportatlas.io)"
	lookbackDays     = 180
	maxResponseBytes = 1 << 20
)

type ClientConfig struct {
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	userAgent      string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	now            func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxResponseBodySize:      maxResponseBytes,
			NoDefaultUserAgentHeader: true,
		},
		baseURL:        baseURL,
		userAgent:      userAgent,
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		now:            time.Now,
	}
}

type pageviewsEnvelope struct {
	Items []struct {
		Views int64 `json:"views"`
	} `json:"items"`
}

// FetchMonthlyViews returns the average monthly pageviews of one article over
// the trailing six months. The second return is false when the article has no
// pageview data at all.
func (c *Client) FetchMonthlyViews(ctx context.Context, article string) (int64, bool, error) {
	article = strings.TrimSpace(article)
	if article == "" {
		return 0, false, fmt.Errorf("article title is required")
	}

	end := c.now().AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -lookbackDays)
	fullURL := fmt.Sprintf("%s/metrics/pageviews/per-article/en.wikipedia/all-access/all-agents/%s/monthly/%s/%s",
		c.baseURL, article, start.Format("20060102"), end.Format("20060102"))

	raw, status, err := c.execute(ctx, fullURL)
	if err != nil {
		return 0, false, fmt.Errorf("fetch pageviews article=%s: %w", article, err)
	}
	if status == fasthttp.StatusNotFound {
		return 0, false, nil
	}
	if status < 200 || status >= 300 {
		return 0, false, fmt.Errorf("fetch pageviews article=%s: provider status=%d", article, status)
	}

	var envelope pageviewsEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return 0, false, fmt.Errorf("decode pageviews article=%s: %w", article, err)
	}
	if len(envelope.Items) == 0 {
		return 0, false, nil
	}

	var total int64
	for _, item := range envelope.Items {
		total += item.Views
	}

	return total / int64(len(envelope.Items)), true, nil
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "wikipedia circuit breaker rejected request", "state", c.breaker.State())
			return nil, 0, fmt.Errorf("%w: pageviews provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(c.userAgent)
	req.Header.Set("Accept", "application/json")

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		if c.circuitEnabled {
			c.breaker.RecordFailure()
		}
		return nil, 0, fmt.Errorf("send request: %w", err)
	}

	status := resp.StatusCode()
	if c.circuitEnabled {
		// 404 is a data miss, not provider trouble.
		if status >= 500 {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}

	raw := make([]byte, len(resp.Body()))
	copy(raw, resp.Body())

	return raw, status, nil
}
