/* fpl.go
 * Contains the client used to fetch data from the Fantasy Premier League api, and return the decoded results to the
 * higher level functions
 * Authors: Zachary Bower
 */

package external

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fpl-insights/metrics"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://fantasy.premierleague.com/api"
	DefaultUserAgent = "Mozilla/5.0 (compatible; FPLInsights/1.0)"
	// Used when the api sends a difficulty of 0 for a fixture
	DefaultDifficulty = 3
)

var (
	ErrRateLimited = errors.New("rate limit exceeded, please try again later")
	ErrNotFound    = errors.New("resource not found")
)

// ClientConfig holds the settings for NewClient. Zero values fall back to defaults
type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	RateLimit  float64 // requests per second, 0 disables limiting
	RateBurst  int
	Logger     *slog.Logger
}

// Client fetches bootstrap and fixture data from the FPL api. It is safe for concurrent use
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a Client from the given config
func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 20 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		limiter:    limiter,
		logger:     logger,
	}
}

// FetchBootstrapStatic gets players, teams and gameweeks from /bootstrap-static/
// Preconditions: Receives a context used for the rate limiter and the request
// Postconditions: Returns the decoded payload, or an error if the request fails or the body cannot be decoded
func (c *Client) FetchBootstrapStatic(ctx context.Context) (BootstrapStatic, error) {
	var data BootstrapStatic
	if err := c.getJSON(ctx, "bootstrap-static", "/bootstrap-static/", nil, &data); err != nil {
		return BootstrapStatic{}, err
	}
	return data, nil
}

// FetchFixtures gets the upcoming fixtures of the season from /fixtures/?future=1
// Preconditions: Receives a context used for the rate limiter and the request
// Postconditions: Returns the fixtures with missing difficulties set to DefaultDifficulty, or an error if it occurs
func (c *Client) FetchFixtures(ctx context.Context) ([]Fixture, error) {
	params := url.Values{}
	params.Set("future", "1")

	var fixtures []Fixture
	if err := c.getJSON(ctx, "fixtures", "/fixtures/", params, &fixtures); err != nil {
		return nil, err
	}
	return normaliseDifficulty(fixtures), nil
}

// FetchEventFixtures gets every fixture of a single gameweek, including started and finished ones
// Preconditions: Receives a context and the gameweek id
// Postconditions: Returns the fixtures for that gameweek, or an error if it occurs
func (c *Client) FetchEventFixtures(ctx context.Context, event int) ([]Fixture, error) {
	if event <= 0 {
		return nil, fmt.Errorf("event must be greater than zero, got %d", event)
	}
	params := url.Values{}
	params.Set("event", strconv.Itoa(event))

	var fixtures []Fixture
	if err := c.getJSON(ctx, "event-fixtures", "/fixtures/", params, &fixtures); err != nil {
		return nil, err
	}
	return normaliseDifficulty(fixtures), nil
}

// getJSON performs a rate limited GET against the api and decodes the body into out
func (c *Client) getJSON(ctx context.Context, endpoint string, path string, params url.Values, out any) error {
	start := time.Now()
	outcome := "error"
	defer func() {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
		metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", endpoint, err)
	}
	request.Header.Set("User-Agent", c.userAgent)
	request.Header.Set("Accept", "application/json")

	c.logger.DebugContext(ctx, "Fetching from FPL api", "endpoint", endpoint, "url", requestURL)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusTooManyRequests:
		outcome = "rate_limited"
		return fmt.Errorf("%s: %w", endpoint, ErrRateLimited)
	case response.StatusCode == http.StatusNotFound:
		outcome = "not_found"
		return fmt.Errorf("%s: %w", endpoint, ErrNotFound)
	case response.StatusCode < 200 || response.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return fmt.Errorf("FPL api responded with status %d for %s: %s", response.StatusCode, endpoint, string(body))
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		outcome = "decode_error"
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	outcome = "ok"
	c.logger.DebugContext(ctx, "Fetched from FPL api", "endpoint", endpoint, "duration", time.Since(start))
	return nil
}

// normaliseDifficulty replaces a difficulty of 0 with DefaultDifficulty
func normaliseDifficulty(fixtures []Fixture) []Fixture {
	for i := range fixtures {
		if fixtures[i].TeamHDifficulty == 0 {
			fixtures[i].TeamHDifficulty = DefaultDifficulty
		}
		if fixtures[i].TeamADifficulty == 0 {
			fixtures[i].TeamADifficulty = DefaultDifficulty
		}
	}
	return fixtures
}
