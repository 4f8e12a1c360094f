package balldontlie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-scores/internal/domain/games"
	"github.com/preston-bernstein/nba-scores/internal/providers"
	"github.com/preston-bernstein/nba-scores/internal/timeutil"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches one page of games per date from the balldontlie API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchGames retrieves the first page of games played on date (YYYY-MM-DD).
// An empty date means today's UTC calendar day.
func (c *Client) FetchGames(ctx context.Context, date string) (games.ResultSet, error) {
	req, err := c.buildRequest(ctx, date)
	if err != nil {
		return games.ResultSet{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return games.ResultSet{}, fmt.Errorf("%s: request games: %w", providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return games.ResultSet{}, c.statusError(resp)
	}

	var payload gamesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return games.ResultSet{}, &providers.DecodeError{Provider: providerName, Err: err}
	}
	result, err := mapResultSet(payload)
	if err != nil {
		return games.ResultSet{}, &providers.DecodeError{Provider: providerName, Err: err}
	}
	return result, nil
}

func (c *Client) buildRequest(ctx context.Context, date string) (*http.Request, error) {
	day, err := c.resolveDate(date)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/games", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("dates[]", day)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

func (c *Client) resolveDate(date string) (string, error) {
	if date == "" {
		return timeutil.FormatUTCDate(c.now()), nil
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		return "", fmt.Errorf("%s: invalid date %q: %w", providerName, date, err)
	}
	return date, nil
}

func (c *Client) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))
	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    msg,
		}
	}
	return &providers.StatusError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Body:       msg,
	}
}
