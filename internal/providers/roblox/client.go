// Package roblox wraps the two read-only Roblox platform API lookups the
// service proxies: place → universe and universe → game passes.
package roblox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Goptar/gopgang-api/internal/infra"
)

const (
	// DefaultPassView is sent when the caller does not pick a view.
	DefaultPassView = "Full"
	// DefaultPageSize is sent when the caller does not pick a page size.
	DefaultPageSize = "100"

	defaultTimeout = 10 * time.Second
)

// Options configures the Roblox platform client.
type Options struct {
	// APIBaseURL hosts the universes endpoints, e.g. https://apis.roblox.com.
	APIBaseURL     string
	// PassesBaseURL hosts the game-passes endpoints,
	// e.g. https://apis.roblox.com/game-passes/v1.
	PassesBaseURL  string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls against the Roblox platform API. It holds no
// state beyond configuration; calls are independent and safe to run
// concurrently.
type Client struct {
	apiBase    string
	passesBase string
	httpClient *http.Client
	logger     *infra.Logger
}

// APIError is a non-success response from Roblox, carried back verbatim so
// the proxy can pass status and body through to its own caller.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("roblox: upstream status %d: %s", e.StatusCode, e.Body)
}

// Universe is the place → universe lookup result.
type Universe struct {
	PlaceID    string          `json:"placeId"`
	UniverseID int64           `json:"universeId"`
	Raw        json.RawMessage `json:"raw"`
}

// GamePassQuery shapes the game-pass listing request. Zero-value fields fall
// back to the platform defaults.
type GamePassQuery struct {
	UniverseID string
	PassView   string
	PageSize   string
	PageToken  string
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		apiBase:    strings.TrimRight(opts.APIBaseURL, "/"),
		passesBase: strings.TrimRight(opts.PassesBaseURL, "/"),
		httpClient: httpClient,
		logger:     opts.Logger,
	}
}

// UniverseID resolves the universe a place belongs to.
func (c *Client) UniverseID(ctx context.Context, placeID string) (*Universe, error) {
	endpoint := fmt.Sprintf("%s/universes/v1/places/%s/universe", c.apiBase, url.PathEscape(placeID))

	body, err := c.get(ctx, "universe", endpoint)
	if err != nil {
		return nil, err
	}

	var payload struct {
		UniverseID int64 `json:"universeId"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("roblox: decode universe response: %w", err)
	}

	return &Universe{
		PlaceID:    placeID,
		UniverseID: payload.UniverseID,
		Raw:        json.RawMessage(body),
	}, nil
}

// GamePasses lists a universe's game passes. The upstream response shape
// ({gamePasses: [...], nextPageToken: "..."}) is returned untouched.
func (c *Client) GamePasses(ctx context.Context, q GamePassQuery) (json.RawMessage, error) {
	params := url.Values{}
	if q.PassView == "" {
		q.PassView = DefaultPassView
	}
	if q.PageSize == "" {
		q.PageSize = DefaultPageSize
	}
	params.Set("passView", q.PassView)
	params.Set("pageSize", q.PageSize)
	if q.PageToken != "" {
		params.Set("pageToken", q.PageToken)
	}

	endpoint := fmt.Sprintf("%s/universes/%s/game-passes?%s",
		c.passesBase, url.PathEscape(q.UniverseID), params.Encode())

	body, err := c.get(ctx, "gamepasses", endpoint)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("roblox: game-passes response is not valid JSON")
	}
	return json.RawMessage(body), nil
}

func (c *Client) get(ctx context.Context, lookup, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("roblox: build %s request: %w", lookup, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("roblox: %s request failed: %w", lookup, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("roblox: read %s response: %w", lookup, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.logger != nil {
			c.logger.Error().
				Str("lookup", lookup).
				Int("status", resp.StatusCode).
				Str("body", string(body)).
				Msg("roblox api error")
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
