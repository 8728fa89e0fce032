// Package backend is the HTTP client for the materials search backend.
//
// The backend exposes two endpoints used by matcompare:
//
//	GET /api/materials/popular                 curated suggestion list
//	GET /api/materials/search?q=<query>&limit=5  formula / element search
//
// Both answer with the envelope {"success": bool, "data": [...], "error": "..."}.
// The envelope is decoded regardless of HTTP status because the backend
// reports logical failures with 4xx/5xx codes and a success=false body.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/matcompare/internal/logging"
	"github.com/rshade/matcompare/internal/materials"
)

// DefaultBaseURL is used when no backend URL is configured.
const DefaultBaseURL = "http://localhost:5000"

// SearchLimit is the fixed number of results requested per search.
const SearchLimit = 5

const (
	popularPath = "/api/materials/popular"
	searchPath  = "/api/materials/search"

	// maxResponseBytes bounds how much of a response body is decoded.
	maxResponseBytes = 8 << 20
)

// Client talks to the materials backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
// Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request tracing. l must not carry a
// component field already.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logging.ComponentLogger(l, "backend")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient returns a client for the backend rooted at baseURL. An empty
// baseURL selects DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    normalized,
		httpClient: &http.Client{},
		userAgent:  "matcompare",
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NormalizeBaseURL validates a backend base URL and strips trailing slashes.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultBaseURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidBaseURL, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w %q: scheme must be http or https", ErrInvalidBaseURL, raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w %q: missing host", ErrInvalidBaseURL, raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("%w %q: query and fragment are not allowed", ErrInvalidBaseURL, raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL returns the normalised backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Popular fetches the backend-curated list of popular materials.
func (c *Client) Popular(ctx context.Context) ([]materials.Material, error) {
	return c.get(ctx, popularPath, nil)
}

// Search queries materials by formula or element. The limit is fixed at
// SearchLimit. The query is sent as-is; length rules belong to the caller.
func (c *Client) Search(ctx context.Context, query string) ([]materials.Material, error) {
	params := url.Values{
		"q":     {query},
		"limit": {strconv.Itoa(SearchLimit)},
	}
	return c.get(ctx, searchPath, params)
}

// envelope is the response shape shared by all backend endpoints.
type envelope struct {
	Success bool                 `json:"success"`
	Data    []materials.Material `json:"data"`
	Error   string               `json:"error"`
	Count   *int                 `json:"count,omitempty"`
	Cached  *bool                `json:"cached,omitempty"`
	Query   string               `json:"query,omitempty"`
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]materials.Material, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Ctx(ctx).Err(err).Str("path", path).Msg("backend request failed")
		return nil, fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&env); decodeErr != nil {
		return nil, fmt.Errorf("%w from %s (HTTP %d): %w", ErrMalformedResponse, path, resp.StatusCode, decodeErr)
	}

	logEvent := c.logger.Debug().Ctx(ctx).
		Str("path", path).
		Int("status", resp.StatusCode).
		Bool("success", env.Success).
		Int("results", len(env.Data)).
		Dur("duration", time.Since(start))
	if env.Cached != nil {
		logEvent = logEvent.Bool("cached", *env.Cached)
	}
	if env.Count != nil {
		logEvent = logEvent.Int("count", *env.Count)
	}
	if env.Query != "" {
		logEvent = logEvent.Str("echo_query", env.Query)
	}
	logEvent.Msg("backend response")

	if !env.Success {
		return nil, &APIError{Endpoint: path, StatusCode: resp.StatusCode, Message: env.Error}
	}

	if env.Data == nil {
		return []materials.Material{}, nil
	}
	return env.Data, nil
}
