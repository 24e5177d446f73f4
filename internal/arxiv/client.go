package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/matsen/arxtab/internal/record"
)

const (
	// BaseURL is the arXiv query API endpoint.
	BaseURL = "http://export.arxiv.org/api/query"

	// DefaultTimeout bounds a single request to the API.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxResults is the default result limit per request.
	DefaultMaxResults = 1000

	// requestInterval follows the arXiv API terms of use: no more than one
	// request every three seconds.
	requestInterval = 3 * time.Second

	// maxResponseBytes limits how much of a response body is decoded.
	maxResponseBytes = 10 << 20
)

// Client is a rate-limited HTTP client for the arXiv search API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	log        zerolog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithLogger sets the logger used for fetch progress and skip warnings.
func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new arXiv API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Every(requestInterval), 1),
		baseURL:    BaseURL,
		log:        zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BuildSearchQuery constructs the search_query expression for a free-text
// query and a category. An empty query searches the whole category; otherwise
// the whitespace-separated terms are AND-joined and restricted to titles.
func BuildSearchQuery(query, category string) string {
	terms := strings.Join(strings.Fields(query), " AND ")
	if terms == "" {
		return "cat:" + category
	}
	return "ti:" + terms + " AND cat:" + category
}

// Search issues one request for the given (query, category) pair and returns
// the extracted records. Results are sorted by last-updated date, newest
// first, starting at offset 0. Request failures surface as *TransportError.
func (c *Client) Search(ctx context.Context, query, category string, maxResults int) ([]record.Record, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	target := c.searchURL(query, category, maxResults)
	c.log.Info().Str("url", target).Msg("fetching")

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: target, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var feed Feed
	if err := xml.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return ExtractRecords(feed.Entries, c.log), nil
}

// searchURL builds the full query URL for a (query, category) pair.
func (c *Client) searchURL(query, category string, maxResults int) string {
	params := url.Values{}
	params.Set("search_query", BuildSearchQuery(query, category))
	params.Set("sortBy", "lastUpdatedDate")
	params.Set("sortOrder", "descending")
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	return c.baseURL + "?" + params.Encode()
}
