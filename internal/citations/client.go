// Package citations looks up citation counts from the Semantic Scholar
// Graph API. This is a best-effort side feature: lookups can fail for papers
// that exist, and every failure stays behind this package's error boundary.
package citations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Semantic Scholar Graph API base URL.
	BaseURL = "https://api.semanticscholar.org/graph/v1"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit is 1 request per second for unauthenticated clients.
	RateLimit = 1.0

	// defaultFields are the paper fields requested for citation lookups.
	defaultFields = "title,citationCount,externalIds"

	// searchLimit is how many title-search hits are scanned for a match.
	searchLimit = 10
)

// versionSuffix matches a trailing arXiv version marker like "v2".
var versionSuffix = regexp.MustCompile(`v\d+$`)

// Paper is the subset of the Graph API paper object this package needs.
type Paper struct {
	PaperID       string `json:"paperId"`
	Title         string `json:"title"`
	CitationCount int    `json:"citationCount"`
}

// Client is a rate-limited HTTP client for the Semantic Scholar Graph API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the API key for authenticated requests.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

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

// NewClient creates a new Semantic Scholar client. The S2_API_KEY
// environment variable is used when no key option is given.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if key := os.Getenv("S2_API_KEY"); key != "" {
		c.apiKey = key
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CountByArXivID returns the citation count for an arXiv identifier. A
// trailing version suffix ("v2") is stripped before the lookup.
func (c *Client) CountByArXivID(ctx context.Context, arxivID string) (int, error) {
	id := versionSuffix.ReplaceAllString(arxivID, "")

	params := url.Values{}
	params.Set("fields", defaultFields)
	target := c.baseURL + "/paper/ARXIV:" + url.PathEscape(id) + "?" + params.Encode()

	var paper Paper
	if err := c.getJSON(ctx, target, &paper); err != nil {
		return 0, err
	}
	return paper.CitationCount, nil
}

// CountByTitle searches by title and returns the citation count of the
// first hit whose title matches. Returns ErrNotFound when no hit matches.
func (c *Client) CountByTitle(ctx context.Context, title string) (int, error) {
	params := url.Values{}
	params.Set("query", title)
	params.Set("fields", defaultFields)
	params.Set("limit", strconv.Itoa(searchLimit))
	target := c.baseURL + "/paper/search?" + params.Encode()

	var result struct {
		Total int     `json:"total"`
		Data  []Paper `json:"data"`
	}
	if err := c.getJSON(ctx, target, &result); err != nil {
		return 0, err
	}

	for _, paper := range result.Data {
		if TitlesMatch(paper.Title, title) {
			return paper.CitationCount, nil
		}
	}
	return 0, ErrNotFound
}

// getJSON performs a rate-limited GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, target string, v interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// TitlesMatch compares two titles after stripping everything but letters and
// digits. The first third of the shorter normalized title must match, which
// tolerates subtitle and punctuation drift between sources.
func TitlesMatch(a, b string) bool {
	na, nb := normalizeTitle(a), normalizeTitle(b)
	if na == "" || nb == "" {
		return false
	}

	n := len(na)
	if len(nb) < n {
		n = len(nb)
	}
	if third := n / 3; third > 0 {
		n = third
	}
	return na[:n] == nb[:n]
}

// normalizeTitle lowercases and keeps only ASCII letters and digits.
func normalizeTitle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
