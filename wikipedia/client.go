package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"wikigate/config"
)

// ErrNotFound reports that the upstream API has no page for the requested
// title. Other failures (network, timeout, non-2xx) are returned as wrapped
// errors; handlers treat both the same way, the distinction exists for logging.
var ErrNotFound = errors.New("wikipedia: page not found")

const userAgent = "wikigate/1.0 (wikipedia gateway)"

// Client is a read-only client for one language edition of the Wikipedia REST
// API. It is safe for concurrent use; it holds no per-request state.
type Client struct {
	baseURL    string
	lang       string
	httpClient *http.Client
}

// NewClient creates a client for the given language edition. An empty lang
// falls back to the default.
func NewClient(lang string) *Client {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	return &Client{
		baseURL:    fmt.Sprintf("https://%s.wikipedia.org/api/rest_v1", lang),
		lang:       lang,
		httpClient: &http.Client{Timeout: config.UpstreamTimeout},
	}
}

// NewClientFromEnv creates a client using the WIKI_LANG environment variable.
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv("WIKI_LANG"))
}

// NewClientWithBaseURL creates a client pointed at an arbitrary base URL.
// Used by tests to target a fake upstream.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		lang:       config.DefaultLanguage,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Lang returns the language edition this client targets.
func (c *Client) Lang() string {
	return c.lang
}

// Search queries /page/search/title for articles matching query. It issues
// exactly one GET attempt; no retries.
func (c *Client) Search(ctx context.Context, query string, limit int) (*SearchResponse, error) {
	endpoint := fmt.Sprintf("%s/page/search/title?q=%s&limit=%d",
		c.baseURL, url.QueryEscape(query), limit)

	var result SearchResponse
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		log.Printf("wikipedia: search %q failed: %v", query, err)
		return nil, err
	}
	return &result, nil
}

// Summary fetches /page/summary/{title}.
func (c *Client) Summary(ctx context.Context, title string) (*Summary, error) {
	endpoint := fmt.Sprintf("%s/page/summary/%s", c.baseURL, url.PathEscape(title))

	var result Summary
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Printf("wikipedia: summary %q not found", title)
		} else {
			log.Printf("wikipedia: summary %q failed: %v", title, err)
		}
		return nil, err
	}
	return &result, nil
}

// MobileSections fetches /page/mobile-sections/{title}: the lead block and the
// full list of body sections.
func (c *Client) MobileSections(ctx context.Context, title string) (*MobileSections, error) {
	endpoint := fmt.Sprintf("%s/page/mobile-sections/%s", c.baseURL, url.PathEscape(title))

	var result MobileSections
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Printf("wikipedia: content %q not found", title)
		} else {
			log.Printf("wikipedia: content %q failed: %v", title, err)
		}
		return nil, err
	}
	return &result, nil
}

// getJSON performs a single GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
