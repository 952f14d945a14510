package ddg

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/habiliai/ddg-mcp/errors"
)

const (
	defaultAPIBase  = "https://duckduckgo.com"
	defaultHTMLBase = "https://html.duckduckgo.com"

	userAgent = "ddg-mcp/0.1 (+https://github.com/habiliai/ddg-mcp)"

	maxBodySize = 2 << 20
)

// Client talks to DuckDuckGo's public search endpoints. It holds no
// mutable state after construction and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	apiBase    string
	htmlBase   string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAPIBase overrides the duckduckgo.com base URL (JSON verticals, vqd,
// chat). Used by tests to point at a local endpoint.
func WithAPIBase(base string) Option {
	return func(c *Client) {
		c.apiBase = base
	}
}

// WithHTMLBase overrides the html.duckduckgo.com base URL (text vertical).
func WithHTMLBase(base string) Option {
	return func(c *Client) {
		c.htmlBase = base
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiBase:    defaultAPIBase,
		htmlBase:   defaultHTMLBase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// The vqd token is embedded in the search landing page and required by
// every JSON vertical.
var reVqd = regexp.MustCompile(`vqd=['"]?([^&'" ]+)`)

func (c *Client) vqd(ctx context.Context, keywords string) (string, error) {
	reqURL := c.apiBase + "/?" + url.Values{"q": {keywords}}.Encode()

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch vqd token")
	}

	m := reVqd.FindSubmatch(body)
	if m == nil {
		return "", errors.Errorf("no vqd token in response for keywords %q", keywords)
	}
	return string(m[1]), nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", c.apiBase+"/")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("duckduckgo: unexpected status %s for %s", resp.Status, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	body, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", rawURL)
	}
	return nil
}
