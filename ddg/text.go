package ddg

import (
	"context"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/habiliai/ddg-mcp/errors"
)

// Text runs a web search against the HTML vertical and returns results in
// provider order.
func (c *Client) Text(ctx context.Context, req TextRequest) ([]TextResult, error) {
	form := url.Values{
		"q":  {req.Keywords},
		"b":  {""},
		"kl": {req.Region},
		"kp": {req.SafeSearch.htmlParam()},
	}
	if req.TimeLimit != "" {
		form.Set("df", string(req.TimeLimit))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.htmlBase+"/html/", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("duckduckgo: unexpected status %s from html vertical", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return parseHTMLResults(string(body), req.MaxResults), nil
}

// The HTML vertical marks each hit with a result__a anchor and a matching
// result__snippet anchor.
var (
	reResultLink    = regexp.MustCompile(`(?i)<a[^>]+class="result__a"[^>]*href="([^"]*)"[^>]*>(.*?)</a>`)
	reResultSnippet = regexp.MustCompile(`(?i)<a[^>]+class="result__snippet"[^>]*>(.*?)</a>`)
	reTag           = regexp.MustCompile(`<[^>]+>`)
)

func parseHTMLResults(page string, maxResults int) []TextResult {
	links := reResultLink.FindAllStringSubmatch(page, -1)
	snippets := reResultSnippet.FindAllStringSubmatch(page, -1)

	var results []TextResult
	for i, link := range links {
		if len(link) < 3 {
			continue
		}
		rawURL := link[1]
		title := stripTags(link[2])

		// Result URLs are wrapped in a redirect; the uddg query param
		// carries the actual destination.
		if u, err := url.Parse(rawURL); err == nil {
			if actual := u.Query().Get("uddg"); actual != "" {
				rawURL = actual
			}
		}

		snippet := ""
		if i < len(snippets) && len(snippets[i]) >= 2 {
			snippet = stripTags(snippets[i][1])
		}

		results = append(results, TextResult{
			Title: title,
			Href:  rawURL,
			Body:  snippet,
		})

		if maxResults > 0 && len(results) >= maxResults {
			break
		}
	}
	return results
}

func stripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(reTag.ReplaceAllString(s, "")))
}
