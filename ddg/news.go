package ddg

import (
	"context"
	"net/url"
	"time"

	"github.com/habiliai/ddg-mcp/errors"
	"github.com/samber/lo"
)

// The news vertical reports dates as epoch seconds and descriptions under
// the excerpt key.
type newsRecord struct {
	Date    int64  `json:"date"`
	Excerpt string `json:"excerpt"`
	Image   string `json:"image"`
	Source  string `json:"source"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

// News runs a news search against the news.js vertical.
func (c *Client) News(ctx context.Context, req NewsRequest) ([]NewsResult, error) {
	vqd, err := c.vqd(ctx, req.Keywords)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"l":     {req.Region},
		"o":     {"json"},
		"noamp": {"1"},
		"q":     {req.Keywords},
		"vqd":   {vqd},
		"p":     {req.SafeSearch.newsParam()},
	}
	if req.TimeLimit != "" {
		params.Set("df", string(req.TimeLimit))
	}

	var page struct {
		Results []newsRecord `json:"results"`
	}
	if err := c.getJSON(ctx, c.apiBase+"/news.js?"+params.Encode(), &page); err != nil {
		return nil, errors.Wrapf(err, "news search failed")
	}

	results := lo.Map(page.Results, func(r newsRecord, _ int) NewsResult {
		date := ""
		if r.Date > 0 {
			date = time.Unix(r.Date, 0).UTC().Format(time.RFC3339)
		}
		return NewsResult{
			Date:   date,
			Title:  r.Title,
			Body:   r.Excerpt,
			URL:    r.URL,
			Image:  r.Image,
			Source: r.Source,
		}
	})

	return capResults(results, req.MaxResults), nil
}
