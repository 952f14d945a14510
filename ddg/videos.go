package ddg

import (
	"context"
	"net/url"

	"github.com/habiliai/ddg-mcp/errors"
)

// Videos runs a video search against the v.js vertical.
func (c *Client) Videos(ctx context.Context, req VideoRequest) ([]VideoResult, error) {
	vqd, err := c.vqd(ctx, req.Keywords)
	if err != nil {
		return nil, err
	}

	filters := joinFilters(
		filter("publishedAfter", string(req.TimeLimit)),
		filter("videoDefinition", req.Resolution),
		filter("videoDuration", req.Duration),
		filter("videoLicense", req.LicenseVideos),
	)

	params := url.Values{
		"l":   {req.Region},
		"o":   {"json"},
		"sp":  {"-1"},
		"q":   {req.Keywords},
		"vqd": {vqd},
		"f":   {filters},
		"p":   {req.SafeSearch.newsParam()},
	}

	var page struct {
		Results []VideoResult `json:"results"`
	}
	if err := c.getJSON(ctx, c.apiBase+"/v.js?"+params.Encode(), &page); err != nil {
		return nil, errors.Wrapf(err, "video search failed")
	}

	return capResults(page.Results, req.MaxResults), nil
}
