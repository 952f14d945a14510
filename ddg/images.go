package ddg

import (
	"context"
	"net/url"
	"strings"

	"github.com/habiliai/ddg-mcp/errors"
)

// Images runs an image search against the i.js vertical.
func (c *Client) Images(ctx context.Context, req ImageRequest) ([]ImageResult, error) {
	vqd, err := c.vqd(ctx, req.Keywords)
	if err != nil {
		return nil, err
	}

	filters := joinFilters(
		filter("time", string(req.TimeLimit)),
		filter("size", req.Size),
		filter("color", req.Color),
		filter("type", req.TypeImage),
		filter("layout", req.Layout),
		filter("license", req.LicenseImage),
	)

	params := url.Values{
		"l":   {req.Region},
		"o":   {"json"},
		"q":   {req.Keywords},
		"vqd": {vqd},
		"f":   {filters},
		"p":   {req.SafeSearch.imageParam()},
	}

	var page struct {
		Results []ImageResult `json:"results"`
	}
	if err := c.getJSON(ctx, c.apiBase+"/i.js?"+params.Encode(), &page); err != nil {
		return nil, errors.Wrapf(err, "image search failed")
	}

	return capResults(page.Results, req.MaxResults), nil
}

func filter(name, value string) string {
	if value == "" {
		return ""
	}
	return name + ":" + value
}

func joinFilters(parts ...string) string {
	return strings.Join(parts, ",")
}

func capResults[T any](results []T, maxResults int) []T {
	if maxResults > 0 && len(results) > maxResults {
		return results[:maxResults]
	}
	return results
}
