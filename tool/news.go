package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/habiliai/ddg-mcp/ddg"
	"github.com/habiliai/ddg-mcp/errors"
	"github.com/mark3labs/mcp-go/mcp"
)

type NewsSearchArgs struct {
	Keywords   string `mapstructure:"keywords"`
	Region     string `mapstructure:"region"`
	SafeSearch string `mapstructure:"safesearch"`
	TimeLimit  string `mapstructure:"timelimit"`
	MaxResults int    `mapstructure:"max_results"`
}

func (m *manager) newsSearchTool() mcp.Tool {
	return mcp.NewTool(ToolNewsSearch,
		mcp.WithDescription("Search for news articles using DuckDuckGo"),
		mcp.WithString("keywords",
			mcp.Required(),
			mcp.Description("Search query keywords"),
		),
		mcp.WithString("region",
			mcp.Description("Region code (e.g., wt-wt, us-en, uk-en)"),
			mcp.DefaultString(m.conf.Region),
		),
		mcp.WithString("safesearch",
			mcp.Enum("on", "moderate", "off"),
			mcp.Description("Safe search level"),
			mcp.DefaultString(m.conf.SafeSearch),
		),
		mcp.WithString("timelimit",
			mcp.Enum("d", "w", "m"),
			mcp.Description("Time limit (d=day, w=week, m=month)"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return"),
			mcp.DefaultNumber(float64(m.conf.MaxResults)),
		),
	)
}

func (m *manager) callNewsSearch(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	var a NewsSearchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	keywords, err := requireKeywords(a.Keywords)
	if err != nil {
		return nil, err
	}

	results, err := m.search.News(ctx, ddg.NewsRequest{
		Keywords:   keywords,
		Region:     orElse(a.Region, m.conf.Region),
		SafeSearch: ddg.SafeSearch(orElse(a.SafeSearch, m.conf.SafeSearch)),
		TimeLimit:  ddg.TimeLimit(a.TimeLimit),
		MaxResults: m.maxResults(a.MaxResults),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "news search failed")
	}

	return mcp.NewToolResultText(formatNewsResults(keywords, results)), nil
}

func formatNewsResults(keywords string, results []ddg.NewsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "News search results for '%s':\n\n", keywords)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n   Source: %s\n   Date: %s\n   URL: %s\n   %s\n\n",
			i+1,
			orElse(r.Title, "No title"),
			orElse(r.Source, "Unknown"),
			orElse(r.Date, "No date"),
			orElse(r.URL, "No URL"),
			orElse(r.Body, "No description"),
		)
	}
	return b.String()
}
