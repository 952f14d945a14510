package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/habiliai/ddg-mcp/ddg"
	"github.com/habiliai/ddg-mcp/errors"
	"github.com/mark3labs/mcp-go/mcp"
)

type VideoSearchArgs struct {
	Keywords      string `mapstructure:"keywords"`
	Region        string `mapstructure:"region"`
	SafeSearch    string `mapstructure:"safesearch"`
	TimeLimit     string `mapstructure:"timelimit"`
	Resolution    string `mapstructure:"resolution"`
	Duration      string `mapstructure:"duration"`
	LicenseVideos string `mapstructure:"license_videos"`
	MaxResults    int    `mapstructure:"max_results"`
}

func (m *manager) videoSearchTool() mcp.Tool {
	return mcp.NewTool(ToolVideoSearch,
		mcp.WithDescription("Search for videos using DuckDuckGo"),
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
		mcp.WithString("resolution",
			mcp.Enum("high", "standard"),
			mcp.Description("Video resolution"),
		),
		mcp.WithString("duration",
			mcp.Enum("short", "medium", "long"),
			mcp.Description("Video duration"),
		),
		mcp.WithString("license_videos",
			mcp.Enum("creativeCommon", "youtube"),
			mcp.Description("Video license type"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return"),
			mcp.DefaultNumber(float64(m.conf.MaxResults)),
		),
	)
}

func (m *manager) callVideoSearch(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	var a VideoSearchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	keywords, err := requireKeywords(a.Keywords)
	if err != nil {
		return nil, err
	}

	results, err := m.search.Videos(ctx, ddg.VideoRequest{
		Keywords:      keywords,
		Region:        orElse(a.Region, m.conf.Region),
		SafeSearch:    ddg.SafeSearch(orElse(a.SafeSearch, m.conf.SafeSearch)),
		TimeLimit:     ddg.TimeLimit(a.TimeLimit),
		Resolution:    a.Resolution,
		Duration:      a.Duration,
		LicenseVideos: a.LicenseVideos,
		MaxResults:    m.maxResults(a.MaxResults),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "video search failed")
	}

	return mcp.NewToolResultText(formatVideoResults(keywords, results)), nil
}

func formatVideoResults(keywords string, results []ddg.VideoResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Video search results for '%s':\n\n", keywords)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n   Publisher: %s\n   Duration: %s\n   URL: %s\n   Published: %s\n   %s\n\n",
			i+1,
			orElse(r.Title, "No title"),
			orElse(r.Publisher, "Unknown"),
			orElse(r.Duration, "Unknown"),
			orElse(r.Content, "No URL"),
			orElse(r.Published, "No date"),
			orElse(r.Description, "No description"),
		)
	}
	return b.String()
}
