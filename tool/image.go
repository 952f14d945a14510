package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/habiliai/ddg-mcp/ddg"
	"github.com/habiliai/ddg-mcp/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/lo"
)

type ImageSearchArgs struct {
	Keywords     string `mapstructure:"keywords"`
	Region       string `mapstructure:"region"`
	SafeSearch   string `mapstructure:"safesearch"`
	TimeLimit    string `mapstructure:"timelimit"`
	Size         string `mapstructure:"size"`
	Color        string `mapstructure:"color"`
	TypeImage    string `mapstructure:"type_image"`
	Layout       string `mapstructure:"layout"`
	LicenseImage string `mapstructure:"license_image"`
	MaxResults   int    `mapstructure:"max_results"`
}

func (m *manager) imageSearchTool() mcp.Tool {
	return mcp.NewTool(ToolImageSearch,
		mcp.WithDescription("Search the web for images using DuckDuckGo"),
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
			mcp.Enum("d", "w", "m", "y"),
			mcp.Description("Time limit (d=day, w=week, m=month, y=year)"),
		),
		mcp.WithString("size",
			mcp.Enum("Small", "Medium", "Large", "Wallpaper"),
			mcp.Description("Image size"),
		),
		mcp.WithString("color",
			mcp.Enum("color", "Monochrome", "Red", "Orange", "Yellow", "Green", "Blue",
				"Purple", "Pink", "Brown", "Black", "Gray", "Teal", "White"),
			mcp.Description("Image color"),
		),
		mcp.WithString("type_image",
			mcp.Enum("photo", "clipart", "gif", "transparent", "line"),
			mcp.Description("Image type"),
		),
		mcp.WithString("layout",
			mcp.Enum("Square", "Tall", "Wide"),
			mcp.Description("Image layout"),
		),
		mcp.WithString("license_image",
			mcp.Enum("any", "Public", "Share", "ShareCommercially", "Modify", "ModifyCommercially"),
			mcp.Description("Image license type"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return"),
			mcp.DefaultNumber(float64(m.conf.MaxResults)),
		),
	)
}

func (m *manager) callImageSearch(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	var a ImageSearchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	keywords, err := requireKeywords(a.Keywords)
	if err != nil {
		return nil, err
	}

	results, err := m.search.Images(ctx, ddg.ImageRequest{
		Keywords:     keywords,
		Region:       orElse(a.Region, m.conf.Region),
		SafeSearch:   ddg.SafeSearch(orElse(a.SafeSearch, m.conf.SafeSearch)),
		TimeLimit:    ddg.TimeLimit(a.TimeLimit),
		Size:         a.Size,
		Color:        a.Color,
		TypeImage:    a.TypeImage,
		Layout:       a.Layout,
		LicenseImage: a.LicenseImage,
		MaxResults:   m.maxResults(a.MaxResults),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "image search failed")
	}

	// One block per record, unlike the concatenated text verticals.
	content := lo.Map(results, func(r ddg.ImageResult, i int) mcp.Content {
		return mcp.NewTextContent(formatImageResult(i+1, r))
	})

	return &mcp.CallToolResult{Content: content}, nil
}

func formatImageResult(ordinal int, r ddg.ImageResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s\n   Source: %s\n   URL: %s\n   Size: %sx%s\n",
		ordinal,
		orElse(r.Title, "No title"),
		orElse(r.Source, "Unknown"),
		orElse(r.URL, "No URL"),
		dimension(r.Width),
		dimension(r.Height),
	)
	if r.Image != "" {
		fmt.Fprintf(&b, "   Image: %s\n", r.Image)
	}
	b.WriteString("\n")
	return b.String()
}
