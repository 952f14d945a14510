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

const PromptSearchResultsSummary = "search-results-summary"

func (m *manager) Prompts() []mcp.Prompt {
	return []mcp.Prompt{
		mcp.NewPrompt(PromptSearchResultsSummary,
			mcp.WithPromptDescription("Creates a summary of search results"),
			mcp.WithArgument("query",
				mcp.RequiredArgument(),
				mcp.ArgumentDescription("Search query to summarize results for"),
			),
			mcp.WithArgument("style",
				mcp.ArgumentDescription("Style of the summary (brief/detailed)"),
			),
		),
	}
}

func (m *manager) GetPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	if req.Params.Name != PromptSearchResultsSummary {
		return nil, errors.Wrapf(errors.ErrUnknownPrompt, "%s", req.Params.Name)
	}

	query := strings.TrimSpace(req.Params.Arguments["query"])
	if query == "" {
		return nil, errors.Wrapf(errors.ErrMissingParameter, "query")
	}

	detail := ""
	if req.Params.Arguments["style"] == "detailed" {
		detail = " Give extensive details."
	}

	results, err := m.search.Text(ctx, ddg.TextRequest{
		Keywords:   query,
		Region:     m.conf.Region,
		SafeSearch: ddg.SafeSearch(m.conf.SafeSearch),
		MaxResults: m.conf.MaxResults,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "search failed for prompt %s", req.Params.Name)
	}

	stanzas := lo.Map(results, func(r ddg.TextResult, _ int) string {
		return fmt.Sprintf("Title: %s\nURL: %s\nDescription: %s",
			orElse(r.Title, "No title"),
			orElse(r.Href, "No URL"),
			orElse(r.Body, "No description"),
		)
	})

	text := fmt.Sprintf("Here are the search results for '%s'. Please summarize them%s:\n\n%s",
		query, detail, strings.Join(stanzas, "\n\n"))

	return mcp.NewGetPromptResult(
		fmt.Sprintf("Summarize search results for '%s'", query),
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}
