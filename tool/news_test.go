package tool_test

import (
	"context"
	"testing"

	"github.com/habiliai/ddg-mcp/ddg"
	"github.com/habiliai/ddg-mcp/tool"
	"github.com/stretchr/testify/require"
)

func TestNewsSearch_FormatsResults(t *testing.T) {
	stub := &stubSearch{
		newsResults: []ddg.NewsResult{
			{Title: "Breaking", Source: "Example Times", Date: "2023-11-14T22:13:20Z", URL: "https://news.example/1", Body: "Something happened"},
			{URL: "https://news.example/2"},
		},
	}
	m := newTestManager(stub)

	res, err := m.CallTool(context.Background(), callToolRequest(tool.ToolNewsSearch, map[string]any{
		"keywords": "elections",
	}))
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	text := textContent(res, 0)
	require.Contains(t, text, "News search results for 'elections':")
	require.Contains(t, text, "1. Breaking\n   Source: Example Times\n   Date: 2023-11-14T22:13:20Z\n   URL: https://news.example/1\n   Something happened\n\n")
	require.Contains(t, text, "2. No title\n   Source: Unknown\n   Date: No date\n   URL: https://news.example/2\n   No description\n\n")
}

func TestNewsSearch_TimeLimit(t *testing.T) {
	stub := &stubSearch{}
	m := newTestManager(stub)

	_, err := m.CallTool(context.Background(), callToolRequest(tool.ToolNewsSearch, map[string]any{
		"keywords":  "elections",
		"timelimit": "w",
	}))
	require.NoError(t, err)

	require.NotNil(t, stub.newsReq)
	require.Equal(t, ddg.TimeLimitWeek, stub.newsReq.TimeLimit)
}
