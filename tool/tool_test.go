package tool_test

import (
	"context"

	"github.com/habiliai/ddg-mcp/config"
	"github.com/habiliai/ddg-mcp/ddg"
	"github.com/habiliai/ddg-mcp/internal/mylog"
	"github.com/habiliai/ddg-mcp/tool"
	"github.com/mark3labs/mcp-go/mcp"
)

// stubSearch is a deterministic SearchService capturing the request the
// dispatcher builds.
type stubSearch struct {
	textReq     *ddg.TextRequest
	textResults []ddg.TextResult
	textErr     error

	imageReq     *ddg.ImageRequest
	imageResults []ddg.ImageResult

	newsReq     *ddg.NewsRequest
	newsResults []ddg.NewsResult

	videoReq     *ddg.VideoRequest
	videoResults []ddg.VideoResult

	chatReq    *ddg.ChatRequest
	chatAnswer string
}

func (s *stubSearch) Text(_ context.Context, req ddg.TextRequest) ([]ddg.TextResult, error) {
	s.textReq = &req
	return s.textResults, s.textErr
}

func (s *stubSearch) Images(_ context.Context, req ddg.ImageRequest) ([]ddg.ImageResult, error) {
	s.imageReq = &req
	return s.imageResults, nil
}

func (s *stubSearch) News(_ context.Context, req ddg.NewsRequest) ([]ddg.NewsResult, error) {
	s.newsReq = &req
	return s.newsResults, nil
}

func (s *stubSearch) Videos(_ context.Context, req ddg.VideoRequest) ([]ddg.VideoResult, error) {
	s.videoReq = &req
	return s.videoResults, nil
}

func (s *stubSearch) Chat(_ context.Context, req ddg.ChatRequest) (string, error) {
	s.chatReq = &req
	return s.chatAnswer, nil
}

var (
	_ tool.SearchService = (*stubSearch)(nil)
)

func testSearchConfig() config.SearchConfig {
	return config.SearchConfig{
		Region:     "wt-wt",
		SafeSearch: "moderate",
		MaxResults: 10,
		ChatModel:  "gpt-4o-mini",
	}
}

func newTestManager(search tool.SearchService) tool.Manager {
	return tool.NewManager(mylog.NewLogger("error", "json"), search, testSearchConfig())
}

func callToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textContent(res *mcp.CallToolResult, i int) string {
	tc, ok := res.Content[i].(mcp.TextContent)
	if !ok {
		return ""
	}
	return tc.Text
}
