package tool

import (
	"context"

	"github.com/google/uuid"
	"github.com/habiliai/ddg-mcp/config"
	"github.com/habiliai/ddg-mcp/errors"
	"github.com/habiliai/ddg-mcp/internal/mylog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/lo"
)

const (
	ToolTextSearch  = "ddg-text-search"
	ToolImageSearch = "ddg-image-search"
	ToolNewsSearch  = "ddg-news-search"
	ToolVideoSearch = "ddg-video-search"
	ToolAIChat      = "ddg-ai-chat"
)

type (
	Manager interface {
		Tools() []mcp.Tool
		CallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
		Prompts() []mcp.Prompt
		GetPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error)
	}

	callFunc func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error)

	handler struct {
		tool mcp.Tool
		call callFunc
	}

	manager struct {
		logger *mylog.Logger
		search SearchService
		conf   config.SearchConfig

		names    []string // catalog order
		handlers map[string]handler
	}
)

var (
	_ Manager = (*manager)(nil)
)

// NewManager builds the catalog once; descriptors stay identical for the
// lifetime of the process.
func NewManager(logger *mylog.Logger, search SearchService, conf config.SearchConfig) Manager {
	m := &manager{
		logger:   logger,
		search:   search,
		conf:     conf,
		handlers: make(map[string]handler),
	}

	m.register(m.textSearchTool(), m.callTextSearch)
	m.register(m.imageSearchTool(), m.callImageSearch)
	m.register(m.newsSearchTool(), m.callNewsSearch)
	m.register(m.videoSearchTool(), m.callVideoSearch)
	m.register(m.aiChatTool(), m.callAIChat)

	return m
}

func (m *manager) register(t mcp.Tool, call callFunc) {
	m.names = append(m.names, t.Name)
	m.handlers[t.Name] = handler{tool: t, call: call}
}

func (m *manager) Tools() []mcp.Tool {
	return lo.Map(m.names, func(name string, _ int) mcp.Tool {
		return m.handlers[name].tool
	})
}

func (m *manager) CallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	if len(args) == 0 {
		return nil, errors.WithStack(errors.ErrMissingArguments)
	}

	h, ok := m.handlers[req.Params.Name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownTool, "%s", req.Params.Name)
	}

	m.logger.Debug("dispatch tool call",
		"tool", req.Params.Name,
		"call_id", uuid.NewString(),
	)

	return h.call(ctx, args)
}
