package runtime_test

import (
	"context"
	"testing"

	"github.com/habiliai/ddg-mcp/config"
	"github.com/habiliai/ddg-mcp/ddg"
	"github.com/habiliai/ddg-mcp/internal/mylog"
	"github.com/habiliai/ddg-mcp/runtime"
	"github.com/habiliai/ddg-mcp/tool"
	"github.com/stretchr/testify/require"
)

type noopSearch struct{}

func (noopSearch) Text(context.Context, ddg.TextRequest) ([]ddg.TextResult, error) {
	return nil, nil
}

func (noopSearch) Images(context.Context, ddg.ImageRequest) ([]ddg.ImageResult, error) {
	return nil, nil
}

func (noopSearch) News(context.Context, ddg.NewsRequest) ([]ddg.NewsResult, error) {
	return nil, nil
}

func (noopSearch) Videos(context.Context, ddg.VideoRequest) ([]ddg.VideoResult, error) {
	return nil, nil
}

func (noopSearch) Chat(context.Context, ddg.ChatRequest) (string, error) {
	return "", nil
}

func TestNewServer(t *testing.T) {
	conf := config.DefaultConfig()
	logger := mylog.NewLogger("error", "json")
	tools := tool.NewManager(logger, noopSearch{}, conf.Search)

	s := runtime.NewServer(logger, conf.Server, tools)
	require.NotNil(t, s)
}
