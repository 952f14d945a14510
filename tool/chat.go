package tool

import (
	"context"
	"fmt"

	"github.com/habiliai/ddg-mcp/ddg"
	"github.com/habiliai/ddg-mcp/errors"
	"github.com/mark3labs/mcp-go/mcp"
)

type AIChatArgs struct {
	Keywords string `mapstructure:"keywords"`
	Model    string `mapstructure:"model"`
}

// The upstream ddg-mcp server shipped this handler without advertising it
// in the catalog. Here it is advertised: dispatch is an exhaustive lookup
// table, and every entry in it is listed.
func (m *manager) aiChatTool() mcp.Tool {
	return mcp.NewTool(ToolAIChat,
		mcp.WithDescription("Chat with DuckDuckGo AI"),
		mcp.WithString("keywords",
			mcp.Required(),
			mcp.Description("Message to send to the AI"),
		),
		mcp.WithString("model",
			mcp.Enum("gpt-4o-mini", "claude-3-haiku-20240307", "llama-3.3-70b", "mixtral-8x7b"),
			mcp.Description("AI model to use"),
			mcp.DefaultString(m.conf.ChatModel),
		),
	)
}

func (m *manager) callAIChat(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	var a AIChatArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	keywords, err := requireKeywords(a.Keywords)
	if err != nil {
		return nil, err
	}

	model := orElse(a.Model, m.conf.ChatModel)
	answer, err := m.search.Chat(ctx, ddg.ChatRequest{
		Keywords: keywords,
		Model:    model,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "ai chat failed")
	}

	return mcp.NewToolResultText(fmt.Sprintf("DuckDuckGo AI (%s) response:\n\n%s", model, answer)), nil
}
