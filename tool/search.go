package tool

import (
	"context"

	"github.com/habiliai/ddg-mcp/ddg"
)

// SearchService is the provider boundary the dispatcher calls through.
// *ddg.Client satisfies it; tests substitute a stub.
type SearchService interface {
	Text(ctx context.Context, req ddg.TextRequest) ([]ddg.TextResult, error)
	Images(ctx context.Context, req ddg.ImageRequest) ([]ddg.ImageResult, error)
	News(ctx context.Context, req ddg.NewsRequest) ([]ddg.NewsResult, error)
	Videos(ctx context.Context, req ddg.VideoRequest) ([]ddg.VideoResult, error)
	Chat(ctx context.Context, req ddg.ChatRequest) (string, error)
}

var (
	_ SearchService = (*ddg.Client)(nil)
)
