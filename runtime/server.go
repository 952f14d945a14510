package runtime

import (
	"context"
	"os"

	"github.com/habiliai/ddg-mcp/config"
	"github.com/habiliai/ddg-mcp/errors"
	"github.com/habiliai/ddg-mcp/internal/mylog"
	"github.com/habiliai/ddg-mcp/tool"
	"github.com/mark3labs/mcp-go/server"
)

// Server binds the tool manager to an MCP server instance. The transport
// (stdio or SSE) is chosen at serve time; everything registered here is
// shared by both.
type Server struct {
	mcpServer *server.MCPServer
	logger    *mylog.Logger
	conf      config.ServerConfig
}

func NewServer(logger *mylog.Logger, conf config.ServerConfig, tools tool.Manager) *Server {
	s := server.NewMCPServer(conf.Name, conf.Version,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
	)

	for _, t := range tools.Tools() {
		s.AddTool(t, tools.CallTool)
	}
	for _, p := range tools.Prompts() {
		s.AddPrompt(p, tools.GetPrompt)
	}

	return &Server{
		mcpServer: s,
		logger:    logger,
		conf:      conf,
	}
}

// ServeStdio blocks until stdin closes or ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio", "name", s.conf.Name, "version", s.conf.Version)
	defer s.logger.Info("stdio server stopped")

	stdio := server.NewStdioServer(s.mcpServer)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrapf(err, "stdio server failed")
	}
	return nil
}

// ServeSSE listens on addr until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	s.logger.Info("serving MCP over SSE", "addr", addr, "name", s.conf.Name)
	defer s.logger.Info("sse server stopped")

	sse := server.NewSSEServer(s.mcpServer)

	errCh := make(chan error, 1)
	go func() {
		errCh <- sse.Start(addr)
	}()

	select {
	case <-ctx.Done():
		if err := sse.Shutdown(context.WithoutCancel(ctx)); err != nil {
			s.logger.Error("failed to shutdown sse server", "error", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		return errors.Wrapf(err, "sse server failed")
	}
}
