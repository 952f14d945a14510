package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/habiliai/ddg-mcp/config"
	"github.com/habiliai/ddg-mcp/ddg"
	"github.com/habiliai/ddg-mcp/internal/mylog"
	"github.com/habiliai/ddg-mcp/runtime"
	"github.com/habiliai/ddg-mcp/tool"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	params := &struct {
		Transport  string
		Port       int
		ConfigFile string
	}{}
	cmd := &cobra.Command{
		Use:   "ddg-mcp",
		Short: "DuckDuckGo search tools over MCP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			conf, err := config.LoadConfig(params.ConfigFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				conf.Server.Port = params.Port
			}

			logger := mylog.NewLogger(conf.Log.LogLevel, conf.Log.LogHandler)

			manager := tool.NewManager(logger, ddg.NewClient(), conf.Search)
			server := runtime.NewServer(logger, conf.Server, manager)

			switch params.Transport {
			case "stdio":
				return server.ServeStdio(ctx)
			case "sse":
				return server.ServeSSE(ctx, fmt.Sprintf("%s:%d", conf.Server.Host, conf.Server.Port))
			default:
				return errors.Errorf("unknown transport: %s", params.Transport)
			}
		},
	}

	cmd.Flags().StringVarP(&params.Transport, "transport", "t", "stdio", "Transport to serve on (stdio or sse)")
	cmd.Flags().IntVarP(&params.Port, "port", "p", 3001, "Port to listen on (sse transport only)")
	cmd.Flags().StringVarP(&params.ConfigFile, "config", "c", "", "Path to a YAML config file")

	return cmd
}

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}
