package cli

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/aretw0/furrow/internal/logging"
	"github.com/aretw0/furrow/pkg/adapters/mcp"
	"github.com/aretw0/furrow/pkg/observability"
)

// MCPOptions configures the MCP server.
type MCPOptions struct {
	Transport string // "stdio" or "sse"
	Port      int
	Debug     bool
}

// RunMCP starts the MCP adapter on the chosen transport.
func RunMCP(ctx context.Context, opts MCPOptions) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	srv := mcp.NewServer(
		mcp.WithLogger(logger),
		mcp.WithSearchHooks(observability.LogHooks(logger)),
	)

	switch opts.Transport {
	case "", "stdio":
		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger.Info("Starting Furrow MCP Server (Stdio)...")
		return srv.ServeStdio()
	case "sse":
		return srv.ServeSSE(ctx, opts.Port)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or sse)", opts.Transport)
	}
}
