package cli

import (
	"context"
	"log"

	"github.com/aretw0/domino"
	"github.com/aretw0/domino/pkg/adapters/mcp"
	"github.com/aretw0/domino/pkg/domain"
)

// RunMCP exposes one tile as an MCP server over stdio.
func RunMCP(ctx context.Context, opts Options) error {
	o := opts.withDefaults()
	logger := createLogger(o.Config, o.Stderr)

	// Stdout carries JSON-RPC; keep every log on stderr.
	log.SetOutput(o.Stderr)

	tile := domino.New(nil, tileOptions(o.Config, logger, domain.LifecycleHooks{})...)
	srv, err := mcp.NewServer(ctx, tile, mcp.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("Starting domino MCP server (stdio)")
	return srv.ServeStdio()
}
