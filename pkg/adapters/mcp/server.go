package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/aretw0/domino"
	"github.com/aretw0/domino/internal/logging"
	"github.com/aretw0/domino/internal/presentation/tui"
	"github.com/aretw0/domino/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const tileURI = "domino://tile"

// TileResponse is the structured result of every tile tool.
type TileResponse struct {
	Orientation string                   `json:"orientation" jsonschema_description:"vertical or horizontal"`
	Faces       [2]int                   `json:"faces" jsonschema_description:"Face values of the first and second square (0-6)"`
	Squares     [2][domain.PipCells]bool `json:"squares" jsonschema_description:"Visible pips per square, row-major 3x3"`
	Art         string                   `json:"art" jsonschema_description:"Text drawing of the tile"`
}

// PipTableResponse lists the visible pips of every face for one orientation.
type PipTableResponse struct {
	Orientation string                                  `json:"orientation"`
	Faces       [domain.FaceCount][domain.PipCells]bool `json:"faces" jsonschema_description:"Visible pips indexed by face value"`
}

// Tile is the subset of a domino tile exposed over MCP.
type Tile interface {
	Initialize(ctx context.Context) error
	Dispatch(ctx context.Context, intent domain.Intent) error
	Snapshot() (domain.Snapshot, error)
}

// Server exposes one tile as an MCP server. Tool calls are serialized.
type Server struct {
	mu        sync.Mutex
	tile      Tile
	art       *tui.TileRenderer
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used for tool failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer initializes tile and registers the tools and resources.
func NewServer(ctx context.Context, tile Tile, opts ...Option) (*Server, error) {
	s := &Server{
		tile:      tile,
		art:       tui.NewTileRenderer(nil),
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("domino-mcp", strings.TrimSpace(domino.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := tile.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initialize tile: %w", err)
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// MCPServer returns the underlying server, e.g. for an SSE or HTTP transport.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	intents := []struct {
		intent      domain.Intent
		description string
	}{
		{domain.IntentRotateLeft, "Rotate the domino tile a quarter turn counter-clockwise."},
		{domain.IntentRotateRight, "Rotate the domino tile a quarter turn clockwise."},
		{domain.IntentRandomize, "Draw two new random face values (0-6) for the tile."},
	}
	for _, it := range intents {
		tool := mcp.NewTool(string(it.intent),
			mcp.WithDescription(it.description),
			mcp.WithOutputSchema[TileResponse](),
		)
		s.mcpServer.AddTool(tool, mcp.NewStructuredToolHandler(s.intentHandler(it.intent)))
	}

	// TOOL: snapshot
	s.mcpServer.AddTool(mcp.NewTool("snapshot",
		mcp.WithDescription("Return the current tile without changing it."),
		mcp.WithOutputSchema[TileResponse](),
	), mcp.NewStructuredToolHandler(s.handleSnapshot))

	// TOOL: pip_table
	s.mcpServer.AddTool(mcp.NewTool("pip_table",
		mcp.WithDescription("List the visible pips of every face value for an orientation."),
		mcp.WithString("orientation", mcp.Description("vertical (default) or horizontal")),
		mcp.WithOutputSchema[PipTableResponse](),
	), mcp.NewStructuredToolHandler(s.handlePipTable))
}

func (s *Server) intentHandler(intent domain.Intent) func(context.Context, mcp.CallToolRequest, map[string]interface{}) (TileResponse, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TileResponse, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if err := s.tile.Dispatch(ctx, intent); err != nil {
			s.logger.Error("MCP: dispatch failed", "intent", intent, "error", err)
			return TileResponse{}, fmt.Errorf("%s failed: %w", intent, err)
		}
		return s.current()
	}
}

func (s *Server) handleSnapshot(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TileResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

func (s *Server) handlePipTable(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PipTableResponse, error) {
	o := domain.Vertical
	if raw, ok := args["orientation"].(string); ok && raw != "" {
		var err error
		if o, err = domain.ParseOrientation(raw); err != nil {
			return PipTableResponse{}, err
		}
	}
	table, err := domain.PipTable(o)
	if err != nil {
		return PipTableResponse{}, err
	}

	resp := PipTableResponse{Orientation: o.String()}
	for v, pips := range table {
		resp.Faces[v] = pips
	}
	return resp, nil
}

// current must be called with s.mu held.
func (s *Server) current() (TileResponse, error) {
	snap, err := s.tile.Snapshot()
	if err != nil {
		return TileResponse{}, fmt.Errorf("snapshot failed: %w", err)
	}
	return TileResponse{
		Orientation: snap.Orientation.String(),
		Faces:       [2]int{int(snap.Faces[0]), int(snap.Faces[1])},
		Squares:     [2][domain.PipCells]bool{snap.Squares[0], snap.Squares[1]},
		Art:         s.art.Draw(snap),
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: domino://tile
	s.mcpServer.AddResource(mcp.NewResource(tileURI, "Current Domino Tile",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		s.mu.Lock()
		resp, err := s.current()
		s.mu.Unlock()
		if err != nil {
			return nil, err
		}
		jsonBytes, err := json.Marshal(resp)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      tileURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
