package runner

import (
	"context"

	"github.com/aretw0/domino/pkg/domain"
	"github.com/aretw0/domino/pkg/ports"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
// The handler doubles as the tile renderer so output stays on one stream.
type IOHandler interface {
	ports.Renderer

	// Input reads the next command from the user.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message (help, warnings) to the user.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// SnapshotDrawer turns a snapshot into printable text.
type SnapshotDrawer func(domain.Snapshot) string
