package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/domino/internal/presentation/tui"
	"github.com/aretw0/domino/pkg/domain"
)

// Tile is the subset of a domino tile the runner drives.
type Tile interface {
	Initialize(ctx context.Context) error
	Dispatch(ctx context.Context, intent domain.Intent) error
}

// Runner reads commands from its IOHandler and applies them to a tile.
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on stdin/stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Help is shown for the help command.
	Help string
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Help:   tui.HelpMarkdown,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(nil, nil)
	}
	return r
}

// Run initializes the tile and processes commands until the user quits,
// the input ends or ctx is cancelled. The last two are clean exits.
func (r *Runner) Run(ctx context.Context, tile Tile) error {
	if err := tile.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize tile: %w", err)
	}

	for {
		line, err := r.Handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				r.Logger.Debug("runner stopped", "reason", err)
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		quit, err := r.handle(ctx, tile, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (r *Runner) handle(ctx context.Context, tile Tile, line string) (bool, error) {
	switch strings.ToLower(line) {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "h", "help", "?":
		return false, r.Handler.SystemOutput(ctx, r.Help)
	}

	intent, err := domain.ParseIntent(line)
	if err != nil {
		r.Logger.Debug("ignored command", "input", line)
		return false, r.Handler.SystemOutput(ctx, fmt.Sprintf("Unknown command %q. Type h for help.", line))
	}

	if err := tile.Dispatch(ctx, intent); err != nil {
		return false, fmt.Errorf("dispatch %s: %w", intent, err)
	}
	return false, nil
}
