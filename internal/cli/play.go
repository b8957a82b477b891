package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/domino"
	"github.com/aretw0/domino/internal/presentation/tui"
	"github.com/aretw0/domino/pkg/domain"
	"github.com/aretw0/domino/pkg/runner"
	"github.com/muesli/termenv"
)

// PlayOptions configures the interactive tile.
type PlayOptions struct {
	Options
	JSON bool
}

// RunPlay drives a tile from stdin until quit, EOF or cancellation.
// In JSON mode every snapshot is one line on stdout and no banner is printed.
func RunPlay(ctx context.Context, opts PlayOptions) error {
	o := opts.Options.withDefaults()
	logger := createLogger(o.Config, o.Stderr)

	var handler runner.IOHandler
	if opts.JSON {
		handler = runner.NewJSONHandler(o.Stdin, o.Stdout)
	} else {
		profile := colorProfile(o.Config, o.Stdout)
		tui.PrintBanner(o.Stdout, domino.Version, profile)
		fmt.Fprintln(o.Stdout, "l: rotate left | r: rotate right | x: randomize | h: help | q: quit")

		art := tui.NewTileRenderer(o.Stdout, tui.WithProfile(profile))
		handler = runner.NewTextHandler(o.Stdin, o.Stdout,
			runner.WithTextHandlerDrawer(art.Draw),
			runner.WithTextHandlerRenderer(tui.NewMarkdownRenderer(profile == termenv.Ascii)),
		)
	}

	tile := domino.New(handler, tileOptions(o.Config, logger, domain.LifecycleHooks{})...)
	r := runner.New(
		runner.WithInputHandler(handler),
		runner.WithLogger(logger),
	)
	return r.Run(ctx, tile)
}
