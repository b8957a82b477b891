package domino

import (
	"context"
	_ "embed"
	"log/slog"

	"github.com/aretw0/domino/internal/runtime"
	"github.com/aretw0/domino/pkg/domain"
	"github.com/aretw0/domino/pkg/ports"
)

// Version is the release of this module, as recorded in the VERSION file.
//
//go:embed VERSION
var Version string

// Tile is the high-level entry point for the domino library.
// It wraps the internal controller and provides a simplified API for consumers.
type Tile struct {
	controller *runtime.Controller
	random     ports.RandomSource
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Tile.
type Option func(*Tile)

// WithLogger sets a custom structured logger for the tile.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tile) {
		t.logger = logger
	}
}

// WithRandomSource injects the generator used by Randomize.
func WithRandomSource(src ports.RandomSource) Option {
	return func(t *Tile) {
		t.random = src
	}
}

// WithSeed makes the tile draw its faces from a deterministic generator.
func WithSeed(seed uint64) Option {
	return func(t *Tile) {
		t.random = runtime.SeededSource(seed)
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(t *Tile) {
		t.hooks = hooks
	}
}

// New creates a tile bound to renderer. Call Initialize before use.
func New(renderer ports.Renderer, opts ...Option) *Tile {
	t := &Tile{}
	for _, opt := range opts {
		opt(t)
	}

	t.controller = runtime.NewController(renderer,
		runtime.WithRandomSource(t.random),
		runtime.WithLogger(t.logger),
		runtime.WithLifecycleHooks(t.hooks),
	)
	return t
}

// Initialize resets the tile and renders its first random faces.
func (t *Tile) Initialize(ctx context.Context) error {
	return t.controller.Initialize(ctx)
}

// RotateLeft turns the tile counter-clockwise.
func (t *Tile) RotateLeft(ctx context.Context) error {
	return t.controller.RotateLeft(ctx)
}

// RotateRight turns the tile clockwise.
func (t *Tile) RotateRight(ctx context.Context) error {
	return t.controller.RotateRight(ctx)
}

// Randomize draws two new face values.
func (t *Tile) Randomize(ctx context.Context) error {
	return t.controller.Randomize(ctx)
}

// Dispatch applies a named intent.
func (t *Tile) Dispatch(ctx context.Context, intent domain.Intent) error {
	return t.controller.Dispatch(ctx, intent)
}

// Snapshot returns the render-ready view of the current state.
func (t *Tile) Snapshot() (domain.Snapshot, error) {
	return t.controller.CurrentSnapshot()
}

// State returns a copy of the current tile state.
func (t *Tile) State() domain.TileState {
	return t.controller.State()
}
