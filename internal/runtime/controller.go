package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/domino/internal/logging"
	"github.com/aretw0/domino/pkg/domain"
	"github.com/aretw0/domino/pkg/ports"
)

// Controller is the tile state machine runner.
// It owns exactly one TileState and emits one Snapshot per handled intent.
// A Controller is not safe for concurrent use; callers serialize intents.
type Controller struct {
	state    domain.TileState
	renderer ports.Renderer
	random   ports.RandomSource
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithRandomSource injects the generator used by Randomize.
func WithRandomSource(src ports.RandomSource) Option {
	return func(c *Controller) {
		if src != nil {
			c.random = src
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// NewController creates a controller bound to r.
// A nil renderer discards snapshots.
func NewController(r ports.Renderer, opts ...Option) *Controller {
	if r == nil {
		r = ports.RendererFunc(func(context.Context, domain.Snapshot) error { return nil })
	}
	c := &Controller{
		renderer: r,
		random:   ProcessSource(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize resets the tile to its initial state and performs the first randomize.
// The renderer receives exactly one snapshot.
func (c *Controller) Initialize(ctx context.Context) error {
	c.state = domain.TileState{}
	c.logger.Debug("tile initialized")
	return c.Randomize(ctx)
}

// Randomize draws two independent face values and re-renders.
func (c *Controller) Randomize(ctx context.Context) error {
	return c.apply(ctx, domain.IntentRandomize, func(s *domain.TileState) error {
		a := domain.FaceValue(c.random.IntN(domain.FaceCount))
		b := domain.FaceValue(c.random.IntN(domain.FaceCount))
		return s.SetFaces(a, b)
	})
}

// RotateLeft turns the tile counter-clockwise and re-renders.
func (c *Controller) RotateLeft(ctx context.Context) error {
	return c.apply(ctx, domain.IntentRotateLeft, func(s *domain.TileState) error {
		s.RotateLeft()
		return nil
	})
}

// RotateRight turns the tile clockwise and re-renders.
func (c *Controller) RotateRight(ctx context.Context) error {
	return c.apply(ctx, domain.IntentRotateRight, func(s *domain.TileState) error {
		s.RotateRight()
		return nil
	})
}

// Dispatch routes a named intent to its handler.
func (c *Controller) Dispatch(ctx context.Context, intent domain.Intent) error {
	switch intent {
	case domain.IntentRotateLeft:
		return c.RotateLeft(ctx)
	case domain.IntentRotateRight:
		return c.RotateRight(ctx)
	case domain.IntentRandomize:
		return c.Randomize(ctx)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownIntent, string(intent))
	}
}

// CurrentSnapshot projects the current state for rendering.
func (c *Controller) CurrentSnapshot() (domain.Snapshot, error) {
	return domain.NewSnapshot(c.state)
}

// State returns a copy of the tile state.
func (c *Controller) State() domain.TileState {
	return c.state
}

// apply runs fn against a copy of the state and commits it only on success,
// so a contract violation never leaves a half-updated tile behind.
func (c *Controller) apply(ctx context.Context, intent domain.Intent, fn func(*domain.TileState) error) error {
	if err := c.state.Validate(); err != nil {
		return fmt.Errorf("%s: %w", intent, err)
	}

	before := c.state
	next := c.state
	if err := fn(&next); err != nil {
		return fmt.Errorf("%s: %w", intent, err)
	}
	c.state = next

	c.logger.Debug("intent applied",
		"intent", intent,
		"orientation", next.Orientation.String(),
		"faces", next.Faces,
	)
	if c.hooks.OnIntent != nil {
		c.hooks.OnIntent(ctx, &domain.IntentEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventIntent},
			Intent:    intent,
			Before:    before,
			After:     next,
		})
	}

	return c.refresh(ctx)
}

// refresh emits the current snapshot to the renderer.
func (c *Controller) refresh(ctx context.Context) error {
	snap, err := c.CurrentSnapshot()
	if err != nil {
		return fmt.Errorf("build snapshot: %w", err)
	}

	renderErr := c.renderer.Render(ctx, snap)
	if c.hooks.OnRender != nil {
		c.hooks.OnRender(ctx, &domain.RenderEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRender},
			Snapshot:  snap,
			Err:       renderErr,
		})
	}
	if renderErr != nil {
		c.logger.Warn("render failed", "err", renderErr)
		return fmt.Errorf("render snapshot: %w", renderErr)
	}
	return nil
}
