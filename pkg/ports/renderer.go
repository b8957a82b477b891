package ports

import (
	"context"
	"errors"

	"github.com/aretw0/domino/pkg/domain"
)

// Renderer presents tile snapshots to the user.
// The controller calls Render exactly once per intent and once at initialization.
// Implementations own all presentation effects and must treat the snapshot as read-only.
type Renderer interface {
	Render(ctx context.Context, snap domain.Snapshot) error
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(ctx context.Context, snap domain.Snapshot) error

// Render calls f(ctx, snap).
func (f RendererFunc) Render(ctx context.Context, snap domain.Snapshot) error {
	return f(ctx, snap)
}

// MultiRenderer fans a snapshot out to several renderers in order.
// Every renderer is called; their errors are joined.
type MultiRenderer []Renderer

// Render forwards snap to each renderer.
func (m MultiRenderer) Render(ctx context.Context, snap domain.Snapshot) error {
	var errs []error
	for _, r := range m {
		if err := r.Render(ctx, snap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
