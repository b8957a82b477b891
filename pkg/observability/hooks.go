package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/domino/pkg/domain"
)

// Hooks builds lifecycle hooks that audit intents through logger and record
// into m. Either argument may be nil. Render failures are only counted; the
// controller already logs them.
func Hooks(logger *slog.Logger, m *Metrics) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnIntent: func(ctx context.Context, e *domain.IntentEvent) {
			if logger != nil {
				logger.InfoContext(ctx, "intent",
					"intent", e.Intent,
					"orientation", e.After.Orientation,
					"faces", e.After.Faces,
				)
			}
			if m != nil {
				m.observeIntent(e)
			}
		},
		OnRender: func(ctx context.Context, e *domain.RenderEvent) {
			if e.Err != nil && m != nil {
				m.RenderErrors.Inc()
			}
		},
	}
}

// Combine fans every event out to each set of hooks in order.
func Combine(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnIntent: func(ctx context.Context, e *domain.IntentEvent) {
			for _, h := range all {
				if h.OnIntent != nil {
					h.OnIntent(ctx, e)
				}
			}
		},
		OnRender: func(ctx context.Context, e *domain.RenderEvent) {
			for _, h := range all {
				if h.OnRender != nil {
					h.OnRender(ctx, e)
				}
			}
		},
	}
}
