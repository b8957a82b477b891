package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventIntent EventType = "intent"
	EventRender EventType = "render"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// IntentEvent is fired after an intent has been applied to the tile state.
type IntentEvent struct {
	EventBase
	Intent Intent    `json:"intent"`
	Before TileState `json:"before"`
	After  TileState `json:"after"`
}

// RenderEvent is fired after a snapshot has been handed to the renderer.
type RenderEvent struct {
	EventBase
	Snapshot Snapshot `json:"snapshot"`
	Err      error    `json:"-"`
}

// LifecycleHooks defines callbacks for controller observability.
type LifecycleHooks struct {
	OnIntent func(context.Context, *IntentEvent)
	OnRender func(context.Context, *RenderEvent)
}
