package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/domino/pkg/domain"
)

// TextHandler implements the prompt-based terminal interface.
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer
	Drawer   SnapshotDrawer
	Prompt   string

	maxInput int
	pump     *linePump
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer used for system messages.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerDrawer configures how snapshots are drawn.
func WithTextHandlerDrawer(d SnapshotDrawer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Drawer = d
	}
}

// WithTextHandlerMaxInput overrides DefaultMaxInputSize.
func WithTextHandlerMaxInput(n int) TextHandlerOption {
	return func(h *TextHandler) {
		h.maxInput = n
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:   w,
		Drawer:   summary,
		Prompt:   "> ",
		maxInput: DefaultMaxInputSize,
		pump:     newLinePump(r),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Render draws the snapshot.
func (h *TextHandler) Render(ctx context.Context, snap domain.Snapshot) error {
	_, err := fmt.Fprintln(h.Writer, strings.TrimRight(h.Drawer(snap), "\n"))
	return err
}

// Input prompts and reads one sanitized line. Lines that fail sanitization
// are reported and the prompt is shown again.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	for {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		fmt.Fprint(h.Writer, h.Prompt)

		text, err := h.pump.next(ctx)
		if err != nil {
			return "", err
		}
		clean, err := SanitizeInput(text, h.maxInput)
		if err != nil {
			fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
			continue
		}
		return clean, nil
	}
}

// SystemOutput prints msg, through the content renderer when one is set.
func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	output := msg
	if h.Renderer != nil {
		if rendered, err := h.Renderer(msg); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(output))
	return err
}

func summary(snap domain.Snapshot) string {
	return fmt.Sprintf("%d|%d %s", snap.Faces[0], snap.Faces[1], snap.Orientation)
}
