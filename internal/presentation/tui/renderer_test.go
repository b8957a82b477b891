package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/domino/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(t *testing.T, o domain.Orientation, a, b domain.FaceValue) domain.Snapshot {
	t.Helper()
	s, err := domain.NewSnapshot(domain.TileState{Orientation: o, Faces: [2]domain.FaceValue{a, b}})
	require.NoError(t, err)
	return s
}

func TestTileRenderer_DrawVertical(t *testing.T) {
	r := NewTileRenderer(nil)
	want := strings.Join([]string{
		"┌───────┐",
		"│       │",
		"│       │",
		"│       │",
		"├───────┤",
		"│       │",
		"│   ●   │",
		"│       │",
		"└───────┘",
		"[0|1] vertical",
		"",
	}, "\n")
	assert.Equal(t, want, r.Draw(snap(t, domain.Vertical, 0, 1)))
}

func TestTileRenderer_DrawHorizontal(t *testing.T) {
	r := NewTileRenderer(nil)
	want := strings.Join([]string{
		"┌───────┬───────┐",
		"│ ● ● ● │ ●     │",
		"│       │       │",
		"│ ● ● ● │     ● │",
		"└───────┴───────┘",
		"[6|2] horizontal",
		"",
	}, "\n")
	// Face 2 turned a quarter runs along the other diagonal.
	assert.Equal(t, want, r.Draw(snap(t, domain.Horizontal, 6, 2)))
}

func TestTileRenderer_PipCount(t *testing.T) {
	r := NewTileRenderer(nil)
	for a := domain.MinFace; a <= domain.MaxFace; a++ {
		out := r.Draw(snap(t, domain.Vertical, a, domain.MaxFace-a))
		assert.Equal(t, int(domain.MaxFace), strings.Count(out, pipGlyph), "faces %d/%d", a, domain.MaxFace-a)
	}
}

func TestTileRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	r := NewTileRenderer(&buf)
	require.NoError(t, r.Render(context.Background(), snap(t, domain.Vertical, 3, 3)))
	assert.True(t, strings.HasSuffix(buf.String(), "vertical\n\n"))
	assert.NotContains(t, buf.String(), "\x1b[", "plain profile has no escape codes")
}

func TestTileRenderer_ColorProfile(t *testing.T) {
	r := NewTileRenderer(nil, WithProfile(termenv.TrueColor))
	out := r.Draw(snap(t, domain.Vertical, 1, 1))
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, pipGlyph)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3\n", termenv.Ascii)
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestNewMarkdownRenderer(t *testing.T) {
	render := NewMarkdownRenderer(true)
	out, err := render(HelpMarkdown)
	require.NoError(t, err)
	assert.Contains(t, out, "rotate left")
	assert.Contains(t, out, "randomize")
}
