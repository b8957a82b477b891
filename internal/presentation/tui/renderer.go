package tui

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/aretw0/domino/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	pipGlyph    = "●"
	pipColor    = "#f472b6"
	borderColor = "#818cf8"
)

// TileRenderer draws snapshots as box-drawing art on a writer.
type TileRenderer struct {
	w       io.Writer
	profile termenv.Profile
}

// TileOption configures a TileRenderer.
type TileOption func(*TileRenderer)

// WithProfile selects the color profile. termenv.Ascii disables styling.
func WithProfile(p termenv.Profile) TileOption {
	return func(r *TileRenderer) {
		r.profile = p
	}
}

// NewTileRenderer creates a renderer writing to w, plain by default.
func NewTileRenderer(w io.Writer, opts ...TileOption) *TileRenderer {
	r := &TileRenderer{w: w, profile: termenv.Ascii}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DetectProfile returns the color profile for f, or Ascii when f is not a terminal.
func DetectProfile(f *os.File) termenv.Profile {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// Render writes the drawing of snap followed by a blank line.
func (r *TileRenderer) Render(ctx context.Context, snap domain.Snapshot) error {
	_, err := io.WriteString(r.w, r.Draw(snap)+"\n")
	return err
}

// Draw returns the tile art for snap. Vertical tiles stack the first square
// above the second; horizontal tiles put the first square on the left.
func (r *TileRenderer) Draw(snap domain.Snapshot) string {
	bar := strings.Repeat("─", 7)
	first, second := snap.Squares[0].Rows(), snap.Squares[1].Rows()

	var b strings.Builder
	line := func(parts ...string) {
		for _, p := range parts {
			b.WriteString(p)
		}
		b.WriteString("\n")
	}

	if snap.Orientation == domain.Horizontal {
		line(r.border("┌"+bar+"┬"+bar+"┐"))
		for i := 0; i < 3; i++ {
			line(r.border("│"), r.row(first[i]), r.border("│"), r.row(second[i]), r.border("│"))
		}
		line(r.border("└"+bar+"┴"+bar+"┘"))
	} else {
		line(r.border("┌"+bar+"┐"))
		for i := 0; i < 3; i++ {
			line(r.border("│"), r.row(first[i]), r.border("│"))
		}
		line(r.border("├"+bar+"┤"))
		for i := 0; i < 3; i++ {
			line(r.border("│"), r.row(second[i]), r.border("│"))
		}
		line(r.border("└"+bar+"┘"))
	}
	line(caption(snap))
	return b.String()
}

func caption(snap domain.Snapshot) string {
	return "[" + faceDigit(snap.Faces[0]) + "|" + faceDigit(snap.Faces[1]) + "] " + snap.Orientation.String()
}

func faceDigit(v domain.FaceValue) string {
	return string(rune('0' + int(v)))
}

func (r *TileRenderer) row(cells [3]bool) string {
	var b strings.Builder
	for _, on := range cells {
		if on {
			b.WriteString(" " + r.paint(pipGlyph, pipColor))
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteString(" ")
	return b.String()
}

func (r *TileRenderer) border(s string) string {
	return r.paint(s, borderColor)
}

func (r *TileRenderer) paint(s, hex string) string {
	if r.profile == termenv.Ascii {
		return s
	}
	return termenv.String(s).Foreground(r.profile.Color(hex)).String()
}
