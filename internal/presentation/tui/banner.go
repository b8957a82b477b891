package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the domino banner and version.
func PrintBanner(w io.Writer, version string, p termenv.Profile) {
	lines := []struct{ text, color string }{
		{"  ___                _", "#818cf8"},
		{" |   \\ ___ _ __  (_)_ _  ___", "#a78bfa"},
		{" | |) / _ \\ '  \\ | | ' \\/ _ \\", "#c084fc"},
		{" |___/\\___/_|_|_||_|_||_\\___/", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		if p == termenv.Ascii {
			fmt.Fprintln(w, l.text)
			continue
		}
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, " v%s\n\n", strings.TrimSpace(version))
}
