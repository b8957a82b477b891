package tui

import (
	"github.com/charmbracelet/glamour"
)

// HelpMarkdown lists the key bindings of the interactive tile.
const HelpMarkdown = `# Domino

| Key | Action |
|-----|--------|
| ` + "`l`" + ` | rotate left |
| ` + "`r`" + ` | rotate right |
| ` + "`x`" + ` | randomize |
| ` + "`h`" + ` | show this help |
| ` + "`q`" + ` | quit |

Long forms work too: *left*, *right*, *random*, *refresh*.
`

// NewMarkdownRenderer returns a function that renders markdown using glamour.
// Plain output uses the "notty" style so pipes and logs stay free of escape codes.
func NewMarkdownRenderer(plain bool) func(string) (string, error) {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
