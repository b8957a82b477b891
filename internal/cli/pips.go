package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/domino/pkg/domain"
)

// PrintPips writes the visible-pip table for o, as a grid or as JSON.
func PrintPips(w io.Writer, o domain.Orientation, asJSON bool) error {
	table, err := domain.PipTable(o)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Orientation domain.Orientation                 `json:"orientation"`
			Faces       [domain.FaceCount]domain.PipVector `json:"faces"`
		}{o, table})
	}

	fmt.Fprintf(w, "%s\n\n", o)
	// Faces side by side, one 3x3 block each.
	var header strings.Builder
	for v := range table {
		fmt.Fprintf(&header, " %d    ", v)
	}
	fmt.Fprintln(w, strings.TrimRight(header.String(), " "))
	for row := 0; row < 3; row++ {
		var line strings.Builder
		for _, pips := range table {
			for _, on := range pips.Rows()[row] {
				if on {
					line.WriteString("●")
				} else {
					line.WriteString("·")
				}
			}
			line.WriteString("   ")
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
	return nil
}
