package domain

import (
	"fmt"
	"strings"
)

// Orientation defines how the two squares of a tile are laid out.
type Orientation int

const (
	Vertical   Orientation = iota // Squares stacked top to bottom
	Horizontal                    // Squares side by side
)

// Valid reports whether o is one of the two known orientations.
func (o Orientation) Valid() bool {
	return o == Vertical || o == Horizontal
}

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// Toggled returns the other orientation.
// An invalid orientation is returned unchanged.
func (o Orientation) Toggled() Orientation {
	switch o {
	case Vertical:
		return Horizontal
	case Horizontal:
		return Vertical
	default:
		return o
	}
}

// ParseOrientation accepts "vertical"/"v" and "horizontal"/"h", case-insensitive.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
	}
}

// MarshalText encodes the orientation by name so JSON and YAML stay readable.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText decodes an orientation name.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
