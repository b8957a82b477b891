package domain

import "fmt"

// TileState holds the orientation of a tile and the two face values it shows.
// Faces is position-significant: Faces[0] is the first square, Faces[1] the second.
// The zero value is the initial state: faces (0,0), Vertical.
type TileState struct {
	Orientation Orientation  `json:"orientation"`
	Faces       [2]FaceValue `json:"faces"`
}

// NewTileState returns the initial tile state.
func NewTileState() *TileState {
	return &TileState{Orientation: Vertical}
}

// Validate checks the orientation and both faces.
func (s TileState) Validate() error {
	if !s.Orientation.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidOrientation, int(s.Orientation))
	}
	for i, f := range s.Faces {
		if err := checkFace(f); err != nil {
			return fmt.Errorf("square %d: %w", i, err)
		}
	}
	return nil
}

// SetFaces replaces both face values.
// Out-of-range values are rejected and the state is left untouched.
func (s *TileState) SetFaces(a, b FaceValue) error {
	if err := checkFace(a); err != nil {
		return err
	}
	if err := checkFace(b); err != nil {
		return err
	}
	s.Faces = [2]FaceValue{a, b}
	return nil
}

// SwapFaces exchanges the first and second face.
func (s *TileState) SwapFaces() {
	s.Faces[0], s.Faces[1] = s.Faces[1], s.Faces[0]
}

// ToggleOrientation flips between Vertical and Horizontal.
func (s *TileState) ToggleOrientation() {
	s.Orientation = s.Orientation.Toggled()
}

// RotateLeft turns the tile a quarter turn counter-clockwise.
// The face order flips only when leaving the horizontal layout.
func (s *TileState) RotateLeft() {
	if s.Orientation == Horizontal {
		s.SwapFaces()
	}
	s.ToggleOrientation()
}

// RotateRight turns the tile a quarter turn clockwise.
// The face order flips only when leaving the vertical layout.
func (s *TileState) RotateRight() {
	if s.Orientation == Vertical {
		s.SwapFaces()
	}
	s.ToggleOrientation()
}
