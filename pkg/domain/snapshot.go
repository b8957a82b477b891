package domain

// Snapshot is the render-ready projection of a TileState.
// It is a plain value: renderers receive copies and cannot reach back into the core.
type Snapshot struct {
	Orientation Orientation  `json:"orientation"`
	Faces       [2]FaceValue `json:"faces"`
	Squares     [2]PipVector `json:"squares"`
}

// NewSnapshot derives the snapshot of s.
func NewSnapshot(s TileState) (Snapshot, error) {
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		Orientation: s.Orientation,
		Faces:       s.Faces,
	}
	for i, face := range s.Faces {
		pips, err := VisiblePips(face, s.Orientation)
		if err != nil {
			return Snapshot{}, err
		}
		snap.Squares[i] = pips
	}
	return snap, nil
}
