package domain

import "fmt"

// FaceValue is the pip count shown on one square of a tile.
type FaceValue int

const (
	MinFace FaceValue = 0
	MaxFace FaceValue = 6

	// FaceCount is the number of distinct face values (0 through 6).
	FaceCount = int(MaxFace-MinFace) + 1
)

// Valid reports whether v lies within [MinFace, MaxFace].
func (v FaceValue) Valid() bool {
	return v >= MinFace && v <= MaxFace
}

func checkFace(v FaceValue) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidFaceValue, int(v), int(MinFace), int(MaxFace))
	}
	return nil
}
