package domain_test

import (
	"testing"

	"github.com/aretw0/domino/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStates() []domain.TileState {
	var states []domain.TileState
	for _, o := range []domain.Orientation{domain.Vertical, domain.Horizontal} {
		for a := domain.MinFace; a <= domain.MaxFace; a++ {
			for b := domain.MinFace; b <= domain.MaxFace; b++ {
				states = append(states, domain.TileState{Orientation: o, Faces: [2]domain.FaceValue{a, b}})
			}
		}
	}
	return states
}

func TestNewTileState_Initial(t *testing.T) {
	s := domain.NewTileState()
	assert.Equal(t, domain.Vertical, s.Orientation)
	assert.Equal(t, [2]domain.FaceValue{0, 0}, s.Faces)
	assert.Equal(t, domain.TileState{}, *s, "zero value is the initial state")
}

func TestTileState_SetFaces(t *testing.T) {
	s := domain.NewTileState()
	require.NoError(t, s.SetFaces(3, 5))
	assert.Equal(t, [2]domain.FaceValue{3, 5}, s.Faces)

	t.Run("rejects out of range without mutating", func(t *testing.T) {
		for _, bad := range [][2]domain.FaceValue{{7, 0}, {0, 7}, {-1, 2}, {2, -1}} {
			err := s.SetFaces(bad[0], bad[1])
			assert.ErrorIs(t, err, domain.ErrInvalidFaceValue)
			assert.Equal(t, [2]domain.FaceValue{3, 5}, s.Faces)
		}
	})
}

func TestTileState_SwapAndToggle(t *testing.T) {
	s := domain.TileState{Faces: [2]domain.FaceValue{1, 4}}
	s.SwapFaces()
	assert.Equal(t, [2]domain.FaceValue{4, 1}, s.Faces)
	assert.Equal(t, domain.Vertical, s.Orientation)

	s.ToggleOrientation()
	assert.Equal(t, domain.Horizontal, s.Orientation)
	s.ToggleOrientation()
	assert.Equal(t, domain.Vertical, s.Orientation)
}

func TestTileState_RotateRight_Scenarios(t *testing.T) {
	t.Run("initial tile", func(t *testing.T) {
		s := domain.NewTileState()
		s.RotateRight()
		assert.Equal(t, domain.Horizontal, s.Orientation)
		assert.Equal(t, [2]domain.FaceValue{0, 0}, s.Faces)
	})

	t.Run("swap only when leaving vertical", func(t *testing.T) {
		s := domain.TileState{Orientation: domain.Vertical, Faces: [2]domain.FaceValue{3, 5}}
		s.RotateRight()
		assert.Equal(t, domain.Horizontal, s.Orientation)
		assert.Equal(t, [2]domain.FaceValue{5, 3}, s.Faces)

		s.RotateRight()
		assert.Equal(t, domain.Vertical, s.Orientation)
		assert.Equal(t, [2]domain.FaceValue{5, 3}, s.Faces)
	})
}

func TestTileState_RotateLeft_Scenarios(t *testing.T) {
	s := domain.TileState{Orientation: domain.Vertical, Faces: [2]domain.FaceValue{3, 5}}
	s.RotateLeft()
	assert.Equal(t, domain.Horizontal, s.Orientation)
	assert.Equal(t, [2]domain.FaceValue{3, 5}, s.Faces, "no swap when leaving vertical")

	s.RotateLeft()
	assert.Equal(t, domain.Vertical, s.Orientation)
	assert.Equal(t, [2]domain.FaceValue{5, 3}, s.Faces, "swap when leaving horizontal")
}

func TestTileState_RotationIdentities(t *testing.T) {
	for _, start := range allStates() {
		left := start
		right := start
		for i := 0; i < 4; i++ {
			left.RotateLeft()
			right.RotateRight()
		}
		assert.Equal(t, start, left, "4x left from %+v", start)
		assert.Equal(t, start, right, "4x right from %+v", start)

		lr := start
		lr.RotateLeft()
		lr.RotateRight()
		assert.Equal(t, start, lr, "left then right from %+v", start)

		rl := start
		rl.RotateRight()
		rl.RotateLeft()
		assert.Equal(t, start, rl, "right then left from %+v", start)

		llrr := start
		llrr.RotateLeft()
		llrr.RotateLeft()
		llrr.RotateRight()
		llrr.RotateRight()
		assert.Equal(t, start, llrr, "LLRR from %+v", start)
	}
}

func TestTileState_OrientationAlternates(t *testing.T) {
	s := domain.TileState{Faces: [2]domain.FaceValue{2, 6}}
	moves := []func(){s.RotateLeft, s.RotateRight, s.RotateRight, s.RotateLeft, s.RotateLeft}
	prev := s.Orientation
	for i, move := range moves {
		move()
		assert.NotEqual(t, prev, s.Orientation, "move %d", i)
		prev = s.Orientation
	}
}

func TestTileState_Validate(t *testing.T) {
	assert.NoError(t, domain.TileState{}.Validate())

	err := domain.TileState{Orientation: 2}.Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidOrientation)

	err = domain.TileState{Faces: [2]domain.FaceValue{0, 9}}.Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidFaceValue)
	assert.Contains(t, err.Error(), "square 1")
}
