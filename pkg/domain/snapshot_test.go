package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/domino/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot(t *testing.T) {
	s := domain.TileState{Orientation: domain.Horizontal, Faces: [2]domain.FaceValue{2, 5}}
	snap, err := domain.NewSnapshot(s)
	require.NoError(t, err)

	assert.Equal(t, domain.Horizontal, snap.Orientation)
	assert.Equal(t, s.Faces, snap.Faces)
	assert.Equal(t, domain.MustVisiblePips(2, domain.Horizontal), snap.Squares[0])
	assert.Equal(t, domain.MustVisiblePips(5, domain.Horizontal), snap.Squares[1])
}

func TestNewSnapshot_InvalidState(t *testing.T) {
	_, err := domain.NewSnapshot(domain.TileState{Faces: [2]domain.FaceValue{7, 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidFaceValue)

	_, err = domain.NewSnapshot(domain.TileState{Orientation: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidOrientation)
}

func TestSnapshot_JSON(t *testing.T) {
	snap, err := domain.NewSnapshot(domain.TileState{Faces: [2]domain.FaceValue{1, 0}})
	require.NoError(t, err)

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "vertical", raw["orientation"])
	assert.Equal(t, []any{float64(1), float64(0)}, raw["faces"])

	squares, ok := raw["squares"].([]any)
	require.True(t, ok)
	require.Len(t, squares, 2)
	first := squares[0].([]any)
	assert.Len(t, first, domain.PipCells)
	assert.Equal(t, true, first[4])

	var back domain.Snapshot
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, snap, back)
}

func TestOrientation_Text(t *testing.T) {
	o, err := domain.ParseOrientation(" Horizontal ")
	require.NoError(t, err)
	assert.Equal(t, domain.Horizontal, o)

	o, err = domain.ParseOrientation("v")
	require.NoError(t, err)
	assert.Equal(t, domain.Vertical, o)

	_, err = domain.ParseOrientation("diagonal")
	assert.ErrorIs(t, err, domain.ErrInvalidOrientation)

	_, err = domain.Orientation(4).MarshalText()
	assert.ErrorIs(t, err, domain.ErrInvalidOrientation)
	assert.Equal(t, "orientation(4)", domain.Orientation(4).String())
}

func TestParseIntent(t *testing.T) {
	tests := map[string]domain.Intent{
		"l":            domain.IntentRotateLeft,
		"LEFT":         domain.IntentRotateLeft,
		"rotate_left":  domain.IntentRotateLeft,
		"r":            domain.IntentRotateRight,
		"rotate-right": domain.IntentRotateRight,
		" x ":          domain.IntentRandomize,
		"refresh":      domain.IntentRandomize,
		"randomize":    domain.IntentRandomize,
	}
	for in, want := range tests {
		got, err := domain.ParseIntent(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseIntent("flip")
	assert.ErrorIs(t, err, domain.ErrUnknownIntent)
}

func TestMessage_JSON(t *testing.T) {
	snap, err := domain.NewSnapshot(domain.TileState{Faces: [2]domain.FaceValue{4, 2}})
	require.NoError(t, err)

	data, err := json.Marshal(domain.NewSnapshotMessage(snap))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"snapshot"`)
	assert.NotContains(t, string(data), `"error"`)

	var in domain.Message
	require.NoError(t, json.Unmarshal([]byte(`{"intent":"rotate_right"}`), &in))
	assert.Equal(t, domain.IntentRotateRight, in.Intent)
	assert.Nil(t, in.Snapshot)
}
