package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/domino"
	"github.com/aretw0/domino/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(context.Background(), domino.New(nil, domino.WithSeed(21)))
	require.NoError(t, err)
	return s
}

func TestServer_IntentTools(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	start, err := s.handleSnapshot(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "vertical", start.Orientation)
	assert.Contains(t, start.Art, "┌───────┐")

	right, err := s.intentHandler(domain.IntentRotateRight)(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "horizontal", right.Orientation)
	assert.Equal(t, [2]int{start.Faces[1], start.Faces[0]}, right.Faces)
	assert.Contains(t, right.Art, "┬")

	left, err := s.intentHandler(domain.IntentRotateLeft)(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, start, left, "rotate right then left restores the tile")

	rnd, err := s.intentHandler(domain.IntentRandomize)(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "vertical", rnd.Orientation)
	for sq, f := range rnd.Faces {
		pips := domain.MustVisiblePips(domain.FaceValue(f), domain.Vertical)
		assert.Equal(t, [domain.PipCells]bool(pips), rnd.Squares[sq])
	}
}

func TestServer_PipTable(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.handlePipTable(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"orientation": "horizontal"})
	require.NoError(t, err)
	assert.Equal(t, "horizontal", resp.Orientation)
	assert.Equal(t, [domain.PipCells]bool(domain.MustVisiblePips(6, domain.Horizontal)), resp.Faces[6])

	resp, err = s.handlePipTable(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "vertical", resp.Orientation)

	_, err = s.handlePipTable(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"orientation": "sideways"})
	assert.ErrorIs(t, err, domain.ErrInvalidOrientation)
}

type failingTile struct {
	initErr     error
	dispatchErr error
}

func (f failingTile) Initialize(context.Context) error { return f.initErr }
func (f failingTile) Dispatch(context.Context, domain.Intent) error { return f.dispatchErr }
func (f failingTile) Snapshot() (domain.Snapshot, error) { return domain.Snapshot{}, nil }

func TestServer_Errors(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewServer(context.Background(), failingTile{initErr: boom})
	assert.ErrorIs(t, err, boom)

	s, err := NewServer(context.Background(), failingTile{dispatchErr: boom})
	require.NoError(t, err)
	_, err = s.intentHandler(domain.IntentRandomize)(context.Background(), mcp.CallToolRequest{}, nil)
	assert.ErrorIs(t, err, boom)
}
