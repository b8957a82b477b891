package domino_test

import (
	"context"
	"testing"

	"github.com/aretw0/domino"
	"github.com/aretw0/domino/pkg/domain"
	"github.com/aretw0/domino/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTile_SeededTilesAgree(t *testing.T) {
	ctx := context.Background()
	a := domino.New(nil, domino.WithSeed(99))
	b := domino.New(nil, domino.WithSeed(99))

	for i := 0; i < 10; i++ {
		require.NoError(t, a.Randomize(ctx))
		require.NoError(t, b.Randomize(ctx))
		assert.Equal(t, a.State(), b.State())
	}
}

func TestTile_IndependentInstances(t *testing.T) {
	ctx := context.Background()
	a := domino.New(nil, domino.WithSeed(1))
	b := domino.New(nil, domino.WithSeed(1))
	require.NoError(t, a.Initialize(ctx))
	require.NoError(t, b.Initialize(ctx))

	require.NoError(t, a.RotateRight(ctx))
	assert.Equal(t, domain.Horizontal, a.State().Orientation)
	assert.Equal(t, domain.Vertical, b.State().Orientation, "rotating one tile leaves the other alone")
}

func TestTile_RendererReceivesSnapshots(t *testing.T) {
	ctx := context.Background()
	var got []domain.Snapshot
	r := ports.RendererFunc(func(_ context.Context, snap domain.Snapshot) error {
		got = append(got, snap)
		return nil
	})

	var hooked int
	tile := domino.New(r,
		domino.WithSeed(5),
		domino.WithLifecycleHooks(domain.LifecycleHooks{
			OnIntent: func(context.Context, *domain.IntentEvent) { hooked++ },
		}),
	)
	require.NoError(t, tile.Initialize(ctx))
	require.NoError(t, tile.Dispatch(ctx, domain.IntentRotateLeft))

	require.Len(t, got, 2)
	assert.Equal(t, 2, hooked)

	snap, err := tile.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, got[1], snap)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, domino.Version)
}
