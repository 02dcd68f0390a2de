package manifest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smitusov/pgnsplit/internal/manifest"
	"github.com/smitusov/pgnsplit/internal/testutil"
)

func sampleExports() []manifest.Export {
	return []manifest.Export{
		{
			Seq:      1,
			Filename: "001 - Mitusov, Semen vs Ivanov, Petr - 2023.05.01 - ECO C50 - 1-0.pgn",
			White:    "Mitusov, Semen",
			Black:    "Ivanov, Petr",
			PlayedAs: "white",
			Opponent: "Ivanov, Petr",
			Date:     "2023.05.01",
			Result:   "1-0",
			ECO:      "C50",
			Plies:    41,
		},
		{
			Seq:      2,
			Filename: "002 - Jones, Paul vs Brown, Tom - ongoing.pgn",
			White:    "Jones, Paul",
			Black:    "Brown, Tom",
			Result:   "ongoing",
		},
	}
}

func TestInsertExports_AndCount(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertExports(ctx, sampleExports()))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestInsertExports_RerunReplaces(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertExports(ctx, sampleExports()))
	require.NoError(t, store.InsertExports(ctx, sampleExports()))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "a re-run must not accumulate duplicate rows")
}

func TestInsertExports_Empty(t *testing.T) {
	store := testutil.NewTestStore(t)

	require.NoError(t, store.InsertExports(context.Background(), nil))
}

func TestList_Filters(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.InsertExports(ctx, sampleExports()))

	t.Run("no filter returns all in seq order", func(t *testing.T) {
		got, err := store.List(ctx, manifest.Filter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].Seq)
		assert.Equal(t, 2, got[1].Seq)
	})

	t.Run("by opponent", func(t *testing.T) {
		got, err := store.List(ctx, manifest.Filter{Opponent: "Ivanov, Petr"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Mitusov, Semen", got[0].White)
		assert.Equal(t, 41, got[0].Plies)
	})

	t.Run("by result", func(t *testing.T) {
		got, err := store.List(ctx, manifest.Filter{Result: "ongoing"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Jones, Paul", got[0].White)
	})

	t.Run("by played_as", func(t *testing.T) {
		got, err := store.List(ctx, manifest.Filter{PlayedAs: "white"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "white", got[0].PlayedAs)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := store.List(ctx, manifest.Filter{Opponent: "Nobody"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
