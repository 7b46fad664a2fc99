package state

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	mocks "github.com/cbodonnell/jigsaw/mocks/github.com/cbodonnell/jigsaw/pkg/repositories"
	"github.com/cbodonnell/jigsaw/pkg/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPuzzle(id string) *puzzle.PuzzleConfig {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &puzzle.PuzzleConfig{
		ID:            id,
		Name:          "puzzle " + id,
		OriginalImage: "/images/" + id + ".png",
		GridSize:      puzzle.GridSize{Rows: 3, Cols: 3},
		PieceShape:    puzzle.PieceShapeSquare,
		Difficulty:    puzzle.DifficultyEasy,
		Pieces:        []puzzle.PuzzlePiece{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestInMemoryStore_GetPuzzle(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(nil)

	require.NoError(t, store.AddPuzzle(ctx, testPuzzle("a")))

	got, err := store.GetPuzzle(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, testPuzzle("a"), got)

	_, err = store.GetPuzzle(ctx, "missing")
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "puzzle not found: missing")

	err = store.AddPuzzle(ctx, testPuzzle("a"))
	assert.True(t, IsAlreadyExists(err))

	puzzles, err := store.Puzzles(ctx)
	require.NoError(t, err)
	assert.Len(t, puzzles, 1)
}

func TestInMemoryStore_returnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(nil)

	original := testPuzzle("a")
	require.NoError(t, store.AddPuzzle(ctx, original))
	original.Name = "mutated after add"

	got, err := store.GetPuzzle(ctx, "a")
	require.NoError(t, err)
	got.Name = "mutated after get"

	puzzles, err := store.Puzzles(ctx)
	require.NoError(t, err)
	puzzles[0].Name = "mutated after list"

	got, err = store.GetPuzzle(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "puzzle a", got.Name)
}

func TestInMemoryStore_Leaderboard(t *testing.T) {
	tests := []struct {
		name  string
		times []uint64
		want  []string
	}{
		{
			name:  "empty",
			times: nil,
			want:  []string{},
		},
		{
			name:  "reverse insertion order",
			times: []uint64{300, 200, 100},
			want:  []string{"entry-2", "entry-1", "entry-0"},
		},
		{
			name:  "ties keep insertion order",
			times: []uint64{50, 10, 50, 10},
			want:  []string{"entry-1", "entry-3", "entry-0", "entry-2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewInMemoryStore(nil)
			for i, completionTime := range tt.times {
				require.NoError(t, store.AddLeaderboardEntry(ctx, &puzzle.LeaderboardEntry{
					ID:             fmt.Sprintf("entry-%d", i),
					CompletionTime: completionTime,
				}))
			}

			entries, err := store.Leaderboard(ctx)
			require.NoError(t, err)
			ids := []string{}
			for i, entry := range entries {
				ids = append(ids, entry.ID)
				if i > 0 {
					assert.LessOrEqual(t, entries[i-1].CompletionTime, entry.CompletionTime)
				}
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestInMemoryStore_writesThroughRepository(t *testing.T) {
	ctx := context.Background()
	repository := mocks.NewRepository(t)
	store := NewInMemoryStore(repository)

	repository.EXPECT().SavePuzzle(mock.Anything, mock.AnythingOfType("*puzzle.PuzzleConfig")).Return(nil).Once()
	repository.EXPECT().SaveLeaderboardEntry(mock.Anything, mock.AnythingOfType("*puzzle.LeaderboardEntry")).Return(nil).Once()

	require.NoError(t, store.AddPuzzle(ctx, testPuzzle("a")))
	require.NoError(t, store.AddLeaderboardEntry(ctx, &puzzle.LeaderboardEntry{ID: "entry", PuzzleID: "a"}))

	entries, err := store.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestInMemoryStore_repositoryFailureLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repository := mocks.NewRepository(t)
	store := NewInMemoryStore(repository)

	repository.EXPECT().SavePuzzle(mock.Anything, mock.Anything).Return(fmt.Errorf("disk full")).Once()
	repository.EXPECT().SaveLeaderboardEntry(mock.Anything, mock.Anything).Return(fmt.Errorf("disk full")).Once()

	assert.Error(t, store.AddPuzzle(ctx, testPuzzle("a")))
	assert.Error(t, store.AddLeaderboardEntry(ctx, &puzzle.LeaderboardEntry{ID: "entry"}))

	_, err := store.GetPuzzle(ctx, "a")
	assert.True(t, IsNotFound(err))
	puzzles, err := store.Puzzles(ctx)
	require.NoError(t, err)
	assert.Empty(t, puzzles)
	entries, err := store.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInMemoryStore_Restore(t *testing.T) {
	ctx := context.Background()
	repository := mocks.NewRepository(t)
	store := NewInMemoryStore(repository)

	repository.EXPECT().ListPuzzles(mock.Anything).Return([]*puzzle.PuzzleConfig{testPuzzle("a"), testPuzzle("b"), testPuzzle("a")}, nil).Once()
	repository.EXPECT().ListLeaderboardEntries(mock.Anything).Return([]*puzzle.LeaderboardEntry{
		{ID: "slow", CompletionTime: 90},
		{ID: "fast", CompletionTime: 30},
	}, nil).Once()

	require.NoError(t, store.Restore(ctx))

	puzzles, err := store.Puzzles(ctx)
	require.NoError(t, err)
	require.Len(t, puzzles, 2)
	assert.Equal(t, "a", puzzles[0].ID)
	assert.Equal(t, "b", puzzles[1].ID)

	entries, err := store.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "fast", entries[0].ID)
}

func TestInMemoryStore_Restore_withoutRepository(t *testing.T) {
	assert.NoError(t, NewInMemoryStore(nil).Restore(context.Background()))
}

func TestInMemoryStore_concurrentAppends(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(nil)

	const workers = 16
	const perWorker = 50
	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := fmt.Sprintf("%d-%d", w, i)
				assert.NoError(t, store.AddPuzzle(ctx, testPuzzle(id)))
				assert.NoError(t, store.AddLeaderboardEntry(ctx, &puzzle.LeaderboardEntry{ID: id, CompletionTime: uint64(i)}))
				_, err := store.Leaderboard(ctx)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	puzzles, err := store.Puzzles(ctx)
	require.NoError(t, err)
	assert.Len(t, puzzles, workers*perWorker)
	entries, err := store.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, workers*perWorker)
}
