package state

import (
	"context"
	"fmt"

	"github.com/cbodonnell/jigsaw/pkg/puzzle"
)

// Store provides shared access to puzzles and leaderboard entries.
// Implementations must be thread-safe.
type Store interface {
	// AddPuzzle appends a puzzle configuration.
	AddPuzzle(ctx context.Context, config *puzzle.PuzzleConfig) error
	// GetPuzzle returns a copy of the puzzle with the given id,
	// or an *ErrNotFound if there is none.
	GetPuzzle(ctx context.Context, id string) (*puzzle.PuzzleConfig, error)
	// Puzzles returns a copy of every puzzle in insertion order.
	Puzzles(ctx context.Context) ([]puzzle.PuzzleConfig, error)
	// AddLeaderboardEntry appends a leaderboard entry.
	AddLeaderboardEntry(ctx context.Context, entry *puzzle.LeaderboardEntry) error
	// Leaderboard returns a copy of every entry sorted by ascending completion time.
	Leaderboard(ctx context.Context) ([]puzzle.LeaderboardEntry, error)
}

type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}

type ErrAlreadyExists struct {
	Kind string
	ID   string
}

func (e *ErrAlreadyExists) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Kind, e.ID)
}

func IsAlreadyExists(err error) bool {
	_, ok := err.(*ErrAlreadyExists)
	return ok
}
