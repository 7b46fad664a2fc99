package state

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cbodonnell/jigsaw/pkg/log"
	"github.com/cbodonnell/jigsaw/pkg/puzzle"
	"github.com/cbodonnell/jigsaw/pkg/repositories"
)

var _ Store = &InMemoryStore{}

// InMemoryStore keeps puzzles and leaderboard entries in memory behind a
// single mutex. Readers take the same lock as writers.
//
// When a repository is set, every append is written to it first while the
// lock is held, so the in-memory state only changes once the write succeeded.
type InMemoryStore struct {
	lock        sync.Mutex
	repository  repositories.Repository
	puzzles     []*puzzle.PuzzleConfig
	puzzleIndex map[string]int
	leaderboard []*puzzle.LeaderboardEntry
}

// NewInMemoryStore creates an empty store. repository may be nil.
func NewInMemoryStore(repository repositories.Repository) *InMemoryStore {
	return &InMemoryStore{
		repository:  repository,
		puzzles:     []*puzzle.PuzzleConfig{},
		puzzleIndex: make(map[string]int),
		leaderboard: []*puzzle.LeaderboardEntry{},
	}
}

// Restore replaces the in-memory contents with what the repository holds.
// It is a no-op without a repository.
func (s *InMemoryStore) Restore(ctx context.Context) error {
	if s.repository == nil {
		return nil
	}

	puzzles, err := s.repository.ListPuzzles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list puzzles: %v", err)
	}
	entries, err := s.repository.ListLeaderboardEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list leaderboard entries: %v", err)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.puzzles = make([]*puzzle.PuzzleConfig, 0, len(puzzles))
	s.puzzleIndex = make(map[string]int, len(puzzles))
	for _, p := range puzzles {
		if _, ok := s.puzzleIndex[p.ID]; ok {
			log.Warn("Skipping duplicate puzzle %s during restore", p.ID)
			continue
		}
		s.puzzleIndex[p.ID] = len(s.puzzles)
		s.puzzles = append(s.puzzles, p.Copy())
	}
	s.leaderboard = make([]*puzzle.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		entry := *e
		s.leaderboard = append(s.leaderboard, &entry)
	}

	log.Info("Restored %d puzzles and %d leaderboard entries", len(s.puzzles), len(s.leaderboard))
	return nil
}

func (s *InMemoryStore) AddPuzzle(ctx context.Context, config *puzzle.PuzzleConfig) error {
	if config == nil {
		return fmt.Errorf("puzzle config is nil")
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.puzzleIndex[config.ID]; ok {
		return &ErrAlreadyExists{Kind: "puzzle", ID: config.ID}
	}

	stored := config.Copy()
	if s.repository != nil {
		if err := s.repository.SavePuzzle(ctx, stored); err != nil {
			return fmt.Errorf("failed to save puzzle: %v", err)
		}
	}

	s.puzzleIndex[stored.ID] = len(s.puzzles)
	s.puzzles = append(s.puzzles, stored)
	return nil
}

func (s *InMemoryStore) GetPuzzle(ctx context.Context, id string) (*puzzle.PuzzleConfig, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	i, ok := s.puzzleIndex[id]
	if !ok {
		return nil, &ErrNotFound{Kind: "puzzle", ID: id}
	}
	return s.puzzles[i].Copy(), nil
}

func (s *InMemoryStore) Puzzles(ctx context.Context) ([]puzzle.PuzzleConfig, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	puzzles := make([]puzzle.PuzzleConfig, 0, len(s.puzzles))
	for _, p := range s.puzzles {
		puzzles = append(puzzles, *p.Copy())
	}
	return puzzles, nil
}

func (s *InMemoryStore) AddLeaderboardEntry(ctx context.Context, entry *puzzle.LeaderboardEntry) error {
	if entry == nil {
		return fmt.Errorf("leaderboard entry is nil")
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	stored := *entry
	if s.repository != nil {
		if err := s.repository.SaveLeaderboardEntry(ctx, &stored); err != nil {
			return fmt.Errorf("failed to save leaderboard entry: %v", err)
		}
	}

	s.leaderboard = append(s.leaderboard, &stored)
	return nil
}

func (s *InMemoryStore) Leaderboard(ctx context.Context) ([]puzzle.LeaderboardEntry, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	entries := make([]puzzle.LeaderboardEntry, 0, len(s.leaderboard))
	for _, e := range s.leaderboard {
		entries = append(entries, *e)
	}
	// ties keep insertion order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CompletionTime < entries[j].CompletionTime
	})
	return entries, nil
}
