package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cbodonnell/jigsaw/pkg/puzzle"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = &SQLiteRepository{}

// NewSQLiteRepository opens the database at path and applies the schema.
func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	scripts, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, migration := range scripts {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SavePuzzle(ctx context.Context, config *puzzle.PuzzleConfig) error {
	b, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %v", err)
	}

	q := `
	INSERT INTO puzzles (id, config, created_at)
	VALUES (?, ?, ?)
	ON CONFLICT (id) DO NOTHING;
	`
	res, err := r.db.ExecContext(ctx, q, config.ID, string(b), config.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert puzzle: %v", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &ErrDuplicateID{ID: config.ID}
	}

	return nil
}

func (r *SQLiteRepository) ListPuzzles(ctx context.Context) ([]*puzzle.PuzzleConfig, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT config FROM puzzles ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query puzzles: %v", err)
	}
	defer rows.Close()

	puzzles := []*puzzle.PuzzleConfig{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan puzzle: %v", err)
		}
		config := &puzzle.PuzzleConfig{}
		if err := json.Unmarshal([]byte(raw), config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal puzzle: %v", err)
		}
		puzzles = append(puzzles, config)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate puzzles: %v", err)
	}

	return puzzles, nil
}

func (r *SQLiteRepository) SaveLeaderboardEntry(ctx context.Context, entry *puzzle.LeaderboardEntry) error {
	q := `
	INSERT INTO leaderboard_entries (id, puzzle_id, player_name, completion_time, moves, difficulty, completed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO NOTHING;
	`
	res, err := r.db.ExecContext(ctx, q,
		entry.ID,
		entry.PuzzleID,
		entry.PlayerName,
		int64(entry.CompletionTime),
		entry.Moves,
		entry.Difficulty.String(),
		entry.CompletedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert leaderboard entry: %v", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &ErrDuplicateID{ID: entry.ID}
	}

	return nil
}

func (r *SQLiteRepository) ListLeaderboardEntries(ctx context.Context) ([]*puzzle.LeaderboardEntry, error) {
	q := `
	SELECT id, puzzle_id, player_name, completion_time, moves, difficulty, completed_at
	FROM leaderboard_entries ORDER BY seq;
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard entries: %v", err)
	}
	defer rows.Close()

	entries := []*puzzle.LeaderboardEntry{}
	for rows.Next() {
		var entry puzzle.LeaderboardEntry
		var completionTime int64
		var difficulty string
		var completedAt string
		if err := rows.Scan(&entry.ID, &entry.PuzzleID, &entry.PlayerName, &completionTime, &entry.Moves, &difficulty, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %v", err)
		}
		entry.CompletionTime = uint64(completionTime)
		if entry.Difficulty, err = puzzle.ParseDifficultyLevel(difficulty); err != nil {
			return nil, fmt.Errorf("failed to parse difficulty of entry %s: %v", entry.ID, err)
		}
		if entry.CompletedAt, err = time.Parse(time.RFC3339Nano, completedAt); err != nil {
			return nil, fmt.Errorf("failed to parse completed_at of entry %s: %v", entry.ID, err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard entries: %v", err)
	}

	return entries, nil
}
