package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cbodonnell/jigsaw/pkg/log"
	"github.com/cbodonnell/jigsaw/pkg/puzzle"
	"github.com/jackc/pgx/v5"
)

// PostgresRepository uses a single connection. It relies on the state
// store to serialize calls since a pgx.Conn is not safe for concurrent use.
type PostgresRepository struct {
	conn *pgx.Conn
}

var _ Repository = &PostgresRepository{}

// NewPostgresRepository connects to connStr and applies the schema.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (*PostgresRepository, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}
	log.Info("Connected to %s as %s", database, username)

	scripts, err := readMigrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for i, migration := range scripts {
		if _, err := conn.Exec(ctx, migration); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SavePuzzle(ctx context.Context, config *puzzle.PuzzleConfig) error {
	b, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %v", err)
	}

	q := `
	INSERT INTO puzzles (id, config, created_at) VALUES ($1, $2, $3)
	ON CONFLICT (id) DO NOTHING;
	`
	tag, err := r.conn.Exec(ctx, q, config.ID, string(b), config.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert puzzle: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrDuplicateID{ID: config.ID}
	}

	return nil
}

func (r *PostgresRepository) ListPuzzles(ctx context.Context) ([]*puzzle.PuzzleConfig, error) {
	rows, err := r.conn.Query(ctx, "SELECT config::text FROM puzzles ORDER BY seq")
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

func (r *PostgresRepository) SaveLeaderboardEntry(ctx context.Context, entry *puzzle.LeaderboardEntry) error {
	q := `
	INSERT INTO leaderboard_entries (id, puzzle_id, player_name, completion_time, moves, difficulty, completed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO NOTHING;
	`
	tag, err := r.conn.Exec(ctx, q,
		entry.ID,
		entry.PuzzleID,
		entry.PlayerName,
		int64(entry.CompletionTime),
		int32(entry.Moves),
		entry.Difficulty.String(),
		entry.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert leaderboard entry: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrDuplicateID{ID: entry.ID}
	}

	return nil
}

func (r *PostgresRepository) ListLeaderboardEntries(ctx context.Context) ([]*puzzle.LeaderboardEntry, error) {
	q := `
	SELECT id, puzzle_id, player_name, completion_time, moves, difficulty, completed_at
	FROM leaderboard_entries ORDER BY seq;
	`
	rows, err := r.conn.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard entries: %v", err)
	}
	defer rows.Close()

	entries := []*puzzle.LeaderboardEntry{}
	for rows.Next() {
		var entry puzzle.LeaderboardEntry
		var completionTime int64
		var moves int32
		var difficulty string
		var completedAt time.Time
		if err := rows.Scan(&entry.ID, &entry.PuzzleID, &entry.PlayerName, &completionTime, &moves, &difficulty, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %v", err)
		}
		entry.CompletionTime = uint64(completionTime)
		entry.Moves = uint32(moves)
		entry.CompletedAt = completedAt.UTC()
		if entry.Difficulty, err = puzzle.ParseDifficultyLevel(difficulty); err != nil {
			return nil, fmt.Errorf("failed to parse difficulty of entry %s: %v", entry.ID, err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard entries: %v", err)
	}

	return entries, nil
}
