package repositories

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"path"

	"github.com/cbodonnell/jigsaw/pkg/puzzle"
)

//go:embed migrations
var migrations embed.FS

// Repository persists puzzles and leaderboard entries.
// Implementations are not required to be safe for concurrent use;
// the state store serializes every call.
type Repository interface {
	Close(ctx context.Context) error
	SavePuzzle(ctx context.Context, config *puzzle.PuzzleConfig) error
	// ListPuzzles returns every puzzle in the order it was saved.
	ListPuzzles(ctx context.Context) ([]*puzzle.PuzzleConfig, error)
	SaveLeaderboardEntry(ctx context.Context, entry *puzzle.LeaderboardEntry) error
	// ListLeaderboardEntries returns every entry in the order it was saved.
	ListLeaderboardEntries(ctx context.Context) ([]*puzzle.LeaderboardEntry, error)
}

// New opens the repository named by connStr.
// The memory scheme returns a nil Repository, meaning nothing is persisted.
func New(ctx context.Context, connStr string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "", "memory":
		return nil, nil
	case "sqlite":
		repository, err := NewSQLiteRepository(ctx, u.Host+u.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite repository: %v", err)
		}
		return repository, nil
	case "postgres", "postgresql":
		repository, err := NewPostgresRepository(ctx, u.String())
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres repository: %v", err)
		}
		return repository, nil
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}

// readMigrations returns the migration scripts for dialect in file name order.
func readMigrations(dialect string) ([]string, error) {
	dir := path.Join("migrations", dialect)
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	var scripts []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		migrationPath := path.Join(dir, entry.Name())
		migration, err := fs.ReadFile(migrations, migrationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}
		scripts = append(scripts, string(migration))
	}
	return scripts, nil
}
