package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cbodonnell/jigsaw/pkg/log"
	"github.com/cbodonnell/jigsaw/pkg/puzzle"
	"github.com/cbodonnell/jigsaw/pkg/state"
	"github.com/google/uuid"
)

const (
	DefaultPlayerName = "Player"
	SaveConfirmation  = "Game saved"
)

type CreatePuzzleParams struct {
	ImagePath  string             `json:"image_path"`
	GridSize   puzzle.GridSize    `json:"grid_size"`
	PieceShape *puzzle.PieceShape `json:"piece_shape"`
	Name       string             `json:"name"`
}

type SaveGameParams struct {
	GameState *puzzle.GameState `json:"game_state"`
	// PlayerName is optional. When empty the authenticated caller
	// or DefaultPlayerName is recorded on the leaderboard.
	PlayerName string `json:"player_name,omitempty"`
}

type LoadGameParams struct {
	GameID string `json:"game_id"`
}

// Service implements the puzzle commands on top of a state.Store.
type Service struct {
	store state.Store
	now   func() time.Time
	newID func(prefix string, now time.Time) string
}

type NewServiceOptions struct {
	Store state.Store
	// Now defaults to time.Now.
	Now func() time.Time
	// NewID defaults to NewTimeID.
	NewID func(prefix string, now time.Time) string
}

func NewService(opts NewServiceOptions) *Service {
	s := &Service{
		store: opts.Store,
		now:   opts.Now,
		newID: opts.NewID,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = NewTimeID
	}
	return s
}

// NewTimeID builds ids like puzzle_1700000000_1b4e28ba. The random suffix
// keeps ids unique when several are created within the same second.
func NewTimeID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%d_%s", prefix, now.Unix(), strings.SplitN(uuid.NewString(), "-", 2)[0])
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC()
}

func validateGridSize(grid puzzle.GridSize) error {
	if grid.Rows == 0 || grid.Cols == 0 {
		return invalid("grid size must be positive, got %dx%d", grid.Rows, grid.Cols)
	}
	return nil
}

func (p CreatePuzzleParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("puzzle name must not be empty")
	}
	if strings.TrimSpace(p.ImagePath) == "" {
		return invalid("image path must not be empty")
	}
	if p.PieceShape == nil {
		return invalid("piece shape is required")
	}
	return validateGridSize(p.GridSize)
}

// CreatePuzzle registers a new puzzle configuration. Piece generation is
// done by the front end, so the returned configuration has no pieces.
func (s *Service) CreatePuzzle(ctx context.Context, params CreatePuzzleParams) Response[puzzle.PuzzleConfig] {
	if err := params.validate(); err != nil {
		logRejected("create_puzzle", err)
		return Failure[puzzle.PuzzleConfig](err)
	}

	now := s.timestamp()
	config := &puzzle.PuzzleConfig{
		ID:            s.newID("puzzle", now),
		Name:          strings.TrimSpace(params.Name),
		OriginalImage: params.ImagePath,
		GridSize:      params.GridSize,
		PieceShape:    *params.PieceShape,
		Difficulty:    puzzle.CalculateDifficulty(params.GridSize, *params.PieceShape),
		Pieces:        []puzzle.PuzzlePiece{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.AddPuzzle(ctx, config); err != nil {
		log.Error("Failed to add puzzle %s: %v", config.ID, err)
		return Failure[puzzle.PuzzleConfig](fmt.Errorf("failed to create puzzle: %v", err))
	}

	log.Info("Created puzzle %s (%dx%d %s, %s)", config.ID, config.GridSize.Rows, config.GridSize.Cols, config.PieceShape, config.Difficulty)
	return Success(*config)
}

// logRejected logs bad input at debug level and anything else as an error.
func logRejected(command string, err error) {
	if IsValidationError(err) {
		log.Debug("Rejected %s: %v", command, err)
		return
	}
	log.Error("Failed %s: %v", command, err)
}

func (s *Service) playerName(ctx context.Context, params SaveGameParams) string {
	if name := strings.TrimSpace(params.PlayerName); name != "" {
		return name
	}
	if name, ok := PlayerNameFromContext(ctx); ok {
		return name
	}
	return DefaultPlayerName
}

func (p SaveGameParams) validate() error {
	if p.GameState == nil {
		return invalid("game state is required")
	}
	if !p.GameState.IsCompleted {
		return nil
	}
	if p.GameState.Config.ID == "" {
		return invalid("completed game must reference a puzzle id")
	}
	return validateGridSize(p.GameState.Config.GridSize)
}

// SaveGame records a game. A completed game is added to the leaderboard.
func (s *Service) SaveGame(ctx context.Context, params SaveGameParams) Response[string] {
	if err := params.validate(); err != nil {
		logRejected("save_game", err)
		return Failure[string](err)
	}

	game := params.GameState
	log.Info("Saving game for puzzle %s: %d moves, %d seconds", game.Config.ID, game.Moves, game.ElapsedTime)

	if !game.IsCompleted {
		return Success(SaveConfirmation)
	}

	now := s.timestamp()
	entry := &puzzle.LeaderboardEntry{
		ID:             s.newID("leaderboard", now),
		PuzzleID:       game.Config.ID,
		PlayerName:     s.playerName(ctx, params),
		CompletionTime: game.ElapsedTime,
		Moves:          game.Moves,
		// Recomputed from the saved grid and shape rather than copied from
		// game.Config.Difficulty. Both agree for any puzzle this service created.
		Difficulty:  puzzle.CalculateDifficulty(game.Config.GridSize, game.Config.PieceShape),
		CompletedAt: now,
	}
	if err := s.store.AddLeaderboardEntry(ctx, entry); err != nil {
		log.Error("Failed to add leaderboard entry for puzzle %s: %v", entry.PuzzleID, err)
		return Failure[string](fmt.Errorf("failed to save game: %v", err))
	}

	log.Info("Added leaderboard entry %s for %s", entry.ID, entry.PlayerName)
	return Success(SaveConfirmation)
}

// LoadGame starts a fresh game for the puzzle whose id is params.GameID.
func (s *Service) LoadGame(ctx context.Context, params LoadGameParams) Response[puzzle.GameState] {
	if strings.TrimSpace(params.GameID) == "" {
		err := invalid("game id must not be empty")
		logRejected("load_game", err)
		return Failure[puzzle.GameState](err)
	}

	config, err := s.store.GetPuzzle(ctx, params.GameID)
	if err != nil {
		if state.IsNotFound(err) {
			log.Debug("load_game: %v", err)
			return Failure[puzzle.GameState](err)
		}
		log.Error("Failed to get puzzle %s: %v", params.GameID, err)
		return Failure[puzzle.GameState](fmt.Errorf("failed to load game: %v", err))
	}

	return Success(*puzzle.NewGameState(config, s.timestamp()))
}

func (s *Service) GetLeaderboard(ctx context.Context) Response[[]puzzle.LeaderboardEntry] {
	entries, err := s.store.Leaderboard(ctx)
	if err != nil {
		log.Error("Failed to get leaderboard: %v", err)
		return Failure[[]puzzle.LeaderboardEntry](fmt.Errorf("failed to get leaderboard: %v", err))
	}
	return Success(entries)
}

func (s *Service) GetPuzzles(ctx context.Context) Response[[]puzzle.PuzzleConfig] {
	puzzles, err := s.store.Puzzles(ctx)
	if err != nil {
		log.Error("Failed to get puzzles: %v", err)
		return Failure[[]puzzle.PuzzleConfig](fmt.Errorf("failed to get puzzles: %v", err))
	}
	return Success(puzzles)
}
