package puzzle

import "time"

type GridSize struct {
	Rows uint32 `json:"rows"`
	Cols uint32 `json:"cols"`
}

// TotalPieces returns rows*cols without overflowing.
func (g GridSize) TotalPieces() uint64 {
	return uint64(g.Rows) * uint64(g.Cols)
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PuzzlePiece struct {
	ID              string     `json:"id"`
	OriginalIndex   int        `json:"original_index"`
	CurrentPosition Position   `json:"current_position"`
	CorrectPosition Position   `json:"correct_position"`
	Rotation        float64    `json:"rotation"`
	IsFlipped       bool       `json:"is_flipped"`
	ImageData       string     `json:"image_data"`
	Width           uint32     `json:"width"`
	Height          uint32     `json:"height"`
	Shape           PieceShape `json:"shape"`
}

type PuzzleConfig struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	OriginalImage string          `json:"original_image"`
	GridSize      GridSize        `json:"grid_size"`
	PieceShape    PieceShape      `json:"piece_shape"`
	Difficulty    DifficultyLevel `json:"difficulty"`
	Pieces        []PuzzlePiece   `json:"pieces"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Copy returns a deep copy of the configuration.
func (p *PuzzleConfig) Copy() *PuzzleConfig {
	c := *p
	c.Pieces = make([]PuzzlePiece, len(p.Pieces))
	copy(c.Pieces, p.Pieces)
	return &c
}

type GameMove struct {
	ID           string     `json:"id"`
	PieceID      string     `json:"piece_id"`
	Action       MoveAction `json:"action"`
	FromPosition *Position  `json:"from_position"`
	ToPosition   *Position  `json:"to_position"`
	Timestamp    time.Time  `json:"timestamp"`
}

type GameState struct {
	Config      PuzzleConfig `json:"config"`
	StartTime   time.Time    `json:"start_time"`
	EndTime     *time.Time   `json:"end_time"`
	Moves       uint32       `json:"moves"`
	IsCompleted bool         `json:"is_completed"`
	// ElapsedTime is in seconds
	ElapsedTime uint64     `json:"elapsed_time"`
	History     []GameMove `json:"history"`
}

// NewGameState starts a fresh game for the given puzzle.
func NewGameState(config *PuzzleConfig, startTime time.Time) *GameState {
	return &GameState{
		Config:    *config.Copy(),
		StartTime: startTime,
		History:   []GameMove{},
	}
}

type LeaderboardEntry struct {
	ID       string `json:"id"`
	PuzzleID string `json:"puzzle_id"`
	// PlayerName is the display name, not an account id
	PlayerName string `json:"player_name"`
	// CompletionTime is in seconds
	CompletionTime uint64          `json:"completion_time"`
	Moves          uint32          `json:"moves"`
	Difficulty     DifficultyLevel `json:"difficulty"`
	CompletedAt    time.Time       `json:"completed_at"`
}
