package puzzle

const (
	easyMaxPieces   = 9
	mediumMaxPieces = 16
	hardMaxPieces   = 25
)

// CalculateDifficulty classifies a puzzle by its piece count and shape.
// Non-square shapes are one tier harder than squares up to 25 pieces;
// beyond that every puzzle is Expert.
func CalculateDifficulty(grid GridSize, shape PieceShape) DifficultyLevel {
	total := grid.TotalPieces()
	square := shape == PieceShapeSquare

	switch {
	case total <= easyMaxPieces:
		if square {
			return DifficultyEasy
		}
		return DifficultyMedium
	case total <= mediumMaxPieces:
		if square {
			return DifficultyMedium
		}
		return DifficultyHard
	case total <= hardMaxPieces:
		if square {
			return DifficultyHard
		}
		return DifficultyExpert
	default:
		return DifficultyExpert
	}
}
