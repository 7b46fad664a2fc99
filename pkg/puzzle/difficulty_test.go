package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDifficulty(t *testing.T) {
	type args struct {
		grid  GridSize
		shape PieceShape
	}
	tests := []struct {
		name string
		args args
		want DifficultyLevel
	}{
		{name: "3x3 square", args: args{GridSize{3, 3}, PieceShapeSquare}, want: DifficultyEasy},
		{name: "3x3 triangle", args: args{GridSize{3, 3}, PieceShapeTriangle}, want: DifficultyMedium},
		{name: "1x1 irregular", args: args{GridSize{1, 1}, PieceShapeIrregular}, want: DifficultyMedium},
		{name: "2x5 square", args: args{GridSize{2, 5}, PieceShapeSquare}, want: DifficultyMedium},
		{name: "2x5 irregular", args: args{GridSize{2, 5}, PieceShapeIrregular}, want: DifficultyHard},
		{name: "4x4 square", args: args{GridSize{4, 4}, PieceShapeSquare}, want: DifficultyMedium},
		{name: "4x4 triangle", args: args{GridSize{4, 4}, PieceShapeTriangle}, want: DifficultyHard},
		{name: "1x17 square", args: args{GridSize{1, 17}, PieceShapeSquare}, want: DifficultyHard},
		{name: "1x17 triangle", args: args{GridSize{1, 17}, PieceShapeTriangle}, want: DifficultyExpert},
		{name: "5x5 square", args: args{GridSize{5, 5}, PieceShapeSquare}, want: DifficultyHard},
		{name: "5x5 irregular", args: args{GridSize{5, 5}, PieceShapeIrregular}, want: DifficultyExpert},
		{name: "2x13 square", args: args{GridSize{2, 13}, PieceShapeSquare}, want: DifficultyExpert},
		{name: "6x6 square", args: args{GridSize{6, 6}, PieceShapeSquare}, want: DifficultyExpert},
		{name: "6x6 triangle", args: args{GridSize{6, 6}, PieceShapeTriangle}, want: DifficultyExpert},
		{name: "huge grid does not overflow", args: args{GridSize{1 << 31, 1 << 31}, PieceShapeSquare}, want: DifficultyExpert},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateDifficulty(tt.args.grid, tt.args.shape))
		})
	}
}

func TestCalculateDifficulty_boundaries(t *testing.T) {
	shapes := []PieceShape{PieceShapeSquare, PieceShapeTriangle, PieceShapeIrregular}
	for _, shape := range shapes {
		for total := uint32(1); total <= 40; total++ {
			got := CalculateDifficulty(GridSize{Rows: 1, Cols: total}, shape)
			var want DifficultyLevel
			switch {
			case total <= 9 && shape == PieceShapeSquare:
				want = DifficultyEasy
			case total <= 9, total <= 16 && shape == PieceShapeSquare:
				want = DifficultyMedium
			case total <= 16, total <= 25 && shape == PieceShapeSquare:
				want = DifficultyHard
			default:
				want = DifficultyExpert
			}
			assert.Equalf(t, want, got, "total=%d shape=%s", total, shape)

			// the rule depends only on the product
			assert.Equal(t, got, CalculateDifficulty(GridSize{Rows: total, Cols: 1}, shape))
		}
	}
}
