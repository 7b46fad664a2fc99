package puzzle

import (
	"encoding/json"
	"fmt"
	"strings"
)

type PieceShape uint8

const (
	PieceShapeSquare PieceShape = iota
	PieceShapeTriangle
	PieceShapeIrregular
)

var pieceShapeNames = []string{"Square", "Triangle", "Irregular"}

func (s PieceShape) String() string {
	if int(s) < len(pieceShapeNames) {
		return pieceShapeNames[s]
	}
	return fmt.Sprintf("PieceShape(%d)", uint8(s))
}

// ParsePieceShape accepts the shape name in any letter case.
func ParsePieceShape(name string) (PieceShape, error) {
	i, err := parseName(pieceShapeNames, name)
	if err != nil {
		return PieceShapeSquare, fmt.Errorf("unknown piece shape: %q", name)
	}
	return PieceShape(i), nil
}

func (s PieceShape) MarshalJSON() ([]byte, error) {
	if int(s) >= len(pieceShapeNames) {
		return nil, fmt.Errorf("invalid piece shape %d", uint8(s))
	}
	return json.Marshal(s.String())
}

func (s *PieceShape) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("piece shape must be a string: %v", err)
	}
	parsed, err := ParsePieceShape(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type DifficultyLevel uint8

const (
	DifficultyEasy DifficultyLevel = iota
	DifficultyMedium
	DifficultyHard
	DifficultyExpert
)

var difficultyNames = []string{"Easy", "Medium", "Hard", "Expert"}

func (d DifficultyLevel) String() string {
	if int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}
	return fmt.Sprintf("DifficultyLevel(%d)", uint8(d))
}

// ParseDifficultyLevel accepts the level name in any letter case.
func ParseDifficultyLevel(name string) (DifficultyLevel, error) {
	i, err := parseName(difficultyNames, name)
	if err != nil {
		return DifficultyEasy, fmt.Errorf("unknown difficulty level: %q", name)
	}
	return DifficultyLevel(i), nil
}

func (d DifficultyLevel) MarshalJSON() ([]byte, error) {
	if int(d) >= len(difficultyNames) {
		return nil, fmt.Errorf("invalid difficulty level %d", uint8(d))
	}
	return json.Marshal(d.String())
}

func (d *DifficultyLevel) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("difficulty level must be a string: %v", err)
	}
	parsed, err := ParseDifficultyLevel(name)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type MoveAction uint8

const (
	MoveActionMove MoveAction = iota
	MoveActionRotate
	MoveActionFlip
)

var moveActionNames = []string{"Move", "Rotate", "Flip"}

func (a MoveAction) String() string {
	if int(a) < len(moveActionNames) {
		return moveActionNames[a]
	}
	return fmt.Sprintf("MoveAction(%d)", uint8(a))
}

func (a MoveAction) MarshalJSON() ([]byte, error) {
	if int(a) >= len(moveActionNames) {
		return nil, fmt.Errorf("invalid move action %d", uint8(a))
	}
	return json.Marshal(a.String())
}

func (a *MoveAction) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("move action must be a string: %v", err)
	}
	i, err := parseName(moveActionNames, name)
	if err != nil {
		return fmt.Errorf("unknown move action: %q", name)
	}
	*a = MoveAction(i)
	return nil
}

func parseName(names []string, name string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no match for %q", name)
}
