// Package tictactoe binds the generic negamax engine to 3x3 tic-tac-toe:
// win/draw detection, heuristic evaluation, move generation and ordering,
// adaptive search depth and the top-level best-move decision.
package tictactoe

import "fmt"

// Player is one of the two marks, or None for an empty cell
type Player uint8

const (
	None Player = iota
	Cross
	Circle
)

// String returns the mark of the player
func (p Player) String() string {
	switch p {
	case Cross:
		return "X"
	case Circle:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player
func (p Player) Opponent() Player {
	switch p {
	case Cross:
		return Circle
	case Circle:
		return Cross
	default:
		return None
	}
}

// Position is a (row, column) cell address, both in [0, 2]
type Position struct {
	Row, Col uint8
}

// PositionAt returns a checked position.
// If the coordinates fall outside the board, returns an error.
func PositionAt(row, col int) (Position, error) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return Position{}, fmt.Errorf("invalid position: (%d, %d)", row, col)
	}
	return Position{Row: uint8(row), Col: uint8(col)}, nil
}

func (p Position) IsValid() bool {
	return p.Row < 3 && p.Col < 3
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
