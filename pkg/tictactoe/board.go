package tictactoe

import "strings"

// Board is the 3x3 grid, indexed [row][col]. It is a plain value: copying
// one is 9 bytes, so every move produces a fresh board and the search never
// mutates a position it might backtrack to.
type Board [3][3]Player

// At returns the mark at the given position, None when out of range
func (b Board) At(pos Position) Player {
	if !pos.IsValid() {
		return None
	}
	return b[pos.Row][pos.Col]
}

func (b Board) IsEmpty(pos Position) bool {
	return b.At(pos) == None
}

// WithMove returns a copy of the board with the player's mark placed at
// pos. The cell is assumed empty, callers only pass generator output.
func (b Board) WithMove(p Player, pos Position) Board {
	b[pos.Row][pos.Col] = p
	return b
}

// EmptyCells counts the unoccupied cells
func (b Board) EmptyCells() int {
	n := 0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if b[r][c] == None {
				n++
			}
		}
	}
	return n
}

func (b Board) String() string {
	var s strings.Builder
	for r := 0; r < 3; r++ {
		if r > 0 {
			s.WriteString("\n-+-+-\n")
		}
		for c := 0; c < 3; c++ {
			if c > 0 {
				s.WriteByte('|')
			}
			s.WriteString(b[r][c].String())
		}
	}
	return s.String()
}

// The 8 winning lines: 3 rows, 3 columns, main diagonal, anti-diagonal.
// Enumeration order matters only for which winner Classify reports first.
var allLines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

var corners = [4]Position{{0, 0}, {0, 2}, {2, 0}, {2, 2}}

var center = Position{1, 1}

func isCorner(pos Position) bool {
	return pos.Row != 1 && pos.Col != 1
}

func isCenter(pos Position) bool {
	return pos == center
}

// lineCounts tallies the marks of a line: the player's, the opponent's and
// the empties
func lineCounts(p Player, b Board, line [3]Position) (mine, theirs, empty int) {
	for _, pos := range line {
		switch b.At(pos) {
		case p:
			mine++
		case None:
			empty++
		default:
			theirs++
		}
	}
	return
}
