package tictactoe

// LegalMoves lists the empty cells in row-major order. Ordering for search
// quality is a separate concern, see OrderMoves.
func LegalMoves(b Board) []Position {
	moves := make([]Position, 0, 9)
	for r := uint8(0); r < 3; r++ {
		for c := uint8(0); c < 3; c++ {
			if b[r][c] == None {
				moves = append(moves, Position{Row: r, Col: c})
			}
		}
	}
	return moves
}
