package tictactoe

// GameResult classifies a board: still playable, drawn, or won
type GameResult uint8

const (
	Continues GameResult = iota
	Draw
	CrossWon
	CircleWon
)

func (r GameResult) String() string {
	switch r {
	case Draw:
		return "draw"
	case CrossWon:
		return "X won"
	case CircleWon:
		return "O won"
	default:
		return "continues"
	}
}

// WonBy maps a player to its winning result
func WonBy(p Player) GameResult {
	switch p {
	case Cross:
		return CrossWon
	case Circle:
		return CircleWon
	default:
		return Continues
	}
}

// Winner returns the winning player, ok=false unless the game was won
func (r GameResult) Winner() (Player, bool) {
	switch r {
	case CrossWon:
		return Cross, true
	case CircleWon:
		return Circle, true
	default:
		return None, false
	}
}

// Classify derives the result from the board. Never stored, always
// recomputed, 8 lines of 3 cells is cheap.
func Classify(b Board) GameResult {
	for _, line := range allLines {
		first := b.At(line[0])
		if first != None && first == b.At(line[1]) && first == b.At(line[2]) {
			return WonBy(first)
		}
	}
	if b.EmptyCells() == 0 {
		return Draw
	}
	return Continues
}
