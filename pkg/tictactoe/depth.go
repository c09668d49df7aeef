package tictactoe

// The longest possible game is 9 plies, a depth-9 search is always
// exhaustive
const MaxDepth = 9

// SearchDepth picks a search depth from the remaining-move count and the
// board's tactical density. Deterministic, capped at MaxDepth.
func SearchDepth(moveCount int, b Board) int {
	depth := baseDepth(moveCount) + phaseBonus(moveCount)
	if activeLines(b) >= 3 {
		depth++
	}
	return min(MaxDepth, depth)
}

func baseDepth(moveCount int) int {
	switch moveCount {
	case 1:
		return 1
	case 2:
		return 3
	case 3:
		return 5
	case 4:
		return 6
	case 5:
		return 7
	case 6:
		return 6
	default:
		return 5
	}
}

// Opening positions get a small bump, endgames a large one, a near-full
// board is cheap to search exhaustively
func phaseBonus(moveCount int) int {
	switch {
	case moveCount >= 7:
		return 1
	case moveCount >= 4:
		return 2
	default:
		return 3
	}
}

// activeLines counts lines holding marks from exactly one player plus at
// least one empty cell, live but undecided
func activeLines(b Board) int {
	active := 0
	for _, line := range allLines {
		mine, theirs, empty := lineCounts(Cross, b, line)
		onlyOne := (mine > 0) != (theirs > 0)
		if onlyOne && empty > 0 {
			active++
		}
	}
	return active
}
