package tictactoe

import "slices"

// Move-ordering priority classes. An immediate win outranks everything, a
// block of an immediate loss outranks any positional score.
const (
	winClassScore   = 10000
	blockClassScore = 5000

	doubleForkBonus = 20
	singleForkBonus = 5

	centerPriority = 3
	cornerPriority = 2
	edgePriority   = 0
)

// OrderMoves reorders the candidates to maximize alpha-beta cutoffs:
// immediate wins first, blocks of immediate opponent wins second, then by
// heuristic score plus positional and fork-potential bonuses. The sort is
// stable, tied moves keep the generator's row-major order.
func OrderMoves(p Player, b Board, moves []Position) []Position {
	ordered := make([]Position, len(moves))
	copy(ordered, moves)

	scores := make(map[Position]int, len(moves))
	for _, move := range ordered {
		scores[move] = orderScore(p, b, move)
	}

	slices.SortStableFunc(ordered, func(a, c Position) int {
		return scores[c] - scores[a]
	})
	return ordered
}

// orderScore classifies one candidate. The checks run cheapest-first and
// short-circuit: once a move is known to win or block, nothing else is
// computed for it.
func orderScore(p Player, b Board, move Position) int {
	if Classify(b.WithMove(p, move)) == WonBy(p) {
		return winClassScore
	}

	opponent := p.Opponent()
	if Classify(b.WithMove(opponent, move)) == WonBy(opponent) {
		return blockClassScore
	}

	after := b.WithMove(p, move)
	return int(Evaluate(p, after)) + positionalPriority(move) + forkBonus(p, after)
}

// positionalPriority is a fixed weight per cell class
func positionalPriority(move Position) int {
	switch {
	case isCenter(move):
		return centerPriority
	case isCorner(move):
		return cornerPriority
	default:
		return edgePriority
	}
}

// forkBonus rewards boards that keep two or more lines promising for the
// player: a promising line holds at least two of the player's marks, the
// rest empty, so it is one move from completion and the opponent cannot
// answer two of them at once.
func forkBonus(p Player, b Board) int {
	promising := 0
	for _, line := range allLines {
		mine, theirs, _ := lineCounts(p, b, line)
		if theirs == 0 && mine >= 2 && mine < 3 {
			promising++
		}
	}

	switch {
	case promising >= 2:
		return doubleForkBonus
	case promising == 1:
		return singleForkBonus
	default:
		return 0
	}
}

// orderForSearch is the cheaper variant used on interior nodes, where the
// recursion itself supplies the tactics: cell class plus the immediate
// heuristic score, no win/block probing.
func orderForSearch(p Player, b Board, moves []Position) []Position {
	ordered := make([]Position, len(moves))
	copy(ordered, moves)

	scores := make(map[Position]int, len(moves))
	for _, move := range ordered {
		scores[move] = positionalPriority(move) + int(Evaluate(p, b.WithMove(p, move)))
	}

	slices.SortStableFunc(ordered, func(a, c Position) int {
		return scores[c] - scores[a]
	})
	return ordered
}
