package tictactoe

import "github.com/IlikeChooros/go-negamax/pkg/negamax"

// Heuristic weights. Empirically chosen, they drive move-ordering quality
// and therefore pruning speed, not game-theoretic correctness.
const (
	// Reserved for terminal win/loss, never produced by the heuristic
	TerminalScore negamax.Score = 1000

	completedLineScore negamax.Score = 100
	twoInLineScore     negamax.Score = 10
	oneInLineScore     negamax.Score = 1
	centerBonus        negamax.Score = 3
	cornerBonus        negamax.Score = 2
)

// Evaluate scores a non-terminal board from the player's perspective,
// summing per-line contributions with center and corner bonuses. The
// result stays well inside (-1000, 1000) so it can never collide with the
// terminal scores. Exactly antisymmetric between the two players.
func Evaluate(p Player, b Board) negamax.Score {
	var score negamax.Score
	for _, line := range allLines {
		score += lineScore(p, b, line)
	}

	switch b.At(center) {
	case p:
		score += centerBonus
	case p.Opponent():
		score -= centerBonus
	}

	playerCorners, opponentCorners := 0, 0
	for _, pos := range corners {
		switch b.At(pos) {
		case p:
			playerCorners++
		case p.Opponent():
			opponentCorners++
		}
	}
	score += negamax.Score(playerCorners-opponentCorners) * cornerBonus

	return score
}

// lineScore is the contribution of one line: completed lines dominate,
// open two-in-a-rows beat open singles, blocked lines are worthless
func lineScore(p Player, b Board, line [3]Position) negamax.Score {
	mine, theirs, empty := lineCounts(p, b, line)

	switch {
	case mine == 3:
		return completedLineScore
	case theirs == 3:
		return -completedLineScore
	case mine == 2 && empty == 1:
		return twoInLineScore
	case theirs == 2 && empty == 1:
		return -twoInLineScore
	case mine == 1 && empty == 2:
		return oneInLineScore
	case theirs == 1 && empty == 2:
		return -oneInLineScore
	default:
		return 0
	}
}
