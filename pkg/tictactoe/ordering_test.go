package tictactoe

import "testing"

func TestOrderMovesWinFirst(t *testing.T) {
	// X can complete the top row at (0,2); that must outrank the block
	// of O's middle row at (1,2)
	b := Board{{X, X, 0}, {O, O, 0}, {0, 0, 0}}
	ordered := OrderMoves(Cross, b, LegalMoves(b))

	if ordered[0] != (Position{0, 2}) {
		t.Errorf("first ordered move = %v, want the winning (0,2)", ordered[0])
	}
	if ordered[1] != (Position{1, 2}) {
		t.Errorf("second ordered move = %v, want the blocking (1,2)", ordered[1])
	}
}

func TestOrderMovesBlockSecondClass(t *testing.T) {
	// No win available for O, the block of X's top row must come first
	b := Board{{X, X, 0}, {O, 0, 0}, {0, 0, 0}}
	ordered := OrderMoves(Circle, b, LegalMoves(b))

	if ordered[0] != (Position{0, 2}) {
		t.Errorf("first ordered move = %v, want the blocking (0,2)", ordered[0])
	}
}

func TestOrderMovesKeepsTheMultiset(t *testing.T) {
	b := Board{{X, 0, 0}, {0, O, 0}, {0, 0, 0}}
	moves := LegalMoves(b)
	ordered := OrderMoves(Cross, b, moves)

	if len(ordered) != len(moves) {
		t.Fatalf("ordering changed the move count: %d != %d", len(ordered), len(moves))
	}
	seen := make(map[Position]int, len(moves))
	for _, m := range moves {
		seen[m]++
	}
	for _, m := range ordered {
		seen[m]--
	}
	for m, n := range seen {
		if n != 0 {
			t.Errorf("move %v count off by %d after ordering", m, n)
		}
	}

	// The input slice itself is untouched
	if moves[0] != (Position{0, 1}) {
		t.Errorf("OrderMoves mutated its input: %v", moves)
	}
}

func TestOrderMovesEmptyBoardClasses(t *testing.T) {
	// With no tactics on an empty board the ordering degrades to cell
	// classes: center, then corners, then edges, ties in row-major order
	ordered := OrderMoves(Cross, Board{}, LegalMoves(Board{}))

	want := []Position{
		{1, 1},
		{0, 0}, {0, 2}, {2, 0}, {2, 2},
		{0, 1}, {1, 0}, {1, 2}, {2, 1},
	}
	for i := range want {
		if ordered[i] != want[i] {
			t.Errorf("ordered[%d] = %v, want %v", i, ordered[i], want[i])
		}
	}
}

func TestForkBonusRewardsDoubleThreats(t *testing.T) {
	// X holds (0,0) and (2,2); after X plays (2,0) the left column, the
	// bottom row and the main diagonal all hold two X marks and an empty
	b := Board{{X, 0, 0}, {0, 0, 0}, {0, 0, X}}

	if got := forkBonus(Cross, b.WithMove(Cross, Position{2, 0})); got != doubleForkBonus {
		t.Errorf("double threat bonus = %d, want %d", got, doubleForkBonus)
	}

	single := Board{{X, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	if got := forkBonus(Cross, single.WithMove(Cross, Position{0, 1})); got != singleForkBonus {
		t.Errorf("single threat bonus = %d, want %d", got, singleForkBonus)
	}

	if got := forkBonus(Cross, Board{}); got != 0 {
		t.Errorf("empty board bonus = %d, want 0", got)
	}
}
