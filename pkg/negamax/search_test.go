package negamax

import (
	"testing"
)

// The engine is tested against Nim (normal play: take 1-3 stones, taking
// the last stone wins). The game has a known closed-form value, a pile of
// n stones is lost for the side to move exactly when n % 4 == 0, which
// makes full-depth results easy to verify.

type nimState struct {
	stones int
}

type nimOps struct{}

func (nimOps) Evaluate(s nimState) Score {
	if s.stones == 0 {
		// The previous player took the last stone, the mover has lost
		return -1000
	}
	// No heuristic for cut-off leaves
	return 0
}

func (nimOps) GenerateMoves(s nimState) []int {
	moves := make([]int, 0, 3)
	for take := 1; take <= 3 && take <= s.stones; take++ {
		moves = append(moves, take)
	}
	return moves
}

func (nimOps) ApplyMove(s nimState, take int) nimState {
	return nimState{stones: s.stones - take}
}

func (nimOps) IsTerminal(s nimState) bool {
	return s.stones == 0
}

func (nimOps) OrderMoves(s nimState, moves []int) []int {
	return moves
}

// Unpruned reference negamax, same contract as Engine.Search but without
// the alpha-beta window
func plainNegamax(ops GameOperations[nimState, int], pos nimState, depth int) Score {
	if depth <= 0 || ops.IsTerminal(pos) {
		return ops.Evaluate(pos)
	}
	moves := ops.GenerateMoves(pos)
	if len(moves) == 0 {
		return ops.Evaluate(pos)
	}

	best := Score(-20000)
	for _, move := range moves {
		score := -plainNegamax(ops, ops.ApplyMove(pos, move), depth-1)
		if score > best {
			best = score
		}
	}
	return best
}

func TestNimGameValues(t *testing.T) {
	engine := NewEngine[nimState, int](nimOps{})

	for stones := 1; stones <= 12; stones++ {
		got := engine.Search(nimState{stones}, stones+1, Finite(RootAlpha), Finite(RootBeta))

		want := Finite(1000)
		if stones%4 == 0 {
			want = Finite(-1000)
		}
		if got != want {
			t.Errorf("stones=%d: Search = %v, want %v", stones, got, want)
		}
	}
}

func TestAlphaBetaEquivalence(t *testing.T) {
	// Pruning must never change the value, only the work performed
	engine := NewEngine[nimState, int](nimOps{})

	for stones := 1; stones <= 12; stones++ {
		for depth := 1; depth <= stones+1; depth++ {
			pruned := engine.Search(nimState{stones}, depth, Finite(RootAlpha), Finite(RootBeta))
			plain := plainNegamax(nimOps{}, nimState{stones}, depth)

			if pruned != Finite(plain) {
				t.Errorf("stones=%d depth=%d: pruned=%v, plain=%d", stones, depth, pruned, plain)
			}
		}
	}
}

func TestSearchRootPicksWinningMove(t *testing.T) {
	engine := NewEngine[nimState, int](nimOps{})

	// From 6 stones the only winning move is taking 2, leaving a lost
	// pile of 4 for the opponent
	scored, best := engine.SearchRoot(nimState{6}, []int{1, 2, 3}, 7)
	if best < 0 || scored[best].Move != 2 {
		t.Fatalf("best = %d (%+v), want the take-2 move", best, scored)
	}
	if scored[best].Score != Finite(1000) {
		t.Errorf("winning move score = %v, want 1000", scored[best].Score)
	}

	if engine.Stats().Nodes == 0 {
		t.Error("Stats should count visited nodes")
	}
}

func TestSearchRootNoMoves(t *testing.T) {
	engine := NewEngine[nimState, int](nimOps{})

	scored, best := engine.SearchRoot(nimState{0}, nil, 3)
	if best != -1 || len(scored) != 0 {
		t.Errorf("empty root should report best=-1, got %d (%v)", best, scored)
	}
}

func TestSearchRootTieKeepsEarliestMove(t *testing.T) {
	engine := NewEngine[nimState, int](nimOps{})

	// A pile of 4 is lost whatever the mover does, every root move scores
	// -1000 and the earliest candidate in the given order must be kept
	scored, best := engine.SearchRoot(nimState{4}, []int{1, 2, 3}, 5)
	if best != 0 {
		t.Errorf("best index = %d, want 0 (earliest of the tied moves)", best)
	}
	for i := range scored {
		if scored[i].Score != Finite(-1000) {
			t.Errorf("move %d scored %v, want -1000", scored[i].Move, scored[i].Score)
		}
	}
}

func TestIterativeDeepening(t *testing.T) {
	engine := NewEngine[nimState, int](nimOps{})

	depths := make([]int, 0, 8)
	listener := NewListener[int]()
	listener.
		OnDepth(func(result DepthResult[int]) {
			depths = append(depths, result.Depth)
		}).
		OnStop(func(result DepthResult[int]) {
			if result.Depth != 7 {
				t.Errorf("stop snapshot depth = %d, want 7", result.Depth)
			}
		})
	engine.SetListener(listener)

	best, ok := engine.IterativeDeepening(nimState{6}, []int{1, 2, 3}, 7)
	if !ok || best != 2 {
		t.Fatalf("IterativeDeepening = (%d, %v), want (2, true)", best, ok)
	}

	if len(depths) != 7 {
		t.Fatalf("listener called %d times, want once per depth (7)", len(depths))
	}
	for i, d := range depths {
		if d != i+1 {
			t.Errorf("iteration %d reported depth %d", i, d)
		}
	}

	if engine.Stats().Depth != 7 {
		t.Errorf("Stats().Depth = %d, want 7", engine.Stats().Depth)
	}
}

func TestIterativeDeepeningWithoutMoves(t *testing.T) {
	engine := NewEngine[nimState, int](nimOps{})

	if _, ok := engine.IterativeDeepening(nimState{0}, nil, 5); ok {
		t.Error("no candidates should report ok=false")
	}
}

func TestDeterminism(t *testing.T) {
	// Two identical searches must agree move for move
	a := NewEngine[nimState, int](nimOps{})
	b := NewEngine[nimState, int](nimOps{})

	for stones := 1; stones <= 10; stones++ {
		moves := nimOps{}.GenerateMoves(nimState{stones})
		am, aok := a.IterativeDeepening(nimState{stones}, moves, stones)
		bm, bok := b.IterativeDeepening(nimState{stones}, moves, stones)
		if am != bm || aok != bok {
			t.Errorf("stones=%d: (%d,%v) vs (%d,%v)", stones, am, aok, bm, bok)
		}
	}
}
