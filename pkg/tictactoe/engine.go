package tictactoe

import "github.com/IlikeChooros/go-negamax/pkg/negamax"

// State pairs a board with the side to move, forming the immutable
// position value the generic engine searches over
type State struct {
	Board  Board
	ToMove Player
}

// Ops implements negamax.GameOperations for tic-tac-toe. Stateless, a
// single value serves any number of engines.
type Ops struct{}

// Evaluate scores the state for the side to move. Terminal positions get
// exactly +-1000 or 0, the heuristic is only consulted while the game
// continues.
func (Ops) Evaluate(s State) negamax.Score {
	switch result := Classify(s.Board); result {
	case Continues:
		return Evaluate(s.ToMove, s.Board)
	case Draw:
		return 0
	default:
		if result == WonBy(s.ToMove) {
			return TerminalScore
		}
		// The opponent completed a line on the previous ply
		return -TerminalScore
	}
}

func (Ops) GenerateMoves(s State) []Position {
	return LegalMoves(s.Board)
}

func (Ops) ApplyMove(s State, move Position) State {
	return State{
		Board:  s.Board.WithMove(s.ToMove, move),
		ToMove: s.ToMove.Opponent(),
	}
}

func (Ops) IsTerminal(s State) bool {
	return Classify(s.Board) != Continues
}

func (Ops) OrderMoves(s State, moves []Position) []Position {
	return orderForSearch(s.ToMove, s.Board, moves)
}

// NewEngine returns a fresh generic engine bound to the tic-tac-toe
// operations, for callers that want listener hooks or raw root scores.
// FindBestMove creates its own.
func NewEngine() *negamax.Engine[State, Position] {
	return negamax.NewEngine[State, Position](Ops{})
}

// Metrics reports how a decision was reached. Observational only, it has
// no effect on the chosen move.
type Metrics struct {
	// Search depth handed to the engine, 0 on the immediate short-circuit
	Depth int

	// Positions visited during the search, or the candidate count when
	// the immediate short-circuit fired
	MovesEvaluated int

	// An immediate win or block skipped the search entirely
	Immediate bool

	// The decision ran iterative deepening instead of one full-depth pass
	IterativeDeepening bool

	// Beta cutoffs per visited node, a rough pruning effectiveness
	// estimate
	PruningRate float64
}

// FindBestMove returns the strongest move for the player,
// ok=false when the board has no empty cells
func FindBestMove(p Player, b Board) (Position, bool) {
	move, _, ok := FindBestMoveWithMetrics(p, b)
	return move, ok
}

// FindBestMoveWithMetrics is FindBestMove plus diagnostics: immediate
// wins and blocks are taken without searching, otherwise the adaptive
// depth decides between one full-depth pass (4 or fewer moves left) and
// iterative deepening.
func FindBestMoveWithMetrics(p Player, b Board) (Position, Metrics, bool) {
	var metrics Metrics

	moves := LegalMoves(b)
	if len(moves) == 0 {
		return Position{}, metrics, false
	}

	if move, ok := immediateMove(p, b, moves); ok {
		metrics.Immediate = true
		metrics.MovesEvaluated = len(moves)
		return move, metrics, true
	}

	depth := SearchDepth(len(moves), b)
	ordered := OrderMoves(p, b, moves)
	engine := NewEngine()
	root := State{Board: b, ToMove: p}

	var best Position
	found := false
	if len(moves) <= 4 {
		scored, idx := engine.SearchRoot(root, ordered, depth)
		if idx >= 0 {
			best = scored[idx].Move
			found = true
		}
	} else {
		metrics.IterativeDeepening = true
		best, found = engine.IterativeDeepening(root, ordered, depth)
	}

	stats := engine.Stats()
	metrics.Depth = depth
	metrics.MovesEvaluated = stats.Nodes
	metrics.PruningRate = stats.CutoffRate()
	return best, metrics, found
}

// immediateMove short-circuits the obvious plies: the first winning move
// in row-major order, else the first move denying the opponent an
// immediate win
func immediateMove(p Player, b Board, moves []Position) (Position, bool) {
	for _, move := range moves {
		if Classify(b.WithMove(p, move)) == WonBy(p) {
			return move, true
		}
	}

	opponent := p.Opponent()
	for _, move := range moves {
		if Classify(b.WithMove(opponent, move)) == WonBy(opponent) {
			return move, true
		}
	}

	return Position{}, false
}
