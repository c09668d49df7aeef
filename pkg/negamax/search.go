// Package negamax implements a depth-bounded negamax search with
// alpha-beta pruning, generic over the game operations. The engine is pure
// and synchronous: no internal timers, no cancellation, no shared state.
// Callers needing a wall-clock budget run the search on their own
// goroutine and time-box it externally.
package negamax

// Engine drives the search for one game binding. It carries no game state
// of its own, only per-search counters, so an instance can be reused for
// consecutive searches but not shared between goroutines. Independent
// instances are safe to run concurrently.
type Engine[B any, M MoveLike] struct {
	ops      GameOperations[B, M]
	listener *Listener[M]
	stats    SearchStats
	timer    *_Timer
}

func NewEngine[B any, M MoveLike](ops GameOperations[B, M]) *Engine[B, M] {
	return &Engine[B, M]{
		ops:      ops,
		listener: &Listener[M]{},
		timer:    _NewTimer(),
	}
}

// Stats of the last search, valid after SearchRoot or IterativeDeepening
func (engine *Engine[B, M]) Stats() SearchStats {
	return engine.stats
}

func (engine *Engine[B, M]) StatsListener() *Listener[M] {
	return engine.listener
}

func (engine *Engine[B, M]) SetListener(listener Listener[M]) {
	*engine.listener = listener
}

// Score assigned to a single root move
type MoveScore[M MoveLike] struct {
	Move  M
	Score ExtScore
}

// Search returns the extended score of the position, from the side-to-move
// perspective, searching 'depth' plies below it within the (alpha, beta)
// window. Roots of finite games should pass Finite(RootAlpha) and
// Finite(RootBeta); the infinity sentinels exist for games whose evaluators
// are unbounded.
func (engine *Engine[B, M]) Search(pos B, depth int, alpha, beta ExtScore) ExtScore {
	engine.stats.Nodes++

	if depth <= 0 || engine.ops.IsTerminal(pos) {
		return Finite(engine.ops.Evaluate(pos))
	}

	moves := engine.ops.GenerateMoves(pos)
	if len(moves) == 0 {
		// No moves on a non-terminal position, treat it as a leaf. With a
		// correct terminal test this branch is unreachable.
		return Finite(engine.ops.Evaluate(pos))
	}
	moves = engine.ops.OrderMoves(pos, moves)

	best := NegInf()
	for i := range moves {
		child := engine.ops.ApplyMove(pos, moves[i])
		score := engine.Search(child, depth-1, beta.Neg(), alpha.Neg()).Neg()

		best = Max(best, score)
		alpha = Max(alpha, best)

		// Beta cutoff: the opponent already has a better option above this
		// node, the remaining siblings cannot change the result
		if !alpha.Less(beta) {
			engine.stats.Cutoffs++
			break
		}
	}

	return best
}

// SearchRoot scores every root move at the given depth and returns the
// index of the best one, -1 when there are no moves. Ties keep the
// earliest move in the given order. Resets the engine stats.
func (engine *Engine[B, M]) SearchRoot(pos B, moves []M, depth int) ([]MoveScore[M], int) {
	engine.setupSearch(depth)
	scored, best := engine.searchRoot(pos, moves, depth)
	engine.finishSearch(scored, best, depth)
	return scored, best
}

func (engine *Engine[B, M]) searchRoot(pos B, moves []M, depth int) ([]MoveScore[M], int) {
	alpha, beta := Finite(RootAlpha), Finite(RootBeta)
	scored := make([]MoveScore[M], len(moves))
	best := -1

	for i := range moves {
		child := engine.ops.ApplyMove(pos, moves[i])
		score := engine.Search(child, depth-1, beta.Neg(), alpha.Neg()).Neg()
		scored[i] = MoveScore[M]{Move: moves[i], Score: score}

		if best < 0 || scored[best].Score.Less(score) {
			best = i
			alpha = Max(alpha, score)
		}
	}

	return scored, best
}

// IterativeDeepening reruns the root search at depth 1, 2, ..., maxDepth,
// promoting the best move of each completed iteration to the front of the
// candidate list before the next one. The previous best is very likely
// still best one ply deeper, so searching it first maximizes pruning.
// Returns the best move of the deepest iteration, ok=false without moves.
func (engine *Engine[B, M]) IterativeDeepening(pos B, moves []M, maxDepth int) (M, bool) {
	var best M
	found := false

	engine.setupSearch(0)
	order := make([]M, len(moves))
	copy(order, moves)

	var lastScored []MoveScore[M]
	lastBest := -1
	for depth := 1; depth <= maxDepth; depth++ {
		scored, idx := engine.searchRoot(pos, order, depth)
		if idx < 0 {
			break
		}

		best = scored[idx].Move
		found = true
		engine.stats.Depth = depth
		lastScored, lastBest = scored, idx
		promote(order, idx)

		if engine.listener.onDepth != nil {
			engine.listener.onDepth(engine.snapshot(scored, idx, depth))
		}
	}

	engine.finishSearch(lastScored, lastBest, engine.stats.Depth)
	return best, found
}

// Move the candidate at idx to the front, keeping the rest in order
func promote[M MoveLike](moves []M, idx int) {
	if idx <= 0 {
		return
	}
	m := moves[idx]
	copy(moves[1:idx+1], moves[:idx])
	moves[0] = m
}

func (engine *Engine[B, M]) setupSearch(depth int) {
	engine.stats = SearchStats{Depth: depth}
	engine.timer.Reset()
}

func (engine *Engine[B, M]) finishSearch(scored []MoveScore[M], best, depth int) {
	engine.stats.TimeMs = engine.timer.Deltatime()
	if engine.listener.onStop != nil && best >= 0 {
		engine.listener.onStop(engine.snapshot(scored, best, depth))
	}
}

func (engine *Engine[B, M]) snapshot(scored []MoveScore[M], best, depth int) DepthResult[M] {
	return DepthResult[M]{
		Depth:  depth,
		Best:   scored[best].Move,
		Score:  scored[best].Score,
		Nodes:  engine.stats.Nodes,
		TimeMs: engine.timer.Deltatime(),
	}
}
