package negamax

// GameOperations bundles the behavior the engine needs from a game:
// evaluation, move generation, move application, terminal test and move
// ordering. B is the position value, M the move signature.
//
// Positions are treated as immutable values. ApplyMove must return a new
// position and leave its argument untouched, the engine relies on sibling
// positions not aliasing each other, and never undoes a move.
type GameOperations[B any, M MoveLike] interface {
	// Score the position from the side-to-move perspective. Called on
	// terminal positions and on depth-exhausted leaves, terminal scores
	// must dominate any heuristic value.
	Evaluate(B) Score

	// List the legal moves in a deterministic order
	GenerateMoves(B) []M

	// Play the move for the side to move, returning the child position
	ApplyMove(B, M) B

	// Whether the game is over in this position
	IsTerminal(B) bool

	// Reorder the candidates so the most promising come first, to maximize
	// alpha-beta cutoffs. Must be a permutation of the input and
	// deterministic, the engine calls it on every interior node.
	OrderMoves(B, []M) []M
}
