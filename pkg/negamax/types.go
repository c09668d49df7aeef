package negamax

// Basic types shared by the engine files

// Finite score of a position, always from the side-to-move perspective.
// Game evaluators should keep their values well inside the root window,
// see RootAlpha and RootBeta.
type Score int

// Anything comparable can be a move signature
type MoveLike comparable

const (
	// Bounds of the root search window. Wide enough for any evaluator
	// staying within a few thousand centipoints, finite so the window can
	// be negated without touching the infinity sentinels.
	RootAlpha Score = -10000
	RootBeta  Score = 10000
)
