package negamax

// Counters accumulated over a single search call. Diagnostic only, they
// never influence the chosen move.
type SearchStats struct {
	// Positions visited, leaves included
	Nodes int

	// Beta cutoffs taken, each one skipped at least one sibling subtree
	Cutoffs int

	// Deepest completed iteration (iterative deepening) or the requested
	// depth (plain root search)
	Depth int

	// Wall time of the whole search in milliseconds
	TimeMs int64
}

// CutoffRate is a rough pruning effectiveness estimate, cutoffs per
// visited node. 0 means the search degenerated to full minimax.
func (s SearchStats) CutoffRate() float64 {
	if s.Nodes == 0 {
		return 0
	}
	return float64(s.Cutoffs) / float64(s.Nodes)
}
