package negamax

// Snapshot handed to the listener after a completed deepening iteration,
// or once when the search stops
type DepthResult[M MoveLike] struct {
	Depth  int
	Best   M
	Score  ExtScore
	Nodes  int
	TimeMs int64
}

// Listener function callback, receives the current search snapshot
type ListenerFunc[M MoveLike] func(DepthResult[M])

// Listener carries the optional search callbacks. The engine is
// single-threaded, so the callbacks run inline on the searching goroutine,
// keep them cheap.
type Listener[M MoveLike] struct {
	// called after every completed deepening iteration
	onDepth ListenerFunc[M]

	// called once when the search ends
	onStop ListenerFunc[M]
}

func NewListener[M MoveLike]() Listener[M] {
	return Listener[M]{}
}

// Attach an on-depth-completed callback
func (listener *Listener[M]) OnDepth(onDepth ListenerFunc[M]) *Listener[M] {
	listener.onDepth = onDepth
	return listener
}

// Attach an on-search-end callback
func (listener *Listener[M]) OnStop(onStop ListenerFunc[M]) *Listener[M] {
	listener.onStop = onStop
	return listener
}
