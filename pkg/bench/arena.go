package bench

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-negamax/pkg/tictactoe"
)

/*
Arena benchmark subpackage, plays a series of games between two agents
over a pool of workers and tallies the outcomes.
*/

// Arena plays NGames between Player1 and Player2. Who takes the cross
// (and moves first) alternates by game index, so both agents get an
// equal share of first moves.
type Arena struct {
	ArenaStats
	Player1  Agent
	Player2  Agent
	NGames   int
	NWorkers int
	ctx      context.Context
}

func NewArena(p1, p2 Agent) *Arena {
	return &Arena{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NWorkers: runtime.NumCPU(),
		ctx:      context.Background(),
	}
}

func (a *Arena) WithContext(ctx context.Context) *Arena {
	a.ctx = ctx
	return a
}

// Run plays all games and blocks until they finish, the context is
// cancelled, or an agent misbehaves (no move on a live position, or an
// illegal move).
func (a *Arena) Run() error {
	nWorkers := a.NWorkers
	if nWorkers < 1 {
		nWorkers = 1
	}

	g, ctx := errgroup.WithContext(a.ctx)
	games := make(chan int)

	g.Go(func() error {
		defer close(games)
		for i := 0; i < a.NGames; i++ {
			select {
			case games <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < nWorkers; w++ {
		g.Go(func() error {
			for i := range games {
				cross, circle := a.Player1, a.Player2
				switched := i%2 == 1
				if switched {
					cross, circle = a.Player2, a.Player1
				}

				result, err := playGame(ctx, cross, circle)
				if err != nil {
					return err
				}
				a.record(result, switched)
			}
			return nil
		})
	}

	return g.Wait()
}

func (a *Arena) record(result MatchResult, switched bool) {
	switch {
	case result == Draw:
		atomic.AddUint32(&a.draws, 1)
	case (result == Pl1Win) != switched:
		atomic.AddUint32(&a.p1Wins, 1)
	default:
		atomic.AddUint32(&a.p2Wins, 1)
	}
	if result == Pl1Win {
		atomic.AddUint32(&a.firstToMoveWins, 1)
	} else if result == Pl2Win {
		atomic.AddUint32(&a.secondToMoveWins, 1)
	}
}

func (a *Arena) Summary() SummaryInfo {
	return SummaryInfo{
		TotalGames:       a.Total(),
		P1Wins:           a.P1Wins(),
		P2Wins:           a.P2Wins(),
		Draws:            a.Draws(),
		FirstToMoveWins:  a.FirstToMoveWins(),
		SecondToMoveWins: a.SecondToMoveWins(),
		Workers:          a.NWorkers,
		P1Name:           a.Player1.Name,
		P2Name:           a.Player2.Name,
	}
}

// playGame runs a single game, cross moves first. Pl1Win means the
// cross agent won.
func playGame(ctx context.Context, cross, circle Agent) (MatchResult, error) {
	var board tictactoe.Board
	toMove := tictactoe.Cross

	for {
		select {
		case <-ctx.Done():
			return Draw, ctx.Err()
		default:
		}

		switch tictactoe.Classify(board) {
		case tictactoe.CrossWon:
			return Pl1Win, nil
		case tictactoe.CircleWon:
			return Pl2Win, nil
		case tictactoe.Draw:
			return Draw, nil
		}

		agent := cross
		if toMove == tictactoe.Circle {
			agent = circle
		}

		move, ok := agent.Pick(toMove, board)
		if !ok {
			return Draw, fmt.Errorf("bench: agent %q returned no move on a live position", agent.Name)
		}
		if !board.IsEmpty(move) {
			return Draw, fmt.Errorf("bench: agent %q played occupied cell %s", agent.Name, move)
		}

		board = board.WithMove(toMove, move)
		toMove = toMove.Opponent()
	}
}
