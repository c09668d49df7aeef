package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-negamax/pkg/tictactoe"
)

// Agent is one side of an arena match: a named move picker.
// Pick must be safe to call from multiple goroutines.
type Agent struct {
	Name string
	Pick func(p tictactoe.Player, b tictactoe.Board) (tictactoe.Position, bool)
}

// EngineAgent wraps the stock decision function
func EngineAgent(name string) Agent {
	return Agent{Name: name, Pick: tictactoe.FindBestMove}
}

type MatchResult int

const (
	Pl1Win MatchResult = 1
	Pl2Win MatchResult = -1
	Draw   MatchResult = 0
)

// ArenaStats tallies finished games, updated atomically by the workers
type ArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (as *ArenaStats) Total() int {
	return as.P1Wins() + as.P2Wins() + as.Draws()
}

func (as *ArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&as.p1Wins))
}

func (as *ArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&as.p2Wins))
}

func (as *ArenaStats) Draws() int {
	return int(atomic.LoadUint32(&as.draws))
}

func (as *ArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&as.firstToMoveWins))
}

func (as *ArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&as.secondToMoveWins))
}

// SummaryInfo is the final report of an arena run
type SummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	Draws            int    `json:"draws"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}
