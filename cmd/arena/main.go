package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/pflag"

	"github.com/IlikeChooros/go-negamax/pkg/bench"
)

var (
	nGames   = 100
	nWorkers = runtime.NumCPU()
	timeout  = 5 * time.Minute
	jsonOut  = false
)

func init() {
	pflag.IntVarP(&nGames, "games", "n", nGames, "number of games to play")
	pflag.IntVarP(&nWorkers, "workers", "w", nWorkers, "number of concurrent games")
	pflag.DurationVar(&timeout, "timeout", timeout, "overall time limit for the run")
	pflag.BoolVar(&jsonOut, "json", jsonOut, "print the summary as JSON")
	pflag.Parse()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := slog.Default()

	os.Exit(start(ctx, logger))
}

func start(ctx context.Context, logger *slog.Logger) int {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	arena := bench.NewArena(bench.EngineAgent("engine-1"), bench.EngineAgent("engine-2")).
		WithContext(ctx)
	arena.NGames = nGames
	arena.NWorkers = nWorkers

	logger.Info("starting arena",
		"games", nGames,
		"workers", nWorkers)

	started := time.Now()
	if err := arena.Run(); err != nil {
		logger.Error("arena stopped early",
			"err", err,
			"finished", arena.Total())
		return 1
	}

	summary := arena.Summary()
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			logger.Error("failed to encode summary", "err", err)
			return 1
		}
		return 0
	}

	fmt.Printf("played %d games in %s over %d workers\n",
		summary.TotalGames, time.Since(started).Round(time.Millisecond), summary.Workers)
	fmt.Printf("  %s wins:  %d\n", summary.P1Name, summary.P1Wins)
	fmt.Printf("  %s wins:  %d\n", summary.P2Name, summary.P2Wins)
	fmt.Printf("  draws:          %d\n", summary.Draws)
	fmt.Printf("  first to move:  %d wins\n", summary.FirstToMoveWins)
	fmt.Printf("  second to move: %d wins\n", summary.SecondToMoveWins)
	return 0
}
