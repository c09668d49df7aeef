package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/IlikeChooros/go-negamax/pkg/negamax"
	"github.com/IlikeChooros/go-negamax/pkg/tictactoe"
)

var (
	mode      = "play"
	humanMark = "X"
	moveTime  = 10 * time.Second
	analyze   = ""
	verbose   = false
)

func init() {
	pflag.StringVarP(&mode, "mode", "m", mode, "game mode: play (human vs engine) or self (engine vs engine)")
	pflag.StringVar(&humanMark, "mark", humanMark, "human mark in play mode: X or O (X moves first)")
	pflag.DurationVar(&moveTime, "movetime", moveTime, "time allowed per engine move")
	pflag.StringVarP(&analyze, "analyze", "a", analyze, `analyze a position instead of playing, e.g. "XO./.X./..." with X to move`)
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "log search metrics for every engine move")
	pflag.Parse()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	os.Exit(start(ctx, logger))
}

func start(ctx context.Context, logger *slog.Logger) int {
	out := termenv.NewOutput(os.Stdout)

	if analyze != "" {
		if err := analyzePosition(out, analyze); err != nil {
			logger.Error("analysis failed", "err", err)
			return 1
		}
		return 0
	}

	switch mode {
	case "play":
		mark := tictactoe.Cross
		if strings.EqualFold(humanMark, "O") {
			mark = tictactoe.Circle
		}
		return playHumanGame(ctx, logger, out, mark)
	case "self":
		return playSelfGame(ctx, logger, out)
	default:
		logger.Error("unknown mode", "mode", mode)
		return 1
	}
}

func playHumanGame(ctx context.Context, logger *slog.Logger, out *termenv.Output, human tictactoe.Player) int {
	var board tictactoe.Board
	toMove := tictactoe.Cross
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Fprintln(out, renderBoard(out, board))

		result := tictactoe.Classify(board)
		if result != tictactoe.Continues {
			printResult(out, result, human)
			return 0
		}

		var move tictactoe.Position
		if toMove == human {
			m, err := readMove(ctx, reader, board)
			if err != nil {
				logger.Error("input error", "err", err)
				return 1
			}
			move = m
		} else {
			move = engineMove(ctx, logger, toMove, board)
			fmt.Fprintf(out, "engine plays %s\n", move)
		}

		board = board.WithMove(toMove, move)
		toMove = toMove.Opponent()
	}
}

func playSelfGame(ctx context.Context, logger *slog.Logger, out *termenv.Output) int {
	var board tictactoe.Board
	toMove := tictactoe.Cross

	for tictactoe.Classify(board) == tictactoe.Continues {
		move := engineMove(ctx, logger, toMove, board)
		board = board.WithMove(toMove, move)
		fmt.Fprintf(out, "%s plays %s\n%s\n", toMove, move, renderBoard(out, board))
		toMove = toMove.Opponent()

		select {
		case <-ctx.Done():
			return 1
		default:
		}
	}

	printResult(out, tictactoe.Classify(board), tictactoe.None)
	return 0
}

// engineMove asks the engine for a move under a deadline. If the search
// does not answer in time, the first legal move stands in.
func engineMove(ctx context.Context, logger *slog.Logger, p tictactoe.Player, b tictactoe.Board) tictactoe.Position {
	ctx, cancel := context.WithTimeout(ctx, moveTime)
	defer cancel()

	type answer struct {
		move    tictactoe.Position
		metrics tictactoe.Metrics
		ok      bool
	}

	ch := make(chan answer, 1)
	go func() {
		m, metrics, ok := tictactoe.FindBestMoveWithMetrics(p, b)
		ch <- answer{m, metrics, ok}
	}()

	select {
	case ans := <-ch:
		if !ans.ok {
			break
		}
		logger.Info("engine move",
			"player", p.String(),
			"move", ans.move.String(),
			"depth", ans.metrics.Depth,
			"nodes", ans.metrics.MovesEvaluated,
			"immediate", ans.metrics.Immediate,
			"pruning", fmt.Sprintf("%.1f%%", ans.metrics.PruningRate*100))
		return ans.move
	case <-ctx.Done():
		logger.Warn("search timed out, falling back to the first legal move")
	}

	moves := tictactoe.LegalMoves(b)
	return moves[0]
}

// analyzePosition runs a full-depth search on a position given as three
// slash-separated rows of X, O and '.', printing each completed depth.
func analyzePosition(out *termenv.Output, desc string) error {
	board, toMove, err := parseBoard(desc)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, renderBoard(out, board))
	if result := tictactoe.Classify(board); result != tictactoe.Continues {
		fmt.Fprintf(out, "position is over: %s\n", result)
		return nil
	}

	engine := tictactoe.NewEngine()
	engine.StatsListener().
		OnDepth(func(r negamax.DepthResult[tictactoe.Position]) {
			fmt.Fprintf(out, "depth %d: best %s score %s nodes %d time %dms\n",
				r.Depth, r.Best, r.Score, r.Nodes, r.TimeMs)
		})

	state := tictactoe.State{Board: board, ToMove: toMove}
	moves := tictactoe.OrderMoves(toMove, board, tictactoe.LegalMoves(board))
	best, ok := engine.IterativeDeepening(state, moves, tictactoe.MaxDepth)
	if !ok {
		return fmt.Errorf("no legal moves in %q", desc)
	}

	fmt.Fprintf(out, "%s to move, best %s\n", toMove, best)
	return nil
}

func parseBoard(desc string) (tictactoe.Board, tictactoe.Player, error) {
	var board tictactoe.Board
	rows := strings.Split(desc, "/")
	if len(rows) != 3 {
		return board, tictactoe.None, fmt.Errorf("want 3 rows separated by '/', got %d", len(rows))
	}

	marks := 0
	crosses := 0
	for r, row := range rows {
		if len(row) != 3 {
			return board, tictactoe.None, fmt.Errorf("row %d must have 3 cells, got %q", r, row)
		}
		for c, ch := range row {
			pos := tictactoe.Position{Row: uint8(r), Col: uint8(c)}
			switch ch {
			case 'X', 'x':
				board = board.WithMove(tictactoe.Cross, pos)
				marks++
				crosses++
			case 'O', 'o':
				board = board.WithMove(tictactoe.Circle, pos)
				marks++
			case '.', '_':
			default:
				return board, tictactoe.None, fmt.Errorf("bad cell %q in row %d", ch, r)
			}
		}
	}

	toMove := tictactoe.Cross
	if crosses > marks-crosses {
		toMove = tictactoe.Circle
	}
	return board, toMove, nil
}

func readMove(ctx context.Context, reader *bufio.Reader, b tictactoe.Board) (tictactoe.Position, error) {
	for {
		select {
		case <-ctx.Done():
			return tictactoe.Position{}, ctx.Err()
		default:
		}

		fmt.Print("your move (row col, 0-2): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return tictactoe.Position{}, err
		}

		var row, col int
		if _, err := fmt.Sscanf(strings.TrimSpace(line), "%d %d", &row, &col); err != nil {
			fmt.Println("could not parse, try e.g. '1 1' for the center")
			continue
		}

		pos, err := tictactoe.PositionAt(row, col)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if !b.IsEmpty(pos) {
			fmt.Println("that cell is taken")
			continue
		}
		return pos, nil
	}
}

func renderBoard(out *termenv.Output, b tictactoe.Board) string {
	cross := out.String("X").Foreground(out.Color("1")).Bold()
	circle := out.String("O").Foreground(out.Color("4")).Bold()
	empty := out.String(".").Faint()

	var sb strings.Builder
	sb.WriteString("  0 1 2\n")
	for r := uint8(0); r < 3; r++ {
		fmt.Fprintf(&sb, "%d ", r)
		for c := uint8(0); c < 3; c++ {
			pos := tictactoe.Position{Row: r, Col: c}
			switch b.At(pos) {
			case tictactoe.Cross:
				sb.WriteString(cross.String())
			case tictactoe.Circle:
				sb.WriteString(circle.String())
			default:
				sb.WriteString(empty.String())
			}
			if c < 2 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func printResult(out *termenv.Output, result tictactoe.GameResult, human tictactoe.Player) {
	winner, decisive := result.Winner()
	switch {
	case !decisive:
		fmt.Fprintln(out, "draw")
	case winner == human:
		fmt.Fprintln(out, out.String("you win!").Foreground(out.Color("2")).Bold())
	case human == tictactoe.None:
		fmt.Fprintf(out, "%s wins\n", winner)
	default:
		fmt.Fprintln(out, out.String("engine wins").Foreground(out.Color("1")).Bold())
	}
}
