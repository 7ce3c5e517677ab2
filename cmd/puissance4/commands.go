package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/puissance4/backend/internal/domain"
	"github.com/puissance4/backend/internal/service/bot"
	"github.com/puissance4/backend/internal/service/cleanup"
	"github.com/puissance4/backend/internal/service/game"
)

func runMove(ctx context.Context, args []string) error {
	fs := commonFlags("move")
	moves := fs.String("moves", "", "columns played so far, 0-based digits, Player1 first")
	depth := fs.Int("depth", 0, "search depth, drawn from --difficulty when 0")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := setup(ctx, fs)
	if err != nil {
		return err
	}
	defer a.close()

	board, side, err := domain.ParseMoves(*moves)
	if err != nil {
		return err
	}
	d := *depth
	if d <= 0 {
		d = bot.ParseDifficulty(a.cfg.Difficulty).Depth(nil)
	}
	if domain.IsTerminal(board) {
		return fmt.Errorf("position is already decided: %s", domain.CheckOutcome(board).Status)
	}

	res, err := a.engine.Search(ctx, board, d, side)
	if err != nil {
		return err
	}

	fmt.Print(renderBoard(board))
	fmt.Printf("side=%s depth=%d column=%d value=%d nodes=%d complete=%t\n",
		side, res.Depth, res.Column, res.Value, res.Nodes, res.Complete)
	return nil
}

func runSelfPlay(ctx context.Context, args []string) error {
	fs := commonFlags("selfplay")
	games := fs.Int("games", 10, "number of games")
	depth1 := fs.Int("depth1", 4, "search depth of Player1")
	depth2 := fs.Int("depth2", 4, "search depth of Player2")
	workers := fs.Int("workers", 0, "games played at once (0 = GOMAXPROCS)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := setup(ctx, fs)
	if err != nil {
		return err
	}
	defer a.close()

	sm := game.NewSessionManager(a.engine, nil, a.logger)
	res, err := sm.RunTournament(ctx, game.TournamentConfig{
		Games:        *games,
		Player1Depth: *depth1,
		Player2Depth: *depth2,
		Workers:      *workers,
	})
	if err != nil {
		return err
	}

	fmt.Printf("games=%d player1=%d player2=%d draws=%d\n", *games, res.Player1Wins, res.Player2Wins, res.Draws)
	return nil
}

func runPlay(ctx context.Context, args []string) error {
	fs := commonFlags("play")
	players := fs.Int("players", 1, "number of human players: 0, 1 or 2")
	humanFirst := fs.Bool("human-first", false, "let the human open instead of a random draw")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mode, err := game.ParseMode(*players)
	if err != nil {
		return err
	}

	a, err := setup(ctx, fs)
	if err != nil {
		return err
	}
	defer a.close()

	cfg := game.SessionConfig{
		Mode:       mode,
		Difficulty: bot.ParseDifficulty(a.cfg.Difficulty),
		HumanSide:  domain.Player1,
	}
	if *humanFirst {
		cfg.FirstPlayer = domain.Player1
	}

	sm := game.NewSessionManager(a.engine, nil, a.logger)
	cleanup.NewWorker(sm, a.cfg.CleanupInterval, a.cfg.SessionTTL, a.logger).Start(ctx)
	session := sm.CreateSession(cfg)
	defer sm.RemoveSession(session.GameID)

	return playLoop(ctx, session, os.Stdin, os.Stdout)
}

// playLoop alternates between reading human columns (1-7) from in and
// asking the engine, until the game ends or in is exhausted.
func playLoop(ctx context.Context, session *game.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, renderBoard(session.Board()))

	for !session.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			res game.MoveResult
			err error
		)
		if session.IsComputerTurn() {
			res, err = session.PlayComputer(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s plays %d\n", domain.GetBotName(string(session.Difficulty)), res.Column+1)
		} else {
			fmt.Fprintf(out, "%s, column (1-%d): ", sideName(session.CurrentPlayer()), domain.Columns)
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return err
				}
				return errors.New("input closed before the game ended")
			}
			column, convErr := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			if convErr != nil {
				fmt.Fprintln(out, "please enter a column number")
				continue
			}
			res, err = session.PlayHuman(column - 1)
			if errors.Is(err, domain.ErrInvalidMove) {
				fmt.Fprintln(out, err)
				continue
			}
			if err != nil {
				return err
			}
		}
		fmt.Fprint(out, renderBoard(res.Board))
	}

	outcome := session.Outcome()
	if outcome.Status == domain.StatusDraw {
		fmt.Fprintln(out, "draw")
	} else {
		fmt.Fprintf(out, "%s wins\n", sideName(outcome.Winner))
	}
	return nil
}

func sideName(p domain.PlayerID) string {
	if p == domain.Player1 {
		return "X"
	}
	return "O"
}

func renderBoard(b domain.Board) string {
	var sb strings.Builder
	sb.WriteString(b.String())
	for c := 1; c <= domain.Columns; c++ {
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte('\n')
	return sb.String()
}
